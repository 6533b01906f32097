package appointment

import "errors"

var (
	// ErrInvalidInput flags a malformed or incomplete booking request.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound flags a missing appointment, service or user reference.
	ErrNotFound = errors.New("not found")
	// ErrConflict flags a booking that overlaps an existing one.
	ErrConflict = errors.New("employee is not available at this time")
)

package userRepo

import "salao/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by their unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by their email, nil if absent.
	GetByEmail(email string) (*models.User, error)
	// GetByRole retrieves all users with the given role; empty role means all.
	GetByRole(role string) ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// AddLoyaltyPoints atomically adjusts a user's point balance by delta.
	AddLoyaltyPoints(id string, delta int) error
	// AppendVisit appends one entry to a user's visit history.
	AppendVisit(id string, visit models.Visit) error
	// SetTokenHash stores the hash of the user's current auth token.
	SetTokenHash(id, tokenHash string) error
}

package review

import (
	"errors"
	"fmt"

	appointmentRepo "salao/database/repository/appointment"
	reviewRepo "salao/database/repository/review"
	"salao/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound flags a missing review or appointment.
	ErrNotFound = errors.New("not found")
	// ErrNotOwner is returned when the caller does not own the resource.
	ErrNotOwner = errors.New("not authorized for this review")
	// ErrNotCompleted is returned when reviewing an unfinished appointment.
	ErrNotCompleted = errors.New("only completed appointments can be reviewed")
	// ErrAlreadyReviewed is returned on a second review of an appointment.
	ErrAlreadyReviewed = errors.New("appointment already reviewed")
	// ErrBadRating is returned for a rating outside 1..5.
	ErrBadRating = errors.New("rating must be between 1 and 5")
)

// DefaultReviewService is the production implementation of ReviewService.
type DefaultReviewService struct {
	Repo         reviewRepo.ReviewRepository
	Appointments appointmentRepo.AppointmentRepository
}

// CreateReview records a rating for the caller's own completed appointment.
func (s *DefaultReviewService) CreateReview(clientID string, req CreateRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrBadRating
	}

	appt, err := s.Appointments.GetByID(req.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, req.AppointmentID)
	}
	if appt.ClientID != clientID {
		return nil, ErrNotOwner
	}
	if appt.Status != models.StatusCompleted {
		return nil, ErrNotCompleted
	}

	existing, err := s.Repo.GetByAppointment(req.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	rv := &models.Review{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		ServiceID:     appt.ServiceID,
		EmployeeID:    appt.EmployeeID,
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Comment:       req.Comment,
		Photos:        req.Photos,
	}
	if err := s.Repo.Create(rv); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return rv, nil
}

// ListReviews returns reviews filtered by service and/or employee.
func (s *DefaultReviewService) ListReviews(serviceID, employeeID string) ([]models.Review, error) {
	return s.Repo.GetAll(serviceID, employeeID)
}

// GetReview returns one review.
func (s *DefaultReviewService) GetReview(id string) (*models.Review, error) {
	rv, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: review %s", ErrNotFound, id)
	}
	return rv, nil
}

// UpdateReview edits a review; only its author may.
func (s *DefaultReviewService) UpdateReview(clientID, reviewID string, req UpdateRequest) (*models.Review, error) {
	rv, err := s.Repo.GetByID(reviewID)
	if err != nil {
		return nil, fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
	}
	if rv.ClientID != clientID {
		return nil, ErrNotOwner
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrBadRating
		}
		rv.Rating = *req.Rating
	}
	if req.Comment != nil {
		rv.Comment = *req.Comment
	}
	if req.Photos != nil {
		rv.Photos = *req.Photos
	}

	if err := s.Repo.Update(rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// DeleteReview removes a review; its author or an admin may.
func (s *DefaultReviewService) DeleteReview(callerID, callerRole, reviewID string) error {
	rv, err := s.Repo.GetByID(reviewID)
	if err != nil {
		return fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
	}
	if rv.ClientID != callerID && callerRole != models.RoleAdmin {
		return ErrNotOwner
	}
	return s.Repo.Delete(reviewID)
}

// ServiceRating aggregates the mean rating of a service.
func (s *DefaultReviewService) ServiceRating(serviceID string) (models.RatingSummary, error) {
	return s.Repo.AverageForService(serviceID)
}

// EmployeeRating aggregates the mean rating of an employee.
func (s *DefaultReviewService) EmployeeRating(employeeID string) (models.RatingSummary, error) {
	return s.Repo.AverageForEmployee(employeeID)
}

package review

import "salao/models"

// CreateRequest is the payload accepted by CreateReview.
type CreateRequest struct {
	AppointmentID string               `json:"appointmentId" binding:"required"`
	Rating        int                  `json:"rating" binding:"required"`
	Comment       string               `json:"comment"`
	Photos        []models.ReviewPhoto `json:"photos"`
}

// UpdateRequest carries optional review edits.
type UpdateRequest struct {
	Rating  *int                  `json:"rating"`
	Comment *string               `json:"comment"`
	Photos  *[]models.ReviewPhoto `json:"photos"`
}

// ReviewService defines review operations.
type ReviewService interface {
	// CreateReview records a client's rating of their completed appointment.
	CreateReview(clientID string, req CreateRequest) (*models.Review, error)
	// ListReviews returns reviews filtered by service and/or employee.
	ListReviews(serviceID, employeeID string) ([]models.Review, error)
	// GetReview returns one review.
	GetReview(id string) (*models.Review, error)
	// UpdateReview edits a review; only its author may.
	UpdateReview(clientID, reviewID string, req UpdateRequest) (*models.Review, error)
	// DeleteReview removes a review; its author or an admin may.
	DeleteReview(callerID, callerRole, reviewID string) error
	// ServiceRating aggregates the mean rating of a service.
	ServiceRating(serviceID string) (models.RatingSummary, error)
	// EmployeeRating aggregates the mean rating of an employee.
	EmployeeRating(employeeID string) (models.RatingSummary, error)
}

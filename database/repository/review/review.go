package reviewRepo

import "salao/models"

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// GetByID retrieves a review by its unique ID.
	GetByID(id string) (*models.Review, error)
	// GetAll retrieves reviews, optionally filtered by service and/or
	// employee; newest first.
	GetAll(serviceID, employeeID string) ([]models.Review, error)
	// GetByAppointment retrieves the review for an appointment, nil if none.
	GetByAppointment(appointmentID string) (*models.Review, error)
	// Create inserts a new review record.
	Create(review *models.Review) error
	// Update modifies an existing review record.
	Update(review *models.Review) error
	// Delete removes a review record by its ID.
	Delete(id string) error
	// AverageForService aggregates the mean rating of a service.
	AverageForService(serviceID string) (models.RatingSummary, error)
	// AverageForEmployee aggregates the mean rating of an employee.
	AverageForEmployee(employeeID string) (models.RatingSummary, error)
}

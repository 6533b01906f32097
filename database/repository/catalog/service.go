package catalogRepo

import "salao/models"

// ServiceRepository defines methods for salon service data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// GetByName retrieves a service by its exact name, nil if absent.
	GetByName(name string) (*models.Service, error)
	// GetAll retrieves every service.
	GetAll() ([]models.Service, error)
	// Create inserts a new service record.
	Create(svc *models.Service) error
	// Update modifies an existing service record.
	Update(svc *models.Service) error
	// Delete removes a service record by its ID.
	Delete(id string) error
}

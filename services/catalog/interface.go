package catalog

import "salao/models"

// ServiceInput is the payload for creating or updating a salon service.
type ServiceInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
}

// CatalogService defines salon service management operations.
type CatalogService interface {
	// CreateService adds a new service; names are unique.
	CreateService(in ServiceInput) (*models.Service, error)
	// ListServices returns every service.
	ListServices() ([]models.Service, error)
	// GetService returns one service.
	GetService(id string) (*models.Service, error)
	// UpdateService applies a partial update.
	UpdateService(id string, in ServiceInput) (*models.Service, error)
	// DeleteService removes a service.
	DeleteService(id string) error
}

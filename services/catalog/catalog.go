package catalog

import (
	"errors"
	"fmt"

	catalogRepo "salao/database/repository/catalog"
	"salao/models"

	"github.com/google/uuid"
)

var (
	// ErrNameTaken is returned when a service name already exists.
	ErrNameTaken = errors.New("service with this name already exists")
	// ErrInvalidInput flags a create request missing required fields.
	ErrInvalidInput = errors.New("invalid service data")
)

// DefaultCatalogService is the production implementation of CatalogService.
type DefaultCatalogService struct {
	Repo catalogRepo.ServiceRepository
}

// CreateService adds a new service. Duration defaults to one grid slot.
func (s *DefaultCatalogService) CreateService(in ServiceInput) (*models.Service, error) {
	if in.Name == "" || in.Price == nil {
		return nil, ErrInvalidInput
	}

	existing, err := s.Repo.GetByName(in.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check service name: %w", err)
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	duration := 30
	if in.Duration != nil && *in.Duration > 0 {
		duration = *in.Duration
	}

	svc := &models.Service{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Duration:    duration,
	}
	if err := s.Repo.Create(svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

// ListServices returns every service.
func (s *DefaultCatalogService) ListServices() ([]models.Service, error) {
	return s.Repo.GetAll()
}

// GetService returns one service.
func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	return s.Repo.GetByID(id)
}

// UpdateService applies a partial update. Changing the duration does not
// touch end times of appointments already booked with the old duration.
func (s *DefaultCatalogService) UpdateService(id string, in ServiceInput) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		svc.Name = in.Name
	}
	if in.Description != "" {
		svc.Description = in.Description
	}
	if in.Price != nil {
		svc.Price = *in.Price
	}
	if in.Duration != nil && *in.Duration > 0 {
		svc.Duration = *in.Duration
	}

	if err := s.Repo.Update(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService removes a service.
func (s *DefaultCatalogService) DeleteService(id string) error {
	return s.Repo.Delete(id)
}

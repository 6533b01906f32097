package catalog

import (
	"errors"
	"testing"

	"salao/models"
)

type fakeServiceRepo struct {
	services []models.Service
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].ID == id {
			return &f.services[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeServiceRepo) GetByName(name string) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].Name == name {
			return &f.services[i], nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) GetAll() ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeServiceRepo) Create(svc *models.Service) error {
	f.services = append(f.services, *svc)
	return nil
}

func (f *fakeServiceRepo) Update(svc *models.Service) error {
	for i := range f.services {
		if f.services[i].ID == svc.ID {
			f.services[i] = *svc
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeServiceRepo) Delete(id string) error {
	for i := range f.services {
		if f.services[i].ID == id {
			f.services = append(f.services[:i], f.services[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func TestCreateServiceDefaultsDuration(t *testing.T) {
	svc := &DefaultCatalogService{Repo: &fakeServiceRepo{}}

	price := 80.0
	created, err := svc.CreateService(ServiceInput{Name: "Manicure", Price: &price})
	if err != nil {
		t.Fatalf("CreateService returned error: %v", err)
	}
	if created.Duration != 30 {
		t.Errorf("Duration = %d, want default 30", created.Duration)
	}
}

func TestCreateServiceValidation(t *testing.T) {
	svc := &DefaultCatalogService{Repo: &fakeServiceRepo{}}
	price := 80.0

	if _, err := svc.CreateService(ServiceInput{Price: &price}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing name error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.CreateService(ServiceInput{Name: "Manicure"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing price error = %v, want ErrInvalidInput", err)
	}
}

func TestCreateServiceRejectsDuplicateName(t *testing.T) {
	svc := &DefaultCatalogService{Repo: &fakeServiceRepo{}}
	price := 80.0

	if _, err := svc.CreateService(ServiceInput{Name: "Manicure", Price: &price}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateService(ServiceInput{Name: "Manicure", Price: &price}); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("duplicate create error = %v, want ErrNameTaken", err)
	}
}

func TestUpdateServicePartial(t *testing.T) {
	svc := &DefaultCatalogService{Repo: &fakeServiceRepo{}}
	price := 80.0
	duration := 45

	created, err := svc.CreateService(ServiceInput{Name: "Corte", Price: &price, Duration: &duration})
	if err != nil {
		t.Fatalf("CreateService returned error: %v", err)
	}

	newPrice := 95.0
	updated, err := svc.UpdateService(created.ID, ServiceInput{Price: &newPrice})
	if err != nil {
		t.Fatalf("UpdateService returned error: %v", err)
	}
	if updated.Price != 95.0 {
		t.Errorf("Price = %v, want 95", updated.Price)
	}
	if updated.Name != "Corte" || updated.Duration != 45 {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

package review

import (
	"context"
	"errors"
	"testing"

	"salao/models"
)

type fakeReviewRepo struct {
	reviews []models.Review
}

func (f *fakeReviewRepo) GetByID(id string) (*models.Review, error) {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			return &f.reviews[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeReviewRepo) GetAll(serviceID, employeeID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if serviceID != "" && r.ServiceID != serviceID {
			continue
		}
		if employeeID != "" && r.EmployeeID != employeeID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReviewRepo) GetByAppointment(appointmentID string) (*models.Review, error) {
	for i := range f.reviews {
		if f.reviews[i].AppointmentID == appointmentID {
			return &f.reviews[i], nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) Create(rv *models.Review) error {
	f.reviews = append(f.reviews, *rv)
	return nil
}

func (f *fakeReviewRepo) Update(rv *models.Review) error {
	for i := range f.reviews {
		if f.reviews[i].ID == rv.ID {
			f.reviews[i] = *rv
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeReviewRepo) Delete(id string) error {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeReviewRepo) AverageForService(serviceID string) (models.RatingSummary, error) {
	return average(f.reviews, func(r models.Review) bool { return r.ServiceID == serviceID }), nil
}

func (f *fakeReviewRepo) AverageForEmployee(employeeID string) (models.RatingSummary, error) {
	return average(f.reviews, func(r models.Review) bool { return r.EmployeeID == employeeID }), nil
}

func average(reviews []models.Review, match func(models.Review) bool) models.RatingSummary {
	var sum, count int
	for _, r := range reviews {
		if match(r) {
			sum += r.Rating
			count++
		}
	}
	summary := models.RatingSummary{Count: count}
	if count > 0 {
		summary.AverageRating = float64(sum) / float64(count)
	}
	return summary
}

type fakeApptRepo struct {
	appts map[string]models.Appointment
}

func (f *fakeApptRepo) GetByID(id string) (*models.Appointment, error) {
	a, ok := f.appts[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &a, nil
}

func (f *fakeApptRepo) GetAll() ([]models.Appointment, error)                 { return nil, nil }
func (f *fakeApptRepo) GetByClient(string) ([]models.Appointment, error)      { return nil, nil }
func (f *fakeApptRepo) GetByEmployee(string) ([]models.Appointment, error)    { return nil, nil }
func (f *fakeApptRepo) IntervalsFor(string, string) ([]models.TimeInterval, error) {
	return nil, nil
}
func (f *fakeApptRepo) CreateIfFree(context.Context, *models.Appointment) error { return nil }
func (f *fakeApptRepo) Update(*models.Appointment) error                        { return nil }
func (f *fakeApptRepo) Delete(string) error                                     { return nil }

func newTestService() *DefaultReviewService {
	return &DefaultReviewService{
		Repo: &fakeReviewRepo{},
		Appointments: &fakeApptRepo{appts: map[string]models.Appointment{
			"a-done": {ID: "a-done", ClientID: "c1", EmployeeID: "e1", ServiceID: "s1", Status: models.StatusCompleted},
			"a-open": {ID: "a-open", ClientID: "c1", EmployeeID: "e1", ServiceID: "s1", Status: models.StatusConfirmed},
		}},
	}
}

func TestCreateReviewRules(t *testing.T) {
	tests := []struct {
		name    string
		client  string
		req     CreateRequest
		wantErr error
	}{
		{"completed appointment", "c1", CreateRequest{AppointmentID: "a-done", Rating: 5}, nil},
		{"rating too low", "c1", CreateRequest{AppointmentID: "a-done", Rating: 0}, ErrBadRating},
		{"rating too high", "c1", CreateRequest{AppointmentID: "a-done", Rating: 6}, ErrBadRating},
		{"unknown appointment", "c1", CreateRequest{AppointmentID: "a-missing", Rating: 4}, ErrNotFound},
		{"someone else's appointment", "c2", CreateRequest{AppointmentID: "a-done", Rating: 4}, ErrNotOwner},
		{"not yet completed", "c1", CreateRequest{AppointmentID: "a-open", Rating: 4}, ErrNotCompleted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService()
			rv, err := svc.CreateReview(tc.client, tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("CreateReview error = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr == nil && (rv == nil || rv.ServiceID != "s1" || rv.EmployeeID != "e1") {
				t.Errorf("review references not copied from appointment: %+v", rv)
			}
		})
	}
}

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	svc := newTestService()

	if _, err := svc.CreateReview("c1", CreateRequest{AppointmentID: "a-done", Rating: 5}); err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	_, err := svc.CreateReview("c1", CreateRequest{AppointmentID: "a-done", Rating: 3})
	if !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("second review error = %v, want ErrAlreadyReviewed", err)
	}
}

func TestUpdateReviewOwnership(t *testing.T) {
	svc := newTestService()

	rv, err := svc.CreateReview("c1", CreateRequest{AppointmentID: "a-done", Rating: 5})
	if err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}

	three := 3
	if _, err := svc.UpdateReview("c2", rv.ID, UpdateRequest{Rating: &three}); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("UpdateReview by stranger error = %v, want ErrNotOwner", err)
	}

	updated, err := svc.UpdateReview("c1", rv.ID, UpdateRequest{Rating: &three})
	if err != nil {
		t.Fatalf("UpdateReview by author failed: %v", err)
	}
	if updated.Rating != 3 {
		t.Errorf("Rating = %d, want 3", updated.Rating)
	}
}

func TestDeleteReviewAdminOverride(t *testing.T) {
	svc := newTestService()

	rv, err := svc.CreateReview("c1", CreateRequest{AppointmentID: "a-done", Rating: 5})
	if err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}

	if err := svc.DeleteReview("c2", models.RoleClient, rv.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("DeleteReview by stranger error = %v, want ErrNotOwner", err)
	}
	if err := svc.DeleteReview("c2", models.RoleAdmin, rv.ID); err != nil {
		t.Fatalf("DeleteReview by admin failed: %v", err)
	}
}

func TestServiceRatingAverages(t *testing.T) {
	svc := newTestService()
	repo := svc.Repo.(*fakeReviewRepo)
	repo.reviews = []models.Review{
		{ID: "r1", ServiceID: "s1", EmployeeID: "e1", Rating: 5},
		{ID: "r2", ServiceID: "s1", EmployeeID: "e2", Rating: 2},
		{ID: "r3", ServiceID: "s2", EmployeeID: "e1", Rating: 1},
	}

	summary, err := svc.ServiceRating("s1")
	if err != nil {
		t.Fatalf("ServiceRating failed: %v", err)
	}
	if summary.Count != 2 || summary.AverageRating != 3.5 {
		t.Errorf("summary = %+v, want count 2 average 3.5", summary)
	}
}

package appointment

import (
	"context"
	"errors"
	"testing"

	appointmentRepo "salao/database/repository/appointment"
	"salao/models"
	"salao/services/scheduling"
)

type fakeAppointmentRepo struct {
	appts []models.Appointment
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == id {
			return &f.appts[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeAppointmentRepo) GetAll() ([]models.Appointment, error) {
	return f.appts, nil
}

func (f *fakeAppointmentRepo) GetByClient(clientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByEmployee(employeeID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) IntervalsFor(employeeID, date string) ([]models.TimeInterval, error) {
	var out []models.TimeInterval
	for _, a := range f.appts {
		if a.EmployeeID == employeeID && a.Date == date {
			out = append(out, a.Interval())
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) CreateIfFree(_ context.Context, appt *models.Appointment) error {
	booked, _ := f.IntervalsFor(appt.EmployeeID, appt.Date)
	if scheduling.HasConflict(appt.Interval(), booked) {
		return appointmentRepo.ErrSlotTaken
	}
	f.appts = append(f.appts, *appt)
	return nil
}

func (f *fakeAppointmentRepo) Update(appt *models.Appointment) error {
	for i := range f.appts {
		if f.appts[i].ID == appt.ID {
			f.appts[i] = *appt
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeAppointmentRepo) Delete(id string) error {
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts = append(f.appts[:i], f.appts[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type fakeUserRepo struct {
	users map[string]models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByRole(string) ([]models.User, error) { return nil, nil }
func (f *fakeUserRepo) Create(*models.User) error               { return nil }
func (f *fakeUserRepo) Update(*models.User) error               { return nil }
func (f *fakeUserRepo) Delete(string) error                     { return nil }
func (f *fakeUserRepo) AddLoyaltyPoints(string, int) error      { return nil }
func (f *fakeUserRepo) AppendVisit(string, models.Visit) error  { return nil }
func (f *fakeUserRepo) SetTokenHash(string, string) error       { return nil }

type fakeServiceRepo struct {
	services map[string]models.Service
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &s, nil
}

func (f *fakeServiceRepo) GetByName(string) (*models.Service, error) { return nil, nil }
func (f *fakeServiceRepo) GetAll() ([]models.Service, error)         { return nil, nil }
func (f *fakeServiceRepo) Create(*models.Service) error              { return nil }
func (f *fakeServiceRepo) Update(*models.Service) error              { return nil }
func (f *fakeServiceRepo) Delete(string) error                       { return nil }

func newTestService(duration int) (*DefaultAppointmentService, *fakeAppointmentRepo) {
	repo := &fakeAppointmentRepo{}
	svc := &DefaultAppointmentService{
		Repo: repo,
		Users: &fakeUserRepo{users: map[string]models.User{
			"c1": {ID: "c1", Name: "Ana", Email: "ana@example.com", Role: models.RoleClient},
			"e1": {ID: "e1", Name: "Bia", Email: "bia@example.com", Role: models.RoleEmployee},
		}},
		Services: &fakeServiceRepo{services: map[string]models.Service{
			"s1": {ID: "s1", Name: "Corte", Price: 50, Duration: duration},
		}},
	}
	return svc, repo
}

func TestBookComputesEndTimeAndDefaultsStatus(t *testing.T) {
	svc, _ := newTestService(30)

	appt, err := svc.Book(context.Background(), BookingRequest{
		ClientID: "c1", EmployeeID: "e1", ServiceID: "s1",
		Date: "2026-09-01", StartTime: "09:00",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if appt.EndTime != "09:30" {
		t.Errorf("EndTime = %q, want %q", appt.EndTime, "09:30")
	}
	if appt.Status != models.StatusPending {
		t.Errorf("Status = %q, want %q", appt.Status, models.StatusPending)
	}
}

func TestBookRejectsTakenSlot(t *testing.T) {
	svc, _ := newTestService(30)
	ctx := context.Background()

	req := BookingRequest{
		ClientID: "c1", EmployeeID: "e1", ServiceID: "s1",
		Date: "2026-09-01", StartTime: "09:00",
	}
	if _, err := svc.Book(ctx, req); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// Same employee, same slot.
	if _, err := svc.Book(ctx, req); !errors.Is(err, ErrConflict) {
		t.Fatalf("second booking error = %v, want ErrConflict", err)
	}

	// Back-to-back slot is free.
	req.StartTime = "09:30"
	if _, err := svc.Book(ctx, req); err != nil {
		t.Fatalf("adjacent booking failed: %v", err)
	}
}

func TestBookRejectsOverlapWithLongerBooking(t *testing.T) {
	svc, _ := newTestService(90)
	ctx := context.Background()

	if _, err := svc.Book(ctx, BookingRequest{
		ClientID: "c1", EmployeeID: "e1", ServiceID: "s1",
		Date: "2026-09-01", StartTime: "09:00",
	}); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// 10:00 falls inside the 09:00-10:30 window.
	_, err := svc.Book(ctx, BookingRequest{
		ClientID: "c1", EmployeeID: "e1", ServiceID: "s1",
		Date: "2026-09-01", StartTime: "10:00",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("overlapping booking error = %v, want ErrConflict", err)
	}

	// 10:30 starts exactly at the previous end and is free.
	if _, err := svc.Book(ctx, BookingRequest{
		ClientID: "c1", EmployeeID: "e1", ServiceID: "s1",
		Date: "2026-09-01", StartTime: "10:30",
	}); err != nil {
		t.Fatalf("back-to-back booking failed: %v", err)
	}
}

func TestBookRejectsMissingFields(t *testing.T) {
	svc, _ := newTestService(30)

	_, err := svc.Book(context.Background(), BookingRequest{
		ClientID: "c1", EmployeeID: "e1", ServiceID: "s1", Date: "2026-09-01",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Book error = %v, want ErrInvalidInput", err)
	}
}

func TestBookUnknownService(t *testing.T) {
	svc, _ := newTestService(30)

	_, err := svc.Book(context.Background(), BookingRequest{
		ClientID: "c1", EmployeeID: "e1", ServiceID: "missing",
		Date: "2026-09-01", StartTime: "09:00",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Book error = %v, want ErrNotFound", err)
	}
}

func TestAvailableSlotsExcludesCancelled(t *testing.T) {
	svc, repo := newTestService(30)

	appt, err := svc.Book(context.Background(), BookingRequest{
		ClientID: "c1", EmployeeID: "e1", ServiceID: "s1",
		Date: "2026-09-01", StartTime: "10:00",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if _, err := svc.Update(appt.ID, UpdateRequest{Status: models.StatusCancelled}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if got := repo.appts[0].Status; got != models.StatusCancelled {
		t.Fatalf("stored status = %q, want cancelled", got)
	}

	slots, err := svc.AvailableSlots("e1", "2026-09-01")
	if err != nil {
		t.Fatalf("AvailableSlots returned error: %v", err)
	}
	for _, s := range slots {
		if s == "10:00" {
			t.Errorf("cancelled booking's slot %q still offered", s)
		}
	}
	if len(slots) != 15 {
		t.Errorf("len(slots) = %d, want 15", len(slots))
	}
}

func TestUpdateKeepsEndTime(t *testing.T) {
	svc, _ := newTestService(60)

	appt, err := svc.Book(context.Background(), BookingRequest{
		ClientID: "c1", EmployeeID: "e1", ServiceID: "s1",
		Date: "2026-09-01", StartTime: "09:00",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if appt.EndTime != "10:00" {
		t.Fatalf("EndTime = %q, want %q", appt.EndTime, "10:00")
	}

	updated, err := svc.Update(appt.ID, UpdateRequest{StartTime: "11:00"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.StartTime != "11:00" {
		t.Errorf("StartTime = %q, want %q", updated.StartTime, "11:00")
	}
	if updated.EndTime != "10:00" {
		t.Errorf("EndTime = %q after reschedule, want unchanged %q", updated.EndTime, "10:00")
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(30)

	appt, err := svc.Book(context.Background(), BookingRequest{
		ClientID: "c1", EmployeeID: "e1", ServiceID: "s1",
		Date: "2026-09-01", StartTime: "09:00",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	if _, err := svc.Update(appt.ID, UpdateRequest{Status: "archived"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Update error = %v, want ErrInvalidInput", err)
	}
}

func TestUpdateAllowsAnyKnownTransition(t *testing.T) {
	svc, _ := newTestService(30)

	appt, err := svc.Book(context.Background(), BookingRequest{
		ClientID: "c1", EmployeeID: "e1", ServiceID: "s1",
		Date: "2026-09-01", StartTime: "09:00",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	// Completed straight back to pending is a legal move.
	for _, status := range []string{models.StatusCompleted, models.StatusPending} {
		if _, err := svc.Update(appt.ID, UpdateRequest{Status: status}); err != nil {
			t.Fatalf("Update to %q returned error: %v", status, err)
		}
	}
}

func TestGetByIDResolvesReferences(t *testing.T) {
	svc, _ := newTestService(30)

	appt, err := svc.Book(context.Background(), BookingRequest{
		ClientID: "c1", EmployeeID: "e1", ServiceID: "s1",
		Date: "2026-09-01", StartTime: "09:00",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	detail, err := svc.GetByID(appt.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if detail.Client == nil || detail.Client.Name != "Ana" {
		t.Errorf("Client summary not resolved: %+v", detail.Client)
	}
	if detail.Employee == nil || detail.Employee.Name != "Bia" {
		t.Errorf("Employee summary not resolved: %+v", detail.Employee)
	}
	if detail.Service == nil || detail.Service.Name != "Corte" {
		t.Errorf("Service summary not resolved: %+v", detail.Service)
	}
}

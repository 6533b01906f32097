package appointment

import (
	"context"

	"salao/models"
)

// BookingRequest is the payload accepted by Book.
type BookingRequest struct {
	ClientID   string `json:"client" binding:"required"`
	EmployeeID string `json:"employee" binding:"required"`
	ServiceID  string `json:"service" binding:"required"`
	Date       string `json:"date" binding:"required"`      // "2006-01-02"
	StartTime  string `json:"startTime" binding:"required"` // "HH:MM"
}

// UpdateRequest carries optional appointment edits; empty fields are
// untouched. Editing the start time does not recompute the end time.
type UpdateRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Status    string `json:"status"`
}

// AppointmentService defines booking and roster operations.
type AppointmentService interface {
	// Book validates the request, computes the end time from the service
	// duration and persists the appointment unless the slot conflicts.
	Book(ctx context.Context, req BookingRequest) (*models.Appointment, error)
	// AvailableSlots lists free "HH:MM" start times for an employee on a date.
	AvailableSlots(employeeID, date string) ([]string, error)
	// ListAll returns every appointment with references resolved.
	ListAll() ([]models.AppointmentDetail, error)
	// ListForClient returns a client's appointments with references resolved.
	ListForClient(clientID string) ([]models.AppointmentDetail, error)
	// ListForEmployee returns an employee's roster with references resolved.
	ListForEmployee(employeeID string) ([]models.AppointmentDetail, error)
	// GetByID returns one appointment with references resolved.
	GetByID(id string) (*models.AppointmentDetail, error)
	// Update applies date/time/status edits.
	Update(id string, req UpdateRequest) (*models.Appointment, error)
	// Delete removes an appointment.
	Delete(id string) error
}

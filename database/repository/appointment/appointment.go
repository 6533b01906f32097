package appointmentRepo

import (
	"context"
	"errors"

	"salao/models"
)

// ErrSlotTaken is returned when an insert loses to an overlapping booking.
var ErrSlotTaken = errors.New("slot already booked")

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// GetAll retrieves every appointment.
	GetAll() ([]models.Appointment, error)
	// GetByClient retrieves all appointments booked by a client.
	GetByClient(clientID string) ([]models.Appointment, error)
	// GetByEmployee retrieves all appointments assigned to an employee.
	GetByEmployee(employeeID string) ([]models.Appointment, error)
	// IntervalsFor returns the booked intervals for (employee, date),
	// regardless of appointment status: cancelled bookings still occupy
	// their slot.
	IntervalsFor(employeeID, date string) ([]models.TimeInterval, error)
	// CreateIfFree inserts the appointment unless its interval overlaps an
	// existing booking for the same employee and date; the check and the
	// insert run atomically where the deployment supports transactions.
	// Returns ErrSlotTaken on overlap.
	CreateIfFree(ctx context.Context, appt *models.Appointment) error
	// Update modifies an existing appointment record.
	Update(appt *models.Appointment) error
	// Delete removes an appointment record by its ID.
	Delete(id string) error
}

// models/appointment.go
package models

import "time"

// Appointment statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is a known appointment status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a booking of a service with an employee on a given day.
// Date is a plain calendar day ("2006-01-02"); StartTime and EndTime are
// wall-clock "HH:MM" strings. EndTime is computed once at creation from the
// service duration and is not recomputed when the appointment is edited.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`
	ClientID   string    `bson:"clientId" json:"clientId"`
	EmployeeID string    `bson:"employeeId" json:"employeeId"`
	ServiceID  string    `bson:"serviceId" json:"serviceId"`
	Date       string    `bson:"date" json:"date"`
	StartTime  string    `bson:"startTime" json:"startTime"`
	EndTime    string    `bson:"endTime" json:"endTime"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Interval returns the appointment's booked time window.
func (a *Appointment) Interval() TimeInterval {
	return TimeInterval{Start: a.StartTime, End: a.EndTime}
}

// AppointmentDetail is an appointment with its references resolved into
// summaries, mirroring what list and get endpoints return.
type AppointmentDetail struct {
	Appointment
	Client   *UserSummary    `json:"client,omitempty"`
	Employee *UserSummary    `json:"employee,omitempty"`
	Service  *ServiceSummary `json:"service,omitempty"`
}

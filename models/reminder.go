// models/reminder.go
package models

// ReminderPayload is the payload carried by a scheduled reminder task.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}

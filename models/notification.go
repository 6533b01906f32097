// models/notification.go
package models

import "time"

// Notification types.
const (
	NotifAppointmentReminder     = "appointment_reminder"
	NotifAppointmentConfirmation = "appointment_confirmation"
	NotifAppointmentChange       = "appointment_change"
	NotifSystem                  = "system"
)

// RelatedRef points a notification or loyalty transaction at the document
// it is about.
type RelatedRef struct {
	Model string `bson:"model,omitempty" json:"model,omitempty"` // "Appointment", "Service", "User", "LoyaltyProgram"
	ID    string `bson:"id,omitempty" json:"id,omitempty"`
}

// Notification is a stored in-app message for a user, optionally also
// delivered by email.
type Notification struct {
	ID           string     `bson:"id" json:"id"`
	UserID       string     `bson:"userId" json:"userId"`
	Title        string     `bson:"title" json:"title"`
	Message      string     `bson:"message" json:"message"`
	Type         string     `bson:"type" json:"type"`
	RelatedTo    RelatedRef `bson:"relatedTo,omitempty" json:"relatedTo,omitempty"`
	IsRead       bool       `bson:"isRead" json:"isRead"`
	SentViaEmail bool       `bson:"sentViaEmail" json:"sentViaEmail"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}

package notification

import (
	"context"
	"time"

	"salao/models"
)

// NotificationService stores in-app notifications and mirrors them to
// email where the user has an address.
type NotificationService interface {
	// NotifyUser stores a notification and attempts email delivery.
	NotifyUser(ctx context.Context, userID, title, message, ntype string, related models.RelatedRef) error
	// ListForUser returns a user's notifications, newest first.
	ListForUser(userID string) ([]models.Notification, error)
	// MarkRead flips one notification's read flag; owner-checked.
	MarkRead(userID, notificationID string) error
	// MarkAllRead flips every unread notification of a user.
	MarkAllRead(userID string) error
	// Delete removes one notification; owner-checked.
	Delete(userID, notificationID string) error
}

// ReminderScheduler defers a reminder payload until fireAt.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(p models.ReminderPayload, fireAt time.Time) error
}

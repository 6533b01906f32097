package notificationRepo

import "salao/models"

// NotificationRepository defines methods for notification data access.
type NotificationRepository interface {
	// GetByID retrieves a notification by its unique ID.
	GetByID(id string) (*models.Notification, error)
	// GetByUser retrieves a user's notifications, newest first.
	GetByUser(userID string) ([]models.Notification, error)
	// Create inserts a new notification record.
	Create(n *models.Notification) error
	// MarkRead flips a notification's isRead flag.
	MarkRead(id string) error
	// MarkAllRead flips isRead on every unread notification of a user.
	MarkAllRead(userID string) error
	// SetEmailSent records that the notification went out by email.
	SetEmailSent(id string) error
	// Delete removes a notification record by its ID.
	Delete(id string) error
}

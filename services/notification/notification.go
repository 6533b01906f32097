package notification

import (
	"context"
	"errors"
	"fmt"

	notificationRepo "salao/database/repository/notification"
	userRepo "salao/database/repository/user"
	"salao/models"
	"salao/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotOwner is returned when a user touches a notification that is not
// theirs.
var ErrNotOwner = errors.New("notification does not belong to this user")

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Users userRepo.UserRepository
	Email utils.EmailSender
}

// NotifyUser stores the notification, then tries email delivery. Email
// failure is logged and leaves sentViaEmail false; the stored notification
// stands either way.
func (s *DefaultNotificationService) NotifyUser(ctx context.Context, userID, title, message, ntype string, related models.RelatedRef) error {
	n := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      ntype,
		RelatedTo: related,
	}
	if err := s.Repo.Create(n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	if s.Email == nil {
		return nil
	}
	usr, err := s.Users.GetByID(userID)
	if err != nil || usr.Email == "" {
		return nil
	}
	if err := s.Email.Send(usr.Email, title, message); err != nil {
		utils.GetLogger().Warn("NotifyUser: email delivery failed",
			zap.String("userId", userID), zap.Error(err))
		return nil
	}
	if err := s.Repo.SetEmailSent(n.ID); err != nil {
		utils.GetLogger().Warn("NotifyUser: failed to flag email sent",
			zap.String("notificationId", n.ID), zap.Error(err))
	}
	return nil
}

// ListForUser returns a user's notifications, newest first.
func (s *DefaultNotificationService) ListForUser(userID string) ([]models.Notification, error) {
	return s.Repo.GetByUser(userID)
}

func (s *DefaultNotificationService) owned(userID, notificationID string) (*models.Notification, error) {
	n, err := s.Repo.GetByID(notificationID)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, ErrNotOwner
	}
	return n, nil
}

// MarkRead flips one notification's read flag.
func (s *DefaultNotificationService) MarkRead(userID, notificationID string) error {
	if _, err := s.owned(userID, notificationID); err != nil {
		return err
	}
	return s.Repo.MarkRead(notificationID)
}

// MarkAllRead flips every unread notification of a user.
func (s *DefaultNotificationService) MarkAllRead(userID string) error {
	return s.Repo.MarkAllRead(userID)
}

// Delete removes one notification.
func (s *DefaultNotificationService) Delete(userID, notificationID string) error {
	if _, err := s.owned(userID, notificationID); err != nil {
		return err
	}
	return s.Repo.Delete(notificationID)
}

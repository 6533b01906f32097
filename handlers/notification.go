package handlers

import (
	"errors"
	"net/http"

	"salao/services/notification"
	"salao/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes in-app notification endpoints.
type NotificationHandler struct {
	NotificationService notification.NotificationService
}

// NewNotificationHandler builds a NotificationHandler.
func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{NotificationService: svc}
}

// GetNotificationsHandler handles GET /api/notifications.
func (h *NotificationHandler) GetNotificationsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	notifs, err := h.NotificationService.ListForUser(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list notifications", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notifs)
}

// MarkReadHandler handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.NotificationService.MarkRead(c.GetString("userID"), id); err != nil {
		if errors.Is(err, notification.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllReadHandler handles PUT /api/notifications/read-all.
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	if err := h.NotificationService.MarkAllRead(c.GetString("userID")); err != nil {
		utils.GetLogger().Error("Failed to mark notifications read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// DeleteNotificationHandler handles DELETE /api/notifications/:id.
func (h *NotificationHandler) DeleteNotificationHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.NotificationService.Delete(c.GetString("userID"), id); err != nil {
		if errors.Is(err, notification.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}

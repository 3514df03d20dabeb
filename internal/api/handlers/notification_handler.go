package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adverx/adverx-backend/internal/models"
	"github.com/adverx/adverx-backend/internal/notification"
)

// ============================================
// Notification Handler
// ============================================

type NotificationHandler struct {
	notifier *notification.Service
}

func NewNotificationHandler(notifier *notification.Service) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// List - Current notification feed
// GET /api/admin/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	items := h.notifier.List()

	response := make([]models.NotificationResponse, len(items))
	for i, n := range items {
		response[i] = toNotificationResponse(n)
	}
	c.JSON(http.StatusOK, response)
}

// Dismiss - Remove a notification before it expires
// DELETE /api/admin/notifications/:id
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	h.notifier.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Notification dismissed"})
}

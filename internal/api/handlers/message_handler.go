package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adverx/adverx-backend/internal/models"
	"github.com/adverx/adverx-backend/internal/service"
)

// ============================================
// Contact Message Handler
// ============================================

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Submit - Receive a contact form submission
// POST /api/contact
func (h *MessageHandler) Submit(c *gin.Context) {
	var req models.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.Submit(c.Request.Context(), req.Name, req.Email, req.ProjectType, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store message"})
		return
	}
	c.JSON(http.StatusCreated, toMessageResponse(message))
}

// List - List contact messages; unread messages become read
// GET /api/admin/messages
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messageService.ListForAdmin(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	response := make([]models.MessageResponse, len(messages))
	for i := range messages {
		response[i] = toMessageResponse(&messages[i])
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus - Move a message along its status lifecycle
// PATCH /api/admin/messages/:id/status
func (h *MessageHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.messageService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, service.ErrInvalidInput) || errors.Is(err, service.ErrInvalidTransition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message updated"})
}

// Delete - Delete a contact message
// DELETE /api/admin/messages/:id
func (h *MessageHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.messageService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adverx/adverx-backend/internal/models"
	"github.com/adverx/adverx-backend/internal/service"
)

// ============================================
// Custom Request Handler
// ============================================

type RequestHandler struct {
	requestService service.RequestService
}

func NewRequestHandler(requestService service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// Submit - Receive a custom project request from the builder
// POST /api/requests
func (h *RequestHandler) Submit(c *gin.Context) {
	var req models.CreateCustomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requestService.Submit(c.Request.Context(), service.RequestInput{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		ProjectDuration:   req.ProjectDuration,
		QualityLevel:      req.QualityLevel,
		SoundEquipment:    req.SoundEquipment,
		Stabilizers:       req.Stabilizers,
		Lighting:          req.Lighting,
		Drones:            req.Drones,
		AdditionalCameras: req.AdditionalCameras,
		Services:          req.Services,
		Message:           req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store request"})
		return
	}
	c.JSON(http.StatusCreated, toRequestResponse(request))
}

// List - List custom requests; pending requests become reviewed
// GET /api/admin/requests
func (h *RequestHandler) List(c *gin.Context) {
	requests, err := h.requestService.ListForAdmin(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	response := make([]models.CustomRequestResponse, len(requests))
	for i := range requests {
		response[i] = toRequestResponse(&requests[i])
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus - Move a request along its status lifecycle
// PATCH /api/admin/requests/:id/status
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.requestService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, service.ErrInvalidInput) || errors.Is(err, service.ErrInvalidTransition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request updated"})
}

// Delete - Delete a custom request
// DELETE /api/admin/requests/:id
func (h *RequestHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.requestService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}

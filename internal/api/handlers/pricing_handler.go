package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adverx/adverx-backend/internal/models"
	"github.com/adverx/adverx-backend/internal/service"
)

// ============================================
// Pricing Handler
// ============================================

type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// Estimate - Price a custom project configuration
// POST /api/pricing/estimate
//
// Called on every change in the project builder to drive the live estimate,
// so it stays a pure computation with no stored state.
func (h *PricingHandler) Estimate(c *gin.Context) {
	var req models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	price, err := service.Estimate(service.EstimateInput{
		ProjectDuration:   req.ProjectDuration,
		QualityLevel:      req.QualityLevel,
		SoundEquipment:    req.SoundEquipment,
		Stabilizers:       req.Stabilizers,
		Lighting:          req.Lighting,
		Drones:            req.Drones,
		AdditionalCameras: req.AdditionalCameras,
		Services:          req.Services,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid configuration"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute estimate"})
		return
	}
	c.JSON(http.StatusOK, models.EstimateResponse{EstimatedPrice: price})
}

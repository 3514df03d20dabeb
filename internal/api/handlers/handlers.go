package handlers

import (
	"github.com/adverx/adverx-backend/internal/models"
	"github.com/adverx/adverx-backend/internal/notification"
	"github.com/adverx/adverx-backend/internal/repository"
	"github.com/adverx/adverx-backend/internal/service"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth         *AuthHandler
	Project      *ProjectHandler
	Message      *MessageHandler
	Request      *RequestHandler
	Pricing      *PricingHandler
	Notification *NotificationHandler
}

// NewHandlers creates all handlers
func NewHandlers(services *service.Services, notifier *notification.Service) *Handlers {
	return &Handlers{
		Auth:         &AuthHandler{authService: services.Auth},
		Project:      &ProjectHandler{projectService: services.Projects},
		Message:      &MessageHandler{messageService: services.Messages},
		Request:      &RequestHandler{requestService: services.Requests},
		Pricing:      &PricingHandler{},
		Notification: &NotificationHandler{notifier: notifier},
	}
}

// ============================================
// Response Mappers
// ============================================

func toProjectResponse(p *repository.Project) models.ProjectResponse {
	return models.ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Images:      p.Images,
		VideoURL:    p.VideoURL,
		Date:        p.Date,
		Featured:    p.Featured,
		Tags:        p.Tags,
	}
}

func toMessageResponse(m *repository.ContactMessage) models.MessageResponse {
	return models.MessageResponse{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		ProjectType: m.ProjectType,
		Message:     m.Message,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}

func toRequestResponse(r *repository.CustomRequest) models.CustomRequestResponse {
	return models.CustomRequestResponse{
		ID:                r.ID,
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		ProjectDuration:   r.ProjectDuration,
		QualityLevel:      r.QualityLevel,
		SoundEquipment:    r.SoundEquipment,
		Stabilizers:       r.Stabilizers,
		Lighting:          r.Lighting,
		Drones:            r.Drones,
		AdditionalCameras: r.AdditionalCameras,
		Services:          r.Services,
		Message:           r.Message,
		EstimatedPrice:    r.EstimatedPrice,
		Status:            r.Status,
		CreatedAt:         r.CreatedAt,
	}
}

func toNotificationResponse(n notification.Notification) models.NotificationResponse {
	return models.NotificationResponse{
		ID:         n.ID,
		Kind:       n.Kind,
		Title:      n.Title,
		Message:    n.Message,
		DurationMs: n.Duration.Milliseconds(),
		CreatedAt:  n.CreatedAt,
	}
}

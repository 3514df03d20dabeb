package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/adverx/adverx-backend/internal/config"
	"github.com/adverx/adverx-backend/internal/email"
	"github.com/adverx/adverx-backend/internal/notification"
	"github.com/adverx/adverx-backend/internal/repository"
	"github.com/adverx/adverx-backend/internal/socket"
	"github.com/adverx/adverx-backend/internal/types"
)

// ============================================
// Custom Request Service
// ============================================

// RequestInput is a custom project request as submitted from the builder.
type RequestInput struct {
	Name              string
	Email             string
	Phone             string
	ProjectDuration   int
	QualityLevel      string
	SoundEquipment    bool
	Stabilizers       bool
	Lighting          bool
	Drones            bool
	AdditionalCameras int
	Services          []string
	Message           string
}

type RequestService interface {
	// Submit prices the request server-side and stores it with status
	// pending. A client-supplied estimate is never trusted.
	Submit(ctx context.Context, in RequestInput) (*repository.CustomRequest, error)
	// ListForAdmin returns all requests and marks the pending ones
	// reviewed; the returned snapshot still shows them as pending.
	ListForAdmin(ctx context.Context) ([]repository.CustomRequest, error)
	// UpdateStatus moves a request forward along pending -> reviewed ->
	// quoted -> accepted. A missing id is a silent no-op.
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type requestService struct {
	cfg         *config.Config
	requests    repository.RequestRepository
	notifier    *notification.Service
	emailSvc    *email.Service
	broadcaster *socket.Broadcaster
}

func NewRequestService(
	cfg *config.Config,
	requests repository.RequestRepository,
	notifier *notification.Service,
	emailSvc *email.Service,
	broadcaster *socket.Broadcaster,
) RequestService {
	return &requestService{
		cfg:         cfg,
		requests:    requests,
		notifier:    notifier,
		emailSvc:    emailSvc,
		broadcaster: broadcaster,
	}
}

func (s *requestService) Submit(ctx context.Context, in RequestInput) (*repository.CustomRequest, error) {
	if in.Name == "" || in.Email == "" {
		return nil, ErrInvalidInput
	}

	price, err := Estimate(EstimateInput{
		ProjectDuration:   in.ProjectDuration,
		QualityLevel:      in.QualityLevel,
		SoundEquipment:    in.SoundEquipment,
		Stabilizers:       in.Stabilizers,
		Lighting:          in.Lighting,
		Drones:            in.Drones,
		AdditionalCameras: in.AdditionalCameras,
		Services:          in.Services,
	})
	if err != nil {
		return nil, err
	}

	var created repository.CustomRequest
	_, err = s.requests.Create(ctx, func(id string) repository.CustomRequest {
		created = repository.CustomRequest{
			ID:                id,
			Name:              in.Name,
			Email:             in.Email,
			Phone:             in.Phone,
			ProjectDuration:   in.ProjectDuration,
			QualityLevel:      in.QualityLevel,
			SoundEquipment:    in.SoundEquipment,
			Stabilizers:       in.Stabilizers,
			Lighting:          in.Lighting,
			Drones:            in.Drones,
			AdditionalCameras: in.AdditionalCameras,
			Services:          in.Services,
			Message:           in.Message,
			EstimatedPrice:    price,
			Status:            types.RequestPending,
			CreatedAt:         time.Now().UTC(),
		}
		return created
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store custom request: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Info(fmt.Sprintf("New custom request from %s", in.Name), "Project builder")
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastRequestReceived(map[string]interface{}{
			"id":             created.ID,
			"name":           created.Name,
			"qualityLevel":   created.QualityLevel,
			"estimatedPrice": created.EstimatedPrice,
		})
	}
	if s.emailSvc != nil {
		go func(req repository.CustomRequest) {
			err := s.emailSvc.SendRequestNotice(s.cfg.StudioInbox, email.RequestNoticeData{
				Name:            req.Name,
				Email:           req.Email,
				Phone:           req.Phone,
				ProjectDuration: req.ProjectDuration,
				QualityLevel:    req.QualityLevel,
				Services:        req.Services,
				EstimatedPrice:  req.EstimatedPrice,
			})
			if err != nil {
				log.Printf("[Email] Failed to send request notice: %v", err)
			}
		}(created)
	}

	return &created, nil
}

func (s *requestService) ListForAdmin(ctx context.Context) ([]repository.CustomRequest, error) {
	requests := s.requests.List(ctx)
	if err := s.requests.MarkAllReviewed(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark requests reviewed: %w", err)
	}
	return requests, nil
}

func (s *requestService) UpdateStatus(ctx context.Context, id, status string) error {
	if !types.IsValidRequestStatus(status) {
		return ErrInvalidInput
	}

	current, err := s.requests.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if types.RequestStatusRank(status) < types.RequestStatusRank(current.Status) {
		return ErrInvalidTransition
	}

	return s.requests.Update(ctx, id, func(r *repository.CustomRequest) {
		r.Status = status
	})
}

func (s *requestService) Delete(ctx context.Context, id string) error {
	return s.requests.Delete(ctx, id)
}

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
// Contact Message Service
// ============================================

type MessageService interface {
	// Submit stores a new contact message with status unread.
	Submit(ctx context.Context, name, emailAddr, projectType, body string) (*repository.ContactMessage, error)
	// ListForAdmin returns all messages and marks the unread ones read: the
	// returned snapshot still shows them as unread, so the dashboard can
	// highlight what arrived since the last visit.
	ListForAdmin(ctx context.Context) ([]repository.ContactMessage, error)
	// UpdateStatus moves a message forward along unread -> read -> replied.
	// A missing id is a silent no-op.
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type messageService struct {
	cfg         *config.Config
	messages    repository.MessageRepository
	notifier    *notification.Service
	emailSvc    *email.Service
	broadcaster *socket.Broadcaster
}

func NewMessageService(
	cfg *config.Config,
	messages repository.MessageRepository,
	notifier *notification.Service,
	emailSvc *email.Service,
	broadcaster *socket.Broadcaster,
) MessageService {
	return &messageService{
		cfg:         cfg,
		messages:    messages,
		notifier:    notifier,
		emailSvc:    emailSvc,
		broadcaster: broadcaster,
	}
}

func (s *messageService) Submit(ctx context.Context, name, emailAddr, projectType, body string) (*repository.ContactMessage, error) {
	if name == "" || emailAddr == "" || body == "" {
		return nil, ErrInvalidInput
	}

	var created repository.ContactMessage
	_, err := s.messages.Create(ctx, func(id string) repository.ContactMessage {
		created = repository.ContactMessage{
			ID:          id,
			Name:        name,
			Email:       emailAddr,
			ProjectType: projectType,
			Message:     body,
			Status:      types.MessageUnread,
			CreatedAt:   time.Now().UTC(),
		}
		return created
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Info(fmt.Sprintf("New message from %s", name), "Contact form")
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastContactReceived(map[string]interface{}{
			"id":          created.ID,
			"name":        created.Name,
			"projectType": created.ProjectType,
		})
	}
	if s.emailSvc != nil {
		go func(msg repository.ContactMessage) {
			err := s.emailSvc.SendContactNotice(s.cfg.StudioInbox, email.ContactNoticeData{
				Name:        msg.Name,
				Email:       msg.Email,
				ProjectType: msg.ProjectType,
				Message:     msg.Message,
			})
			if err != nil {
				log.Printf("[Email] Failed to send contact notice: %v", err)
			}
		}(created)
	}

	return &created, nil
}

func (s *messageService) ListForAdmin(ctx context.Context) ([]repository.ContactMessage, error) {
	messages := s.messages.List(ctx)
	if err := s.messages.MarkAllRead(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark messages read: %w", err)
	}
	return messages, nil
}

func (s *messageService) UpdateStatus(ctx context.Context, id, status string) error {
	if !types.IsValidMessageStatus(status) {
		return ErrInvalidInput
	}

	current, err := s.messages.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if types.MessageStatusRank(status) < types.MessageStatusRank(current.Status) {
		return ErrInvalidTransition
	}

	return s.messages.Update(ctx, id, func(m *repository.ContactMessage) {
		m.Status = status
	})
}

func (s *messageService) Delete(ctx context.Context, id string) error {
	return s.messages.Delete(ctx, id)
}

package service

import (
	"errors"

	"github.com/adverx/adverx-backend/internal/config"
	"github.com/adverx/adverx-backend/internal/email"
	"github.com/adverx/adverx-backend/internal/notification"
	"github.com/adverx/adverx-backend/internal/repository"
	"github.com/adverx/adverx-backend/internal/socket"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidTransition  = errors.New("invalid status transition")

	// ErrNotFound aliases the repository sentinel so handlers can match on
	// either package.
	ErrNotFound = repository.ErrNotFound
)

// ============================================
// Services Container
// ============================================

type Services struct {
	Auth     AuthService
	Projects ProjectService
	Messages MessageService
	Requests RequestService
}

// ServiceDeps contains all dependencies needed to create services
type ServiceDeps struct {
	Config      *config.Config
	Repos       *repository.Repositories
	Notifier    *notification.Service
	EmailSvc    *email.Service
	Broadcaster *socket.Broadcaster
}

func NewServices(deps *ServiceDeps) *Services {
	return &Services{
		Auth:     NewAuthService(deps.Config, deps.Repos.Sessions),
		Projects: NewProjectService(deps.Repos.Projects, deps.Broadcaster),
		Messages: NewMessageService(deps.Config, deps.Repos.Messages, deps.Notifier, deps.EmailSvc, deps.Broadcaster),
		Requests: NewRequestService(deps.Config, deps.Repos.Requests, deps.Notifier, deps.EmailSvc, deps.Broadcaster),
	}
}

package repository

import (
	"github.com/adverx/adverx-backend/internal/kv"
)

// Storage keys. The names predate this service and are kept so existing
// exported data stays readable.
const (
	KeyProjects        = "portfolio-projects"
	KeyContactMessages = "adverx-contact-messages"
	KeyCustomRequests  = "adverx-custom-requests"
	KeySession         = "portfolio-auth"
)

// Repositories contains all stores
type Repositories struct {
	Projects ProjectRepository
	Messages MessageRepository
	Requests RequestRepository
	Sessions SessionRepository
}

// NewRepositories creates all stores over one shared backend.
func NewRepositories(store kv.Store, seedProjects []Project) *Repositories {
	return &Repositories{
		Projects: NewProjectRepository(store, seedProjects),
		Messages: NewMessageRepository(store),
		Requests: NewRequestRepository(store),
		Sessions: NewSessionRepository(store),
	}
}

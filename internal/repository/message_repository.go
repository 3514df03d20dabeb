package repository

import (
	"context"
	"time"

	"github.com/adverx/adverx-backend/internal/kv"
	"github.com/adverx/adverx-backend/internal/types"
)

// ContactMessage is one submission of the public contact form.
type ContactMessage struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	ProjectType string    `json:"projectType"`
	Message     string    `json:"message"`
	Status      string    `json:"status"` // unread | read | replied
	CreatedAt   time.Time `json:"createdAt"`
}

func (m ContactMessage) recordID() string { return m.ID }

type MessageRepository interface {
	List(ctx context.Context) []ContactMessage
	FindByID(ctx context.Context, id string) (*ContactMessage, error)
	Create(ctx context.Context, build func(id string) ContactMessage) (string, error)
	Update(ctx context.Context, id string, mutate func(*ContactMessage)) error
	// MarkAllRead flips every unread message to read in a single write.
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

type kvMessageRepository struct {
	col *collection[ContactMessage]
}

// NewMessageRepository creates a contact message store over the given
// backend. New messages are prepended so the most recent appears first.
func NewMessageRepository(store kv.Store) MessageRepository {
	return &kvMessageRepository{
		col: newCollection[ContactMessage](store, KeyContactMessages, nil, true),
	}
}

func (r *kvMessageRepository) List(ctx context.Context) []ContactMessage {
	return r.col.load(ctx)
}

func (r *kvMessageRepository) FindByID(ctx context.Context, id string) (*ContactMessage, error) {
	return r.col.find(ctx, id)
}

func (r *kvMessageRepository) Create(ctx context.Context, build func(id string) ContactMessage) (string, error) {
	return r.col.add(ctx, build)
}

func (r *kvMessageRepository) Update(ctx context.Context, id string, mutate func(*ContactMessage)) error {
	return r.col.update(ctx, id, mutate)
}

func (r *kvMessageRepository) MarkAllRead(ctx context.Context) error {
	return r.col.updateEach(ctx, func(m *ContactMessage) bool {
		if m.Status != types.MessageUnread {
			return false
		}
		m.Status = types.MessageRead
		return true
	})
}

func (r *kvMessageRepository) Delete(ctx context.Context, id string) error {
	return r.col.remove(ctx, id)
}

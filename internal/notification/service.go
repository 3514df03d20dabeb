// Package notification keeps the transient feed of user-facing messages for
// the admin dashboard. The feed lives in memory only and resets on restart;
// it is deliberately decoupled from the persisted stores.
package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adverx/adverx-backend/internal/socket"
	"github.com/adverx/adverx-backend/internal/types"
)

// DefaultDuration is how long a notification stays up when the caller does
// not choose one.
const DefaultDuration = 5 * time.Second

// Notification is one entry in the feed.
type Notification struct {
	ID        string
	Kind      string // success | error | warning | info
	Title     string
	Message   string
	Duration  time.Duration
	CreatedAt time.Time
}

// Service manages the feed. Every push schedules its own removal.
type Service struct {
	mu          sync.Mutex
	items       []Notification
	timers      map[string]*time.Timer
	broadcaster *socket.Broadcaster
}

func NewService() *Service {
	return &Service{timers: make(map[string]*time.Timer)}
}

// SetBroadcaster wires the live dashboard feed. Optional; without it the
// feed is poll-only.
func (s *Service) SetBroadcaster(b *socket.Broadcaster) {
	s.broadcaster = b
}

// Push appends a notification and schedules its automatic removal once the
// duration elapses. It returns the assigned identifier.
func (s *Service) Push(kind, message, title string, duration time.Duration) string {
	if !types.IsValidNotificationKind(kind) {
		kind = types.NotifyInfo
	}

	n := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		Duration:  duration,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.items = append(s.items, n)
	s.timers[n.ID] = time.AfterFunc(duration, func() {
		s.Remove(n.ID)
	})
	s.mu.Unlock()

	if s.broadcaster != nil {
		s.broadcaster.SendNotification(map[string]interface{}{
			"id":        n.ID,
			"kind":      n.Kind,
			"title":     n.Title,
			"message":   n.Message,
			"duration":  n.Duration.Milliseconds(),
			"createdAt": n.CreatedAt,
		})
	}
	return n.ID
}

// Remove dismisses a notification immediately. Removing an unknown or
// already-removed identifier is a no-op.
func (s *Service) Remove(id string) {
	s.mu.Lock()
	removed := false
	kept := s.items[:0]
	for _, n := range s.items {
		if n.ID == id {
			removed = true
			continue
		}
		kept = append(kept, n)
	}
	s.items = kept
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	if removed && s.broadcaster != nil {
		s.broadcaster.SendNotificationDismissed(id)
	}
}

// List returns a snapshot of the current feed.
func (s *Service) List() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, len(s.items))
	copy(out, s.items)
	return out
}

// Success pushes a success notification with the default duration.
func (s *Service) Success(message, title string) string {
	return s.Push(types.NotifySuccess, message, title, DefaultDuration)
}

// Error pushes an error notification with the default duration.
func (s *Service) Error(message, title string) string {
	return s.Push(types.NotifyError, message, title, DefaultDuration)
}

// Warning pushes a warning notification with the default duration.
func (s *Service) Warning(message, title string) string {
	return s.Push(types.NotifyWarning, message, title, DefaultDuration)
}

// Info pushes an info notification with the default duration.
func (s *Service) Info(message, title string) string {
	return s.Push(types.NotifyInfo, message, title, DefaultDuration)
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/adverx/adverx-backend/internal/kv"
)

// Session marks the single authenticated admin. At most one session record
// exists; a new login replaces it.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session expiry lies in the past.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

type SessionRepository interface {
	// Get returns the stored session, or ErrNotFound when no session exists.
	// A malformed stored record is purged and treated as absent.
	Get(ctx context.Context) (*Session, error)
	Put(ctx context.Context, session *Session) error
	Delete(ctx context.Context) error
}

type kvSessionRepository struct {
	store kv.Store
}

func NewSessionRepository(store kv.Store) SessionRepository {
	return &kvSessionRepository{store: store}
}

func (r *kvSessionRepository) Get(ctx context.Context) (*Session, error) {
	data, err := r.store.Get(ctx, KeySession)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		log.Printf("[Auth] Discarding malformed session record: %v", err)
		r.store.Delete(ctx, KeySession)
		return nil, ErrNotFound
	}
	return &session, nil
}

func (r *kvSessionRepository) Put(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeySession, data)
}

func (r *kvSessionRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, KeySession)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adverx/adverx-backend/internal/config"
	"github.com/adverx/adverx-backend/internal/repository"
)

// ============================================
// Auth Service
// ============================================

// AuthService gates access to the admin dashboard. There is exactly one
// configured admin identity; authentication is binary.
type AuthService interface {
	// Login verifies the credentials and creates a session. A wrong username
	// or password returns ErrInvalidCredentials, never a panic.
	Login(ctx context.Context, username, password string) (string, *repository.Session, error)
	// Validate checks the token against the stored session. An expired
	// session is purged from storage on detection and never treated as valid.
	Validate(ctx context.Context, tokenString string) (*repository.Session, error)
	// Logout deletes the stored session unconditionally.
	Logout(ctx context.Context) error
	// PurgeExpired removes a stale session record if one is lying around.
	PurgeExpired(ctx context.Context) error
}

type authService struct {
	cfg      *config.Config
	sessions repository.SessionRepository
	now      func() time.Time
}

func NewAuthService(cfg *config.Config, sessions repository.SessionRepository) AuthService {
	return &authService{cfg: cfg, sessions: sessions, now: time.Now}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *repository.Session, error) {
	if username != s.cfg.AdminUsername {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	session := &repository.Session{
		ID:        uuid.NewString(),
		Username:  username,
		ExpiresAt: s.now().Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return "", nil, fmt.Errorf("failed to persist session: %w", err)
	}

	token, err := s.signToken(session)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, session, nil
}

func (s *authService) Validate(ctx context.Context, tokenString string) (*repository.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sessionID, _ := claims["jti"].(string)
	if sessionID == "" {
		return nil, ErrInvalidToken
	}

	session, err := s.sessions.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	// The token must refer to the current session: logging out or logging in
	// again invalidates previously issued tokens.
	if session.ID != sessionID {
		return nil, ErrInvalidToken
	}
	if session.Expired(s.now()) {
		s.sessions.Delete(ctx)
		return nil, ErrInvalidToken
	}
	return session, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.sessions.Delete(ctx)
}

func (s *authService) PurgeExpired(ctx context.Context) error {
	session, err := s.sessions.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if session.Expired(s.now()) {
		return s.sessions.Delete(ctx)
	}
	return nil
}

func (s *authService) signToken(session *repository.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub": session.Username,
		"jti": session.ID,
		"exp": session.ExpiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

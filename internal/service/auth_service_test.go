package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adverx/adverx-backend/internal/config"
	"github.com/adverx/adverx-backend/internal/kv"
	"github.com/adverx/adverx-backend/internal/repository"
)

const testPassword = "open-sesame"

// newAuthFixture builds an auth service over an in-memory session store with
// a controllable clock. Move *clock forward to simulate the passage of time.
func newAuthFixture(t *testing.T) (*authService, repository.SessionRepository, *time.Time) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		SessionTTL:        24 * time.Hour,
	}
	sessions := repository.NewSessionRepository(kv.NewMemoryStore())
	clock := time.Now()
	svc := &authService{
		cfg:      cfg,
		sessions: sessions,
		now:      func() time.Time { return clock },
	}
	return svc, sessions, &clock
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	svc, sessions, clock := newAuthFixture(t)

	token, session, err := svc.Login(ctx, "admin", testPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", session.Username)
	assert.True(t, session.ExpiresAt.Equal(clock.Add(24*time.Hour)))

	stored, err := sessions.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.ID, stored.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, sessions, _ := newAuthFixture(t)

	_, _, err := svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "root", testPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// No session is left behind on a failed login.
	_, err = sessions.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestValidateAcceptsIssuedToken(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthFixture(t)

	token, session, err := svc.Login(ctx, "admin", testPassword)
	require.NoError(t, err)

	got, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
}

func TestValidateRejectsGarbageToken(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthFixture(t)

	_, _, err := svc.Login(ctx, "admin", testPassword)
	require.NoError(t, err)

	_, err = svc.Validate(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidatePurgesExpiredSession(t *testing.T) {
	ctx := context.Background()
	svc, sessions, clock := newAuthFixture(t)

	token, _, err := svc.Login(ctx, "admin", testPassword)
	require.NoError(t, err)

	*clock = clock.Add(25 * time.Hour)

	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Detection deletes the stale record.
	_, err = sessions.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRelogInvalidatesOldToken(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthFixture(t)

	oldToken, _, err := svc.Login(ctx, "admin", testPassword)
	require.NoError(t, err)
	newToken, _, err := svc.Login(ctx, "admin", testPassword)
	require.NoError(t, err)

	_, err = svc.Validate(ctx, oldToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = svc.Validate(ctx, newToken)
	assert.NoError(t, err)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthFixture(t)

	token, _, err := svc.Login(ctx, "admin", testPassword)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPurgeExpired(t *testing.T) {
	ctx := context.Background()
	svc, sessions, clock := newAuthFixture(t)

	// Nothing stored: nothing to do.
	require.NoError(t, svc.PurgeExpired(ctx))

	_, _, err := svc.Login(ctx, "admin", testPassword)
	require.NoError(t, err)

	// Still live: left alone.
	require.NoError(t, svc.PurgeExpired(ctx))
	_, err = sessions.Get(ctx)
	require.NoError(t, err)

	*clock = clock.Add(25 * time.Hour)
	require.NoError(t, svc.PurgeExpired(ctx))
	_, err = sessions.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/employee-portal/internal/domain"
)

// Manager owns the session lifecycle: it issues opaque tokens on
// login, maps valid tokens back to usernames, and kills tokens on
// logout. Tokens are not refreshed; ExpiresAt is fixed at creation.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// NewManager builds a manager over the given store.
func NewManager(store Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{store: store, ttl: ttl, now: time.Now}
}

// Create issues a fresh crypto-random token bound to username.
func (m *Manager) Create(ctx context.Context, username string) (string, error) {
	now := m.now()
	sess := domain.Session{
		Token:     uuid.NewString(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Put(ctx, sess); err != nil {
		return "", err
	}
	return sess.Token, nil
}

// Validate returns the username bound to an active token, or
// ErrNotFound once the token was destroyed or expired.
func (m *Manager) Validate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNotFound
	}
	sess, err := m.store.Get(ctx, token)
	if err != nil {
		return "", err
	}
	return sess.Username, nil
}

// Destroy invalidates the token. Destroying an already-invalid token
// is a no-op, not an error.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// TTL exposes the configured session lifetime for cookie expiry.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

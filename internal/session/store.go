package session

import (
	"context"
	"errors"

	"github.com/spec-kit/employee-portal/internal/domain"
)

// ErrNotFound reports that a token has no active session, either
// because it was never issued, was destroyed, or has expired.
var ErrNotFound = errors.New("session not found")

// Store persists sessions server-side, keyed by token. Expiry is the
// store's responsibility: a Get past ExpiresAt must return ErrNotFound.
type Store interface {
	Put(ctx context.Context, sess domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

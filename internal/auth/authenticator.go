package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-portal/internal/repository"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

// Authenticator verifies username/password pairs against stored
// credential hashes.
type Authenticator struct {
	credentials repository.CredentialRepository
}

// NewAuthenticator builds the verifier.
func NewAuthenticator(credentials repository.CredentialRepository) *Authenticator {
	return &Authenticator{credentials: credentials}
}

// Verify checks the pair and returns the authenticated username.
// Unknown usernames and wrong passwords are indistinguishable: both
// come back as INVALID_CREDENTIALS, and the unknown-username path
// still pays for a hash comparison so response timing matches.
func (a *Authenticator) Verify(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", apperrors.NewInvalidCredentials()
	}

	cred, err := a.credentials.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			CompareDummy(password)
			return "", apperrors.NewInvalidCredentials()
		}
		return "", apperrors.NewStoreUnavailable(err)
	}

	if err := ComparePassword(cred.PasswordHash, password); err != nil {
		return "", apperrors.NewInvalidCredentials()
	}
	return cred.Username, nil
}

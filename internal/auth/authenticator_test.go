package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-portal/internal/domain"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

type fakeCredentialRepo struct {
	creds   map[string]*domain.Credential
	failing bool
	lookups int
}

func (f *fakeCredentialRepo) GetByUsername(_ context.Context, username string) (*domain.Credential, error) {
	f.lookups++
	if f.failing {
		return nil, errors.New("connection refused")
	}
	cred, ok := f.creds[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return cred, nil
}

func newFakeCredentialRepo(t *testing.T, username, password string) *fakeCredentialRepo {
	t.Helper()
	hash, err := HashPassword(password, 4)
	require.NoError(t, err)
	return &fakeCredentialRepo{
		creds: map[string]*domain.Credential{
			username: {Username: username, PasswordHash: hash},
		},
	}
}

func TestVerifyValidCredentials(t *testing.T) {
	repo := newFakeCredentialRepo(t, "alice", "correct")
	verifier := NewAuthenticator(repo)

	username, err := verifier.Verify(context.Background(), "alice", "correct")
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestVerifyFailures(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "alice", password: "wrong"},
		{name: "unknown user", username: "bob", password: "correct"},
		{name: "empty username", username: "", password: "correct"},
		{name: "empty password", username: "alice", password: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeCredentialRepo(t, "alice", "correct")
			verifier := NewAuthenticator(repo)

			_, err := verifier.Verify(context.Background(), tc.username, tc.password)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, "INVALID_CREDENTIALS"))

			domainErr := apperrors.ToDomainError(err)
			assert.Equal(t, "Invalid username or password", domainErr.Message)
		})
	}
}

func TestVerifyEmptyFieldsSkipStore(t *testing.T) {
	repo := newFakeCredentialRepo(t, "alice", "correct")
	verifier := NewAuthenticator(repo)

	_, err := verifier.Verify(context.Background(), "", "")
	require.Error(t, err)
	assert.Zero(t, repo.lookups)
}

func TestVerifyStoreUnavailable(t *testing.T) {
	repo := &fakeCredentialRepo{failing: true}
	verifier := NewAuthenticator(repo)

	_, err := verifier.Verify(context.Background(), "alice", "correct")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "STORE_UNAVAILABLE"))
}

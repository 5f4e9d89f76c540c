// Copyright (c) 2026 Picstream. All rights reserved.

package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantran/picstream/internal/platform/dberr"
	"github.com/vantran/picstream/internal/platform/sec"
	"github.com/vantran/picstream/internal/users/auth"
)

// # Test Fakes

// fakeUserRepository is an in-memory UserRepository keyed by username.
// Non-nil findErr/createErr simulate storage failures.
type fakeUserRepository struct {
	users       map[string]*auth.User
	createCalls int
	findErr     error
	createErr   error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*auth.User)}
}

func (repository *fakeUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	if repository.findErr != nil {
		return nil, repository.findErr
	}
	user, found := repository.users[username]
	if !found {
		return nil, dberr.ErrNotFound
	}
	return user, nil
}

func (repository *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	repository.createCalls++
	if repository.createErr != nil {
		return repository.createErr
	}
	repository.users[user.Username] = user
	return nil
}

// fakeTokenProvider records the snapshot it was asked to sign.
type fakeTokenProvider struct {
	issued     []sec.UserSnapshot
	issuedTTLs []time.Duration
}

func (provider *fakeTokenProvider) IssueToken(user sec.UserSnapshot, timeToLive time.Duration) (string, error) {
	provider.issued = append(provider.issued, user)
	provider.issuedTTLs = append(provider.issuedTTLs, timeToLive)
	return "signed-token-for-" + user.Username, nil
}

// # Registration

/*
TestRegister_Success verifies a new account is hashed and persisted.
*/
func TestRegister_Success(t *testing.T) {
	repository := newFakeUserRepository()
	service := auth.NewService(repository, &fakeTokenProvider{})

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Username:    "alice",
		DisplayName: "Alice A.",
		Password:    "correct-horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "correct-horse", user.PasswordHash, "password must never be stored in plain text")
	assert.True(t, sec.CheckPasswordHash("correct-horse", user.PasswordHash))
	assert.Equal(t, 1, repository.createCalls)
}

/*
TestRegister_UsernameTaken verifies the check-then-insert duplicate outcome.
*/
func TestRegister_UsernameTaken(t *testing.T) {
	repository := newFakeUserRepository()
	repository.users["alice"] = &auth.User{ID: "u-1", Username: "alice"}
	service := auth.NewService(repository, &fakeTokenProvider{})

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "alice",
		Password: "irrelevant",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, auth.ErrUsernameTaken)
	assert.Zero(t, repository.createCalls, "no insert attempted for a taken username")
}

/*
TestRegister_StorageFailure verifies that a failing uniqueness lookup is
propagated as a storage error, never treated as "username free": no account
gets inserted on a degraded store.
*/
func TestRegister_StorageFailure(t *testing.T) {
	repository := newFakeUserRepository()
	repository.findErr = errors.New("connection refused")
	service := auth.NewService(repository, &fakeTokenProvider{})

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "alice",
		Password: "correct-horse",
	})

	assert.Nil(t, user)
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrUsernameTaken)
	assert.Zero(t, repository.createCalls, "no insert attempted while the store is failing")
}

// # Login

/*
TestLogin verifies the three credential outcomes: unknown user, wrong
password, and a successful token issuance embedding the stored identity.
*/
func TestLogin(t *testing.T) {
	hash, err := sec.HashPassword("correct-horse")
	require.NoError(t, err)

	repository := newFakeUserRepository()
	repository.users["alice"] = &auth.User{
		ID:           "u-1",
		Username:     "alice",
		DisplayName:  "Alice A.",
		PasswordHash: hash,
	}

	t.Run("unknown_user", func(t *testing.T) {
		provider := &fakeTokenProvider{}
		service := auth.NewService(repository, provider)

		token, err := service.Login(context.Background(), auth.LoginInput{
			Username: "nobody",
			Password: "correct-horse",
		})

		assert.Empty(t, token)
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
		assert.Empty(t, provider.issued, "no token issued for unknown user")
	})

	t.Run("wrong_password", func(t *testing.T) {
		provider := &fakeTokenProvider{}
		service := auth.NewService(repository, provider)

		token, err := service.Login(context.Background(), auth.LoginInput{
			Username: "alice",
			Password: "wrong-horse",
		})

		assert.Empty(t, token)
		assert.ErrorIs(t, err, auth.ErrWrongPassword)
		assert.Empty(t, provider.issued, "no token issued for wrong password")
	})

	t.Run("storage_failure", func(t *testing.T) {
		failingRepository := newFakeUserRepository()
		failingRepository.findErr = errors.New("connection refused")
		provider := &fakeTokenProvider{}
		service := auth.NewService(failingRepository, provider)

		token, err := service.Login(context.Background(), auth.LoginInput{
			Username: "alice",
			Password: "correct-horse",
		})

		assert.Empty(t, token)
		require.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrUserNotFound, "an outage must not read as an unknown user")
		assert.Empty(t, provider.issued)
	})

	t.Run("success", func(t *testing.T) {
		provider := &fakeTokenProvider{}
		service := auth.NewService(repository, provider)

		token, err := service.Login(context.Background(), auth.LoginInput{
			Username: "alice",
			Password: "correct-horse",
		})
		require.NoError(t, err)

		assert.Equal(t, "signed-token-for-alice", token)
		require.Len(t, provider.issued, 1)
		assert.Equal(t, "u-1", provider.issued[0].ID)
		assert.Equal(t, "Alice A.", provider.issued[0].DisplayName)
		assert.Equal(t, auth.TokenTTL, provider.issuedTTLs[0])
	})
}

// Copyright (c) 2026 Picstream. All rights reserved.

package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantran/picstream/internal/users/account"
)

// fakeFollowRepository is an in-memory FollowRepository.
type fakeFollowRepository struct {
	edges map[string][]string
}

func newFakeFollowRepository() *fakeFollowRepository {
	return &fakeFollowRepository{edges: make(map[string][]string)}
}

func (repository *fakeFollowRepository) Follow(_ context.Context, followerID, followeeID string) error {
	for _, existing := range repository.edges[followerID] {
		if existing == followeeID {
			return nil
		}
	}
	repository.edges[followerID] = append(repository.edges[followerID], followeeID)
	return nil
}

func (repository *fakeFollowRepository) Unfollow(_ context.Context, followerID, followeeID string) error {
	kept := repository.edges[followerID][:0]
	for _, existing := range repository.edges[followerID] {
		if existing != followeeID {
			kept = append(kept, existing)
		}
	}
	repository.edges[followerID] = kept
	return nil
}

func (repository *fakeFollowRepository) ListFollowees(_ context.Context, followerID string) ([]string, error) {
	return repository.edges[followerID], nil
}

/*
TestFollow verifies edge creation, idempotency, and the self-follow and
malformed-identifier rejections.
*/
func TestFollow(t *testing.T) {
	repository := newFakeFollowRepository()
	service := account.NewService(repository, slog.New(slog.NewTextHandler(io.Discard, nil)))
	followeeID := "0195a9e5-1df4-7c16-a1b2-3c4d5e6f7a8b"

	require.NoError(t, service.Follow(context.Background(), "follower", followeeID))
	require.NoError(t, service.Follow(context.Background(), "follower", followeeID), "repeat follow is idempotent")
	assert.Equal(t, []string{followeeID}, repository.edges["follower"])

	assert.Error(t, service.Follow(context.Background(), "follower", "not-a-uuid"))
	assert.Error(t, service.Follow(context.Background(), followeeID, followeeID), "self-follow is rejected")
}

/*
TestUnfollow verifies edge removal and that removing a missing edge is not an
error.
*/
func TestUnfollow(t *testing.T) {
	repository := newFakeFollowRepository()
	service := account.NewService(repository, slog.New(slog.NewTextHandler(io.Discard, nil)))
	followeeID := "0195a9e5-1df4-7c16-a1b2-3c4d5e6f7a8b"

	require.NoError(t, service.Follow(context.Background(), "follower", followeeID))
	require.NoError(t, service.Unfollow(context.Background(), "follower", followeeID))
	assert.Empty(t, repository.edges["follower"])

	require.NoError(t, service.Unfollow(context.Background(), "follower", followeeID), "removing a missing edge is a no-op")
}

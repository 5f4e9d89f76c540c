// Copyright (c) 2026 Picstream. All rights reserved.

package account

import (
	"context"
	"log/slog"

	"github.com/vantran/picstream/internal/platform/validate"
)

// # Service Layer

// Service orchestrates follow-graph mutations.
type Service struct {
	follows FollowRepository
	logger  *slog.Logger
}

// NewService constructs a new account [Service].
func NewService(follows FollowRepository, logger *slog.Logger) *Service {
	return &Service{
		follows: follows,
		logger:  logger,
	}
}

/*
Follow adds followeeID to the caller's follow set.

Parameters:
  - context: context.Context
  - followerID: string (authenticated caller)
  - followeeID: string

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) Follow(context context.Context, followerID, followeeID string) error {
	validator := &validate.Validator{}
	validator.UUID(FieldUserID, followeeID).
		Custom(FieldUserID, followerID == followeeID, "Cannot follow yourself")

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.follows.Follow(context, followerID, followeeID); err != nil {
		return err
	}

	service.logger.Info("user_followed",
		slog.String("follower_id", followerID),
		slog.String("followee_id", followeeID),
	)

	return nil
}

/*
Unfollow removes followeeID from the caller's follow set.

Parameters:
  - context: context.Context
  - followerID: string (authenticated caller)
  - followeeID: string

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) Unfollow(context context.Context, followerID, followeeID string) error {
	validator := &validate.Validator{}
	validator.UUID(FieldUserID, followeeID)

	if err := validator.Err(); err != nil {
		return err
	}

	return service.follows.Unfollow(context, followerID, followeeID)
}

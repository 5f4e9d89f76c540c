// Copyright (c) 2026 Picstream. All rights reserved.

package account

import "context"

// # Follow Graph Data Access

// FollowRepository defines the data access contract for follow relationships.
type FollowRepository interface {

	/*
		Follow records that follower now follows followee.

		Idempotent: following an already-followed user is a no-op.

		Parameters:
		  - context: context.Context
		  - followerID: string
		  - followeeID: string

		Returns:
		  - error: Persistence failures
	*/
	Follow(context context.Context, followerID, followeeID string) error

	/*
		Unfollow removes the follow edge if present.

		Parameters:
		  - context: context.Context
		  - followerID: string
		  - followeeID: string

		Returns:
		  - error: Persistence failures
	*/
	Unfollow(context context.Context, followerID, followeeID string) error

	/*
		ListFollowees returns the IDs of every user the follower follows.

		Parameters:
		  - context: context.Context
		  - followerID: string

		Returns:
		  - []string: Followee user IDs
		  - error: Retrieval failures
	*/
	ListFollowees(context context.Context, followerID string) ([]string, error)
}

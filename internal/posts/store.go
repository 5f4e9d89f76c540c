// Copyright (c) 2026 Picstream. All rights reserved.

package posts

import "context"

// # Post Data Access

// Repository defines the data access contract for posts, likes, and comments.
type Repository interface {

	/*
		Create persists a new post with its media references.

		Parameters:
		  - context: context.Context
		  - post: *Post

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, post *Post) error

	/*
		ListByCreators returns every post owned by any of the given creators,
		with likes and comments attached. Order is unspecified; the service
		layer sorts.

		Parameters:
		  - context: context.Context
		  - creatorIDs: []string

		Returns:
		  - []*Post: Hydrated posts
		  - error: Retrieval failures
	*/
	ListByCreators(context context.Context, creatorIDs []string) ([]*Post, error)

	/*
		AddLike records that userID likes postID. Idempotent.

		Parameters:
		  - context: context.Context
		  - postID, userID: string

		Returns:
		  - error: Persistence failures
	*/
	AddLike(context context.Context, postID, userID string) error

	/*
		AddComment appends a comment to a post.

		Parameters:
		  - context: context.Context
		  - comment: *Comment

		Returns:
		  - error: Persistence failures
	*/
	AddComment(context context.Context, comment *Comment) error
}

// # Follow Graph (consumed interface)

// FollowGraph is the slice of the account domain the feed assembler needs.
type FollowGraph interface {
	// ListFollowees returns the IDs of every user the follower follows.
	ListFollowees(context context.Context, followerID string) ([]string, error)
}

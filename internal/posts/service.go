// Copyright (c) 2026 Picstream. All rights reserved.

package posts

import (
	"context"
	"log/slog"
	"sort"

	"github.com/vantran/picstream/internal/platform/validate"
	"github.com/vantran/picstream/pkg/uuid"
)

// # Service Layer

// Service orchestrates post creation, feed assembly, likes, and comments.
type Service struct {
	repo   Repository
	graph  FollowGraph
	logger *slog.Logger
}

// NewService constructs a new posts [Service].
func NewService(repo Repository, graph FollowGraph, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		graph:  graph,
		logger: logger,
	}
}

// # Feed Assembly

/*
Feed assembles the authenticated user's home feed.

Description: Expands the caller's followees, flattens all their posts into a
single sequence, and sorts it descending by creation time. The sort is stable
so posts with equal timestamps keep their fetch order.

Parameters:
  - context: context.Context
  - userID: string (authenticated caller)

Returns:
  - []*Post: Newest-first sequence of followed users' posts
  - error: Retrieval failures
*/
func (service *Service) Feed(context context.Context, userID string) ([]*Post, error) {
	followees, err := service.graph.ListFollowees(context, userID)
	if err != nil {
		return nil, err
	}

	postList, err := service.repo.ListByCreators(context, followees)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(postList, func(i, j int) bool {
		return postList[i].CreatedAt.After(postList[j].CreatedAt)
	})

	// Always hand clients an array, never null.
	if postList == nil {
		postList = []*Post{}
	}

	return postList, nil
}

// # Post Creation

// CreateInput holds the data for a new post created from an upload.
type CreateInput struct {
	CreatorID string
	Content   []string
	Caption   string
}

/*
CreatePost persists one post referencing all media files of an upload request.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Post: Created entity
  - error: Validation or persistence failures
*/
func (service *Service) CreatePost(context context.Context, input CreateInput) (*Post, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldFiles, len(input.Content) == 0, "At least one file is required").
		Custom(FieldFiles, len(input.Content) > MaxUploadFiles, "Too many files").
		MaxLen(FieldCaption, input.Caption, MaxCaptionLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	post := &Post{
		ID:        uuid.New(),
		CreatorID: input.CreatorID,
		Content:   input.Content,
		Caption:   input.Caption,
		Likes:     []string{},
		Comments:  []Comment{},
	}

	if err := service.repo.Create(context, post); err != nil {
		return nil, err
	}

	service.logger.Info("post_created",
		slog.String("post_id", post.ID),
		slog.String("creator_id", post.CreatorID),
		slog.Int("file_count", len(post.Content)),
	)

	return post, nil
}

// # Engagement

/*
Like adds the caller to a post's like set. Idempotent.

Parameters:
  - context: context.Context
  - postID: string
  - userID: string (authenticated caller)

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) Like(context context.Context, postID, userID string) error {
	validator := &validate.Validator{}
	validator.UUID(FieldPostID, postID)

	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.AddLike(context, postID, userID)
}

/*
AddComment appends a comment to a post on behalf of the caller.

Parameters:
  - context: context.Context
  - postID: string
  - authorID: string (authenticated caller)
  - body: string

Returns:
  - *Comment: Created comment
  - error: Validation or persistence failures
*/
func (service *Service) AddComment(context context.Context, postID, authorID, body string) (*Comment, error) {
	validator := &validate.Validator{}
	validator.UUID(FieldPostID, postID).
		Required(FieldBody, body).
		MaxLen(FieldBody, body, MaxCaptionLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	comment := &Comment{
		ID:       uuid.New(),
		PostID:   postID,
		AuthorID: authorID,
		Body:     body,
	}

	if err := service.repo.AddComment(context, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

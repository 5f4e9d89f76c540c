// Copyright (c) 2026 Picstream. All rights reserved.

package posts

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed post store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create persists a new post row.

Description: Content paths are stored as a text[] column so the post and its
media references stay a single row.

Parameters:
  - context: context.Context
  - post: *Post

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, post *Post) error {
	const query = `
		INSERT INTO posts.post (id, creatorid, content, caption, createdat)
		VALUES ($1, $2, $3, $4, $5)`

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		post.ID,
		post.CreatorID,
		post.Content,
		post.Caption,
		post.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_post_repo_create_failed: %w", err)
	}

	return nil
}

/*
ListByCreators returns every post owned by any of the given creators.

Description: One query hydrates posts with their aggregated like sets; a
second fetches all comments for the returned posts and attaches them in
memory. Order is left to the service layer.

Parameters:
  - context: context.Context
  - creatorIDs: []string

Returns:
  - []*Post: Hydrated posts with likes and comments
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ListByCreators(context context.Context, creatorIDs []string) ([]*Post, error) {
	if len(creatorIDs) == 0 {
		return nil, nil
	}

	const postQuery = `
		SELECT
			p.id, p.creatorid, p.content, p.caption, p.createdat,
			COALESCE(array_agg(l.userid) FILTER (WHERE l.userid IS NOT NULL), '{}') AS likes
		FROM posts.post p
		LEFT JOIN posts.postlike l ON l.postid = p.id
		WHERE p.creatorid = ANY($1)
		GROUP BY p.id, p.creatorid, p.content, p.caption, p.createdat`

	rows, err := repository.pool.Query(context, postQuery, creatorIDs)
	if err != nil {
		return nil, fmt.Errorf("postgres_post_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var postList []*Post
	postIndex := make(map[string]*Post)
	var postIDs []string

	for rows.Next() {
		post := &Post{}
		if err := rows.Scan(
			&post.ID,
			&post.CreatorID,
			&post.Content,
			&post.Caption,
			&post.CreatedAt,
			&post.Likes,
		); err != nil {
			return nil, fmt.Errorf("postgres_post_repo_scan_failed: %w", err)
		}
		post.Comments = []Comment{}
		postList = append(postList, post)
		postIndex[post.ID] = post
		postIDs = append(postIDs, post.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_post_repo_rows_failed: %w", err)
	}

	if len(postIDs) == 0 {
		return postList, nil
	}

	const commentQuery = `
		SELECT id, postid, authorid, body, createdat
		FROM posts.comment
		WHERE postid = ANY($1)
		ORDER BY createdat ASC`

	commentRows, err := repository.pool.Query(context, commentQuery, postIDs)
	if err != nil {
		return nil, fmt.Errorf("postgres_post_repo_comments_failed: %w", err)
	}
	defer commentRows.Close()

	for commentRows.Next() {
		comment := Comment{}
		if err := commentRows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.Body,
			&comment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_post_repo_comment_scan_failed: %w", err)
		}
		if post, found := postIndex[comment.PostID]; found {
			post.Comments = append(post.Comments, comment)
		}
	}

	if err := commentRows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_post_repo_comment_rows_failed: %w", err)
	}

	return postList, nil
}

/*
AddLike records a like edge, ignoring duplicates.

Parameters:
  - context: context.Context
  - postID, userID: string

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) AddLike(context context.Context, postID, userID string) error {
	const query = `
		INSERT INTO posts.postlike (postid, userid, createdat)
		VALUES ($1, $2, $3)
		ON CONFLICT (postid, userid) DO NOTHING`

	_, err := repository.pool.Exec(context, query, postID, userID, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_post_repo_like_failed: %w", err)
	}

	return nil
}

/*
AddComment appends a comment row to a post.

Parameters:
  - context: context.Context
  - comment: *Comment

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) AddComment(context context.Context, comment *Comment) error {
	const query = `
		INSERT INTO posts.comment (id, postid, authorid, body, createdat)
		VALUES ($1, $2, $3, $4, $5)`

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		comment.ID,
		comment.PostID,
		comment.AuthorID,
		comment.Body,
		comment.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_post_repo_comment_create_failed: %w", err)
	}

	return nil
}

// Copyright (c) 2026 Picstream. All rights reserved.

package account

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresFollowRepository implements [FollowRepository] using pgx.
type PostgresFollowRepository struct {
	pool *pgxpool.Pool
}

// NewFollowRepository constructs a PostgreSQL backed follow store.
func NewFollowRepository(pool *pgxpool.Pool) *PostgresFollowRepository {
	return &PostgresFollowRepository{pool: pool}
}

/*
Follow inserts a follow edge, ignoring duplicates.

Parameters:
  - context: context.Context
  - followerID, followeeID: string

Returns:
  - error: Persistence failures
*/
func (repository *PostgresFollowRepository) Follow(context context.Context, followerID, followeeID string) error {
	const query = `
		INSERT INTO users.follow (followerid, followeeid, createdat)
		VALUES ($1, $2, $3)
		ON CONFLICT (followerid, followeeid) DO NOTHING`

	_, err := repository.pool.Exec(context, query, followerID, followeeID, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_follow_repo_follow_failed: %w", err)
	}

	return nil
}

/*
Unfollow deletes a follow edge if present.

Parameters:
  - context: context.Context
  - followerID, followeeID: string

Returns:
  - error: Persistence failures
*/
func (repository *PostgresFollowRepository) Unfollow(context context.Context, followerID, followeeID string) error {
	const query = `
		DELETE FROM users.follow
		WHERE followerid = $1 AND followeeid = $2`

	_, err := repository.pool.Exec(context, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("postgres_follow_repo_unfollow_failed: %w", err)
	}

	return nil
}

/*
ListFollowees returns the IDs of every user the follower follows.

Parameters:
  - context: context.Context
  - followerID: string

Returns:
  - []string: Followee user IDs
  - error: Retrieval failures
*/
func (repository *PostgresFollowRepository) ListFollowees(context context.Context, followerID string) ([]string, error) {
	const query = `
		SELECT followeeid
		FROM users.follow
		WHERE followerid = $1`

	rows, err := repository.pool.Query(context, query, followerID)
	if err != nil {
		return nil, fmt.Errorf("postgres_follow_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var followees []string
	for rows.Next() {
		var followeeID string
		if err := rows.Scan(&followeeID); err != nil {
			return nil, fmt.Errorf("postgres_follow_repo_scan_failed: %w", err)
		}
		followees = append(followees, followeeID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_follow_repo_rows_failed: %w", err)
	}

	return followees, nil
}

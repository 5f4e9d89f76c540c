// Copyright (c) 2026 Picstream. All rights reserved.

package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresMessageRepository implements [MessageRepository] using pgx.
type PostgresMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMessageRepository constructs a PostgreSQL backed message store.
func NewPostgresMessageRepository(pool *pgxpool.Pool) *PostgresMessageRepository {
	return &PostgresMessageRepository{pool: pool}
}

/*
Create persists a new message row.

Parameters:
  - context: context.Context
  - message: *Message

Returns:
  - error: Persistence failures
*/
func (repository *PostgresMessageRepository) Create(context context.Context, message *Message) error {
	const query = `
		INSERT INTO chat.message (id, senderid, receiverid, body, createdat)
		VALUES ($1, $2, $3, $4, $5)`

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		message.ID,
		message.SenderID,
		message.ReceiverID,
		message.Body,
		message.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_message_repo_create_failed: %w", err)
	}

	return nil
}

/*
ListByParticipant returns every message the user sent or received, oldest
first.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []*Message: Chronological message stream
  - error: Retrieval failures
*/
func (repository *PostgresMessageRepository) ListByParticipant(context context.Context, userID string) ([]*Message, error) {
	const query = `
		SELECT id, senderid, receiverid, body, createdat
		FROM chat.message
		WHERE senderid = $1 OR receiverid = $1
		ORDER BY createdat ASC`

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_message_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var messageList []*Message
	for rows.Next() {
		message := &Message{}
		if err := rows.Scan(
			&message.ID,
			&message.SenderID,
			&message.ReceiverID,
			&message.Body,
			&message.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_message_repo_scan_failed: %w", err)
		}
		messageList = append(messageList, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_message_repo_rows_failed: %w", err)
	}

	return messageList, nil
}

/*
LatestBetween returns the most recent message exchanged between two users.

Parameters:
  - context: context.Context
  - firstID, secondID: string

Returns:
  - *Message: Most recent message, or nil when the pair has no history
  - error: Retrieval failures
*/
func (repository *PostgresMessageRepository) LatestBetween(context context.Context, firstID, secondID string) (*Message, error) {
	const query = `
		SELECT id, senderid, receiverid, body, createdat
		FROM chat.message
		WHERE (senderid = $1 AND receiverid = $2)
		   OR (senderid = $2 AND receiverid = $1)
		ORDER BY createdat DESC
		LIMIT 1`

	message := &Message{}
	err := repository.pool.QueryRow(context, query, firstID, secondID).Scan(
		&message.ID,
		&message.SenderID,
		&message.ReceiverID,
		&message.Body,
		&message.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres_message_repo_latest_failed: %w", err)
	}

	return message, nil
}

/*
ListBySingleParticipant returns the user's full history with both endpoints
resolved to identities, oldest first.

Description: The account table is joined twice, once per endpoint. The match
is on the single given identifier; nothing about the calling user constrains
the query.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []*ExpandedMessage: Chronological expanded history
  - error: Retrieval failures
*/
func (repository *PostgresMessageRepository) ListBySingleParticipant(context context.Context, userID string) ([]*ExpandedMessage, error) {
	const query = `
		SELECT
			m.id, m.body, m.createdat,
			s.id, s.username, s.displayname,
			r.id, r.username, r.displayname
		FROM chat.message m
		JOIN users.account s ON s.id = m.senderid
		JOIN users.account r ON r.id = m.receiverid
		WHERE m.senderid = $1 OR m.receiverid = $1
		ORDER BY m.createdat ASC`

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_message_repo_expand_failed: %w", err)
	}
	defer rows.Close()

	var messageList []*ExpandedMessage
	for rows.Next() {
		message := &ExpandedMessage{}
		if err := rows.Scan(
			&message.ID,
			&message.Body,
			&message.CreatedAt,
			&message.Sender.ID,
			&message.Sender.Username,
			&message.Sender.DisplayName,
			&message.Receiver.ID,
			&message.Receiver.Username,
			&message.Receiver.DisplayName,
		); err != nil {
			return nil, fmt.Errorf("postgres_message_repo_expand_scan_failed: %w", err)
		}
		messageList = append(messageList, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_message_repo_expand_rows_failed: %w", err)
	}

	return messageList, nil
}

// # Participant Lookup

// PostgresParticipantRepository resolves user identities from users.account.
type PostgresParticipantRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresParticipantRepository constructs a PostgreSQL backed participant lookup.
func NewPostgresParticipantRepository(pool *pgxpool.Pool) *PostgresParticipantRepository {
	return &PostgresParticipantRepository{pool: pool}
}

/*
FindParticipant returns the public identity for the given user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *Participant: Public identity
  - error: pgx.ErrNoRows wrapped for unknown users, other retrieval failures
*/
func (repository *PostgresParticipantRepository) FindParticipant(context context.Context, userID string) (*Participant, error) {
	const query = `
		SELECT id, username, displayname
		FROM users.account
		WHERE id = $1`

	participant := &Participant{}
	err := repository.pool.QueryRow(context, query, userID).Scan(
		&participant.ID,
		&participant.Username,
		&participant.DisplayName,
	)

	if err != nil {
		return nil, fmt.Errorf("postgres_participant_repo_find_failed: %w", err)
	}

	return participant, nil
}

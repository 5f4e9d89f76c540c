// Copyright (c) 2026 Picstream. All rights reserved.

package chat

import "context"

// # Message Data Access

// MessageRepository defines the data access contract for direct messages.
type MessageRepository interface {

	/*
		Create persists a new message.

		Parameters:
		  - context: context.Context
		  - message: *Message

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, message *Message) error

	/*
		ListByParticipant returns every message the user sent or received,
		oldest first.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []*Message: Chronological message stream
		  - error: Retrieval failures
	*/
	ListByParticipant(context context.Context, userID string) ([]*Message, error)

	/*
		LatestBetween returns the single most recent message exchanged between
		the two users, in either direction.

		Parameters:
		  - context: context.Context
		  - firstID, secondID: string

		Returns:
		  - *Message: Most recent message, or nil when none exists
		  - error: Retrieval failures
	*/
	LatestBetween(context context.Context, firstID, secondID string) (*Message, error)

	/*
		ListBySingleParticipant returns every message where the given user is
		the sender or the receiver, with both endpoints resolved to
		identities, oldest first. The match is on that one identifier only:
		the result is the user's full history across all counterparts.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []*ExpandedMessage: Chronological expanded history
		  - error: Retrieval failures
	*/
	ListBySingleParticipant(context context.Context, userID string) ([]*ExpandedMessage, error)
}

// # Participant Lookup (consumed interface)

// ParticipantRepository resolves user identifiers to public identities.
type ParticipantRepository interface {
	// FindParticipant returns the public identity for the given user.
	FindParticipant(context context.Context, userID string) (*Participant, error)
}

// # Inbox Cache

// InboxCache is a short-lived read-through cache over assembled inbox
// summaries. A miss is not an error.
type InboxCache interface {
	// Get returns the cached summaries for the user and whether they were found.
	Get(context context.Context, userID string) ([]ConversationSummary, bool, error)
	// Set stores the summaries for the user.
	Set(context context.Context, userID string, summaries []ConversationSummary) error
	// Invalidate drops the cached summaries for the user.
	Invalidate(context context.Context, userID string) error
}

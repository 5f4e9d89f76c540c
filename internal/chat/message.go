// Copyright (c) 2026 Picstream. All rights reserved.

/*
Package chat implements direct messaging: sending messages, reading a
conversation's history, and the inbox summary listing every counterpart with
the most recent message exchanged.

Conversation history is looked up by counterpart identifier only. Any
authenticated caller who knows a user's identifier can read that user's
message history; the caller's own identity does not scope the query. This
mirrors the behavior clients were built against and is kept intact.
*/
package chat

import "time"

// # Entities

// Message is a single direct message between two users.
type Message struct {
	ID         string    `json:"_id"`
	SenderID   string    `json:"sender"`
	ReceiverID string    `json:"receiver"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"timestamp"`
}

// Participant is the public identity slice embedded in expanded messages.
type Participant struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// ExpandedMessage is a message with both endpoints resolved to identities.
// Conversation history responses carry this shape instead of raw identifiers.
type ExpandedMessage struct {
	ID        string      `json:"_id"`
	Sender    Participant `json:"sender"`
	Receiver  Participant `json:"receiver"`
	Body      string      `json:"body"`
	CreatedAt time.Time   `json:"timestamp"`
}

// ConversationSummary is one inbox row: a counterpart and the latest message
// exchanged with them, in either direction.
type ConversationSummary struct {
	CounterpartID string   `json:"_id"`
	Username      string   `json:"username"`
	MostRecent    *Message `json:"mostRecentMessage"`
}

// # Limits & Field Identifiers

const (
	// MaxMessageLength caps a single message body.
	MaxMessageLength = 4000
)

const (
	FieldReceiverID    = "receiver"
	FieldCounterpartID = "id"
	FieldBody          = "body"
)

// Copyright (c) 2026 Picstream. All rights reserved.

package chat

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/vantran/picstream/internal/platform/validate"
	"github.com/vantran/picstream/pkg/uuid"
)

// # Service Layer

// Service orchestrates messaging, conversation history, and the inbox.
type Service struct {
	messages     MessageRepository
	participants ParticipantRepository
	cache        InboxCache
	logger       *slog.Logger
}

// NewService constructs a new chat [Service].
func NewService(messages MessageRepository, participants ParticipantRepository, cache InboxCache, logger *slog.Logger) *Service {
	return &Service{
		messages:     messages,
		participants: participants,
		cache:        cache,
		logger:       logger,
	}
}

// # Inbox Assembly

/*
Inbox builds the caller's conversation list: one summary per counterpart
carrying that counterpart's identity and the most recent message exchanged
with them in either direction.

Description: The caller's full message stream is grouped by counterpart, then
each counterpart's identity lookup and latest-message query run concurrently.
Results land by index so the first-appearance order of the grouping is
preserved. Assembled lists are cached briefly; cache failures are logged and
never surfaced.

Parameters:
  - context: context.Context
  - userID: string (authenticated caller)

Returns:
  - []ConversationSummary: One row per counterpart, first-appearance order
  - error: Retrieval failures
*/
func (service *Service) Inbox(context context.Context, userID string) ([]ConversationSummary, error) {
	if cached, found, err := service.cache.Get(context, userID); err != nil {
		service.logger.Warn("inbox_cache_read_failed", slog.String("error", err.Error()))
	} else if found {
		return cached, nil
	}

	messageList, err := service.messages.ListByParticipant(context, userID)
	if err != nil {
		return nil, err
	}

	counterpartIDs := groupByCounterpart(userID, messageList)
	summaries := make([]ConversationSummary, len(counterpartIDs))

	group, groupContext := errgroup.WithContext(context)
	for index, counterpartID := range counterpartIDs {
		index, counterpartID := index, counterpartID
		group.Go(func() error {
			participant, err := service.participants.FindParticipant(groupContext, counterpartID)
			if err != nil {
				return err
			}

			latest, err := service.messages.LatestBetween(groupContext, userID, counterpartID)
			if err != nil {
				return err
			}

			summaries[index] = ConversationSummary{
				CounterpartID: participant.ID,
				Username:      participant.Username,
				MostRecent:    latest,
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := service.cache.Set(context, userID, summaries); err != nil {
		service.logger.Warn("inbox_cache_write_failed", slog.String("error", err.Error()))
	}

	return summaries, nil
}

// groupByCounterpart reduces a message stream to the distinct counterparts of
// the given user, in order of first appearance.
func groupByCounterpart(userID string, messageList []*Message) []string {
	seen := make(map[string]struct{})
	var counterpartIDs []string

	for _, message := range messageList {
		counterpartID := message.SenderID
		if counterpartID == userID {
			counterpartID = message.ReceiverID
		}
		if _, found := seen[counterpartID]; found {
			continue
		}
		seen[counterpartID] = struct{}{}
		counterpartIDs = append(counterpartIDs, counterpartID)
	}

	return counterpartIDs
}

// # Conversation History

/*
History returns the message history for the given counterpart, oldest first,
with sender and receiver identities expanded.

Description: The lookup matches the counterpart identifier against either
endpoint of every message. The caller's identity plays no part in the query;
any authenticated user can read any user's history by identifier.

Parameters:
  - context: context.Context
  - counterpartID: string

Returns:
  - []*ExpandedMessage: Chronological expanded history
  - error: Validation or retrieval failures
*/
func (service *Service) History(context context.Context, counterpartID string) ([]*ExpandedMessage, error) {
	validator := &validate.Validator{}
	validator.UUID(FieldCounterpartID, counterpartID)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	messageList, err := service.messages.ListBySingleParticipant(context, counterpartID)
	if err != nil {
		return nil, err
	}

	if messageList == nil {
		messageList = []*ExpandedMessage{}
	}

	return messageList, nil
}

// # Sending

// SendInput holds the data for a new direct message.
type SendInput struct {
	SenderID   string
	ReceiverID string
	Body       string
}

/*
SendMessage persists a direct message and invalidates both participants'
cached inboxes so the new conversation state shows up immediately.

Parameters:
  - context: context.Context
  - input: SendInput

Returns:
  - *Message: Created message
  - error: Validation or persistence failures
*/
func (service *Service) SendMessage(context context.Context, input SendInput) (*Message, error) {
	validator := &validate.Validator{}
	validator.UUID(FieldReceiverID, input.ReceiverID).
		Required(FieldBody, input.Body).
		MaxLen(FieldBody, input.Body, MaxMessageLength).
		Custom(FieldReceiverID, input.ReceiverID == input.SenderID, "Cannot message yourself")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	message := &Message{
		ID:         uuid.New(),
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		Body:       input.Body,
	}

	if err := service.messages.Create(context, message); err != nil {
		return nil, err
	}

	for _, participantID := range []string{input.SenderID, input.ReceiverID} {
		if err := service.cache.Invalidate(context, participantID); err != nil {
			service.logger.Warn("inbox_cache_invalidate_failed",
				slog.String("user_id", participantID), slog.String("error", err.Error()))
		}
	}

	return message, nil
}

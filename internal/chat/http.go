// Copyright (c) 2026 Picstream. All rights reserved.

package chat

import (
	"net/http"

	requestutil "github.com/vantran/picstream/internal/platform/request"
	"github.com/vantran/picstream/internal/platform/respond"
	"github.com/vantran/picstream/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the messaging endpoints.
type Handler struct {
	chatService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{chatService: service}
}

// # Request Payloads

type sendMessageRequest struct {
	ReceiverID string `json:"receiver"`
	Body       string `json:"body"`
}

// # Handlers

/*
Inbox serves the caller's conversation list.

GET /inbox

Description: One entry per counterpart the caller has exchanged messages with,
carrying the counterpart's identity and the latest message in either
direction. The response body is the raw array, not an envelope.

Response:
  - 200: [{"_id": ..., "username": ..., "mostRecentMessage": Message}, ...]
*/
func (handler *Handler) Inbox(writer http.ResponseWriter, request *http.Request) {
	summaries, err := handler.chatService.Inbox(request.Context(), requestutil.UserID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if summaries == nil {
		summaries = []ConversationSummary{}
	}

	respond.OK(writer, summaries)
}

/*
Conversation serves the full message history for a counterpart, oldest first,
with both endpoints expanded to identities.

GET /conversation/{id}

Response:
  - 200: [ExpandedMessage, ...]
*/
func (handler *Handler) Conversation(writer http.ResponseWriter, request *http.Request) {
	history, err := handler.chatService.History(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, history)
}

/*
SendMessage creates a direct message from the caller to a receiver.

POST /message

Request:
  - Body: sendMessageRequest (ReceiverID, Body)

Response:
  - 200: Message
*/
func (handler *Handler) SendMessage(writer http.ResponseWriter, request *http.Request) {
	var input sendMessageRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	message, err := handler.chatService.SendMessage(request.Context(), SendInput{
		SenderID:   requestutil.UserID(request),
		ReceiverID: input.ReceiverID,
		Body:       input.Body,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, message)
}

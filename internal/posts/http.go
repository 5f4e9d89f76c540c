// Copyright (c) 2026 Picstream. All rights reserved.

package posts

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/vantran/picstream/internal/platform/apperr"
	"github.com/vantran/picstream/internal/platform/ctxutil"
	requestutil "github.com/vantran/picstream/internal/platform/request"
	"github.com/vantran/picstream/internal/platform/respond"
	"github.com/vantran/picstream/internal/platform/validate"
)

// # Definitions & Constructors

// FileStore is the slice of the media layer the upload endpoint needs.
type FileStore interface {
	// Save persists the reader's content and returns the stored filename.
	Save(originalName string, reader io.Reader) (string, error)

	// Remove deletes a stored file; absence is not an error.
	Remove(storedName string) error
}

// Handler implements the feed, upload, and engagement endpoints.
type Handler struct {
	postService *Service
	fileStore   FileStore
}

// NewHandler constructs a new [Handler] with its dependencies.
func NewHandler(service *Service, fileStore FileStore) *Handler {
	return &Handler{
		postService: service,
		fileStore:   fileStore,
	}
}

// # Request & Response Payloads

type feedResponse struct {
	SortedPostsList []*Post `json:"sortedPostsList"`
}

type commentRequest struct {
	Body string `json:"body"`
}

// # Handlers

/*
Home serves the authenticated user's feed.

GET /home

Description: Returns every post authored by the caller's followees, flattened
and sorted newest-first.

Response:
  - 200: {"sortedPostsList": [Post, ...]}
*/
func (handler *Handler) Home(writer http.ResponseWriter, request *http.Request) {
	postList, err := handler.postService.Feed(request.Context(), requestutil.UserID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, feedResponse{SortedPostsList: postList})
}

/*
Upload ingests one or more media files and creates a single post from them.

POST /upload

Description: Accepts a multipart form with a "files" part per media file and
an optional "caption" field. Every file lands in the media store under a
timestamped name; exactly one post referencing all of them is created.

Response:
  - 200: "Files uploaded successfully" (plain text)
  - 400: Validation failure (no files, too many files, oversized caption);
    nothing is persisted on a rejected request
*/
func (handler *Handler) Upload(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseMultipartForm(MaxUploadMemory); err != nil {
		respond.Error(writer, request,
			apperr.ValidationError("Invalid multipart form", apperr.FieldError{Field: FieldFiles, Message: "Invalid multipart form"}))
		return
	}

	fileHeaders := request.MultipartForm.File["files"]

	// Enforce the per-request file budget before anything touches disk, so
	// an over-limit request never persists a partial batch.
	fileValidator := &validate.Validator{}
	fileValidator.Custom(FieldFiles, len(fileHeaders) == 0, "At least one file is required").
		Custom(FieldFiles, len(fileHeaders) > MaxUploadFiles, "Too many files")
	if err := fileValidator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	storedNames := make([]string, 0, len(fileHeaders))

	// discardStored undoes a partially completed ingestion on any later
	// failure. Removal errors are logged, not surfaced.
	discardStored := func() {
		for _, storedName := range storedNames {
			if err := handler.fileStore.Remove(storedName); err != nil {
				ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(),
					"media_discard_failed", slog.String("file", storedName), slog.String("error", err.Error()))
			}
		}
	}

	for _, fileHeader := range fileHeaders {
		file, err := fileHeader.Open()
		if err != nil {
			discardStored()
			respond.Error(writer, request, apperr.Internal(err))
			return
		}

		storedName, err := handler.fileStore.Save(fileHeader.Filename, file)
		file.Close()
		if err != nil {
			ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(),
				"media_save_failed", slog.String("error", err.Error()))
			discardStored()
			respond.Error(writer, request, apperr.Internal(err))
			return
		}

		storedNames = append(storedNames, storedName)
	}

	_, err := handler.postService.CreatePost(request.Context(), CreateInput{
		CreatorID: requestutil.UserID(request),
		Content:   storedNames,
		Caption:   request.FormValue("caption"),
	})
	if err != nil {
		discardStored()
		respond.Error(writer, request, err)
		return
	}

	respond.Text(writer, "Files uploaded successfully")
}

/*
Like records the caller's like on a post. Idempotent.

POST /posts/{id}/like

Response:
  - 204: Like recorded
*/
func (handler *Handler) Like(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.Param(request, "id")

	if err := handler.postService.Like(request.Context(), postID, requestutil.UserID(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
AddComment appends a comment to a post on behalf of the caller.

POST /posts/{id}/comments

Request:
  - Body: commentRequest (Body)

Response:
  - 200: Comment
*/
func (handler *Handler) AddComment(writer http.ResponseWriter, request *http.Request) {
	var input commentRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	comment, err := handler.postService.AddComment(
		request.Context(),
		requestutil.Param(request, "id"),
		requestutil.UserID(request),
		input.Body,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comment)
}

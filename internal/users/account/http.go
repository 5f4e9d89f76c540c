// Copyright (c) 2026 Picstream. All rights reserved.

package account

import (
	"net/http"

	requestutil "github.com/vantran/picstream/internal/platform/request"
	"github.com/vantran/picstream/internal/platform/respond"
	"github.com/vantran/picstream/internal/platform/sec"
)

// Handler implements the profile and follow endpoints. All routes live
// behind the authentication gate.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

type profileResponse struct {
	UserData sec.UserSnapshot `json:"userdata"`
}

/*
Profile returns the authenticated user's profile.

GET /profile

Description: Answers directly from the identity snapshot decoded out of the
session token — no store lookup. The response therefore reflects the account
as it was at login time.

Response:
  - 200: {"userdata": User}
*/
func (handler *Handler) Profile(writer http.ResponseWriter, request *http.Request) {
	claims := requestutil.Claims(request)
	respond.OK(writer, profileResponse{UserData: claims.User})
}

/*
Follow adds the path user to the caller's follow set.

POST /follow/{id}

Response:
  - 204: Edge recorded (or already present)
  - 400: Validation failure (bad UUID, self-follow)
*/
func (handler *Handler) Follow(writer http.ResponseWriter, request *http.Request) {
	followeeID := requestutil.Param(request, "id")

	if err := handler.accountService.Follow(request.Context(), requestutil.UserID(request), followeeID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
Unfollow removes the path user from the caller's follow set.

DELETE /follow/{id}

Response:
  - 204: Edge removed (or never present)
  - 400: Validation failure
*/
func (handler *Handler) Unfollow(writer http.ResponseWriter, request *http.Request) {
	followeeID := requestutil.Param(request, "id")

	if err := handler.accountService.Unfollow(request.Context(), requestutil.UserID(request), followeeID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

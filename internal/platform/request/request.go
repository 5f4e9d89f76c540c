// Copyright (c) 2026 Picstream. All rights reserved.

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vantran/picstream/internal/platform/ctxutil"
	"github.com/vantran/picstream/internal/platform/sec"
	"github.com/vantran/picstream/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Claims extracts the authenticated user claims from the request context.

Every route behind the authentication gate is guaranteed a non-nil result;
a nil return means the route was mounted outside the gate by mistake.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
UserID returns the ID of the currently authenticated user, or the empty
string for unauthenticated requests.
*/
func UserID(request *http.Request) string {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return ""
	}
	return claims.User.ID
}

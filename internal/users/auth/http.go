// Copyright (c) 2026 Picstream. All rights reserved.

package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vantran/picstream/internal/platform/apperr"
	"github.com/vantran/picstream/internal/platform/ctxutil"
	requestutil "github.com/vantran/picstream/internal/platform/request"
	"github.com/vantran/picstream/internal/platform/respond"
	"github.com/vantran/picstream/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the public authentication endpoints.
//
// # Contract
//
// Business-rule failures (duplicate username, unknown user, wrong password)
// and validation failures are returned as HTTP 200 bodies with a "message"
// field. Only unexpected storage/runtime failures produce a 5xx. This
// status-code asymmetry is an observable contract of the platform and must
// not be "cleaned up".
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// # Request & Response Payloads

type signupRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Message string              `json:"message"`
	Errors  []apperr.FieldError `json:"errors"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

/*
Signup handles the creation of a new user account.

POST /signup

Description: Validates input, checks for an existing username, and persists
a new user profile. No token is issued — the client logs in separately.

Request:
  - Body: signupRequest (Username, DisplayName, Password)

Response:
  - 200: {"message": "User registered successfully"}
  - 200: {"message": "Validation failed", "errors": [...]}
  - 200: {"message": "Username already exists, please choose another"}
  - 500: Generic message on unexpected storage failure
*/
func (handler *Handler) Signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.JSON(writer, http.StatusOK, validationResponse{Message: MsgValidationFailed})
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLength)

	if validator.HasErrors() {
		respond.JSON(writer, http.StatusOK, validationResponse{
			Message: MsgValidationFailed,
			Errors:  validator.Errors(),
		})
		return
	}

	_, err := handler.authService.Register(request.Context(), RegisterInput{
		Username:    input.Username,
		DisplayName: input.DisplayName,
		Password:    input.Password,
	})

	switch {
	case errors.Is(err, ErrUsernameTaken):
		respond.JSON(writer, http.StatusOK, messageResponse{Message: MsgUsernameTaken})
	case err != nil:
		// Unexpected storage/runtime failure: log and surface a generic 500.
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(),
			"signup_persistence_failed", slog.String("error", err.Error()))
		respond.Error(writer, request, apperr.Internal(err))
	default:
		respond.JSON(writer, http.StatusOK, messageResponse{Message: MsgUserRegistered})
	}
}

/*
Login authenticates a user and returns a session token.

POST /login

Description: Verifies credentials and issues a signed token embedding the full
user snapshot, valid for a fixed 12-hour window.

Request:
  - Body: loginRequest (Username, Password)

Response:
  - 200: {"token": "<signed token>"}
  - 200: {"message": "Unsuccessful", "errors": [...]}
  - 200: {"message": "User does not exist"}
  - 200: {"message": "Wrong password"}
*/
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.JSON(writer, http.StatusOK, validationResponse{Message: MsgUnsuccessful})
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		Required(FieldPassword, input.Password)

	if validator.HasErrors() {
		respond.JSON(writer, http.StatusOK, validationResponse{
			Message: MsgUnsuccessful,
			Errors:  validator.Errors(),
		})
		return
	}

	token, err := handler.authService.Login(request.Context(), LoginInput{
		Username: input.Username,
		Password: input.Password,
	})

	switch {
	case errors.Is(err, ErrUserNotFound):
		respond.JSON(writer, http.StatusOK, messageResponse{Message: MsgUserNotFound})
	case errors.Is(err, ErrWrongPassword):
		respond.JSON(writer, http.StatusOK, messageResponse{Message: MsgWrongPassword})
	case err != nil:
		respond.Error(writer, request, err)
	default:
		respond.JSON(writer, http.StatusOK, tokenResponse{Token: token})
	}
}

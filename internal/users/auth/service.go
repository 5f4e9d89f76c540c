// Copyright (c) 2026 Picstream. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vantran/picstream/internal/platform/dberr"
	"github.com/vantran/picstream/internal/platform/sec"
	"github.com/vantran/picstream/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing session tokens.
type TokenProvider interface {
	// IssueToken creates a signed token embedding the identity snapshot,
	// valid for the given duration from now.
	IssueToken(user sec.UserSnapshot, timeToLive time.Duration) (string, error)
}

// # Business Outcomes
//
// These are results, not exceptional conditions: the HTTP layer maps each of
// them to a 200-level body with a message field. Keeping them as sentinel
// errors lets services compose with the usual error plumbing while the
// handler decides presentation.
var (
	// ErrUsernameTaken means registration found an existing account with the
	// requested username.
	ErrUsernameTaken = errors.New("auth: username already taken")

	// ErrUserNotFound means login referenced a username with no account.
	ErrUserNotFound = errors.New("auth: user does not exist")

	// ErrWrongPassword means login supplied a password that does not match
	// the stored hash.
	ErrWrongPassword = errors.New("auth: wrong password")
)

// Service implements user registration and authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new [Service] with its dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member. Fields arrive
// already validated and trimmed by the HTTP layer.
type RegisterInput struct {
	Username    string
	DisplayName string
	Password    string
}

/*
Register hashes credentials and persists a brand new user account.

Description: Check-then-insert enrollment. The existence check and the insert
are NOT one atomic operation — two concurrent registrations for the same
username can both pass the check, in which case the loser surfaces the
database's duplicate-key error. No session token is issued at registration;
the client logs in separately.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - error: ErrUsernameTaken or storage failures
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify username uniqueness. Only a definitive not-found clears the
	// username; a storage failure must not be mistaken for "name is free".
	_, err := service.userRepository.FindByUsername(context, input.Username)
	switch {
	case err == nil:
		return nil, ErrUsernameTaken
	case !errors.Is(err, dberr.ErrNotFound):
		return nil, fmt.Errorf("auth_service_username_check_failed: %w", err)
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		DisplayName:  input.DisplayName,
		PasswordHash: hashedPassword,
	}

	// Persist the user to the database
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

/*
Login validates user credentials and issues a session token.

Description: Verifies identity via constant-time password comparison and, on
success, issues a signed token embedding the FULL user snapshot. Downstream
handlers read profile fields straight off the decoded token, so the snapshot
is the identity the rest of the platform sees until the token expires.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - string: Signed session token
  - error: ErrUserNotFound, ErrWrongPassword, or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (string, error) {
	user, err := service.userRepository.FindByUsername(context, input.Username)
	if errors.Is(err, dberr.ErrNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		// A storage outage is not "user does not exist" — propagate so the
		// HTTP layer surfaces a 500 instead of a business-outcome body.
		return "", fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	// bcrypt comparison is constant-time to prevent timing attacks.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return "", ErrWrongPassword
	}

	token, err := service.tokenProvider.IssueToken(user.Snapshot(), TokenTTL)
	if err != nil {
		return "", fmt.Errorf("auth_service_token_issue_failed: %w", err)
	}

	return token, nil
}

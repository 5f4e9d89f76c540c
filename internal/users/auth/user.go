// Copyright (c) 2026 Picstream. All rights reserved.

/*
Package auth implements the user identity layer: registration, login, and
session token issuance.

It defines the core domain entity (User) and the credential-verification
logic that gates every protected operation on the platform.

# Architecture

This layer is the "Truth" of the system for identity. Entities defined here
have no transport dependencies and encapsulate all business rules related
to account lifecycle.
*/
package auth

import (
	"time"

	"github.com/vantran/picstream/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Picstream platform.
type User struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"displayName"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"createdAt"`
}

// Snapshot converts the user into the serializable identity snapshot that
// gets embedded inside a session token at issuance.
func (user *User) Snapshot() sec.UserSnapshot {
	return sec.UserSnapshot{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}
}

// # Field Identifiers

// Field names for validation in the authentication domain.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldDisplayName = "displayName"
)

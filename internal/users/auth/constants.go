// Copyright (c) 2026 Picstream. All rights reserved.

package auth

import "time"

// # Authentication Constraints

const (
	// TokenTTL is the fixed validity window of a session token. Tokens are
	// immutable once issued and cannot be revoked before this window passes.
	TokenTTL = 12 * time.Hour

	// MinPasswordLength is the minimum accepted password length at signup.
	MinPasswordLength = 6
)

// # Contract Messages
//
// These exact strings are part of the external API contract: business-rule
// failures travel as HTTP 200 bodies carrying one of them, never as 4xx
// statuses. Existing clients switch on the message text.
const (
	MsgUserRegistered   = "User registered successfully"
	MsgUsernameTaken    = "Username already exists, please choose another"
	MsgUserNotFound     = "User does not exist"
	MsgWrongPassword    = "Wrong password"
	MsgValidationFailed = "Validation failed"
	MsgUnsuccessful     = "Unsuccessful"
)

// Copyright (c) 2026 Picstream. All rights reserved.

// Package sec provides cryptographic primitives and session token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, Token Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the auth package's TokenProvider interface.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Verification Failures

// Verification failure kinds. The HTTP boundary collapses all of them to a
// single Forbidden signal; they stay distinct here so callers and tests can
// discriminate with [errors.Is].
var (
	// ErrTokenMalformed means the token could not be parsed at all.
	ErrTokenMalformed = errors.New("sec: token malformed")

	// ErrTokenExpired means the token parsed but its validity window has passed.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrInvalidSignature means the token signature does not match the secret.
	ErrInvalidSignature = errors.New("sec: token signature invalid")
)

// # Identity Snapshot

// UserSnapshot is the serialized representation of a user embedded inside a
// session token at issuance time.
//
// # Staleness
//
// The snapshot reflects the account as it was when the token was issued.
// Downstream handlers read profile fields directly off the decoded token
// without a fresh store lookup, so profile changes are invisible until the
// user logs in again. This is a deliberate trade of freshness for
// read-scalability: token verification never touches storage.
type UserSnapshot struct {
	ID          string    `json:"_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthClaims represents the payload embedded inside a session token.
//
// The whole [UserSnapshot] rides under the "user" claim rather than a minimal
// claim set — that shape is load-bearing for the profile endpoint.
type AuthClaims struct {
	jwt.RegisteredClaims

	User UserSnapshot `json:"user"`
}

// # Token Service

// TokenService handles issuance and verification of session tokens using
// HS256 with a process-wide secret.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService.
//
// The secret is the process-wide signing key, injected at startup and never
// mutated afterwards.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: signing secret must not be empty")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// IssueToken creates a signed session token embedding the given identity snapshot.
//
// # Parameters
//   - user: The identity snapshot to embed.
//   - timeToLive: The duration before the token expires.
//
// # Returns
//   - A signed token string, or an error if signing fails.
func (service *TokenService) IssueToken(user UserSnapshot, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		User: user,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature integrity and expiry of a token string.
//
// # Failure Kinds
//
// Failures are classified into [ErrTokenMalformed], [ErrTokenExpired], and
// [ErrInvalidSignature]. Expiry takes precedence over signature classification
// so that an expired token reports Expired regardless of signature validity.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		}
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid claims", ErrTokenMalformed)
	}

	return claims, nil
}

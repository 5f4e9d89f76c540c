// Copyright (c) 2026 Picstream. All rights reserved.

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantran/picstream/internal/platform/sec"
)

func newTestService(t *testing.T) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService("test-signing-secret", "picstream.test")
	require.NoError(t, err)
	return service
}

/*
TestTokenService_RoundTrip verifies that a freshly issued token decodes back
to a snapshot structurally equal to the one embedded at issuance.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestService(t)

	snapshot := sec.UserSnapshot{
		ID:          "0192d3a8-0000-7000-8000-000000000001",
		Username:    "alice",
		DisplayName: "Alice A.",
		CreatedAt:   time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
	}

	token, err := service.IssueToken(snapshot, 12*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, snapshot.ID, claims.User.ID)
	assert.Equal(t, snapshot.Username, claims.User.Username)
	assert.Equal(t, snapshot.DisplayName, claims.User.DisplayName)
	assert.True(t, snapshot.CreatedAt.Equal(claims.User.CreatedAt))
	assert.Equal(t, snapshot.ID, claims.Subject)
	assert.Equal(t, "picstream.test", claims.Issuer)
}

/*
TestTokenService_Expired verifies that a token past its validity window fails
with ErrTokenExpired even though the signature is perfectly valid.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newTestService(t)

	token, err := service.IssueToken(sec.UserSnapshot{ID: "u1", Username: "bob"}, -1*time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
	assert.NotErrorIs(t, err, sec.ErrInvalidSignature)
}

/*
TestTokenService_TamperedSignature verifies that altering a signature byte
yields ErrInvalidSignature.
*/
func TestTokenService_TamperedSignature(t *testing.T) {
	service := newTestService(t)

	token, err := service.IssueToken(sec.UserSnapshot{ID: "u1", Username: "bob"}, 12*time.Hour)
	require.NoError(t, err)

	// Flip one character in the signature segment (after the second dot).
	lastDot := strings.LastIndex(token, ".")
	require.Greater(t, lastDot, 0)

	signature := []byte(token[lastDot+1:])
	if signature[0] == 'A' {
		signature[0] = 'B'
	} else {
		signature[0] = 'A'
	}
	tampered := token[:lastDot+1] + string(signature)

	claims, err := service.VerifyToken(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, sec.ErrInvalidSignature)
}

/*
TestTokenService_WrongSecret verifies that a token signed with a different
secret is rejected as an invalid signature.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	issuerService, err := sec.NewTokenService("secret-one", "picstream.test")
	require.NoError(t, err)
	verifierService, err := sec.NewTokenService("secret-two", "picstream.test")
	require.NoError(t, err)

	token, err := issuerService.IssueToken(sec.UserSnapshot{ID: "u1"}, 12*time.Hour)
	require.NoError(t, err)

	_, err = verifierService.VerifyToken(token)
	assert.ErrorIs(t, err, sec.ErrInvalidSignature)
}

/*
TestTokenService_Malformed verifies that unparseable input is classified as
malformed rather than a signature failure.
*/
func TestTokenService_Malformed(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two_segments", "abc.def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.VerifyToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, sec.ErrTokenMalformed)
		})
	}
}

/*
TestTokenService_EmptySecret verifies the constructor rejects a missing secret.
*/
func TestTokenService_EmptySecret(t *testing.T) {
	service, err := sec.NewTokenService("", "picstream.test")
	assert.Nil(t, service)
	assert.Error(t, err)
}

/*
TestHashPassword_RoundTrip verifies bcrypt hashing and verification.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("hunter2-but-longer")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2-but-longer", hash)

	assert.True(t, sec.CheckPasswordHash("hunter2-but-longer", hash))
	assert.False(t, sec.CheckPasswordHash("wrong-password", hash))
}

// Copyright (c) 2026 Picstream. All rights reserved.

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantran/picstream/internal/platform/ctxutil"
	"github.com/vantran/picstream/internal/platform/middleware"
	"github.com/vantran/picstream/internal/platform/sec"
)

// fakeVerifier accepts exactly one token string and returns fixed claims.
type fakeVerifier struct {
	validToken string
	claims     *sec.AuthClaims
	calls      int
}

func (verifier *fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	verifier.calls++
	if tokenStr == verifier.validToken {
		return verifier.claims, nil
	}
	return nil, errors.New("verification failed")
}

func newGate(verifier middleware.TokenVerifier, downstream http.HandlerFunc) http.Handler {
	return middleware.Authenticate(verifier)(downstream)
}

/*
TestAuthenticate_MissingHeader verifies a bare 403 with empty body and no
downstream invocation when the Authorization header is absent.
*/
func TestAuthenticate_MissingHeader(t *testing.T) {
	downstreamCalls := 0
	gate := newGate(&fakeVerifier{}, func(http.ResponseWriter, *http.Request) {
		downstreamCalls++
	})

	recorder := httptest.NewRecorder()
	gate.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/inbox", nil))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Empty(t, recorder.Body.String())
	assert.Zero(t, downstreamCalls)
}

/*
TestAuthenticate_VerifyFailure verifies that any verification failure collapses
to the same bare 403 and short-circuits the chain.
*/
func TestAuthenticate_VerifyFailure(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"bad_token", "Bearer bogus"},
		{"scheme_only_no_token", "Bearer"},
		{"expired_or_tampered", "Bearer expired.or.tampered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			downstreamCalls := 0
			gate := newGate(&fakeVerifier{validToken: "good"}, func(http.ResponseWriter, *http.Request) {
				downstreamCalls++
			})

			request := httptest.NewRequest(http.MethodGet, "/inbox", nil)
			request.Header.Set("Authorization", tt.header)

			recorder := httptest.NewRecorder()
			gate.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusForbidden, recorder.Code)
			assert.Empty(t, recorder.Body.String())
			assert.Zero(t, downstreamCalls)
		})
	}
}

/*
TestAuthenticate_Success verifies the downstream handler runs exactly once
with the decoded snapshot attached to the request context.
*/
func TestAuthenticate_Success(t *testing.T) {
	claims := &sec.AuthClaims{User: sec.UserSnapshot{ID: "u-1", Username: "alice"}}
	verifier := &fakeVerifier{validToken: "good-token", claims: claims}

	downstreamCalls := 0
	gate := newGate(verifier, func(writer http.ResponseWriter, request *http.Request) {
		downstreamCalls++
		attached := ctxutil.GetAuthUser(request.Context())
		require.NotNil(t, attached)
		assert.Equal(t, "u-1", attached.User.ID)
		assert.Equal(t, "alice", attached.User.Username)
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/inbox", nil)
	request.Header.Set("Authorization", "Bearer good-token")

	recorder := httptest.NewRecorder()
	gate.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, downstreamCalls)
	assert.Equal(t, 1, verifier.calls)
}

/*
TestAuthenticate_SchemeNotValidated verifies the token is extracted
positionally: any scheme keyword is accepted as long as the second field
verifies.
*/
func TestAuthenticate_SchemeNotValidated(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"standard_bearer", "Bearer good-token"},
		{"lowercase_bearer", "bearer good-token"},
		{"arbitrary_scheme", "Token good-token"},
		{"extra_fields_ignored", "Bearer good-token trailing garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &sec.AuthClaims{User: sec.UserSnapshot{ID: "u-1"}}
			gate := newGate(&fakeVerifier{validToken: "good-token", claims: claims},
				func(writer http.ResponseWriter, _ *http.Request) {
					writer.WriteHeader(http.StatusOK)
				})

			request := httptest.NewRequest(http.MethodGet, "/home", nil)
			request.Header.Set("Authorization", tt.header)

			recorder := httptest.NewRecorder()
			gate.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}

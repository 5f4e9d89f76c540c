// Copyright (c) 2026 Picstream. All rights reserved.

package middleware

import (
	"net/http"
	"strings"

	"github.com/vantran/picstream/internal/platform/constants"
	"github.com/vantran/picstream/internal/platform/ctxutil"
	"github.com/vantran/picstream/internal/platform/respond"
	"github.com/vantran/picstream/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the token service
// implementation, allowing us to easily inject fakes during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate is the gate every protected route passes through.
//
// # Flow
//  1. Read the 'Authorization' header; if absent, reject with a bare 403.
//  2. Take the token as the second whitespace-delimited field. The scheme
//     keyword itself is not validated — "Bearer x", "bearer x", and
//     "Token x" are all accepted, matching the historical client contract.
//  3. Verify the token via [TokenVerifier]. Any failure kind (malformed,
//     expired, bad signature) collapses to the same bare 403; the handler
//     chain is never invoked.
//  4. On success, inject the decoded [*sec.AuthClaims] into the request
//     context and call the next handler.
//
// The gate never touches storage: the identity it attaches is the snapshot
// embedded at token issuance.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Missing Header ─────────────────────────────────────────────
			if authHeader == "" {
				respond.Forbidden(writer)
				return
			}

			// ── 2. Positional Token Extraction ────────────────────────────────
			fields := strings.Fields(authHeader)
			if len(fields) < 2 {
				respond.Forbidden(writer)
				return
			}
			tokenStr := fields[1]

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				respond.Forbidden(writer)
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// GetUser retrieves the [*sec.AuthClaims] from the request context.
//
// # Returns
//   - A pointer to [*sec.AuthClaims] if the user is authenticated.
//   - nil if the request never passed [Authenticate].
func GetUser(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

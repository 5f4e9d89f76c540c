// Copyright (c) 2026 Picstream. All rights reserved.

package auth_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantran/picstream/internal/platform/dberr"
	"github.com/vantran/picstream/internal/platform/sec"
	"github.com/vantran/picstream/internal/users/auth"
)

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

/*
TestSignupHTTP_Contract verifies that business and validation failures come
back as HTTP 200 message bodies, never as 4xx statuses.
*/
func TestSignupHTTP_Contract(t *testing.T) {
	repository := newFakeUserRepository()
	repository.users["taken"] = &auth.User{ID: "u-1", Username: "taken"}
	handler := auth.NewHandler(auth.NewService(repository, &fakeTokenProvider{}))

	testCases := []struct {
		name            string
		payload         string
		expectedMessage string
	}{
		{
			name:            "success",
			payload:         `{"username":"alice","displayName":"Alice","password":"correct-horse"}`,
			expectedMessage: auth.MsgUserRegistered,
		},
		{
			name:            "duplicate_username",
			payload:         `{"username":"taken","password":"correct-horse"}`,
			expectedMessage: auth.MsgUsernameTaken,
		},
		{
			name:            "missing_password",
			payload:         `{"username":"bob"}`,
			expectedMessage: auth.MsgValidationFailed,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(testCase.payload))
			recorder := httptest.NewRecorder()

			handler.Signup(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code, "business outcomes ride on 200")
			assert.Equal(t, testCase.expectedMessage, decodeBody(t, recorder)["message"])
		})
	}
}

/*
TestLoginHTTP_Contract verifies the login outcomes: token body on success,
200 message bodies for every credential failure.
*/
func TestLoginHTTP_Contract(t *testing.T) {
	hash, err := sec.HashPassword("correct-horse")
	require.NoError(t, err)

	repository := newFakeUserRepository()
	repository.users["alice"] = &auth.User{ID: "u-1", Username: "alice", PasswordHash: hash}
	handler := auth.NewHandler(auth.NewService(repository, &fakeTokenProvider{}))

	t.Run("success", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"username":"alice","password":"correct-horse"}`))
		recorder := httptest.NewRecorder()

		handler.Login(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "signed-token-for-alice", decodeBody(t, recorder)["token"])
	})

	t.Run("unknown_user", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"username":"nobody","password":"x"}`))
		recorder := httptest.NewRecorder()

		handler.Login(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, auth.MsgUserNotFound, decodeBody(t, recorder)["message"])
	})

	t.Run("wrong_password", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"username":"alice","password":"wrong-horse"}`))
		recorder := httptest.NewRecorder()

		handler.Login(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, auth.MsgWrongPassword, decodeBody(t, recorder)["message"])
	})

	t.Run("validation_failure", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"username":"alice"}`))
		recorder := httptest.NewRecorder()

		handler.Login(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, auth.MsgUnsuccessful, decodeBody(t, recorder)["message"])
	})

	t.Run("storage_failure", func(t *testing.T) {
		failingRepository := newFakeUserRepository()
		failingRepository.findErr = errors.New("connection refused")
		failingHandler := auth.NewHandler(auth.NewService(failingRepository, &fakeTokenProvider{}))

		request := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"username":"alice","password":"correct-horse"}`))
		recorder := httptest.NewRecorder()

		failingHandler.Login(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code,
			"an outage is a server error, not a credential outcome")
		body := decodeBody(t, recorder)
		assert.NotContains(t, body, "message")
		assert.Equal(t, "INTERNAL_ERROR", body["code"])
	})
}

/*
TestSignupHTTP_LostRace verifies the lost check-then-insert race: the
uniqueness probe misses, the insert trips the store's unique constraint, and
the client gets the generic 500 envelope rather than a success message.
*/
func TestSignupHTTP_LostRace(t *testing.T) {
	repository := newFakeUserRepository()
	repository.createErr = dberr.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "account_username_key"})
	handler := auth.NewHandler(auth.NewService(repository, &fakeTokenProvider{}))

	request := httptest.NewRequest(http.MethodPost, "/signup",
		strings.NewReader(`{"username":"alice","displayName":"Alice","password":"correct-horse"}`))
	recorder := httptest.NewRecorder()

	handler.Signup(recorder, request)

	assert.Equal(t, 1, repository.createCalls, "the check passed, so the insert was attempted")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
	assert.NotEqual(t, auth.MsgUserRegistered, body["message"])
}

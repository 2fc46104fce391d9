package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrdeck/pkg/api"
)

func TestLoginCmd_StoresToken(t *testing.T) {
	var gotAuth string
	srv := newMockServer(t).
		RespondJSON(http.MethodGet, "/auth/setup", api.SetupStatus{NeedsSetup: false}).
		Handle(http.MethodPost, "/auth/login", func(w http.ResponseWriter, r *http.Request) {
			var req api.LoginRequest
			decodeBody(t, r, &req)
			assert.Equal(t, "admin", req.Username)
			assert.Equal(t, "hunter2", req.Password)
			respondJSON(t, w, api.LoginResponse{Token: "tok-123", User: api.User{ID: 1, Username: "admin", Role: "admin"}})
		}).
		Handle(http.MethodGet, "/auth/me", func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			respondJSON(t, w, api.User{ID: 1, Username: "admin", Role: "admin"})
		}).
		Build()
	cli := newTestCLI(t, srv.URL)

	out, err := cli.runWithInput("hunter2\n", "login", "-u", "admin", "--password-stdin")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in to "+srv.URL+"/api as admin")

	// A second invocation reads the token back from the state database.
	out, err = cli.run("whoami")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Contains(t, out, "admin (admin) on "+srv.URL+"/api")
	assert.Contains(t, out, "Logged in ")
}

func TestLoginCmd_FirstRunSetup(t *testing.T) {
	srv := newMockServer(t).
		RespondJSON(http.MethodGet, "/auth/setup", api.SetupStatus{NeedsSetup: true}).
		RespondJSON(http.MethodPost, "/auth/setup", api.LoginResponse{Token: "first", User: api.User{Username: "root"}}).
		Build()
	cli := newTestCLI(t, srv.URL)

	out, err := cli.runWithInput("secret\n", "login", "-u", "root", "--password-stdin")
	require.NoError(t, err)
	assert.Contains(t, out, "Created account root")
}

func TestLoginCmd_Validation(t *testing.T) {
	srv := newMockServer(t).Build()
	cli := newTestCLI(t, srv.URL)

	_, err := cli.runWithInput("pw\n", "login", "--password-stdin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--username is required")

	_, err = cli.runWithInput("\n", "login", "-u", "admin", "--password-stdin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")
}

func TestLoginCmd_BadCredentials(t *testing.T) {
	srv := newMockServer(t).
		RespondJSON(http.MethodGet, "/auth/setup", api.SetupStatus{}).
		RespondError(http.MethodPost, "/auth/login", http.StatusUnauthorized, "invalid credentials").
		Build()
	cli := newTestCLI(t, srv.URL)

	_, err := cli.runWithInput("wrong\n", "login", "-u", "admin", "--password-stdin")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogoutCmd_ClearsToken(t *testing.T) {
	var meAuth string
	mock := newMockServer(t).
		RespondJSON(http.MethodGet, "/auth/setup", api.SetupStatus{}).
		RespondJSON(http.MethodPost, "/auth/login", api.LoginResponse{Token: "tok", User: api.User{Username: "admin"}}).
		RespondStatus(http.MethodPost, "/auth/logout", http.StatusNoContent).
		Handle(http.MethodGet, "/auth/me", func(w http.ResponseWriter, r *http.Request) {
			meAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusUnauthorized)
		})
	srv := mock.Build()
	cli := newTestCLI(t, srv.URL)

	_, err := cli.runWithInput("pw\n", "login", "-u", "admin", "--password-stdin")
	require.NoError(t, err)

	out, err := cli.run("logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out of")
	assert.True(t, mock.Called(http.MethodPost, "/auth/logout"))

	_, err = cli.run("whoami")
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Empty(t, meAuth)
}

func TestLogoutCmd_ServerFailureStillSucceeds(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.MethodPost, "/auth/logout", http.StatusInternalServerError, "down").
		Build()
	cli := newTestCLI(t, srv.URL)

	out, err := cli.run("logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out of")
}

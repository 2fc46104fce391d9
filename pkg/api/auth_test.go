package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Login_StoresToken(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/auth/login").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body LoginRequest
			decodeBody(t, r, &body)
			assert.Equal(t, "admin", body.Username)
			assert.Equal(t, "hunter2", body.Password)
			respondJSON(t, w, LoginResponse{Token: "tok", User: User{ID: 1, Username: "admin"}})
		}).
		Build()

	tokens := &MemoryTokens{}
	resp, err := New(srv.URL, WithTokenStore(tokens)).Login(context.Background(), "admin", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Username)

	token, _ := tokens.Token()
	assert.Equal(t, "tok", token)
}

func TestClient_Login_BadCredentialsDoesNotClearOrNotify(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/auth/login").
		RespondError(http.StatusUnauthorized, `{"error":"invalid credentials"}`).
		Build()

	tokens := &MemoryTokens{}
	require.NoError(t, tokens.SetToken("existing"))
	notified := false
	c := New(srv.URL, WithTokenStore(tokens), WithUnauthorizedHandler(func() { notified = true }))

	_, err := c.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, notified)

	token, _ := tokens.Token()
	assert.Equal(t, "existing", token)
}

func TestClient_Login_MissingToken(t *testing.T) {
	srv := newMockServer(t).RespondJSON(LoginResponse{}).Build()

	_, err := New(srv.URL).Login(context.Background(), "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing token")
}

func TestClient_Logout_ClearsEvenOnServerError(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/auth/logout").
		ExpectPOST().
		RespondError(http.StatusInternalServerError, "boom").
		Build()

	tokens := &MemoryTokens{}
	require.NoError(t, tokens.SetToken("tok"))

	err := New(srv.URL, WithTokenStore(tokens)).Logout(context.Background())
	require.Error(t, err)

	token, _ := tokens.Token()
	assert.Empty(t, token)
}

func TestClient_Setup_StoresToken(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/auth/setup").
		ExpectPOST().
		RespondJSON(LoginResponse{Token: "first"}).
		Build()

	tokens := &MemoryTokens{}
	_, err := New(srv.URL, WithTokenStore(tokens)).Setup(context.Background(), "admin", "pw")
	require.NoError(t, err)

	token, _ := tokens.Token()
	assert.Equal(t, "first", token)
}

func TestClient_ChangePassword(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/auth/password").
		ExpectPUT().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			decodeBody(t, r, &body)
			assert.Equal(t, "old", body["currentPassword"])
			assert.Equal(t, "new", body["newPassword"])
			w.WriteHeader(http.StatusNoContent)
		}).
		Build()

	require.NoError(t, New(srv.URL).ChangePassword(context.Background(), "old", "new"))
}

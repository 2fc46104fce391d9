package api

import (
	"context"
	"fmt"
	"net/http"
)

// User is the authenticated account.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SetupStatus reports whether the first admin account still has to be created.
type SetupStatus struct {
	NeedsSetup bool `json:"needsSetup"`
}

// Login exchanges credentials for a token and stores it.
// A 401 here means bad credentials and does not clear anything.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, request{
		method:           http.MethodPost,
		path:             "/auth/login",
		body:             LoginRequest{Username: username, Password: password},
		skipUnauthorized: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login response missing token")
	}
	if err := c.tokens.SetToken(resp.Token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	return &resp, nil
}

// Logout ends the session server-side and always forgets the local token.
func (c *Client) Logout(ctx context.Context) error {
	err := c.post(ctx, "/auth/logout", nil, nil)
	if clearErr := c.tokens.Clear(); clearErr != nil {
		return fmt.Errorf("clear token: %w", clearErr)
	}
	return err
}

// Me returns the current user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp User
	if err := c.get(ctx, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChangePassword updates the current user's password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return c.put(ctx, "/auth/password", body, nil)
}

// SetupStatus reports whether initial setup is pending.
func (c *Client) SetupStatus(ctx context.Context) (*SetupStatus, error) {
	var resp SetupStatus
	if err := c.get(ctx, "/auth/setup", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Setup creates the first admin account and stores the returned token.
func (c *Client) Setup(ctx context.Context, username, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.post(ctx, "/auth/setup", LoginRequest{Username: username, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := c.tokens.SetToken(resp.Token); err != nil {
			return nil, fmt.Errorf("store token: %w", err)
		}
	}
	return &resp, nil
}

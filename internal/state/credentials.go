package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Credentials is an api.TokenStore backed by the state database, keyed by
// server URL so several servers can stay logged in side by side.
type Credentials struct {
	db        *sql.DB
	serverURL string
}

// Session describes a stored login.
type Session struct {
	ServerURL  string
	Username   string
	LoggedInAt time.Time
}

// Token returns the stored token, empty when logged out.
func (c *Credentials) Token() (string, error) {
	var token string
	err := c.db.QueryRowContext(context.Background(),
		`SELECT token FROM credentials WHERE server_url = ?`, c.serverURL).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read credentials: %w", err)
	}
	return token, nil
}

// SetToken stores a token for the server, keeping any remembered username.
func (c *Credentials) SetToken(token string) error {
	now := time.Now().UTC()
	_, err := c.db.ExecContext(context.Background(), `
		INSERT INTO credentials (server_url, token, updated_at, logged_in_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(server_url) DO UPDATE SET
			token = excluded.token,
			updated_at = excluded.updated_at,
			logged_in_at = excluded.logged_in_at`,
		c.serverURL, token, now, now,
	)
	if err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}
	return nil
}

// SetUsername records who the stored token belongs to.
func (c *Credentials) SetUsername(username string) error {
	_, err := c.db.ExecContext(context.Background(),
		`UPDATE credentials SET username = ? WHERE server_url = ?`, username, c.serverURL)
	if err != nil {
		return fmt.Errorf("store username: %w", err)
	}
	return nil
}

// Clear forgets the server's credentials.
func (c *Credentials) Clear() error {
	if _, err := c.db.ExecContext(context.Background(),
		`DELETE FROM credentials WHERE server_url = ?`, c.serverURL); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// Session returns the stored login, or nil when logged out.
func (c *Credentials) Session(ctx context.Context) (*Session, error) {
	var (
		s          = Session{ServerURL: c.serverURL}
		loggedInAt sql.NullTime
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT username, logged_in_at FROM credentials WHERE server_url = ?`, c.serverURL,
	).Scan(&s.Username, &loggedInAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if loggedInAt.Valid {
		s.LoggedInAt = loggedInAt.Time
	}
	return &s, nil
}

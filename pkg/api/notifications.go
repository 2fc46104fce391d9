package api

import (
	"context"
	"fmt"
)

// Notification is a configured notification target.
type Notification struct {
	ID             int64             `json:"id,omitempty"`
	Name           string            `json:"name"`
	Implementation string            `json:"implementation"` // discord, webhook, email, ...
	Settings       map[string]string `json:"settings"`
	OnGrab         bool              `json:"onGrab"`
	OnImport       bool              `json:"onImport"`
	OnUpgrade      bool              `json:"onUpgrade"`
	OnHealthIssue  bool              `json:"onHealthIssue"`
	Enabled        bool              `json:"enabled"`
}

// Notifications lists notification targets.
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var resp []Notification
	if err := c.get(ctx, "/notifications", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateNotification adds a notification target.
func (c *Client) CreateNotification(ctx context.Context, n Notification) (*Notification, error) {
	var resp Notification
	if err := c.post(ctx, "/notifications", n, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateNotification replaces a notification target.
func (c *Client) UpdateNotification(ctx context.Context, n Notification) (*Notification, error) {
	var resp Notification
	if err := c.put(ctx, fmt.Sprintf("/notifications/%d", n.ID), n, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteNotification removes a notification target.
func (c *Client) DeleteNotification(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/notifications/%d", id), nil)
}

// TestNotification sends a test message through the given settings.
func (c *Client) TestNotification(ctx context.Context, n Notification) (*TestResult, error) {
	var resp TestResult
	if err := c.post(ctx, "/notifications/test", n, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

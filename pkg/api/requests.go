package api

import (
	"context"
	"fmt"
	"time"
)

// MediaRequest is a user request for a title to be added.
type MediaRequest struct {
	ID          int64     `json:"id"`
	MediaType   MediaType `json:"mediaType"`
	TMDBID      int64     `json:"tmdbId"`
	Title       string    `json:"title"`
	Year        int       `json:"year,omitempty"`
	Status      string    `json:"status"` // pending, approved, declined, available
	RequestedBy string    `json:"requestedBy"`
	Seasons     []int     `json:"seasons,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RequestCounts tallies requests by status.
type RequestCounts struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Declined  int `json:"declined"`
	Available int `json:"available"`
	Total     int `json:"total"`
}

// CreateRequestInput is the body for POST /requests.
type CreateRequestInput struct {
	MediaType MediaType `json:"mediaType"`
	TMDBID    int64     `json:"tmdbId"`
	Seasons   []int     `json:"seasons,omitempty"`
}

// Requests lists requests, optionally by status.
func (c *Client) Requests(ctx context.Context, status string, page int) (*Paged[MediaRequest], error) {
	var resp Paged[MediaRequest]
	q := newQuery().str("status", status).num("page", page)
	if err := c.get(ctx, "/requests", q.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RequestCounts returns request totals by status.
func (c *Client) RequestCounts(ctx context.Context) (*RequestCounts, error) {
	var resp RequestCounts
	if err := c.get(ctx, "/requests/count", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateRequest files a new request.
func (c *Client) CreateRequest(ctx context.Context, in CreateRequestInput) (*MediaRequest, error) {
	var resp MediaRequest
	if err := c.post(ctx, "/requests", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ApproveRequest approves a pending request.
func (c *Client) ApproveRequest(ctx context.Context, id int64) (*MediaRequest, error) {
	var resp MediaRequest
	if err := c.post(ctx, fmt.Sprintf("/requests/%d/approve", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeclineRequest declines a pending request with an optional reason.
func (c *Client) DeclineRequest(ctx context.Context, id int64, reason string) (*MediaRequest, error) {
	var resp MediaRequest
	var body any
	if reason != "" {
		body = map[string]string{"reason": reason}
	}
	if err := c.post(ctx, fmt.Sprintf("/requests/%d/decline", id), body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteRequest removes a request.
func (c *Client) DeleteRequest(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/requests/%d", id), nil)
}

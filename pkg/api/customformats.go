package api

import (
	"context"
	"fmt"
)

// CustomFormatSpec is one condition of a custom format.
type CustomFormatSpec struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"` // releaseTitle, source, resolution, releaseGroup, size
	Value    string `json:"value"`
	Negate   bool   `json:"negate"`
	Required bool   `json:"required"`
}

// CustomFormat scores releases matching its specifications.
type CustomFormat struct {
	ID             int64              `json:"id,omitempty"`
	Name           string             `json:"name"`
	Score          int                `json:"score"`
	Specifications []CustomFormatSpec `json:"specifications"`
}

// CustomFormatTest is the verdict for a sample release title.
type CustomFormatTest struct {
	Title   string   `json:"title"`
	Matched []string `json:"matched"`
	Score   int      `json:"score"`
}

// CustomFormats lists custom formats.
func (c *Client) CustomFormats(ctx context.Context) ([]CustomFormat, error) {
	var resp []CustomFormat
	if err := c.get(ctx, "/customformats", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CustomFormat fetches one custom format.
func (c *Client) CustomFormat(ctx context.Context, id int64) (*CustomFormat, error) {
	var resp CustomFormat
	if err := c.get(ctx, fmt.Sprintf("/customformats/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateCustomFormat adds a custom format.
func (c *Client) CreateCustomFormat(ctx context.Context, cf CustomFormat) (*CustomFormat, error) {
	var resp CustomFormat
	if err := c.post(ctx, "/customformats", cf, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCustomFormat replaces a custom format.
func (c *Client) UpdateCustomFormat(ctx context.Context, cf CustomFormat) (*CustomFormat, error) {
	var resp CustomFormat
	if err := c.put(ctx, fmt.Sprintf("/customformats/%d", cf.ID), cf, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteCustomFormat removes a custom format.
func (c *Client) DeleteCustomFormat(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/customformats/%d", id), nil)
}

// TestCustomFormat scores a release title against every custom format.
func (c *Client) TestCustomFormat(ctx context.Context, title string) (*CustomFormatTest, error) {
	var resp CustomFormatTest
	if err := c.post(ctx, "/customformats/test", map[string]string{"title": title}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package api

import (
	"context"
	"fmt"
)

// ArrInstance is an external Sonarr or Radarr server to import from.
type ArrInstance struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name"`
	Kind   string `json:"kind"` // sonarr, radarr
	URL    string `json:"url"`
	APIKey string `json:"apiKey,omitempty"`
}

// ArrProfile is a quality profile defined on an external instance.
type ArrProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArrImportRequest maps remote profiles to local ones for an import.
type ArrImportRequest struct {
	ProfileMap     map[int64]int64 `json:"profileMap"`
	RootFolderPath string          `json:"rootFolderPath"`
	Monitored      bool            `json:"monitored"`
}

// ArrImportResult counts what an import brought in.
type ArrImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ArrInstances lists configured external instances.
func (c *Client) ArrInstances(ctx context.Context) ([]ArrInstance, error) {
	var resp []ArrInstance
	if err := c.get(ctx, "/arr", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AddArrInstance registers an external instance.
func (c *Client) AddArrInstance(ctx context.Context, in ArrInstance) (*ArrInstance, error) {
	var resp ArrInstance
	if err := c.post(ctx, "/arr", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteArrInstance removes an external instance.
func (c *Client) DeleteArrInstance(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/arr/%d", id), nil)
}

// TestArrInstance checks that the server can reach an external instance.
func (c *Client) TestArrInstance(ctx context.Context, in ArrInstance) (*TestResult, error) {
	var resp TestResult
	if err := c.post(ctx, "/arr/test", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ArrProfiles lists the quality profiles of an external instance.
func (c *Client) ArrProfiles(ctx context.Context, id int64) ([]ArrProfile, error) {
	var resp []ArrProfile
	if err := c.get(ctx, fmt.Sprintf("/arr/%d/profiles", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ImportFromArr copies the library of an external instance.
func (c *Client) ImportFromArr(ctx context.Context, id int64, req ArrImportRequest) (*ArrImportResult, error) {
	var resp ArrImportResult
	if err := c.post(ctx, fmt.Sprintf("/arr/%d/import", id), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package api

import (
	"context"
	"fmt"
	"time"
)

// ScanStatus reports the progress of a library scan.
type ScanStatus struct {
	Running   bool      `json:"running"`
	Scope     string    `json:"scope,omitempty"`
	Scanned   int       `json:"scanned"`
	Total     int       `json:"total"`
	Matched   int       `json:"matched"`
	Unmatched int       `json:"unmatched"`
	StartedAt time.Time `json:"startedAt,omitempty"`
	EndedAt   time.Time `json:"endedAt,omitempty"`
}

// ManualImportItem is a file the server found in a folder, with its best guess
// at what it is.
type ManualImportItem struct {
	Path         string   `json:"path"`
	RelativePath string   `json:"relativePath,omitempty"`
	Name         string   `json:"name"`
	Size         int64    `json:"size"`
	Quality      string   `json:"quality,omitempty"`
	MovieID      int64    `json:"movieId,omitempty"`
	SeriesID     int64    `json:"seriesId,omitempty"`
	SeasonNumber int      `json:"seasonNumber,omitempty"`
	EpisodeIDs   []int64  `json:"episodeIds,omitempty"`
	DownloadID   string   `json:"downloadId,omitempty"`
	Rejections   []string `json:"rejections,omitempty"`
}

// ManualImportRequest imports files to chosen targets.
type ManualImportRequest struct {
	Files      []ManualImportFile `json:"files"`
	ImportMode string             `json:"importMode"` // move, copy
}

// ManualImportFile maps one file to its library target.
type ManualImportFile struct {
	Path         string  `json:"path"`
	Quality      string  `json:"quality"`
	MovieID      int64   `json:"movieId,omitempty"`
	SeriesID     int64   `json:"seriesId,omitempty"`
	SeasonNumber int     `json:"seasonNumber,omitempty"`
	EpisodeIDs   []int64 `json:"episodeIds,omitempty"`
	DownloadID   string  `json:"downloadId,omitempty"`
}

// ManualImportResult counts what the server imported.
type ManualImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// ScanLibrary starts a full scan of every root folder.
func (c *Client) ScanLibrary(ctx context.Context) (*ScanStatus, error) {
	var resp ScanStatus
	if err := c.post(ctx, "/scanner/scan", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ScanMovie rescans one movie folder.
func (c *Client) ScanMovie(ctx context.Context, movieID int64) error {
	return c.post(ctx, fmt.Sprintf("/scanner/movie/%d", movieID), nil, nil)
}

// ScanSeriesEpisodes rescans one series folder for episode files.
func (c *Client) ScanSeriesEpisodes(ctx context.Context, seriesID int64) error {
	return c.post(ctx, fmt.Sprintf("/scanner/series/%d/episodes", seriesID), nil, nil)
}

// ScanStatus reports scan progress.
func (c *Client) ScanStatus(ctx context.Context) (*ScanStatus, error) {
	var resp ScanStatus
	if err := c.get(ctx, "/scanner/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ManualImportCandidates lists importable files under folder.
func (c *Client) ManualImportCandidates(ctx context.Context, folder, downloadID string) ([]ManualImportItem, error) {
	var resp []ManualImportItem
	q := newQuery().str("folder", folder).str("downloadId", downloadID)
	if err := c.get(ctx, "/scanner/manualimport", q.values(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ManualImport imports the given files.
func (c *Client) ManualImport(ctx context.Context, req ManualImportRequest) (*ManualImportResult, error) {
	var resp ManualImportResult
	if err := c.post(ctx, "/scanner/manualimport", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

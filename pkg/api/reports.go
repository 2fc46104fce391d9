package api

import (
	"context"
	"time"
)

// LibrarySummary is the headline library report.
type LibrarySummary struct {
	Movies          int   `json:"movies"`
	Series          int   `json:"series"`
	Episodes        int   `json:"episodes"`
	Missing         int   `json:"missing"`
	CutoffUnmet     int   `json:"cutoffUnmet"`
	TotalSize       int64 `json:"totalSize"`
	AddedLast30Days int   `json:"addedLast30Days"`
}

// QualityCount is the number of files at one quality tier.
type QualityCount struct {
	Quality string `json:"quality"`
	Count   int    `json:"count"`
	Size    int64  `json:"size"`
}

// DiskUsageEntry is space used under one root folder.
type DiskUsageEntry struct {
	Path      string `json:"path"`
	Used      int64  `json:"used"`
	Free      int64  `json:"free"`
	Total     int64  `json:"total"`
	FileCount int    `json:"fileCount"`
}

// ActivityDay counts events on one day.
type ActivityDay struct {
	Date     time.Time `json:"date"`
	Grabbed  int       `json:"grabbed"`
	Imported int       `json:"imported"`
	Failed   int       `json:"failed"`
}

// LibrarySummary returns headline library numbers.
func (c *Client) LibrarySummary(ctx context.Context) (*LibrarySummary, error) {
	var resp LibrarySummary
	if err := c.get(ctx, "/reports/summary", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QualityBreakdown counts files per quality tier.
func (c *Client) QualityBreakdown(ctx context.Context, mediaType MediaType) ([]QualityCount, error) {
	var resp []QualityCount
	if err := c.get(ctx, "/reports/quality", newQuery().str("mediaType", string(mediaType)).values(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DiskUsage reports space per root folder.
func (c *Client) DiskUsage(ctx context.Context) ([]DiskUsageEntry, error) {
	var resp []DiskUsageEntry
	if err := c.get(ctx, "/reports/disk", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ActivityReport counts grabs and imports per day over the last days.
func (c *Client) ActivityReport(ctx context.Context, days int) ([]ActivityDay, error) {
	var resp []ActivityDay
	if err := c.get(ctx, "/reports/activity", newQuery().num("days", days).values(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

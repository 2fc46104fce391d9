package api

import (
	"context"
	"fmt"
	"time"
)

// Release is a search result from an indexer.
type Release struct {
	GUID         string    `json:"guid"`
	Title        string    `json:"title"`
	Indexer      string    `json:"indexer"`
	IndexerID    int64     `json:"indexerId"`
	Protocol     string    `json:"protocol"`
	Quality      string    `json:"quality"`
	Size         int64     `json:"size"`
	Seeders      int       `json:"seeders,omitempty"`
	Leechers     int       `json:"leechers,omitempty"`
	Age          int       `json:"ageDays"`
	PublishDate  time.Time `json:"publishDate"`
	DownloadURL  string    `json:"downloadUrl"`
	InfoURL      string    `json:"infoUrl,omitempty"`
	Score        int       `json:"score"`
	Approved     bool      `json:"approved"`
	Rejections   []string  `json:"rejections,omitempty"`
	MovieID      int64     `json:"movieId,omitempty"`
	SeriesID     int64     `json:"seriesId,omitempty"`
	SeasonNumber int       `json:"seasonNumber,omitempty"`
	EpisodeIDs   []int64   `json:"episodeIds,omitempty"`
}

// ReleaseQuery narrows an interactive release search.
type ReleaseQuery struct {
	MovieID      int64
	SeriesID     int64
	SeasonNumber int
	EpisodeID    int64
	Query        string
}

// GrabRequest sends a release to a download client.
type GrabRequest struct {
	GUID        string  `json:"guid"`
	IndexerID   int64   `json:"indexerId"`
	DownloadURL string  `json:"downloadUrl,omitempty"`
	Title       string  `json:"title,omitempty"`
	MovieID     int64   `json:"movieId,omitempty"`
	SeriesID    int64   `json:"seriesId,omitempty"`
	EpisodeIDs  []int64 `json:"episodeIds,omitempty"`
}

// GrabResult reports what the server queued.
type GrabResult struct {
	DownloadID string `json:"downloadId"`
	Client     string `json:"client"`
	Status     string `json:"status"`
}

// HistoryQuery filters the history list.
type HistoryQuery struct {
	EventType string
	MovieID   int64
	SeriesID  int64
	Page      int
	PageSize  int
}

// BlocklistItem is a release the server will not grab again.
type BlocklistItem struct {
	ID          int64     `json:"id"`
	SourceTitle string    `json:"sourceTitle"`
	Quality     string    `json:"quality,omitempty"`
	Indexer     string    `json:"indexer,omitempty"`
	Message     string    `json:"message,omitempty"`
	MovieID     int64     `json:"movieId,omitempty"`
	SeriesID    int64     `json:"seriesId,omitempty"`
	Date        time.Time `json:"date"`
}

// CommandResult acknowledges a queued server command.
type CommandResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// SearchReleases runs an interactive indexer search.
func (c *Client) SearchReleases(ctx context.Context, rq ReleaseQuery) ([]Release, error) {
	var resp []Release
	q := newQuery().
		id("movieId", rq.MovieID).
		id("seriesId", rq.SeriesID).
		num("seasonNumber", rq.SeasonNumber).
		id("episodeId", rq.EpisodeID).
		str("query", rq.Query)
	if err := c.get(ctx, "/automation/releases", q.values(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GrabRelease sends a release to the download client.
func (c *Client) GrabRelease(ctx context.Context, g GrabRequest) (*GrabResult, error) {
	var resp GrabResult
	if err := c.post(ctx, "/automation/releases/grab", g, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Queue returns active downloads.
func (c *Client) Queue(ctx context.Context) ([]Download, error) {
	var resp []Download
	if err := c.get(ctx, "/automation/queue", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SyncDownloads asks the server to refresh download client state now.
func (c *Client) SyncDownloads(ctx context.Context) error {
	return c.post(ctx, "/automation/queue/sync", nil, nil)
}

// RemoveDownload drops a queue entry, optionally removing it from the
// download client and blocklisting the release.
func (c *Client) RemoveDownload(ctx context.Context, id int64, removeFromClient, blocklist bool) error {
	q := newQuery().flag("removeFromClient", removeFromClient).flag("blocklist", blocklist)
	return c.delete(ctx, fmt.Sprintf("/automation/queue/%d", id), q.values())
}

// History returns past events, newest first.
func (c *Client) History(ctx context.Context, hq HistoryQuery) (*Paged[HistoryRecord], error) {
	var resp Paged[HistoryRecord]
	q := newQuery().
		str("eventType", hq.EventType).
		id("movieId", hq.MovieID).
		id("seriesId", hq.SeriesID).
		num("page", hq.Page).
		num("pageSize", hq.PageSize)
	if err := c.get(ctx, "/automation/history", q.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Blocklist returns blocklisted releases.
func (c *Client) Blocklist(ctx context.Context, page int) (*Paged[BlocklistItem], error) {
	var resp Paged[BlocklistItem]
	if err := c.get(ctx, "/automation/blocklist", newQuery().num("page", page).values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteBlocklistItem un-blocks a release.
func (c *Client) DeleteBlocklistItem(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/automation/blocklist/%d", id), nil)
}

func (c *Client) command(ctx context.Context, path string, body any) (*CommandResult, error) {
	var resp CommandResult
	if err := c.post(ctx, path, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchMovie triggers an automatic search for one movie.
func (c *Client) SearchMovie(ctx context.Context, movieID int64) (*CommandResult, error) {
	return c.command(ctx, fmt.Sprintf("/automation/search/movie/%d", movieID), nil)
}

// SearchSeries triggers an automatic search for every monitored episode of a series.
func (c *Client) SearchSeries(ctx context.Context, seriesID int64) (*CommandResult, error) {
	return c.command(ctx, fmt.Sprintf("/automation/search/series/%d", seriesID), nil)
}

// SearchSeason triggers an automatic search for one season.
func (c *Client) SearchSeason(ctx context.Context, seriesID int64, season int) (*CommandResult, error) {
	return c.command(ctx, fmt.Sprintf("/automation/search/series/%d/season/%d", seriesID, season), nil)
}

// SearchEpisode triggers an automatic search for one episode.
func (c *Client) SearchEpisode(ctx context.Context, episodeID int64) (*CommandResult, error) {
	return c.command(ctx, fmt.Sprintf("/automation/search/episode/%d", episodeID), nil)
}

// SearchMissing searches every monitored item without a file.
func (c *Client) SearchMissing(ctx context.Context, mediaType MediaType) (*CommandResult, error) {
	return c.command(ctx, "/automation/search/missing", map[string]MediaType{"mediaType": mediaType})
}

// SearchCutoffUnmet searches every item whose file is below its profile cutoff.
func (c *Client) SearchCutoffUnmet(ctx context.Context, mediaType MediaType) (*CommandResult, error) {
	return c.command(ctx, "/automation/search/cutoff", map[string]MediaType{"mediaType": mediaType})
}

// RSSSync triggers an RSS sync across indexers.
func (c *Client) RSSSync(ctx context.Context) (*CommandResult, error) {
	return c.command(ctx, "/automation/rss", nil)
}

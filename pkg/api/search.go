package api

import (
	"context"
	"fmt"
)

// DiscoverItem is a metadata search/discover result (TMDB-backed).
type DiscoverItem struct {
	TMDBID       int64     `json:"tmdbId"`
	MediaType    MediaType `json:"mediaType"`
	Title        string    `json:"title"`
	Year         int       `json:"year,omitempty"`
	Overview     string    `json:"overview,omitempty"`
	PosterPath   string    `json:"posterPath,omitempty"`
	BackdropPath string    `json:"backdropPath,omitempty"`
	VoteAverage  float64   `json:"voteAverage,omitempty"`
	Popularity   float64   `json:"popularity,omitempty"`
	InLibrary    bool      `json:"inLibrary,omitempty"`
	LibraryID    int64     `json:"libraryId,omitempty"`
}

// DiscoverPage is one page of discover results.
type DiscoverPage struct {
	Page         int            `json:"page"`
	TotalPages   int            `json:"totalPages"`
	TotalResults int            `json:"totalResults"`
	Results      []DiscoverItem `json:"results"`
}

// HasMore reports whether a later page exists.
func (p *DiscoverPage) HasMore() bool {
	return p.Page < p.TotalPages
}

// MediaDetails is the full metadata for a movie or series.
type MediaDetails struct {
	DiscoverItem
	IMDBID       string   `json:"imdbId,omitempty"`
	TVDBID       int64    `json:"tvdbId,omitempty"`
	Runtime      int      `json:"runtime,omitempty"`
	Genres       []string `json:"genres,omitempty"`
	Status       string   `json:"status,omitempty"`
	ReleaseDate  string   `json:"releaseDate,omitempty"`
	SeasonCount  int      `json:"seasonCount,omitempty"`
	EpisodeCount int      `json:"episodeCount,omitempty"`
	Network      string   `json:"network,omitempty"`
	Cast         []string `json:"cast,omitempty"`
}

func (c *Client) discoverPage(ctx context.Context, path string, q query) (*DiscoverPage, error) {
	var resp DiscoverPage
	if err := c.get(ctx, path, q.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search runs a multi (movie + tv) metadata search.
func (c *Client) Search(ctx context.Context, text string, page int) (*DiscoverPage, error) {
	return c.discoverPage(ctx, "/search", newQuery().str("query", text).num("page", page))
}

// SearchMovies searches movie metadata only.
func (c *Client) SearchMovies(ctx context.Context, text string, page int) (*DiscoverPage, error) {
	return c.discoverPage(ctx, "/search/movies", newQuery().str("query", text).num("page", page))
}

// SearchTV searches TV metadata only.
func (c *Client) SearchTV(ctx context.Context, text string, page int) (*DiscoverPage, error) {
	return c.discoverPage(ctx, "/search/tv", newQuery().str("query", text).num("page", page))
}

// Trending returns trending titles; mediaType may be empty for both.
func (c *Client) Trending(ctx context.Context, mediaType MediaType, page int) (*DiscoverPage, error) {
	return c.discoverPage(ctx, "/search/trending", newQuery().str("type", string(mediaType)).num("page", page))
}

// Popular returns popular titles.
func (c *Client) Popular(ctx context.Context, mediaType MediaType, page int) (*DiscoverPage, error) {
	return c.discoverPage(ctx, "/search/popular", newQuery().str("type", string(mediaType)).num("page", page))
}

// Upcoming returns upcoming releases.
func (c *Client) Upcoming(ctx context.Context, mediaType MediaType, page int) (*DiscoverPage, error) {
	return c.discoverPage(ctx, "/search/upcoming", newQuery().str("type", string(mediaType)).num("page", page))
}

// MovieDetails returns full movie metadata.
func (c *Client) MovieDetails(ctx context.Context, tmdbID int64) (*MediaDetails, error) {
	var resp MediaDetails
	if err := c.get(ctx, fmt.Sprintf("/search/movie/%d", tmdbID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SeriesDetails returns full series metadata.
func (c *Client) SeriesDetails(ctx context.Context, tmdbID int64) (*MediaDetails, error) {
	var resp MediaDetails
	if err := c.get(ctx, fmt.Sprintf("/search/tv/%d", tmdbID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Recommendations returns titles similar to the given one.
func (c *Client) Recommendations(ctx context.Context, mediaType MediaType, tmdbID int64, page int) (*DiscoverPage, error) {
	kind := "movie"
	if mediaType == MediaTypeSeries {
		kind = "tv"
	}
	return c.discoverPage(ctx, fmt.Sprintf("/search/%s/%d/recommendations", kind, tmdbID), newQuery().num("page", page))
}

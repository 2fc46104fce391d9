package api

import (
	"context"
	"fmt"
	"strconv"
)

// MovieListQuery filters the movie list server-side.
type MovieListQuery struct {
	Monitored *bool
	HasFile   *bool
	Search    string
}

// AddMovieInput is the body for adding a movie to the library.
type AddMovieInput struct {
	TMDBID           int64   `json:"tmdbId"`
	Title            string  `json:"title,omitempty"`
	Year             int     `json:"year,omitempty"`
	QualityProfileID int64   `json:"qualityProfileId"`
	RootFolderPath   string  `json:"rootFolderPath"`
	Monitored        bool    `json:"monitored"`
	SearchOnAdd      bool    `json:"searchOnAdd"`
	Tags             []int64 `json:"tags,omitempty"`
}

// AddSeriesInput is the body for adding a series to the library.
type AddSeriesInput struct {
	TMDBID           int64   `json:"tmdbId"`
	TVDBID           int64   `json:"tvdbId,omitempty"`
	Title            string  `json:"title,omitempty"`
	Year             int     `json:"year,omitempty"`
	QualityProfileID int64   `json:"qualityProfileId"`
	RootFolderPath   string  `json:"rootFolderPath"`
	Monitored        bool    `json:"monitored"`
	MonitorMode      string  `json:"monitorMode,omitempty"` // all, future, missing, existing, firstSeason, latestSeason, none
	SeasonFolder     bool    `json:"seasonFolder"`
	SeriesType       string  `json:"seriesType,omitempty"`
	SearchOnAdd      bool    `json:"searchOnAdd"`
	Tags             []int64 `json:"tags,omitempty"`
}

// BulkEditInput changes several library items at once. Nil fields are left
// untouched.
type BulkEditInput struct {
	IDs              []int64 `json:"ids"`
	Monitored        *bool   `json:"monitored,omitempty"`
	QualityProfileID *int64  `json:"qualityProfileId,omitempty"`
	RootFolderPath   *string `json:"rootFolderPath,omitempty"`
	SeriesType       *string `json:"seriesType,omitempty"`
	SeasonFolder     *bool   `json:"seasonFolder,omitempty"`
	MoveFiles        bool    `json:"moveFiles,omitempty"`
	AddTags          []int64 `json:"addTags,omitempty"`
	RemoveTags       []int64 `json:"removeTags,omitempty"`
}

// RenamePreview is one proposed file rename.
type RenamePreview struct {
	FileID       int64  `json:"fileId"`
	ExistingPath string `json:"existingPath"`
	NewPath      string `json:"newPath"`
}

// LibraryStats summarizes the library.
type LibraryStats struct {
	Movies         int   `json:"movies"`
	MoviesWithFile int   `json:"moviesWithFile"`
	Series         int   `json:"series"`
	Episodes       int   `json:"episodes"`
	EpisodeFiles   int   `json:"episodeFiles"`
	Monitored      int   `json:"monitored"`
	SizeOnDisk     int64 `json:"sizeOnDisk"`
}

func movieQuery(mq MovieListQuery) query {
	return newQuery().
		str("search", mq.Search).
		tristate("monitored", mq.Monitored).
		tristate("hasFile", mq.HasFile)
}

// Movies lists library movies.
func (c *Client) Movies(ctx context.Context, mq MovieListQuery) ([]Movie, error) {
	var resp []Movie
	if err := c.get(ctx, "/library/movies", movieQuery(mq).values(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Movie fetches one library movie.
func (c *Client) Movie(ctx context.Context, id int64) (*Movie, error) {
	var resp Movie
	if err := c.get(ctx, fmt.Sprintf("/library/movies/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddMovie adds a movie. A movie already in the library yields ErrConflict.
func (c *Client) AddMovie(ctx context.Context, in AddMovieInput) (*Movie, error) {
	var resp Movie
	if err := c.post(ctx, "/library/movies", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateMovie replaces editable movie fields.
func (c *Client) UpdateMovie(ctx context.Context, m Movie) (*Movie, error) {
	var resp Movie
	if err := c.put(ctx, fmt.Sprintf("/library/movies/%d", m.ID), m, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteMovie removes a movie, optionally deleting its files.
func (c *Client) DeleteMovie(ctx context.Context, id int64, deleteFiles bool) error {
	return c.delete(ctx, fmt.Sprintf("/library/movies/%d", id), newQuery().flag("deleteFiles", deleteFiles).values())
}

// BulkEditMovies applies the same change to several movies.
func (c *Client) BulkEditMovies(ctx context.Context, in BulkEditInput) ([]Movie, error) {
	var resp []Movie
	if err := c.put(ctx, "/library/movies/bulk", in, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// MovieFiles lists files attached to a movie.
func (c *Client) MovieFiles(ctx context.Context, movieID int64) ([]MediaFile, error) {
	var resp []MediaFile
	if err := c.get(ctx, fmt.Sprintf("/library/movies/%d/files", movieID), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteMovieFile deletes a movie file from disk.
func (c *Client) DeleteMovieFile(ctx context.Context, movieID, fileID int64) error {
	return c.delete(ctx, fmt.Sprintf("/library/movies/%d/files/%d", movieID, fileID), nil)
}

// RefreshMovie re-fetches metadata for a movie.
func (c *Client) RefreshMovie(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/library/movies/%d/refresh", id), nil, nil)
}

// PreviewMovieRename lists the renames the server would perform.
func (c *Client) PreviewMovieRename(ctx context.Context, id int64) ([]RenamePreview, error) {
	var resp []RenamePreview
	if err := c.get(ctx, fmt.Sprintf("/library/movies/%d/rename", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// RenameMovie applies the renames for the given files.
func (c *Client) RenameMovie(ctx context.Context, id int64, fileIDs []int64) error {
	return c.post(ctx, fmt.Sprintf("/library/movies/%d/rename", id), map[string][]int64{"fileIds": fileIDs}, nil)
}

// SeriesList lists library series.
func (c *Client) SeriesList(ctx context.Context, search string) ([]Series, error) {
	var resp []Series
	if err := c.get(ctx, "/library/series", newQuery().str("search", search).values(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Series fetches one library series.
func (c *Client) Series(ctx context.Context, id int64) (*Series, error) {
	var resp Series
	if err := c.get(ctx, fmt.Sprintf("/library/series/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddSeries adds a series. A series already in the library yields ErrConflict.
func (c *Client) AddSeries(ctx context.Context, in AddSeriesInput) (*Series, error) {
	var resp Series
	if err := c.post(ctx, "/library/series", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateSeries replaces editable series fields.
func (c *Client) UpdateSeries(ctx context.Context, s Series) (*Series, error) {
	var resp Series
	if err := c.put(ctx, fmt.Sprintf("/library/series/%d", s.ID), s, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteSeries removes a series, optionally deleting its files.
func (c *Client) DeleteSeries(ctx context.Context, id int64, deleteFiles bool) error {
	return c.delete(ctx, fmt.Sprintf("/library/series/%d", id), newQuery().flag("deleteFiles", deleteFiles).values())
}

// BulkEditSeries applies the same change to several series.
func (c *Client) BulkEditSeries(ctx context.Context, in BulkEditInput) ([]Series, error) {
	var resp []Series
	if err := c.put(ctx, "/library/series/bulk", in, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// RefreshSeries re-fetches metadata and episodes for a series.
func (c *Client) RefreshSeries(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/library/series/%d/refresh", id), nil, nil)
}

// Seasons lists the seasons of a series.
func (c *Client) Seasons(ctx context.Context, seriesID int64) ([]Season, error) {
	var resp []Season
	if err := c.get(ctx, fmt.Sprintf("/library/series/%d/seasons", seriesID), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SetSeasonMonitored toggles monitoring for a whole season.
func (c *Client) SetSeasonMonitored(ctx context.Context, seriesID int64, season int, monitored bool) error {
	path := fmt.Sprintf("/library/series/%d/seasons/%d", seriesID, season)
	return c.put(ctx, path, map[string]bool{"monitored": monitored}, nil)
}

// Episodes lists episodes of a series; season < 0 returns every season.
func (c *Client) Episodes(ctx context.Context, seriesID int64, season int) ([]Episode, error) {
	var resp []Episode
	q := newQuery()
	if season >= 0 {
		q.values().Set("season", strconv.Itoa(season))
	}
	if err := c.get(ctx, fmt.Sprintf("/library/series/%d/episodes", seriesID), q.values(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateEpisode replaces editable episode fields.
func (c *Client) UpdateEpisode(ctx context.Context, e Episode) (*Episode, error) {
	var resp Episode
	if err := c.put(ctx, fmt.Sprintf("/library/episodes/%d", e.ID), e, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetEpisodesMonitored toggles monitoring for a set of episodes.
func (c *Client) SetEpisodesMonitored(ctx context.Context, episodeIDs []int64, monitored bool) error {
	body := struct {
		EpisodeIDs []int64 `json:"episodeIds"`
		Monitored  bool    `json:"monitored"`
	}{episodeIDs, monitored}
	return c.put(ctx, "/library/episodes/monitor", body, nil)
}

// PreviewSeriesRename lists the renames the server would perform.
func (c *Client) PreviewSeriesRename(ctx context.Context, id int64) ([]RenamePreview, error) {
	var resp []RenamePreview
	if err := c.get(ctx, fmt.Sprintf("/library/series/%d/rename", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// RenameSeries applies the renames for the given files.
func (c *Client) RenameSeries(ctx context.Context, id int64, fileIDs []int64) error {
	return c.post(ctx, fmt.Sprintf("/library/series/%d/rename", id), map[string][]int64{"fileIds": fileIDs}, nil)
}

// Stats returns library totals.
func (c *Client) Stats(ctx context.Context) (*LibraryStats, error) {
	var resp LibraryStats
	if err := c.get(ctx, "/library/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

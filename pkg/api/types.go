package api

import "time"

// MediaType distinguishes movies from series in mixed lists.
type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeSeries MediaType = "tv"
)

// MediaFile is a file on disk attached to a movie or episode.
type MediaFile struct {
	ID           int64     `json:"id"`
	Path         string    `json:"path"`
	RelativePath string    `json:"relativePath,omitempty"`
	Size         int64     `json:"size"`
	Quality      string    `json:"quality"`
	DateAdded    time.Time `json:"dateAdded"`
}

// Movie mirrors a library movie.
type Movie struct {
	ID               int64      `json:"id"`
	TMDBID           int64      `json:"tmdbId"`
	IMDBID           string     `json:"imdbId,omitempty"`
	Title            string     `json:"title"`
	OriginalTitle    string     `json:"originalTitle,omitempty"`
	Year             int        `json:"year"`
	Overview         string     `json:"overview,omitempty"`
	Status           string     `json:"status"`
	Monitored        bool       `json:"monitored"`
	HasFile          bool       `json:"hasFile"`
	QualityProfileID int64      `json:"qualityProfileId"`
	RootFolderPath   string     `json:"rootFolderPath,omitempty"`
	Path             string     `json:"path,omitempty"`
	PosterPath       string     `json:"posterPath,omitempty"`
	Runtime          int        `json:"runtime,omitempty"`
	Genres           []string   `json:"genres,omitempty"`
	Tags             []int64    `json:"tags,omitempty"`
	SizeOnDisk       int64      `json:"sizeOnDisk"`
	Added            time.Time  `json:"added"`
	MovieFile        *MediaFile `json:"movieFile,omitempty"`
}

// SeasonStatistics summarizes one season's files.
type SeasonStatistics struct {
	EpisodeCount      int     `json:"episodeCount"`
	EpisodeFileCount  int     `json:"episodeFileCount"`
	TotalEpisodeCount int     `json:"totalEpisodeCount"`
	SizeOnDisk        int64   `json:"sizeOnDisk"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes"`
}

// Season mirrors a series season.
type Season struct {
	SeasonNumber int               `json:"seasonNumber"`
	Monitored    bool              `json:"monitored"`
	Statistics   *SeasonStatistics `json:"statistics,omitempty"`
}

// SeriesStatistics summarizes a whole series.
type SeriesStatistics struct {
	SeasonCount       int     `json:"seasonCount"`
	EpisodeCount      int     `json:"episodeCount"`
	EpisodeFileCount  int     `json:"episodeFileCount"`
	SizeOnDisk        int64   `json:"sizeOnDisk"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes"`
}

// Series mirrors a library series.
type Series struct {
	ID               int64             `json:"id"`
	TVDBID           int64             `json:"tvdbId,omitempty"`
	TMDBID           int64             `json:"tmdbId,omitempty"`
	Title            string            `json:"title"`
	Year             int               `json:"year"`
	Overview         string            `json:"overview,omitempty"`
	Status           string            `json:"status"`
	Network          string            `json:"network,omitempty"`
	Monitored        bool              `json:"monitored"`
	QualityProfileID int64             `json:"qualityProfileId"`
	RootFolderPath   string            `json:"rootFolderPath,omitempty"`
	Path             string            `json:"path,omitempty"`
	PosterPath       string            `json:"posterPath,omitempty"`
	SeasonFolder     bool              `json:"seasonFolder"`
	SeriesType       string            `json:"seriesType,omitempty"`
	Tags             []int64           `json:"tags,omitempty"`
	Seasons          []Season          `json:"seasons,omitempty"`
	Statistics       *SeriesStatistics `json:"statistics,omitempty"`
	Added            time.Time         `json:"added"`
}

// HasFile reports whether any episode of the series has a file on disk.
func (s *Series) HasFile() bool {
	return s.Statistics != nil && s.Statistics.EpisodeFileCount > 0
}

// Episode mirrors a single episode.
type Episode struct {
	ID            int64      `json:"id"`
	SeriesID      int64      `json:"seriesId"`
	SeasonNumber  int        `json:"seasonNumber"`
	EpisodeNumber int        `json:"episodeNumber"`
	Title         string     `json:"title"`
	Overview      string     `json:"overview,omitempty"`
	AirDate       string     `json:"airDate,omitempty"` // YYYY-MM-DD
	AirDateUTC    *time.Time `json:"airDateUtc,omitempty"`
	Monitored     bool       `json:"monitored"`
	HasFile       bool       `json:"hasFile"`
	EpisodeFile   *MediaFile `json:"episodeFile,omitempty"`
}

// QualityProfileItem is one quality tier in a profile.
type QualityProfileItem struct {
	Quality string `json:"quality"`
	Allowed bool   `json:"allowed"`
}

// QualityProfile is a named upgrade policy: a cutoff plus allowed tiers.
type QualityProfile struct {
	ID             int64                `json:"id"`
	Name           string               `json:"name"`
	Cutoff         string               `json:"cutoff"`
	UpgradeAllowed bool                 `json:"upgradeAllowed"`
	Items          []QualityProfileItem `json:"items"`
}

// Indexer is a configured Torznab/Newznab search source.
type Indexer struct {
	ID             int64  `json:"id,omitempty"`
	Name           string `json:"name"`
	Implementation string `json:"implementation"` // torznab, newznab
	Protocol       string `json:"protocol"`       // torrent, usenet
	URL            string `json:"url"`
	APIKey         string `json:"apiKey,omitempty"`
	Categories     []int  `json:"categories,omitempty"`
	Priority       int    `json:"priority"`
	Enabled        bool   `json:"enabled"`
	EnableRSS      bool   `json:"enableRss"`
	EnableSearch   bool   `json:"enableSearch"`
}

// Download is an entry in the download queue.
type Download struct {
	ID             int64     `json:"id"`
	DownloadID     string    `json:"downloadId,omitempty"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	Protocol       string    `json:"protocol,omitempty"`
	DownloadClient string    `json:"downloadClient,omitempty"`
	Indexer        string    `json:"indexer,omitempty"`
	Quality        string    `json:"quality,omitempty"`
	Size           int64     `json:"size"`
	SizeLeft       int64     `json:"sizeLeft"`
	Progress       float64   `json:"progress"`
	TimeLeft       string    `json:"timeLeft,omitempty"`
	ErrorMessage   string    `json:"errorMessage,omitempty"`
	MediaType      MediaType `json:"mediaType,omitempty"`
	MovieID        int64     `json:"movieId,omitempty"`
	SeriesID       int64     `json:"seriesId,omitempty"`
	EpisodeID      int64     `json:"episodeId,omitempty"`
	Added          time.Time `json:"added"`
}

// HistoryRecord is one past grab/import/failure event.
type HistoryRecord struct {
	ID          int64             `json:"id"`
	EventType   string            `json:"eventType"`
	SourceTitle string            `json:"sourceTitle"`
	Quality     string            `json:"quality,omitempty"`
	MediaType   MediaType         `json:"mediaType,omitempty"`
	MovieID     int64             `json:"movieId,omitempty"`
	SeriesID    int64             `json:"seriesId,omitempty"`
	EpisodeID   int64             `json:"episodeId,omitempty"`
	Date        time.Time         `json:"date"`
	Data        map[string]string `json:"data,omitempty"`
}

// Paged wraps a paginated server list.
type Paged[T any] struct {
	Page         int `json:"page"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
	Records      []T `json:"records"`
}

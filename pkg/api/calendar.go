package api

import (
	"context"
	"net/url"
	"time"
)

// CalendarEntry is a movie release or episode air date.
type CalendarEntry struct {
	MediaType     MediaType `json:"mediaType"`
	MovieID       int64     `json:"movieId,omitempty"`
	SeriesID      int64     `json:"seriesId,omitempty"`
	EpisodeID     int64     `json:"episodeId,omitempty"`
	Title         string    `json:"title"`
	SeriesTitle   string    `json:"seriesTitle,omitempty"`
	SeasonNumber  int       `json:"seasonNumber,omitempty"`
	EpisodeNumber int       `json:"episodeNumber,omitempty"`
	ReleaseType   string    `json:"releaseType,omitempty"` // cinema, digital, physical, airing
	Date          time.Time `json:"date"`
	HasFile       bool      `json:"hasFile"`
	Monitored     bool      `json:"monitored"`
}

// Calendar returns entries between start and end (inclusive dates).
func (c *Client) Calendar(ctx context.Context, start, end time.Time, includeUnmonitored bool) ([]CalendarEntry, error) {
	var resp []CalendarEntry
	q := newQuery().
		date("start", start).
		date("end", end).
		flag("unmonitored", includeUnmonitored)
	if err := c.get(ctx, "/calendar", q.values(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ICalURL returns the subscribable iCal feed address. No request is made.
func (c *Client) ICalURL(apiKey string) string {
	u := c.baseURL + "/calendar/ical"
	if apiKey != "" {
		u += "?" + url.Values{"apikey": {apiKey}}.Encode()
	}
	return u
}

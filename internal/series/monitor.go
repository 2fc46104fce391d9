package series

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnknownSeason is returned when the series has no such season.
	ErrUnknownSeason = errors.New("unknown season")

	// ErrUnknownEpisode is returned when the series has no such episode.
	ErrUnknownEpisode = errors.New("unknown episode")

	// ErrNoSeries is returned by Load when the source answers with no series.
	ErrNoSeries = errors.New("no series in response")
)

// SetSeasonMonitored flips the local season flag, sends the change and puts
// the old value back if the server rejects it.
func (d *Detail) SetSeasonMonitored(ctx context.Context, season int, monitored bool) error {
	d.mu.Lock()
	idx := d.seasonIndex(season)
	if idx < 0 {
		d.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownSeason, season)
	}
	prev := d.seasons[idx].Monitored
	d.seasons[idx].Monitored = monitored
	seriesID := d.series.ID
	d.mu.Unlock()

	if err := d.src.SetSeasonMonitored(ctx, seriesID, season, monitored); err != nil {
		d.mu.Lock()
		if i := d.seasonIndex(season); i >= 0 {
			d.seasons[i].Monitored = prev
		}
		d.mu.Unlock()
		d.log.Warn("season monitor change reverted", "season", season, "error", err)
		return fmt.Errorf("set season %d monitored: %w", season, err)
	}
	d.log.Debug("season monitor changed", "season", season, "monitored", monitored)
	return nil
}

// SetEpisodeMonitored is SetSeasonMonitored for a single episode.
func (d *Detail) SetEpisodeMonitored(ctx context.Context, episodeID int64, monitored bool) error {
	d.mu.Lock()
	si, ei := d.episodeIndex(episodeID)
	if si < 0 {
		d.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownEpisode, episodeID)
	}
	prev := d.seasons[si].Episodes[ei].Monitored
	d.seasons[si].Episodes[ei].Monitored = monitored
	d.mu.Unlock()

	if err := d.src.SetEpisodesMonitored(ctx, []int64{episodeID}, monitored); err != nil {
		d.mu.Lock()
		if si, ei := d.episodeIndex(episodeID); si >= 0 {
			d.seasons[si].Episodes[ei].Monitored = prev
		}
		d.mu.Unlock()
		d.log.Warn("episode monitor change reverted", "episode_id", episodeID, "error", err)
		return fmt.Errorf("set episode %d monitored: %w", episodeID, err)
	}
	d.log.Debug("episode monitor changed", "episode_id", episodeID, "monitored", monitored)
	return nil
}

func (d *Detail) seasonIndex(number int) int {
	for i := range d.seasons {
		if d.seasons[i].Number == number {
			return i
		}
	}
	return -1
}

func (d *Detail) episodeIndex(id int64) (int, int) {
	for si := range d.seasons {
		for ei := range d.seasons[si].Episodes {
			if d.seasons[si].Episodes[ei].ID == id {
				return si, ei
			}
		}
	}
	return -1, -1
}

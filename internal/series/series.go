// Package series builds the series detail view and applies monitoring
// changes optimistically.
package series

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrdeck/pkg/api"
)

//go:generate mockgen -source=series.go -destination=mocks/source.go -package=mocks

// Source is the part of the API client the detail view reads and writes.
type Source interface {
	Series(ctx context.Context, id int64) (*api.Series, error)
	Episodes(ctx context.Context, seriesID int64, season int) ([]api.Episode, error)
	SetSeasonMonitored(ctx context.Context, seriesID int64, season int, monitored bool) error
	SetEpisodesMonitored(ctx context.Context, episodeIDs []int64, monitored bool) error
}

// Season groups the episodes of one season.
type Season struct {
	Number    int
	Monitored bool
	Episodes  []api.Episode // by episode number
}

// FileCount is the number of episodes with a file.
func (s *Season) FileCount() int {
	n := 0
	for _, e := range s.Episodes {
		if e.HasFile {
			n++
		}
	}
	return n
}

// Percent is the share of episodes on disk, 0 for an empty season.
func (s *Season) Percent() float64 {
	if len(s.Episodes) == 0 {
		return 0
	}
	return float64(s.FileCount()) * 100 / float64(len(s.Episodes))
}

// Detail is a loaded series with its seasons. It is safe for concurrent use.
type Detail struct {
	src Source
	log *slog.Logger

	mu      sync.RWMutex
	series  api.Series
	seasons []Season // newest season first, specials last
}

// Load fetches the series and all of its episodes concurrently.
func Load(ctx context.Context, src Source, id int64, log *slog.Logger) (*Detail, error) {
	var (
		s        *api.Series
		episodes []api.Episode
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		s, err = src.Series(gctx, id)
		if err != nil {
			return fmt.Errorf("fetch series %d: %w", id, err)
		}
		if s == nil {
			return fmt.Errorf("fetch series %d: %w", id, ErrNoSeries)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		episodes, err = src.Episodes(gctx, id, -1)
		if err != nil {
			return fmt.Errorf("fetch episodes of series %d: %w", id, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Detail{
		src:     src,
		log:     log.With("component", "series", "series_id", id),
		series:  *s,
		seasons: buildSeasons(s.Seasons, episodes),
	}, nil
}

func buildSeasons(meta []api.Season, episodes []api.Episode) []Season {
	byNumber := make(map[int]*Season)
	get := func(n int) *Season {
		if s, ok := byNumber[n]; ok {
			return s
		}
		s := &Season{Number: n}
		byNumber[n] = s
		return s
	}
	for _, m := range meta {
		get(m.SeasonNumber).Monitored = m.Monitored
	}
	for _, e := range episodes {
		s := get(e.SeasonNumber)
		s.Episodes = append(s.Episodes, e)
	}

	seasons := make([]Season, 0, len(byNumber))
	for _, s := range byNumber {
		slices.SortFunc(s.Episodes, func(a, b api.Episode) int {
			return cmp.Compare(a.EpisodeNumber, b.EpisodeNumber)
		})
		seasons = append(seasons, *s)
	}
	slices.SortFunc(seasons, func(a, b Season) int {
		// Specials (season 0) go last.
		if (a.Number == 0) != (b.Number == 0) {
			if a.Number == 0 {
				return 1
			}
			return -1
		}
		return cmp.Compare(b.Number, a.Number)
	})
	return seasons
}

// Series returns a copy of the loaded series.
func (d *Detail) Series() api.Series {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.series
}

// Seasons returns a snapshot of the season views.
func (d *Detail) Seasons() []Season {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Season, len(d.seasons))
	for i, s := range d.seasons {
		s.Episodes = slices.Clone(s.Episodes)
		out[i] = s
	}
	return out
}

// Season returns one season by number.
func (d *Detail) Season(number int) (Season, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, s := range d.seasons {
		if s.Number == number {
			s.Episodes = slices.Clone(s.Episodes)
			return s, true
		}
	}
	return Season{}, false
}

// Totals counts episodes with files and all episodes across every season.
func (d *Detail) Totals() (files, episodes int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.seasons {
		files += d.seasons[i].FileCount()
		episodes += len(d.seasons[i].Episodes)
	}
	return files, episodes
}

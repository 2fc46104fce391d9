// Package activity polls the download queue and recent history and reports
// what changed between polls.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrdeck/pkg/api"
)

//go:generate mockgen -source=poller.go -destination=mocks/source.go -package=mocks

// Source is the part of the API client the poller reads.
type Source interface {
	Queue(ctx context.Context) ([]api.Download, error)
	History(ctx context.Context, hq api.HistoryQuery) (*api.Paged[api.HistoryRecord], error)
}

// Snapshot is the result of one poll. Err is set when either fetch failed;
// the other half may still be filled.
type Snapshot struct {
	At      time.Time
	Queue   []api.Download
	History []api.HistoryRecord
	Err     error
}

// Poller fetches a Snapshot at a fixed interval.
type Poller struct {
	src         Source
	interval    time.Duration
	historySize int
	log         *slog.Logger
	now         func() time.Time
}

// Option configures a Poller.
type Option func(*Poller)

// WithInterval sets the poll interval.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		p.interval = d
	}
}

// WithHistorySize sets how many history records each snapshot carries.
func WithHistorySize(n int) Option {
	return func(p *Poller) {
		p.historySize = n
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(p *Poller) {
		p.log = log.With("component", "activity")
	}
}

// NewPoller creates a Poller with a 5s interval and 20 history records.
func NewPoller(src Source, opts ...Option) *Poller {
	p := &Poller{
		src:         src,
		interval:    5 * time.Second,
		historySize: 20,
		log:         slog.New(slog.DiscardHandler),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Poll fetches queue and history concurrently. A failure on one side does
// not cancel the other.
func (p *Poller) Poll(ctx context.Context) Snapshot {
	start := p.now()
	snap := Snapshot{At: start}

	var g errgroup.Group
	g.Go(func() error {
		q, err := p.src.Queue(ctx)
		if err != nil {
			return fmt.Errorf("fetch queue: %w", err)
		}
		snap.Queue = q
		return nil
	})
	g.Go(func() error {
		h, err := p.src.History(ctx, api.HistoryQuery{Page: 1, PageSize: p.historySize})
		if err != nil {
			return fmt.Errorf("fetch history: %w", err)
		}
		if h != nil {
			snap.History = h.Records
		}
		return nil
	})
	snap.Err = g.Wait()

	p.log.Debug("activity polled",
		"queue", len(snap.Queue),
		"history", len(snap.History),
		"error", snap.Err,
		"duration_ms", p.now().Sub(start).Milliseconds(),
	)
	return snap
}

// Run polls immediately and then on every tick, handing each snapshot to
// fn. It returns when ctx is canceled. Failed polls are not retried before
// the next tick.
func (p *Poller) Run(ctx context.Context, fn func(Snapshot)) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	fn(p.Poll(ctx))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			snap := p.Poll(ctx)
			if ctx.Err() != nil {
				return nil
			}
			fn(snap)
		}
	}
}

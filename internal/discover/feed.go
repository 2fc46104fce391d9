// Package discover walks paged discover and search lists, one page at a
// time, without repeating titles.
package discover

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/time/rate"

	"github.com/vmunix/arrdeck/pkg/api"
)

var (
	// ErrDone is returned by Next once the last page has been read.
	ErrDone = errors.New("no more pages")
	// ErrInvalidLimit is returned by Take for a count below 1.
	ErrInvalidLimit = errors.New("limit must be at least 1")
	// ErrEmptyPage is returned when a page fetch yields no page at all.
	ErrEmptyPage = errors.New("empty page response")
)

// Key identifies a title across lists.
type Key struct {
	MediaType api.MediaType
	TMDBID    int64
}

// KeyOf returns the identity of a discover item.
func KeyOf(it api.DiscoverItem) Key {
	return Key{MediaType: it.MediaType, TMDBID: it.TMDBID}
}

// PageFunc fetches one 1-based page of a list.
type PageFunc func(ctx context.Context, page int) (*api.DiscoverPage, error)

// Feed is an infinite-scroll cursor over a PageFunc. It is safe for
// concurrent use; concurrent Next calls are serialized.
type Feed struct {
	fetch   PageFunc
	limiter *rate.Limiter
	library map[Key]bool
	log     *slog.Logger

	mu   sync.Mutex
	page int // last page read
	done bool
	seen map[Key]bool
}

// Option configures a Feed.
type Option func(*Feed)

// WithPagesPerSecond paces page fetches. Zero or negative disables pacing.
func WithPagesPerSecond(n float64) Option {
	return func(f *Feed) {
		if n <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(n), 1)
	}
}

// WithLibrary marks items whose key is in keys as already in the library,
// in addition to what the server reports.
func WithLibrary(keys []Key) Option {
	return func(f *Feed) {
		for _, k := range keys {
			f.library[k] = true
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(f *Feed) {
		f.log = log.With("component", "discover")
	}
}

// NewFeed creates a feed starting before page 1, paced at 2 pages a second.
func NewFeed(fetch PageFunc, opts ...Option) *Feed {
	f := &Feed{
		fetch:   fetch,
		limiter: rate.NewLimiter(2, 1),
		library: make(map[Key]bool),
		log:     slog.New(slog.DiscardHandler),
		seen:    make(map[Key]bool),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Next fetches the following page and returns the items not returned
// before. A page may legitimately yield no new items. After the server's
// last page Next returns ErrDone. A failed fetch can be retried by calling
// Next again.
func (f *Feed) Next(ctx context.Context) ([]api.DiscoverItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done {
		return nil, ErrDone
	}
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	page := f.page + 1
	p, err := f.fetch(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", page, err)
	}
	if p == nil {
		return nil, fmt.Errorf("fetch page %d: %w", page, ErrEmptyPage)
	}
	f.page = page
	if !p.HasMore() || len(p.Results) == 0 {
		f.done = true
	}

	items := make([]api.DiscoverItem, 0, len(p.Results))
	for _, it := range p.Results {
		k := KeyOf(it)
		if f.seen[k] {
			continue
		}
		f.seen[k] = true
		if f.library[k] {
			it.InLibrary = true
		}
		items = append(items, it)
	}
	f.log.Debug("discover page", "page", page, "total_pages", p.TotalPages, "new", len(items))
	return items, nil
}

// Page is the last page read, 0 before the first Next.
func (f *Feed) Page() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}

// Done reports whether the last page has been read.
func (f *Feed) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

// Take reads pages until at least n items were collected or the list ends.
func (f *Feed) Take(ctx context.Context, n int) ([]api.DiscoverItem, error) {
	if n < 1 {
		return nil, fmt.Errorf("take %d: %w", n, ErrInvalidLimit)
	}
	var out []api.DiscoverItem
	for len(out) < n {
		items, err := f.Next(ctx)
		if errors.Is(err, ErrDone) {
			break
		}
		if err != nil {
			return out, err
		}
		out = append(out, items...)
	}
	return out, nil
}

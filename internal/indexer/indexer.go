// Package indexer validates indexer definitions before they are saved and
// probes them directly.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/vmunix/arrdeck/pkg/api"
	"github.com/vmunix/arrdeck/pkg/newznab"
)

// Implementations and the protocol each one speaks.
var protocols = map[string]string{
	"torznab": "torrent",
	"newznab": "usenet",
}

// Priority bounds; lower is preferred.
const (
	MinPriority     = 1
	MaxPriority     = 50
	DefaultPriority = 25
)

// ErrInvalid wraps definition validation failures.
var ErrInvalid = errors.New("invalid indexer")

// Normalize fills derivable fields: protocol from implementation, default
// priority, trimmed name and URL.
func Normalize(ix *api.Indexer) {
	ix.Name = strings.TrimSpace(ix.Name)
	ix.URL = strings.TrimSpace(ix.URL)
	ix.Implementation = strings.ToLower(strings.TrimSpace(ix.Implementation))
	if ix.Protocol == "" {
		ix.Protocol = protocols[ix.Implementation]
	}
	if ix.Priority == 0 {
		ix.Priority = DefaultPriority
	}
}

// Validate checks an indexer definition. Every problem is reported.
func Validate(ix api.Indexer) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if strings.TrimSpace(ix.Name) == "" {
		add("name is required")
	}

	u, err := url.Parse(ix.URL)
	switch {
	case ix.URL == "":
		add("url is required")
	case err != nil:
		add("url: %v", err)
	case u.Scheme != "http" && u.Scheme != "https":
		add("url must be http or https, got %q", u.Scheme)
	case u.Host == "":
		add("url has no host")
	}

	if strings.TrimSpace(ix.APIKey) == "" {
		add("api key is required")
	}

	want, ok := protocols[ix.Implementation]
	switch {
	case !ok:
		add("implementation must be torznab or newznab, got %q", ix.Implementation)
	case ix.Protocol != want:
		add("%s indexers use the %s protocol, got %q", ix.Implementation, want, ix.Protocol)
	}

	if ix.Priority < MinPriority || ix.Priority > MaxPriority {
		add("priority must be between %d and %d, got %d", MinPriority, MaxPriority, ix.Priority)
	}
	for _, c := range ix.Categories {
		if c < 0 {
			add("category %d is negative", c)
		}
	}
	if ix.Enabled && !ix.EnableRSS && !ix.EnableSearch {
		add("an enabled indexer needs rss or search")
	}
	return errors.Join(errs...)
}

// ProbeResult is what a direct probe learned about an indexer.
type ProbeResult struct {
	Caps              *newznab.Caps
	UnknownCategories []int // configured but not offered by the indexer
}

// Probe validates ix, then asks the indexer itself for its capabilities and
// checks the configured categories against them.
func Probe(ctx context.Context, ix api.Indexer, log *slog.Logger, opts ...newznab.Option) (*ProbeResult, error) {
	if err := Validate(ix); err != nil {
		return nil, err
	}
	opts = append(opts, newznab.WithLogger(log))
	client := newznab.NewClient(ix.Name, ix.URL, ix.APIKey, opts...)

	caps, err := client.Caps(ctx)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", ix.Name, err)
	}

	offered := make(map[int]bool)
	for _, id := range caps.CategoryIDs() {
		offered[id] = true
	}
	res := &ProbeResult{Caps: caps}
	for _, c := range ix.Categories {
		if !offered[c] {
			res.UnknownCategories = append(res.UnknownCategories, c)
		}
	}
	log.Info("indexer probed", "indexer", ix.Name, "title", caps.Title, "categories", len(offered))
	return res, nil
}

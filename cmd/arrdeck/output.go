package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vmunix/arrdeck/internal/filter"
	"github.com/vmunix/arrdeck/pkg/api"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func formatSize(n int64) string {
	if n <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(n))
}

func formatTimeAgo(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.Time(t)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func rule(w io.Writer, n int) {
	fmt.Fprintln(w, "  "+strings.Repeat("-", n))
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID: %s", s)
	}
	return id, nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		for _, part := range strings.Split(a, ",") {
			if part == "" {
				continue
			}
			id, err := parseID(part)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// parseMediaType accepts the spellings users type for the two media types.
func parseMediaType(s string) (api.MediaType, error) {
	switch strings.ToLower(s) {
	case "movie", "movies":
		return api.MediaTypeMovie, nil
	case "tv", "series", "show", "shows":
		return api.MediaTypeSeries, nil
	}
	return "", fmt.Errorf("unknown media type %q (want movie or tv)", s)
}

func mediaLabel(mt api.MediaType) string {
	if mt == api.MediaTypeSeries {
		return "series"
	}
	return "movie"
}

func isNotFound(err error) bool {
	return errors.Is(err, filter.ErrNotFound) || errors.Is(err, api.ErrNotFound)
}

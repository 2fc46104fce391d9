// Package filter matches library items against saved custom filters.
package filter

import (
	"errors"
	"fmt"

	"github.com/vmunix/arrdeck/pkg/api"
)

// Item is the part of a library entry a filter can test.
type Item struct {
	MediaType        api.MediaType
	Monitored        bool
	HasFile          bool
	CutoffMet        bool
	QualityProfileID int64
	Year             int
}

// CustomFilter is a conjunction of optional conditions. A nil field places no
// constraint, so the zero CustomFilter matches everything.
type CustomFilter struct {
	ID        string
	Name      string
	MediaType api.MediaType

	Monitored        *bool
	HasFile          *bool
	CutoffMet        *bool
	QualityProfileID *int64
	YearMin          *int
	YearMax          *int
}

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("invalid filter")

// Matches reports whether item satisfies every condition set on f.
func Matches(item Item, f CustomFilter) bool {
	if f.Monitored != nil && item.Monitored != *f.Monitored {
		return false
	}
	if f.HasFile != nil && item.HasFile != *f.HasFile {
		return false
	}
	if f.CutoffMet != nil && item.CutoffMet != *f.CutoffMet {
		return false
	}
	if f.QualityProfileID != nil && item.QualityProfileID != *f.QualityProfileID {
		return false
	}
	if f.YearMin != nil && item.Year < *f.YearMin {
		return false
	}
	if f.YearMax != nil && item.Year > *f.YearMax {
		return false
	}
	return true
}

// Apply keeps the items matching f, in their original order. key extracts
// the filterable view of each element.
func Apply[T any](items []T, f CustomFilter, key func(T) Item) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Matches(key(it), f) {
			out = append(out, it)
		}
	}
	return out
}

// IsEmpty reports whether f sets no condition.
func (f CustomFilter) IsEmpty() bool {
	return f.Monitored == nil && f.HasFile == nil && f.CutoffMet == nil &&
		f.QualityProfileID == nil && f.YearMin == nil && f.YearMax == nil
}

// Validate checks the fields a saved filter needs.
func (f CustomFilter) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if f.MediaType != api.MediaTypeMovie && f.MediaType != api.MediaTypeSeries {
		return fmt.Errorf("%w: media type must be %q or %q", ErrInvalid, api.MediaTypeMovie, api.MediaTypeSeries)
	}
	if f.YearMin != nil && f.YearMax != nil && *f.YearMin > *f.YearMax {
		return fmt.Errorf("%w: year range %d-%d is empty", ErrInvalid, *f.YearMin, *f.YearMax)
	}
	return nil
}

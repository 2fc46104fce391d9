package library

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/vmunix/arrdeck/internal/filter"
	"github.com/vmunix/arrdeck/internal/paginate"
	"github.com/vmunix/arrdeck/internal/quality"
	"github.com/vmunix/arrdeck/pkg/release"
)

// Preset is a built-in view of the library.
type Preset string

const (
	PresetAll         Preset = "all"
	PresetMonitored   Preset = "monitored"
	PresetUnmonitored Preset = "unmonitored"
	PresetMissing     Preset = "missing"
	PresetCutoffUnmet Preset = "cutoff-unmet"
)

// Presets lists every preset in display order.
var Presets = []Preset{PresetAll, PresetMonitored, PresetUnmonitored, PresetMissing, PresetCutoffUnmet}

// SortKey orders browser results.
type SortKey string

const (
	SortTitle   SortKey = "title"
	SortYear    SortKey = "year"
	SortAdded   SortKey = "added"
	SortSize    SortKey = "size"
	SortQuality SortKey = "quality"
	SortProfile SortKey = "profile"
)

// SortKeys lists every sort key.
var SortKeys = []SortKey{SortTitle, SortYear, SortAdded, SortSize, SortQuality, SortProfile}

// fuzzyThreshold is the title similarity accepted when the query is not a
// word-prefix match.
const fuzzyThreshold = 0.85

// Query describes one browser view. Zero values mean: no search, all items,
// sorted by title ascending, first page of DefaultPerPage.
type Query struct {
	Search  string
	Preset  Preset
	Custom  *filter.CustomFilter
	Sort    SortKey
	Desc    bool
	Page    int
	PerPage int
}

// DefaultPerPage is used when Query.PerPage is zero.
const DefaultPerPage = 25

// Result is one page of browser output.
type Result struct {
	Items []Item
	Total int // items matching before pagination
	Page  int
	Pages int
}

// Validate rejects unknown presets and sort keys.
func (q Query) Validate() error {
	if q.Preset != "" && !slices.Contains(Presets, q.Preset) {
		return fmt.Errorf("%w: unknown preset %q", ErrInvalidQuery, q.Preset)
	}
	if q.Sort != "" && !slices.Contains(SortKeys, q.Sort) {
		return fmt.Errorf("%w: unknown sort %q", ErrInvalidQuery, q.Sort)
	}
	return nil
}

// Browse applies search, preset, custom filter and sort to items, then
// returns the requested page. items is not modified.
func Browse(items []Item, q Query) (Result, error) {
	if err := q.Validate(); err != nil {
		return Result{}, err
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !matchesSearch(it.Title, q.Search) || !matchesPreset(it, q.Preset) {
			continue
		}
		if q.Custom != nil && !filter.Matches(it.Item, *q.Custom) {
			continue
		}
		out = append(out, it)
	}

	sortItems(out, q.Sort, q.Desc)

	perPage := q.PerPage
	if perPage == 0 {
		perPage = DefaultPerPage
	}
	page := max(q.Page, 1)
	return Result{
		Items: paginate.Items(out, page, perPage),
		Total: len(out),
		Page:  page,
		Pages: paginate.TotalPages(len(out), perPage),
	}, nil
}

func matchesSearch(title, search string) bool {
	if strings.TrimSpace(search) == "" {
		return true
	}
	return release.Contains(title, search) || release.Similarity(title, search) >= fuzzyThreshold
}

func matchesPreset(it Item, p Preset) bool {
	switch p {
	case PresetMonitored:
		return it.Monitored
	case PresetUnmonitored:
		return !it.Monitored
	case PresetMissing:
		return it.Monitored && !it.HasFile
	case PresetCutoffUnmet:
		return it.Monitored && it.HasFile && !it.CutoffMet
	default:
		return true
	}
}

func sortItems(items []Item, key SortKey, desc bool) {
	compare := func(a, b Item) int {
		var c int
		switch key {
		case SortYear:
			c = cmp.Compare(a.Year, b.Year)
		case SortAdded:
			c = a.Added.Compare(b.Added)
		case SortSize:
			c = cmp.Compare(a.SizeOnDisk, b.SizeOnDisk)
		case SortQuality:
			c = cmp.Compare(quality.Rank(a.FileQuality), quality.Rank(b.FileQuality))
		case SortProfile:
			c = cmp.Compare(a.ProfileRank, b.ProfileRank)
		}
		if desc {
			c = -c
		}
		return cmp.Or(c, strings.Compare(sortTitle(a.Title), sortTitle(b.Title)), cmp.Compare(a.ID, b.ID))
	}
	if key == SortTitle || key == "" {
		compare = func(a, b Item) int {
			c := strings.Compare(sortTitle(a.Title), sortTitle(b.Title))
			if desc {
				c = -c
			}
			return cmp.Or(c, cmp.Compare(a.ID, b.ID))
		}
	}
	slices.SortStableFunc(items, compare)
}

// sortTitle orders "The Matrix" under M.
func sortTitle(title string) string {
	return release.CleanTitle(title)
}

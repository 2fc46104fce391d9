// Package calendar computes calendar windows and groups entries by day.
package calendar

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/vmunix/arrdeck/pkg/api"
)

// View is the span of a calendar page.
type View string

const (
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// Range returns the first and last day of the view containing anchor, at
// midnight in anchor's location. Weeks run Monday to Sunday.
func Range(view View, anchor time.Time) (start, end time.Time, err error) {
	y, m, d := anchor.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, anchor.Location())

	switch view {
	case ViewWeek:
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		start = day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), nil
	case ViewMonth:
		start = time.Date(y, m, 1, 0, 0, 0, 0, anchor.Location())
		return start, start.AddDate(0, 1, -1), nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("unknown calendar view %q", view)
}

// Shift moves anchor by n views (n may be negative).
func Shift(view View, anchor time.Time, n int) time.Time {
	if view == ViewMonth {
		y, m, _ := anchor.Date()
		return time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, anchor.Location())
	}
	return anchor.AddDate(0, 0, 7*n)
}

// Day holds the entries of one local calendar day.
type Day struct {
	Date    time.Time // midnight, local
	Entries []api.CalendarEntry
}

// Group buckets entries by their day in loc, days ascending and entries by
// time then title. Days without entries are omitted.
func Group(entries []api.CalendarEntry, loc *time.Location) []Day {
	if loc == nil {
		loc = time.Local
	}
	byDay := make(map[time.Time][]api.CalendarEntry)
	for _, e := range entries {
		t := e.Date.In(loc)
		y, m, d := t.Date()
		key := time.Date(y, m, d, 0, 0, 0, 0, loc)
		byDay[key] = append(byDay[key], e)
	}

	days := make([]Day, 0, len(byDay))
	for date, es := range byDay {
		slices.SortStableFunc(es, func(a, b api.CalendarEntry) int {
			return cmp.Or(a.Date.Compare(b.Date), cmp.Compare(DisplayTitle(a), DisplayTitle(b)))
		})
		days = append(days, Day{Date: date, Entries: es})
	}
	slices.SortFunc(days, func(a, b Day) int { return a.Date.Compare(b.Date) })
	return days
}

// DisplayTitle renders an entry the way the calendar lists it.
func DisplayTitle(e api.CalendarEntry) string {
	if e.MediaType == api.MediaTypeSeries && e.SeriesTitle != "" {
		return fmt.Sprintf("%s S%02dE%02d %s", e.SeriesTitle, e.SeasonNumber, e.EpisodeNumber, e.Title)
	}
	return e.Title
}

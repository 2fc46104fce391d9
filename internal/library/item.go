// Package library holds the client-side logic of the media library browser:
// a unified view over movies and series with search, presets, custom
// filters, sorting and pagination.
package library

import (
	"time"

	"github.com/vmunix/arrdeck/internal/filter"
	"github.com/vmunix/arrdeck/internal/quality"
	"github.com/vmunix/arrdeck/pkg/api"
)

// Item is one row of the library browser.
type Item struct {
	filter.Item

	ID          int64
	Title       string
	Status      string
	FileQuality quality.Quality
	Profile     string // quality profile name, empty when unknown
	ProfileRank int
	SizeOnDisk  int64
	Added       time.Time
}

type profileIndex map[int64]*api.QualityProfile

func indexProfiles(profiles []api.QualityProfile) profileIndex {
	idx := make(profileIndex, len(profiles))
	for i := range profiles {
		idx[profiles[i].ID] = &profiles[i]
	}
	return idx
}

func (idx profileIndex) describe(it *Item) *api.QualityProfile {
	p := idx[it.QualityProfileID]
	if p != nil {
		it.Profile = p.Name
		it.ProfileRank = quality.ProfileRank(*p)
	}
	return p
}

// FromMovies builds browser items for movies, computing cutoff state against
// profiles.
func FromMovies(movies []api.Movie, profiles []api.QualityProfile) []Item {
	idx := indexProfiles(profiles)
	items := make([]Item, 0, len(movies))
	for _, m := range movies {
		it := Item{
			Item: filter.Item{
				MediaType:        api.MediaTypeMovie,
				Monitored:        m.Monitored,
				HasFile:          m.HasFile,
				QualityProfileID: m.QualityProfileID,
				Year:             m.Year,
			},
			ID:         m.ID,
			Title:      m.Title,
			Status:     m.Status,
			SizeOnDisk: m.SizeOnDisk,
			Added:      m.Added,
		}
		var fileQuality string
		if m.MovieFile != nil {
			fileQuality = m.MovieFile.Quality
			it.FileQuality = quality.Parse(fileQuality)
		}
		p := idx.describe(&it)
		it.CutoffMet = quality.ItemCutoffMet(m.HasFile, fileQuality, p)
		items = append(items, it)
	}
	return items
}

// FromSeries builds browser items for series. A series has a file when any
// episode does. See seriesCutoffMet for its cutoff state.
func FromSeries(series []api.Series, profiles []api.QualityProfile) []Item {
	idx := indexProfiles(profiles)
	items := make([]Item, 0, len(series))
	for _, s := range series {
		it := Item{
			Item: filter.Item{
				MediaType:        api.MediaTypeSeries,
				Monitored:        s.Monitored,
				HasFile:          s.HasFile(),
				QualityProfileID: s.QualityProfileID,
				Year:             s.Year,
			},
			ID:     s.ID,
			Title:  s.Title,
			Status: s.Status,
			Added:  s.Added,
		}
		if s.Statistics != nil {
			it.SizeOnDisk = s.Statistics.SizeOnDisk
		}
		p := idx.describe(&it)
		it.CutoffMet = seriesCutoffMet(s, p)
		items = append(items, it)
	}
	return items
}

// seriesCutoffMet follows quality.ItemCutoffMet for the no-file, no-profile
// and unknown-cutoff cases. The series list carries no per-episode quality,
// so under a known cutoff a series counts as met once every episode is on
// disk, leaving the upgrade decision to the server.
func seriesCutoffMet(s api.Series, profile *api.QualityProfile) bool {
	if !s.HasFile() {
		return false
	}
	if profile == nil || quality.Parse(profile.Cutoff) == quality.Unknown {
		return true
	}
	return s.Statistics.EpisodeFileCount >= s.Statistics.EpisodeCount
}

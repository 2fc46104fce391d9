package manualimport

import (
	"fmt"

	"github.com/vmunix/arrdeck/pkg/api"
	"github.com/vmunix/arrdeck/pkg/release"
)

// MatchEpisode finds the episodes a file name refers to. Multi-episode files
// (S01E05E06) return every episode found; all must exist.
func MatchEpisode(name string, episodes []api.Episode) ([]api.Episode, error) {
	info := release.Parse(name)
	if info.Season == 0 && len(info.Episodes) == 0 {
		return nil, fmt.Errorf("%w: cannot parse episode info from %s", ErrNoEpisodeMatch, name)
	}
	if len(info.Episodes) == 0 {
		return nil, fmt.Errorf("%w: %s is a season pack", ErrNoEpisodeMatch, name)
	}

	var out []api.Episode
	for _, n := range info.Episodes {
		found := false
		for _, ep := range episodes {
			if ep.SeasonNumber == info.Season && ep.EpisodeNumber == n {
				out = append(out, ep)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: S%02dE%02d in %s", ErrNoEpisodeMatch, info.Season, n, name)
		}
	}
	return out, nil
}

// AssignSeries targets every selection without a target at seriesID,
// choosing episodes from the file name. It returns the names of files it
// could not place; those are deselected.
func AssignSeries(sels []Selection, seriesID int64, episodes []api.Episode) []string {
	var unmatched []string
	for i := range sels {
		s := &sels[i]
		if s.MovieID != 0 || len(s.EpisodeIDs) > 0 {
			continue
		}
		eps, err := MatchEpisode(s.Name(), episodes)
		if err != nil {
			s.Selected = false
			unmatched = append(unmatched, s.Name())
			continue
		}
		s.SeriesID = seriesID
		s.Season = eps[0].SeasonNumber
		s.EpisodeIDs = make([]int64, len(eps))
		for j, ep := range eps {
			s.EpisodeIDs[j] = ep.ID
		}
	}
	return unmatched
}

// AssignMovie targets every selected file without a target at movieID.
func AssignMovie(sels []Selection, movieID int64) {
	for i := range sels {
		s := &sels[i]
		if s.Selected && s.MovieID == 0 && s.SeriesID == 0 {
			s.MovieID = movieID
		}
	}
}

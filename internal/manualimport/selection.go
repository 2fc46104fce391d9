// Package manualimport turns the server's manual import candidates into a
// checked import request.
package manualimport

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/vmunix/arrdeck/internal/quality"
	"github.com/vmunix/arrdeck/pkg/api"
)

// Import modes.
const (
	ModeMove = "move"
	ModeCopy = "copy"
)

// Selection is one candidate file with the target the user picked.
type Selection struct {
	Candidate api.ManualImportItem
	Selected  bool
	Force     bool // import despite server rejections

	MovieID    int64
	SeriesID   int64
	Season     int
	EpisodeIDs []int64
	Quality    string // empty uses the server guess, then the file name
}

// FromCandidates preselects every candidate the server accepted, carrying
// over the server's guessed targets.
func FromCandidates(items []api.ManualImportItem) []Selection {
	sels := make([]Selection, len(items))
	for i, it := range items {
		sels[i] = Selection{
			Candidate:  it,
			Selected:   len(it.Rejections) == 0,
			MovieID:    it.MovieID,
			SeriesID:   it.SeriesID,
			Season:     it.SeasonNumber,
			EpisodeIDs: slices.Clone(it.EpisodeIDs),
		}
	}
	return sels
}

// Name is the file name shown for the selection.
func (s *Selection) Name() string {
	if s.Candidate.Name != "" {
		return s.Candidate.Name
	}
	return filepath.Base(s.Candidate.Path)
}

// ResolvedQuality is the quality sent to the server: the user's choice, the
// server's detection, or a guess from the file name.
func (s *Selection) ResolvedQuality() string {
	switch {
	case s.Quality != "":
		return s.Quality
	case s.Candidate.Quality != "":
		return s.Candidate.Quality
	}
	return quality.FromFilename(s.Candidate.Path).String()
}

func (s *Selection) validate() error {
	if len(s.Candidate.Rejections) > 0 && !s.Force {
		return fmt.Errorf("%s: %w: %v", s.Name(), ErrRejected, s.Candidate.Rejections)
	}
	switch {
	case s.MovieID != 0 && s.SeriesID != 0:
		return fmt.Errorf("%s: %w: both a movie and a series are set", s.Name(), ErrNoTarget)
	case s.MovieID != 0:
		return nil
	case s.SeriesID != 0 && len(s.EpisodeIDs) > 0:
		return nil
	case s.SeriesID != 0:
		return fmt.Errorf("%s: %w: no episodes chosen", s.Name(), ErrNoTarget)
	}
	return fmt.Errorf("%s: %w", s.Name(), ErrNoTarget)
}

type target struct {
	kind api.MediaType
	id   int64
}

func (s *Selection) targets() []target {
	if s.MovieID != 0 {
		return []target{{api.MediaTypeMovie, s.MovieID}}
	}
	out := make([]target, len(s.EpisodeIDs))
	for i, id := range s.EpisodeIDs {
		out[i] = target{api.MediaTypeSeries, id}
	}
	return out
}

// Validate checks the selected files: each needs a target, server
// rejections need Force, and no movie or episode may be targeted twice.
// Every problem is reported.
func Validate(sels []Selection) error {
	var errs []error
	claimed := make(map[target]string)
	selected := false
	for i := range sels {
		s := &sels[i]
		if !s.Selected {
			continue
		}
		selected = true
		if err := s.validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		for _, t := range s.targets() {
			if other, ok := claimed[t]; ok {
				errs = append(errs, fmt.Errorf("%s: %w: %s %d already taken by %s", s.Name(), ErrDuplicateTarget, t.kind, t.id, other))
				continue
			}
			claimed[t] = s.Name()
		}
	}
	if !selected {
		return ErrNothingSelected
	}
	return errors.Join(errs...)
}

// Build validates sels and produces the import request for the selected files.
func Build(sels []Selection, mode string) (api.ManualImportRequest, error) {
	if mode != ModeMove && mode != ModeCopy {
		return api.ManualImportRequest{}, fmt.Errorf("%w: got %q", ErrImportMode, mode)
	}
	if err := Validate(sels); err != nil {
		return api.ManualImportRequest{}, err
	}

	req := api.ManualImportRequest{ImportMode: mode}
	for i := range sels {
		s := &sels[i]
		if !s.Selected {
			continue
		}
		f := api.ManualImportFile{
			Path:       s.Candidate.Path,
			Quality:    s.ResolvedQuality(),
			MovieID:    s.MovieID,
			DownloadID: s.Candidate.DownloadID,
		}
		if s.MovieID == 0 {
			f.SeriesID = s.SeriesID
			f.SeasonNumber = s.Season
			f.EpisodeIDs = slices.Clone(s.EpisodeIDs)
		}
		req.Files = append(req.Files, f)
	}
	return req, nil
}

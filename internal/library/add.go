package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/vmunix/arrdeck/internal/quality"
	"github.com/vmunix/arrdeck/pkg/api"
)

//go:generate mockgen -source=add.go -destination=mocks/service.go -package=mocks

// Service is the part of the API client the library browser writes through.
type Service interface {
	AddMovie(ctx context.Context, in api.AddMovieInput) (*api.Movie, error)
	AddSeries(ctx context.Context, in api.AddSeriesInput) (*api.Series, error)
	BulkEditMovies(ctx context.Context, in api.BulkEditInput) ([]api.Movie, error)
	BulkEditSeries(ctx context.Context, in api.BulkEditInput) ([]api.Series, error)
}

// AddResult reports the outcome of an add. AlreadyExists is set, with no
// error, when the server answered 409.
type AddResult struct {
	AlreadyExists bool
	Movie         *api.Movie
	Series        *api.Series
}

// Adder adds titles to the library.
type Adder struct {
	svc Service
	log *slog.Logger
}

// NewAdder creates an Adder.
func NewAdder(svc Service, log *slog.Logger) *Adder {
	return &Adder{svc: svc, log: log.With("component", "library")}
}

// AddMovie adds a movie. A conflict is reported through AddResult.
func (a *Adder) AddMovie(ctx context.Context, in api.AddMovieInput) (AddResult, error) {
	m, err := a.svc.AddMovie(ctx, in)
	if errors.Is(err, api.ErrConflict) {
		a.log.Info("movie already in library", "tmdb_id", in.TMDBID)
		return AddResult{AlreadyExists: true}, nil
	}
	if err != nil {
		return AddResult{}, fmt.Errorf("add movie %d: %w", in.TMDBID, err)
	}
	a.log.Info("movie added", "id", m.ID, "title", m.Title)
	return AddResult{Movie: m}, nil
}

// AddSeries adds a series. A conflict is reported through AddResult.
func (a *Adder) AddSeries(ctx context.Context, in api.AddSeriesInput) (AddResult, error) {
	s, err := a.svc.AddSeries(ctx, in)
	if errors.Is(err, api.ErrConflict) {
		a.log.Info("series already in library", "tmdb_id", in.TMDBID)
		return AddResult{AlreadyExists: true}, nil
	}
	if err != nil {
		return AddResult{}, fmt.Errorf("add series %d: %w", in.TMDBID, err)
	}
	a.log.Info("series added", "id", s.ID, "title", s.Title)
	return AddResult{Series: s}, nil
}

// Series types accepted by the server.
var SeriesTypes = []string{"standard", "daily", "anime"}

// ValidateBulkEdit checks a bulk edit before it is sent: at least one id,
// at least one change, and a known series type.
func ValidateBulkEdit(in api.BulkEditInput) error {
	if len(in.IDs) == 0 {
		return fmt.Errorf("%w: no items selected", ErrInvalidEdit)
	}
	if in.Monitored == nil && in.QualityProfileID == nil && in.RootFolderPath == nil &&
		in.SeriesType == nil && in.SeasonFolder == nil &&
		len(in.AddTags) == 0 && len(in.RemoveTags) == 0 {
		return fmt.Errorf("%w: nothing to change", ErrInvalidEdit)
	}
	if in.SeriesType != nil && !slices.Contains(SeriesTypes, *in.SeriesType) {
		return fmt.Errorf("%w: unknown series type %q", ErrInvalidEdit, *in.SeriesType)
	}
	if in.RootFolderPath != nil && *in.RootFolderPath == "" {
		return fmt.Errorf("%w: root folder must not be empty", ErrInvalidEdit)
	}
	if in.MoveFiles && in.RootFolderPath == nil {
		return fmt.Errorf("%w: moving files needs a new root folder", ErrInvalidEdit)
	}
	return nil
}

// BulkEdit validates and sends a bulk edit for movies or series, returning
// how many items the server updated.
func (a *Adder) BulkEdit(ctx context.Context, mediaType api.MediaType, in api.BulkEditInput) (int, error) {
	if err := ValidateBulkEdit(in); err != nil {
		return 0, err
	}
	var n int
	switch mediaType {
	case api.MediaTypeMovie:
		movies, err := a.svc.BulkEditMovies(ctx, in)
		if err != nil {
			return 0, fmt.Errorf("bulk edit movies: %w", err)
		}
		n = len(movies)
	case api.MediaTypeSeries:
		series, err := a.svc.BulkEditSeries(ctx, in)
		if err != nil {
			return 0, fmt.Errorf("bulk edit series: %w", err)
		}
		n = len(series)
	default:
		return 0, fmt.Errorf("%w: unknown media type %q", ErrInvalidEdit, mediaType)
	}
	a.log.Info("bulk edit applied", "media_type", mediaType, "requested", len(in.IDs), "updated", n)
	return n, nil
}

// ProfileChoices returns profiles ordered for the add dialog, highest
// quality first, plus the default choice (the first). The input is not
// modified. With no profiles the default is nil.
func ProfileChoices(profiles []api.QualityProfile) ([]api.QualityProfile, *api.QualityProfile) {
	sorted := slices.Clone(profiles)
	quality.SortProfiles(sorted)
	if len(sorted) == 0 {
		return sorted, nil
	}
	return sorted, &sorted[0]
}

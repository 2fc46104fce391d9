package filter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vmunix/arrdeck/pkg/api"
)

var (
	// ErrNotFound indicates the filter doesn't exist.
	ErrNotFound = errors.New("filter not found")

	// ErrDuplicate indicates another filter already uses the name.
	ErrDuplicate = errors.New("filter name already in use")
)

// Store persists custom filters in the local state database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore creates a filter store. The schema must already be applied.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicate
	}
	return err
}

const filterColumns = `id, name, media_type, monitored, has_file, cutoff_met,
	quality_profile_id, year_min, year_max`

// Save inserts f, assigning a new ID, or updates the filter with f.ID.
func (s *Store) Save(ctx context.Context, f *CustomFilter) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	now := s.now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO custom_filters (`+filterColumns+`, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			media_type = excluded.media_type,
			monitored = excluded.monitored,
			has_file = excluded.has_file,
			cutoff_met = excluded.cutoff_met,
			quality_profile_id = excluded.quality_profile_id,
			year_min = excluded.year_min,
			year_max = excluded.year_max,
			updated_at = excluded.updated_at`,
		f.ID, f.Name, f.MediaType, f.Monitored, f.HasFile, f.CutoffMet,
		f.QualityProfileID, f.YearMin, f.YearMax, now, now,
	)
	if err != nil {
		return fmt.Errorf("save filter %q: %w", f.Name, mapSQLiteError(err))
	}
	return nil
}

// Get returns one filter.
func (s *Store) Get(ctx context.Context, id string) (*CustomFilter, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+filterColumns+` FROM custom_filters WHERE id = ?`, id)
	f, err := scanFilter(row)
	if err != nil {
		return nil, fmt.Errorf("get filter %s: %w", id, mapSQLiteError(err))
	}
	return f, nil
}

// FindByName returns the filter with the given name for a media type.
func (s *Store) FindByName(ctx context.Context, mediaType api.MediaType, name string) (*CustomFilter, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+filterColumns+` FROM custom_filters WHERE media_type = ? AND name = ?`, mediaType, name)
	f, err := scanFilter(row)
	if err != nil {
		return nil, fmt.Errorf("find filter %q: %w", name, mapSQLiteError(err))
	}
	return f, nil
}

// List returns the filters for mediaType ordered by name; an empty
// mediaType lists all.
func (s *Store) List(ctx context.Context, mediaType api.MediaType) ([]*CustomFilter, error) {
	query := `SELECT ` + filterColumns + ` FROM custom_filters`
	var args []any
	if mediaType != "" {
		query += ` WHERE media_type = ?`
		args = append(args, mediaType)
	}
	query += ` ORDER BY name, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list filters: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*CustomFilter
	for rows.Next() {
		f, err := scanFilter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan filter: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Delete removes a filter.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM custom_filters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete filter %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete filter %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete filter %s: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFilter(row scanner) (*CustomFilter, error) {
	var (
		f                           CustomFilter
		monitored, hasFile, cutoff  sql.NullBool
		profileID, yearMin, yearMax sql.NullInt64
	)
	if err := row.Scan(&f.ID, &f.Name, &f.MediaType, &monitored, &hasFile, &cutoff,
		&profileID, &yearMin, &yearMax); err != nil {
		return nil, err
	}
	f.Monitored = nullBool(monitored)
	f.HasFile = nullBool(hasFile)
	f.CutoffMet = nullBool(cutoff)
	if profileID.Valid {
		f.QualityProfileID = &profileID.Int64
	}
	f.YearMin = nullInt(yearMin)
	f.YearMax = nullInt(yearMax)
	return &f, nil
}

func nullBool(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	return &v.Bool
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

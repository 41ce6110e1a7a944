package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Registers the "sqlite" driver.

	"github.com/oshokin/alarm-map/internal/config"
	"github.com/oshokin/alarm-map/internal/domain/alarm"
)

// ErrNotOpen is returned when the store is used before Open or after Close.
var ErrNotOpen = errors.New("catalog store is not open")

// CategoryRecord is the persisted form of a category.
type CategoryRecord struct {
	ID     int
	Name   string
	Values alarm.Values
}

// POIRecord is the persisted form of a point of interest.
type POIRecord struct {
	ID           int
	Latitude     float64
	Longitude    float64
	Name         string
	CategoryName string
	Values       alarm.Values
}

// Records is the whole catalog as stored on disk.
type Records struct {
	Categories []CategoryRecord
	POIs       []POIRecord
}

// Store is a SQLite-backed catalog repository.
type Store struct {
	// path is the database file location.
	path string
	// db is nil until Open succeeds.
	db *sql.DB
}

// NewStore creates a store for the database at path. Nothing is opened yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Open creates the parent directory and the database if needed,
// and makes sure the schema exists. Opening an open store is a no-op.
func (s *Store) Open(ctx context.Context) error {
	if s.db != nil {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, config.DefaultDirPermissions); err != nil {
			return fmt.Errorf("create catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("open catalog database: %w", err)
	}

	// SQLite serialises writers anyway; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err = db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()

			return fmt.Errorf("create catalog schema: %w", err)
		}
	}

	s.db = db

	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil

	return err
}

// Load reads every category and point of interest ordered by id.
func (s *Store) Load(ctx context.Context) (*Records, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	categories, err := s.loadCategories(ctx)
	if err != nil {
		return nil, err
	}

	pois, err := s.loadPOIs(ctx)
	if err != nil {
		return nil, err
	}

	return &Records{Categories: categories, POIs: pois}, nil
}

// Save replaces the stored catalog with records in a single transaction.
func (s *Store) Save(ctx context.Context, records *Records) error {
	if s.db == nil {
		return ErrNotOpen
	}

	if records == nil {
		records = &Records{}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog transaction: %w", err)
	}

	//nolint:errcheck // Rollback after Commit is a no-op.
	defer tx.Rollback()

	for _, stmt := range []string{"DELETE FROM pois", "DELETE FROM categories"} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
	}

	for _, c := range records.Categories {
		args := append([]any{c.ID, c.Name}, encodeArgs(c.Values)...)
		if _, err = tx.ExecContext(ctx, insertCategory, args...); err != nil {
			return fmt.Errorf("save category %d: %w", c.ID, err)
		}
	}

	for _, p := range records.POIs {
		args := append([]any{p.ID, p.Latitude, p.Longitude, p.Name, p.CategoryName}, encodeArgs(p.Values)...)
		if _, err = tx.ExecContext(ctx, insertPOI, args...); err != nil {
			return fmt.Errorf("save point of interest %d: %w", p.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog: %w", err)
	}

	return nil
}

func (s *Store) loadCategories(ctx context.Context) ([]CategoryRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectCategories)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var result []CategoryRecord

	for rows.Next() {
		var (
			rec CategoryRecord
			row overrideRow
		)

		if err = rows.Scan(append([]any{&rec.ID, &rec.Name}, row.targets()...)...); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}

		if rec.Values, err = row.values(); err != nil {
			return nil, fmt.Errorf("category %d: %w", rec.ID, err)
		}

		result = append(result, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}

	return result, nil
}

func (s *Store) loadPOIs(ctx context.Context) ([]POIRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectPOIs)
	if err != nil {
		return nil, fmt.Errorf("query points of interest: %w", err)
	}
	defer rows.Close()

	var result []POIRecord

	for rows.Next() {
		var (
			rec POIRecord
			row overrideRow
		)

		dest := append([]any{&rec.ID, &rec.Latitude, &rec.Longitude, &rec.Name, &rec.CategoryName}, row.targets()...)
		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan point of interest: %w", err)
		}

		if rec.Values, err = row.values(); err != nil {
			return nil, fmt.Errorf("point of interest %d: %w", rec.ID, err)
		}

		result = append(result, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("read points of interest: %w", err)
	}

	return result, nil
}

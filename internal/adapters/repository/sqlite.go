package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// SQLiteSource stores result sets in a SQLite database. An edition exists
// once it has been saved, even with no rows.
type SQLiteSource struct {
	db          *sql.DB
	busyTimeout time.Duration

	mu     sync.RWMutex
	closed bool
}

// OpenSQLite opens or creates the database at path and applies migrations.
func OpenSQLite(ctx context.Context, path string, opts ...SQLiteOption) (*SQLiteSource, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// A single connection keeps in-process writes serialized.
	db.SetMaxOpenConns(1)

	s := &SQLiteSource{db: db, busyTimeout: defaultBusyTimeout}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Kind implements Store.
func (s *SQLiteSource) Kind() string { return KindSQLite }

// Close closes the underlying database.
func (s *SQLiteSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func (s *SQLiteSource) migrate(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf(`PRAGMA busy_timeout = %d;`, s.busyTimeout.Milliseconds()),
		`CREATE TABLE IF NOT EXISTS editions (
			year INTEGER PRIMARY KEY,
			imported_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS results (
			year INTEGER NOT NULL,
			position INTEGER NOT NULL,
			bib TEXT NOT NULL,
			name TEXT NOT NULL,
			club TEXT,
			birth_year INTEGER,
			gender TEXT NOT NULL,
			category TEXT NOT NULL,
			distance TEXT NOT NULL,
			nationality TEXT NOT NULL,
			city TEXT NOT NULL,
			finish_time_seconds INTEGER,
			PRIMARY KEY (year, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_year ON results(year);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *SQLiteSource) guard() error {
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Load implements model.Source. Rows come back in their import order.
func (s *SQLiteSource) Load(ctx context.Context, year int) ([]model.YearlyResultRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM editions WHERE year = ?`, year).Scan(&n); err != nil {
		return nil, fmt.Errorf("load %d: %w", year, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %d", model.ErrYearMissing, year)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT bib, name, club, birth_year, gender, category, distance, nationality, city, finish_time_seconds
		 FROM results WHERE year = ? ORDER BY position`, year)
	if err != nil {
		return nil, fmt.Errorf("load %d: %w", year, err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	out := []model.YearlyResultRecord{}
	for rows.Next() {
		var (
			r        model.YearlyResultRecord
			gender   string
			club     sql.NullString
			birth    sql.NullInt64
			finishAt sql.NullInt64
		)
		if err := rows.Scan(&r.Bib, &r.Name, &club, &birth, &gender, &r.Category, &r.Distance, &r.Nationality, &r.City, &finishAt); err != nil {
			return nil, fmt.Errorf("%w: %d: %w", ErrDecode, year, err)
		}
		r.Gender = model.Gender(gender)
		r.Year = year
		if club.Valid {
			c := club.String
			r.Club = &c
		}
		if birth.Valid {
			b := int(birth.Int64)
			r.BirthYear = &b
		}
		if finishAt.Valid {
			t := int(finishAt.Int64)
			r.FinishTimeSeconds = &t
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load %d: %w", year, err)
	}
	return out, nil
}

// Save replaces the rows of year in one transaction.
func (s *SQLiteSource) Save(ctx context.Context, year int, recs []model.YearlyResultRecord) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save %d: %w", year, err)
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM results WHERE year = ?`, year); err != nil {
		return fmt.Errorf("save %d: %w", year, err)
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO editions (year, imported_at) VALUES (?, ?)
		 ON CONFLICT(year) DO UPDATE SET imported_at = excluded.imported_at`,
		year, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("save %d: %w", year, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO results (year, position, bib, name, club, birth_year, gender, category, distance, nationality, city, finish_time_seconds)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("save %d: %w", year, err)
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	for i, r := range recs {
		if r.Year != 0 && r.Year != year {
			err = fmt.Errorf("%w: row %d has year %d, saving %d", ErrYearMismatch, i, r.Year, year)
			return err
		}
		if _, err = stmt.ExecContext(ctx, year, i, r.Bib, r.Name, nullString(r.Club), nullInt(r.BirthYear),
			string(r.Gender), r.Category, r.Distance, r.Nationality, r.City, nullInt(r.FinishTimeSeconds)); err != nil {
			return fmt.Errorf("save %d row %d: %w", year, i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("save %d: %w", year, err)
	}
	return nil
}

// Years implements Store.
func (s *SQLiteSource) Years(ctx context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT year FROM editions ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("list years: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	years := []int{}
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("list years: %w", err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

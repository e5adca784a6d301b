package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

// FileSource reads one JSON array of records per edition from a directory.
type FileSource struct {
	dir     string
	pattern string
}

// NewFileSource creates a FileSource rooted at dir.
func NewFileSource(dir string, opts ...FileOption) *FileSource {
	s := &FileSource{dir: dir, pattern: DefaultFilePattern}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Kind implements Store.
func (s *FileSource) Kind() string { return KindFile }

// Path returns the file holding year.
func (s *FileSource) Path(year int) string {
	return filepath.Join(s.dir, fmt.Sprintf(s.pattern, year))
}

// Load implements model.Source.
func (s *FileSource) Load(ctx context.Context, year int) ([]model.YearlyResultRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := s.Path(year)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", model.ErrYearMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var recs []model.YearlyResultRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	for i, r := range recs {
		if r.Year != 0 && r.Year != year {
			return nil, fmt.Errorf("%w: %s row %d has year %d", ErrYearMismatch, path, i, r.Year)
		}
	}
	return stamp(year, recs), nil
}

// Save writes recs as the edition file of year.
func (s *FileSource) Save(ctx context.Context, year int, recs []model.YearlyResultRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if recs == nil {
		recs = []model.YearlyResultRecord{}
	}
	raw, err := json.MarshalIndent(stamp(year, recs), "", "  ")
	if err != nil {
		return fmt.Errorf("encode %d: %w", year, err)
	}
	if err := os.MkdirAll(s.dir, defaultDirPerm); err != nil {
		return fmt.Errorf("create %s: %w", s.dir, err)
	}
	return os.WriteFile(s.Path(year), append(raw, '\n'), defaultFilePerm)
}

// Years lists the editions with a file in the directory.
func (s *FileSource) Years(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.dir, err)
	}

	years := []int{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		var y int
		if _, err := fmt.Sscanf(e.Name(), s.pattern, &y); err != nil {
			continue
		}
		if fmt.Sprintf(s.pattern, y) == e.Name() {
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years, nil
}

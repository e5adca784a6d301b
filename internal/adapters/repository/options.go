package repository

import "time"

// Default store configuration.
const (
	DefaultFilePattern = "results_%d.json"
	defaultBusyTimeout = 5 * time.Second
	defaultFilePerm    = 0o644
	defaultDirPerm     = 0o755
)

// FileOption applies a configuration option to a FileSource.
type FileOption func(*FileSource)

// WithPattern sets the per-year file name pattern. It must contain one %d
// verb for the year.
func WithPattern(pattern string) FileOption {
	return func(s *FileSource) {
		if pattern != "" {
			s.pattern = pattern
		}
	}
}

// SQLiteOption applies a configuration option to a SQLiteSource.
type SQLiteOption func(*SQLiteSource)

// WithBusyTimeout sets how long SQLite waits on a locked database.
func WithBusyTimeout(d time.Duration) SQLiteOption {
	return func(s *SQLiteSource) {
		if d > 0 {
			s.busyTimeout = d
		}
	}
}

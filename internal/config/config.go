// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

// Source kinds.
const (
	SourceFile   = "file"
	SourceSQLite = "sqlite"
)

// Club policies.
const (
	ClubPolicySingle = "single"
	ClubPolicyAll    = "all"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Years is the ascending edition sequence to analyze.
	Years []int `koanf:"years"`

	// Source selects where result sets are read from: file or sqlite.
	Source string `koanf:"source"`

	// DataDir and FilePattern locate per-year JSON files.
	DataDir     string `koanf:"data_dir"`
	FilePattern string `koanf:"file_pattern"`

	// SQLitePath is the database used by the sqlite source and import.
	SQLitePath string `koanf:"sqlite_path"`

	// HomeCountry is the nationality code counted as domestic.
	HomeCountry string `koanf:"home_country"`

	// ClubPolicy decides which clubs a finisher counts for in a year.
	ClubPolicy string `koanf:"club_policy"`

	// Top-N bounds for the emitted tables. TopClubs also caps
	// GET /clubs?limit.
	TopClubs     int `koanf:"top_clubs"`
	TopDistances int `koanf:"top_distances"`
	TopCountries int `koanf:"top_countries"`
	TopCities    int `koanf:"top_cities"`

	// DistanceAliases extends the built-in distance label table.
	DistanceAliases map[string]string `koanf:"distance_aliases"`

	// OutputDir receives the report artifacts.
	OutputDir string `koanf:"output_dir"`

	// RefreshInterval re-runs the analytics while serving. Zero disables it.
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DefaultYears is the edition sequence used when none is configured.
func DefaultYears() []int { return []int{2022, 2023, 2024, 2025, 2026} }

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":9080",
		Source:          SourceFile,
		DataDir:         "data",
		FilePattern:     "results_%d.json",
		SQLitePath:      "data/results.db",
		HomeCountry:     "KAZ",
		ClubPolicy:      ClubPolicySingle,
		TopClubs:        10,
		TopDistances:    10,
		TopCountries:    10,
		TopCities:       10,
		DistanceAliases: map[string]string{},
		OutputDir:       "out",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Validate checks the values Load cannot default.
func (c *Config) Validate() error {
	if err := model.ValidateYears(c.Years); err != nil {
		return fmt.Errorf("%w: years: %w", ErrInvalidConfig, err)
	}
	switch c.Source {
	case SourceFile, SourceSQLite:
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidConfig, c.Source)
	}
	switch c.ClubPolicy {
	case ClubPolicySingle, ClubPolicyAll:
	default:
		return fmt.Errorf("%w: unknown club_policy %q", ErrInvalidConfig, c.ClubPolicy)
	}
	if strings.TrimSpace(c.HomeCountry) == "" {
		return fmt.Errorf("%w: home_country must not be empty", ErrInvalidConfig)
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("%w: refresh_interval must not be negative", ErrInvalidConfig)
	}
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.Source == SourceFile && !strings.Contains(c.FilePattern, "%d") {
		return fmt.Errorf("%w: file_pattern %q has no %%d verb", ErrInvalidConfig, c.FilePattern)
	}
	for name, n := range map[string]int{
		"top_clubs": c.TopClubs, "top_distances": c.TopDistances,
		"top_countries": c.TopCountries, "top_cities": c.TopCities,
	} {
		if n <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, name)
		}
	}
	return nil
}

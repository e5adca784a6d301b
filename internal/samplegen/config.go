// Package samplegen generates synthetic multi-year race results for demos,
// load checks and tests. Output is deterministic for a given seed.
package samplegen

import (
	"fmt"
	"time"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

// Config holds configuration for a generation run.
type Config struct {
	Years        []int   // Ascending editions to generate
	Participants int     // Size of the runner pool shared by all editions
	Seed         uint64  // Seed of the pseudo-random source
	Turnout      float64 // Chance a pool member registers in the first edition
	TurnoutGrow  float64 // Added to Turnout for every later edition
	DNFRate      float64 // Chance a registrant does not finish
	Workers      int     // Editions generated concurrently
}

// DefaultConfig returns a five-edition configuration with a few hundred
// runners per edition.
func DefaultConfig() Config {
	return Config{
		Years:        []int{2022, 2023, 2024, 2025, 2026},
		Participants: 600,
		Seed:         1,
		Turnout:      0.35,
		TurnoutGrow:  0.05,
		DNFRate:      0.06,
		Workers:      defaultWorkers,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := model.ValidateYears(c.Years); err != nil {
		return err
	}
	if c.Participants <= 0 {
		return fmt.Errorf("%w: participants must be positive", ErrInvalidConfig)
	}
	for name, p := range map[string]float64{"turnout": c.Turnout, "dnf_rate": c.DNFRate} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s must be within [0,1]", ErrInvalidConfig, name)
		}
	}
	if c.TurnoutGrow < 0 {
		return fmt.Errorf("%w: turnout growth must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Stats holds generation statistics.
type Stats struct {
	Editions   int
	Records    int
	Finishers  int
	DNF        int
	PerYear    map[int]int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TargetKind string
}

package samplegen

import (
	"context"
	"fmt"
	"time"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/repository"
	"github.com/renatmannanov/ayda-run-v2-sub001/pkg/logger"
)

// Run generates every edition and saves it into store in ascending order.
func Run(ctx context.Context, cfg Config, store repository.Store) (*Stats, error) {
	stats := &Stats{
		StartTime:  time.Now(),
		PerYear:    make(map[int]int, len(cfg.Years)),
		TargetKind: store.Kind(),
	}
	log := logger.Get().Named("samplegen")

	log.Info(ctx, "generating sample editions",
		logger.Any("years", cfg.Years),
		logger.Int("participants", cfg.Participants),
		logger.Any("seed", cfg.Seed),
		logger.String("target", store.Kind()),
	)

	sets, err := Generate(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("sample generation failed: %w", err)
	}

	for _, year := range cfg.Years {
		recs := sets[year]
		if err := store.Save(ctx, year, recs); err != nil {
			return nil, fmt.Errorf("save %d: %w", year, err)
		}
		stats.Editions++
		stats.Records += len(recs)
		stats.PerYear[year] = len(recs)
		for _, r := range recs {
			if r.Finished() {
				stats.Finishers++
			} else {
				stats.DNF++
			}
		}
		log.Debug(ctx, "edition saved", logger.Int("year", year), logger.Int("records", len(recs)))
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	log.Info(ctx, "sample editions written",
		logger.Int("editions", stats.Editions),
		logger.Int("records", stats.Records),
		logger.Int("finishers", stats.Finishers),
		logger.Int("dnf", stats.DNF),
		logger.Duration("duration", stats.Duration),
	)
	return stats, nil
}

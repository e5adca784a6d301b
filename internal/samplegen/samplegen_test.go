package samplegen_test

import (
	"context"
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/repository"
	service "github.com/renatmannanov/ayda-run-v2-sub001/internal/app"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/dedupe"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/normalize"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/samplegen"
	"github.com/renatmannanov/ayda-run-v2-sub001/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(logger.WithWriter(io.Discard)); err != nil {
		panic(err)
	}
}

func smallConfig() samplegen.Config {
	cfg := samplegen.DefaultConfig()
	cfg.Participants = 150
	cfg.Seed = 42
	return cfg
}

func TestGenerate(t *testing.T) {
	Convey("Given a generator configuration", t, func() {
		ctx := context.Background()
		cfg := smallConfig()

		sets, err := samplegen.Generate(ctx, cfg)
		So(err, ShouldBeNil)

		Convey("Then every edition is generated and stamped", func() {
			So(sets, ShouldHaveLength, len(cfg.Years))
			for _, y := range cfg.Years {
				So(sets[y], ShouldNotBeEmpty)
				for _, r := range sets[y] {
					So(r.Year, ShouldEqual, y)
				}
			}
		})

		Convey("Then a runner appears at most once per edition", func() {
			for _, y := range cfg.Years {
				seen := dedupe.New()
				for _, r := range sets[y] {
					So(seen.SeenAndRecord(normalize.Name(r.Name)), ShouldBeFalse)
				}
			}
		})

		Convey("Then the same seed gives the same output", func() {
			again, err := samplegen.Generate(ctx, cfg)
			So(err, ShouldBeNil)
			So(again, ShouldResemble, sets)
		})

		Convey("Then another seed gives different output", func() {
			cfg.Seed = 7
			other, err := samplegen.Generate(ctx, cfg)
			So(err, ShouldBeNil)
			So(other, ShouldNotResemble, sets)
		})
	})

	Convey("Given an invalid configuration", t, func() {
		ctx := context.Background()

		Convey("When the years are not ascending", func() {
			cfg := smallConfig()
			cfg.Years = []int{2025, 2024}
			_, err := samplegen.Generate(ctx, cfg)
			So(errors.Is(err, model.ErrYearOrder), ShouldBeTrue)
		})

		Convey("When a rate is out of range", func() {
			cfg := smallConfig()
			cfg.DNFRate = 1.5
			_, err := samplegen.Generate(ctx, cfg)
			So(errors.Is(err, samplegen.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("When the pool is empty", func() {
			cfg := smallConfig()
			cfg.Participants = 0
			_, err := samplegen.Generate(ctx, cfg)
			So(errors.Is(err, samplegen.ErrInvalidConfig), ShouldBeTrue)
		})
	})

	Convey("Given a cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := samplegen.Generate(ctx, smallConfig())
		So(errors.Is(err, context.Canceled), ShouldBeTrue)
	})
}

func TestRunAndAnalyze(t *testing.T) {
	Convey("Given generated editions saved into a store", t, func() {
		ctx := context.Background()
		cfg := smallConfig()
		store := repository.NewMemorySource(nil)

		stats, err := samplegen.Run(ctx, cfg, store)
		So(err, ShouldBeNil)
		So(stats.Editions, ShouldEqual, len(cfg.Years))
		So(stats.Finishers+stats.DNF, ShouldEqual, stats.Records)
		So(stats.TargetKind, ShouldEqual, repository.KindMemory)

		years, err := store.Years(ctx)
		So(err, ShouldBeNil)
		So(years, ShouldResemble, cfg.Years)

		Convey("When the analytics run over them", func() {
			a, err := service.NewAnalyzer(store, service.WithLogger(logger.Nop()), service.WithYears(cfg.Years))
			So(err, ShouldBeNil)
			res, err := a.Run(ctx)
			So(err, ShouldBeNil)

			Convey("Then veteran counts partition the participants", func() {
				sum := 0
				for n := 1; n <= len(cfg.Years); n++ {
					sum += res.Participants.VeteranCounts[strconv.Itoa(n)]
				}
				So(sum, ShouldEqual, res.Participants.Total)
			})

			Convey("Then gender splits never exceed club totals", func() {
				for _, ys := range res.Clubs.PerYear {
					for _, row := range ys.Standings {
						So(row.Men+row.Women, ShouldBeLessThanOrEqualTo, row.Total)
					}
				}
			})

			Convey("Then every all-time record is at most each yearly best", func() {
				So(res.Records, ShouldNotBeEmpty)
				for _, e := range res.Records {
					for _, m := range e.ByYear {
						So(e.AllTime.TimeSeconds, ShouldBeLessThanOrEqualTo, m.TimeSeconds)
					}
				}
			})

			Convey("Then legacy distance labels are merged", func() {
				rows, ok := res.Distances.Year(cfg.Years[0])
				So(ok, ShouldBeTrue)
				for _, r := range rows {
					So(r.Name, ShouldNotEqual, "Vertical Kilometer")
					So(r.Name, ShouldNotEqual, "Sky Race 21")
				}
			})
		})
	})
}

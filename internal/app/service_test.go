package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/report"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/repository"
	service "github.com/renatmannanov/ayda-run-v2-sub001/internal/app"
	. "github.com/smartystreets/goconvey/convey"
)

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a service over three editions", t, func() {
		ctx := context.Background()
		src := repository.NewMemorySource(fixtureSets())
		svc := service.New(newAnalyzer(src), service.WithReportOptions(report.WithTopClubs(1)))
		defer svc.Stop()

		Convey("When it has not started", func() {
			_, err := svc.Snapshot(ctx)

			Convey("Then no result is available", func() {
				So(errors.Is(err, service.ErrNotReady), ShouldBeTrue)
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})

		Convey("When it starts", func() {
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then the first result is cached", func() {
				a, err := svc.Snapshot(ctx)
				So(err, ShouldBeNil)
				So(a.Meta.Editions, ShouldEqual, 3)

				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
				So(stats["runs"], ShouldEqual, 1)
				So(stats["datasetID"], ShouldEqual, a.Meta.DatasetID)
			})

			Convey("Then starting again is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
				So(svc.GetStats()["runs"], ShouldEqual, 1)
			})

			Convey("Then a failed refresh keeps the previous result", func() {
				before, _ := svc.Snapshot(ctx)
				So(src.Save(ctx, 2025, nil), ShouldBeNil)

				err := svc.Refresh(ctx)
				So(err, ShouldNotBeNil)

				after, err := svc.Snapshot(ctx)
				So(err, ShouldBeNil)
				So(after, ShouldPointTo, before)
				So(svc.GetStats()["failures"], ShouldEqual, 1)
				So(svc.GetStats()["lastError"], ShouldContainSubstring, "empty")
			})

			Convey("Then stopping keeps the result readable", func() {
				svc.Stop()
				svc.Stop()
				So(svc.GetStats()["started"], ShouldEqual, false)
				_, err := svc.Snapshot(ctx)
				So(err, ShouldBeNil)
			})
		})
	})

	Convey("Given a service without an analyzer", t, func() {
		svc := service.New(nil)
		So(errors.Is(svc.Start(context.Background()), service.ErrNoSource), ShouldBeTrue)
	})
}

func TestService_Views(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := service.New(newAnalyzer(repository.NewMemorySource(fixtureSets())),
			service.WithReportOptions(report.WithTopClubs(1)))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When club standings are requested for the final year", func() {
			ys, err := svc.ClubStandings(ctx, 0, 1)

			Convey("Then the largest club leads", func() {
				So(err, ShouldBeNil)
				So(ys.Year, ShouldEqual, 2026)
				So(ys.Standings, ShouldHaveLength, 1)
				So(ys.Standings[0].Name, ShouldEqual, "Beta")
			})
		})

		Convey("When an earlier year is requested without a limit", func() {
			ys, err := svc.ClubStandings(ctx, 2024, 0)
			So(err, ShouldBeNil)
			So(ys.Standings, ShouldHaveLength, 2)
		})

		Convey("When an unknown year is requested", func() {
			_, err := svc.ClubStandings(ctx, 1999, 5)
			So(errors.Is(err, service.ErrUnknownYear), ShouldBeTrue)
		})

		Convey("When distance standings are requested", func() {
			ys, err := svc.DistanceStandings(ctx, 2026, 0)
			So(err, ShouldBeNil)
			So(ys.Standings, ShouldHaveLength, 2)
		})

		Convey("When highlights are requested", func() {
			h, err := svc.Highlights(ctx)
			So(err, ShouldBeNil)
			So(h.Year, ShouldEqual, 2026)
			So(h.Slides[1].Lines, ShouldHaveLength, 1)
		})

		Convey("When the Markdown report is requested", func() {
			var buf bytes.Buffer
			So(svc.Report(ctx, &buf), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "## Clubs 2026")
		})

		Convey("When records are requested", func() {
			recs, err := svc.Records(ctx)
			So(err, ShouldBeNil)
			So(recs, ShouldHaveLength, 3)
		})
	})
}

func TestService_RefreshLoop(t *testing.T) {
	Convey("Given a service with a short refresh interval", t, func() {
		ctx := context.Background()
		svc := service.New(newAnalyzer(repository.NewMemorySource(fixtureSets())),
			service.WithRefreshInterval(10*time.Millisecond))
		So(svc.Start(ctx), ShouldBeNil)

		Convey("Then the result is recomputed in the background", func() {
			deadline := time.Now().Add(2 * time.Second)
			for time.Now().Before(deadline) && svc.GetStats()["runs"].(int) < 3 {
				time.Sleep(5 * time.Millisecond)
			}
			svc.Stop()
			So(svc.GetStats()["runs"].(int), ShouldBeGreaterThanOrEqualTo, 3)
		})
	})
}

package service_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/report"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/repository"
	service "github.com/renatmannanov/ayda-run-v2-sub001/internal/app"
	. "github.com/smartystreets/goconvey/convey"
)

func TestServiceIntegration(t *testing.T) {
	Convey("Given the same editions in every store kind", t, func() {
		ctx := context.Background()
		dir := t.TempDir()

		files := repository.NewFileSource(dir)
		db, err := repository.OpenSQLite(ctx, filepath.Join(dir, "results.db"))
		So(err, ShouldBeNil)
		defer func() { _ = db.Close() }()

		for year, recs := range fixtureSets() {
			So(files.Save(ctx, year, recs), ShouldBeNil)
			So(db.Save(ctx, year, recs), ShouldBeNil)
		}
		stores := []repository.Store{repository.NewMemorySource(fixtureSets()), files, db}

		Convey("When each store is analyzed end to end", func() {
			var artifacts []string
			for _, s := range stores {
				svc := service.New(newAnalyzer(s))
				So(svc.Start(ctx), ShouldBeNil)

				a, err := svc.Snapshot(ctx)
				So(err, ShouldBeNil)
				var buf bytes.Buffer
				So(report.WriteArtifact(&buf, a), ShouldBeNil)
				artifacts = append(artifacts, buf.String())
				svc.Stop()
			}

			Convey("Then every store yields the byte-identical artifact", func() {
				So(artifacts, ShouldHaveLength, 3)
				So(artifacts[1], ShouldEqual, artifacts[0])
				So(artifacts[2], ShouldEqual, artifacts[0])
			})
		})

		Convey("When the artifacts are written to disk", func() {
			svc := service.New(newAnalyzer(db))
			So(svc.Start(ctx), ShouldBeNil)
			defer svc.Stop()
			a, _ := svc.Snapshot(ctx)

			paths, err := report.WriteAll(filepath.Join(dir, "out"), a)

			Convey("Then all three outputs exist", func() {
				So(err, ShouldBeNil)
				So(paths, ShouldHaveLength, 3)
			})
		})
	})
}

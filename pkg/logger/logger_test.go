package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		Convey("When it is initialized with defaults", func() {
			So(Init(), ShouldBeNil)
			So(Get(), ShouldNotBeNil)
			So(Sync(), ShouldBeNil)
		})

		Convey("When it is initialized with json output", func() {
			var buf bytes.Buffer
			So(Init(WithFormat("JSON"), WithWriter(&buf)), ShouldBeNil)

			Named("loader").Info(context.Background(), "dataset loaded", Int("year", 2024), String("kind", "file"))

			Convey("Then records are json with the component and fields", func() {
				var rec map[string]any
				So(json.Unmarshal(buf.Bytes(), &rec), ShouldBeNil)
				So(rec["msg"], ShouldEqual, "dataset loaded")
				So(rec["component"], ShouldEqual, "loader")
				So(rec["year"], ShouldEqual, 2024.0)
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given a text logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(Init(WithWriter(&buf)), ShouldBeNil)
		ctx := context.Background()

		Convey("When the level is raised to warn", func() {
			So(SetLevelString("WARNING"), ShouldBeNil)
			Get().Info(ctx, "hidden")
			Get().Warn(ctx, "shown", Bool("retry", false))

			Convey("Then only warn and above are written", func() {
				out := buf.String()
				So(strings.Contains(out, "hidden"), ShouldBeFalse)
				So(strings.Contains(out, "shown"), ShouldBeTrue)
				So(strings.Contains(out, "logger_test.go:"), ShouldBeTrue)
			})
		})

		Convey("When the level is unknown", func() {
			So(SetLevelString("verbose"), ShouldNotBeNil)
		})

		Reset(func() { _ = SetLevelString("info") })
	})
}

func TestNop(t *testing.T) {
	Convey("Given a nop logger", t, func() {
		l := Nop().Named("x")

		Convey("Then logging does not panic", func() {
			So(func() { l.Error(context.Background(), "ignored", Error(nil)) }, ShouldNotPanic)
		})
	})
}

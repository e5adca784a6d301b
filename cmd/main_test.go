package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/report"
	. "github.com/smartystreets/goconvey/convey"
)

// writeConfig writes a YAML config rooted in dir and returns its path.
func writeConfig(t *testing.T, dir, source string) string {
	t.Helper()
	body := fmt.Sprintf(`log_level: warn
years: [2024, 2025, 2026]
source: %s
data_dir: %s
sqlite_path: %s
output_dir: %s
top_clubs: 3
`, source, filepath.Join(dir, "data"), filepath.Join(dir, "results.db"), filepath.Join(dir, "out"))
	path := filepath.Join(dir, "ayda.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestVersionCommand(t *testing.T) {
	Convey("version prints the build version", t, func() {
		out, err := execute("version")
		So(err, ShouldBeNil)
		So(strings.TrimSpace(out), ShouldEqual, version)
	})
}

func TestGenerateAndReport(t *testing.T) {
	Convey("Given a file-backed configuration", t, func() {
		dir := t.TempDir()
		cfg := writeConfig(t, dir, "file")

		Convey("When sample editions are generated", func() {
			out, err := execute("generate", "--config", cfg, "--participants", "120", "--seed", "7")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "in 3 editions")

			for _, year := range []int{2024, 2025, 2026} {
				_, statErr := os.Stat(filepath.Join(dir, "data", fmt.Sprintf("results_%d.json", year)))
				So(statErr, ShouldBeNil)
			}

			Convey("Then report writes every artifact", func() {
				out, err := execute("report", "--config", cfg)
				So(err, ShouldBeNil)

				paths := strings.Fields(out)
				So(paths, ShouldHaveLength, 3)
				So(paths[0], ShouldEqual, filepath.Join(dir, "out", report.ArtifactFile))

				raw, err := os.ReadFile(paths[0])
				So(err, ShouldBeNil)
				var doc map[string]any
				So(json.Unmarshal(raw, &doc), ShouldBeNil)
				So(doc, ShouldContainKey, "meta")

				md, err := os.ReadFile(filepath.Join(dir, "out", report.MarkdownFile))
				So(err, ShouldBeNil)
				So(len(md), ShouldBeGreaterThan, 0)
			})

			Convey("Then --out overrides the output directory", func() {
				alt := filepath.Join(dir, "alt")
				_, err := execute("report", "--config", cfg, "--out", alt)
				So(err, ShouldBeNil)
				_, statErr := os.Stat(filepath.Join(alt, report.HighlightsFile))
				So(statErr, ShouldBeNil)
			})

			Convey("Then the editions import into sqlite and report the same artifact", func() {
				out, err := execute("import", "--config", cfg)
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "from 3 editions")

				_, err = execute("report", "--config", cfg, "--out", filepath.Join(dir, "from-file"))
				So(err, ShouldBeNil)

				sqlCfg := writeConfig(t, dir, "sqlite")
				_, err = execute("report", "--config", sqlCfg, "--out", filepath.Join(dir, "from-sqlite"))
				So(err, ShouldBeNil)

				fromFile, err := os.ReadFile(filepath.Join(dir, "from-file", report.ArtifactFile))
				So(err, ShouldBeNil)
				fromSQLite, err := os.ReadFile(filepath.Join(dir, "from-sqlite", report.ArtifactFile))
				So(err, ShouldBeNil)
				So(string(fromSQLite), ShouldEqual, string(fromFile))
			})
		})

		Convey("When report runs without data", func() {
			_, err := execute("report", "--config", cfg)

			Convey("Then it fails", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "analytics run failed")
			})
		})
	})
}

func TestConfigErrors(t *testing.T) {
	Convey("A missing config file fails every command that loads it", t, func() {
		_, err := execute("report", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "failed to load config")
	})
}

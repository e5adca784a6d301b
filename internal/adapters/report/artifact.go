// Package report emits the analytics result: the full JSON artifact, a
// short highlights structure for publication and a Markdown report.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/types"
)

// Artifact file names written by WriteAll.
const (
	ArtifactFile   = "analytics.json"
	HighlightsFile = "highlights.json"
	MarkdownFile   = "report.md"
)

// WriteArtifact encodes a as indented JSON. The encoding is byte-stable for
// equal values.
func WriteArtifact(w io.Writer, a *types.Analytics) error {
	return encode(w, a)
}

// WriteHighlights encodes h as indented JSON.
func WriteHighlights(w io.Writer, h Highlights) error {
	return encode(w, h)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// WriteAll writes the artifact, the highlights and the Markdown report
// into dir and returns the written paths.
func WriteAll(dir string, a *types.Analytics, opts ...Option) ([]string, error) {
	if a == nil {
		return nil, ErrNoAnalytics
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	o := newOptions(opts)
	outputs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{ArtifactFile, func(w io.Writer) error { return WriteArtifact(w, a) }},
		{HighlightsFile, func(w io.Writer) error { return WriteHighlights(w, extract(a, o)) }},
		{MarkdownFile, func(w io.Writer) error { return render(w, a, o) }},
	}

	paths := make([]string, 0, len(outputs))
	for _, out := range outputs {
		var buf bytes.Buffer
		if err := out.write(&buf); err != nil {
			return paths, err
		}
		path := filepath.Join(dir, out.name)
		if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/npillmayer/schuko/tracing"
	"github.com/tdewolff/harfbuzz"
	"github.com/tdewolff/test"
	"golang.org/x/image/font/gofont/goregular"
)

func TestMain(m *testing.M) {
	if err := initTracing(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestTraceLevel(t *testing.T) {
	test.Error(t, setTraceLevel("Debug"))
	test.T(t, tracer().GetTraceLevel(), tracing.LevelDebug)
	test.That(t, setTraceLevel("Verbose") != nil)
	test.Error(t, setTraceLevel("Error"))
	test.T(t, tracer().GetTraceLevel(), tracing.LevelError)
}

func TestFontSource(t *testing.T) {
	data, index, name, err := FontSource{Builtin: "LMRoman"}.load()
	test.Error(t, err)
	test.T(t, index, 0)
	test.String(t, name, "lmroman")
	test.T(t, len(data), len(lmroman10regular.TTF))

	_, _, _, err = FontSource{Builtin: "comic"}.load()
	test.That(t, err != nil)

	filename := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	test.Error(t, os.WriteFile(filename, goregular.TTF, 0o644))
	data, index, name, err = FontSource{Filename: filename, Index: 2, Builtin: "lmroman"}.load()
	test.Error(t, err)
	test.T(t, index, 2)
	test.String(t, name, "Go-Regular.ttf")
	test.T(t, len(data), len(goregular.TTF))

	_, _, _, err = FontSource{System: "sans-serif", Style: "Wobbly"}.load()
	test.That(t, err != nil)
}

func TestShaper(t *testing.T) {
	cmd := &Shape{Format: "text", NoPositions: true, Trace: "Error"}
	s, err := newShaper(cmd, lmroman10regular.TTF, 0)
	test.Error(t, err)
	defer s.Close()

	var w bytes.Buffer
	test.Error(t, s.Shape(&w, "fit"))
	out := strings.Trim(strings.TrimSpace(w.String()), "[]")
	test.T(t, strings.Count(out, "|"), 1)
	test.That(t, strings.HasSuffix(out, "=2"), out)

	test.Error(t, s.setFeatures("liga=0"))
	w.Reset()
	test.Error(t, s.Shape(&w, "fit"))
	out = strings.Trim(strings.TrimSpace(w.String()), "[]")
	test.T(t, strings.Count(out, "|"), 2)

	test.Error(t, s.setDirection("rtl"))
	test.T(t, s.props.Direction, harfbuzz.RightToLeft)
	test.That(t, s.setDirection("sideways") != nil)

	w.Reset()
	s.format = "json"
	test.Error(t, s.Shape(&w, "a"))
	test.That(t, strings.Contains(w.String(), `"cl":0`), w.String())
}

func TestShaperOptions(t *testing.T) {
	var tests = []struct {
		name string
		cmd  Shape
	}{
		{"format", Shape{Format: "yaml"}},
		{"features", Shape{Format: "text", Features: "liga=x=y"}},
		{"direction", Shape{Format: "text", Direction: "up"}},
		{"variations", Shape{Format: "text", Variations: "wght"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newShaper(&tt.cmd, goregular.TTF, 0)
			test.That(t, err != nil)
		})
	}

	_, err := newShaper(&Shape{Format: "text"}, goregular.TTF, 1)
	test.That(t, err != nil)
}

func TestExecute(t *testing.T) {
	s, err := newShaper(&Shape{Format: "text"}, goregular.TTF, 0)
	test.Error(t, err)
	defer s.Close()

	quit, err := s.execute("format table")
	test.Error(t, err)
	test.That(t, !quit)
	test.String(t, s.format, "table")

	_, err = s.execute("format yaml")
	test.That(t, err != nil)
	_, err = s.execute("bogus")
	test.That(t, err != nil)

	_, err = s.execute("compare")
	test.Error(t, err)
	test.That(t, s.compare)

	quit, err = s.execute("quit")
	test.Error(t, err)
	test.That(t, quit)
}

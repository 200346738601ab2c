// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/2dChan/monochain"
	"github.com/2dChan/monochain/graph"
	"github.com/2dChan/monochain/planar"
	"github.com/golang/geo/r2"
)

var (
	a = r2.Point{X: 0, Y: 0}
	b = r2.Point{X: 10, Y: 0}
	c = r2.Point{X: 5, Y: 10}
	q = r2.Point{X: 5, Y: 5}
)

// Options

func TestOptions(t *testing.T) {
	tests := []struct {
		name    string
		setters []Option
		wantErr bool
	}{
		{"defaults", nil, false},
		{"size", []Option{WithSize(100, 50)}, false},
		{"zero width", []Option{WithSize(0, 50)}, true},
		{"negative height", []Option{WithSize(100, -1)}, true},
		{"negative margin", []Option{WithMargin(-1)}, true},
		{"margin too large", []Option{WithSize(100, 50), WithMargin(25)}, true},
		{"explicit margin kept", []Option{WithMargin(30), WithSize(100, 61)}, false},
		{"empty palette", []Option{WithPalette()}, true},
		{"palette", []Option{WithPalette("red")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newOptions(tt.setters)
			if (err != nil) != tt.wantErr {
				t.Errorf("newOptions(...) error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptions_DefaultMarginFitsCanvas(t *testing.T) {
	tests := []struct {
		name       string
		setters    []Option
		wantMargin int
	}{
		{"default canvas", nil, defaultMargin},
		{"small canvas", []Option{WithSize(100, 50)}, 12},
		{"tiny canvas", []Option{WithSize(3, 3)}, 0},
		{"explicit margin", []Option{WithSize(100, 50), WithMargin(20)}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := newOptions(tt.setters)
			if err != nil {
				t.Fatalf("newOptions(...) error = %v, want nil", err)
			}
			if opts.Margin != tt.wantMargin {
				t.Errorf("newOptions(...).Margin = %d, want %d", opts.Margin, tt.wantMargin)
			}
		})
	}
}

// SVG

func TestSVG_Triangle(t *testing.T) {
	res := mustLocate(t)

	var buf bytes.Buffer
	if err := SVG(&buf, res, WithQuery(q), WithWeights(true)); err != nil {
		t.Fatalf("SVG(...) error = %v, want nil", err)
	}
	out := buf.String()

	chainEdges := 0
	for _, ch := range res.Chains {
		chainEdges += len(ch)
	}
	checks := []struct {
		name string
		elem string
		want int
	}{
		{"svg root", "<svg", 1},
		{"lines", "<line", len(res.Edges) + chainEdges},
		{"circles", "<circle", 3 + 1},
		{"weight labels", "<text", len(res.Edges)},
	}
	for _, ck := range checks {
		if got := strings.Count(out, ck.elem); got != ck.want {
			t.Errorf("%s: count(%q) = %d, want %d", ck.name, ck.elem, got, ck.want)
		}
	}
	for i := range res.Chains {
		if !strings.Contains(out, DefaultPalette[i]) {
			t.Errorf("output missing chain color %q", DefaultPalette[i])
		}
	}
}

func TestSVG_NoWeightsNoQuery(t *testing.T) {
	res := mustLocate(t)

	var buf bytes.Buffer
	if err := SVG(&buf, res); err != nil {
		t.Fatalf("SVG(...) error = %v, want nil", err)
	}
	if n := strings.Count(buf.String(), "<text"); n != 0 {
		t.Errorf("count(<text) = %d, want 0", n)
	}
	if n := strings.Count(buf.String(), "<circle"); n != 3 {
		t.Errorf("count(<circle) = %d, want 3", n)
	}
}

func TestSVG_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, &monochain.Result{}); err != nil {
		t.Fatalf("SVG(empty) error = %v, want nil", err)
	}
	if !strings.Contains(buf.String(), "</svg>") {
		t.Errorf("SVG(empty) output is not a complete document")
	}
}

func TestSVG_WriteError(t *testing.T) {
	errBoom := errors.New("boom")
	err := SVG(failingWriter{errBoom}, mustLocate(t))
	if !errors.Is(err, errBoom) {
		t.Errorf("SVG(failingWriter, ...) error = %v, want %v", err, errBoom)
	}
}

func TestProjection_FlipsY(t *testing.T) {
	opts, err := newOptions([]Option{WithSize(200, 200), WithMargin(0)})
	if err != nil {
		t.Fatalf("newOptions(...) error = %v, want nil", err)
	}
	edges := []graph.Edge{{From: a, To: c, Weight: 1}, {From: a, To: r2.Point{X: 10, Y: 10}, Weight: 1}}
	proj := newProjection(edges, opts)

	tests := []struct {
		in           r2.Point
		wantX, wantY int
	}{
		{a, 0, 200},
		{r2.Point{X: 10, Y: 10}, 200, 0},
		{c, 100, 0},
	}
	for _, tt := range tests {
		x, y := proj.toScreen(tt.in)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("proj.toScreen(%v) = (%d, %d), want (%d, %d)", tt.in, x, y, tt.wantX, tt.wantY)
		}
	}
}

// Helpers

func mustLocate(t *testing.T) *monochain.Result {
	t.Helper()
	segments := []planar.Segment{{From: a, To: b}, {From: b, To: c}, {From: c, To: a}}
	res, err := monochain.Locate(q, []r2.Point{a, b, c}, segments)
	if err != nil {
		t.Fatalf("Locate(...) error = %v, want nil", err)
	}
	return res
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

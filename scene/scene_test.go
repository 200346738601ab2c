// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package scene

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/2dChan/monochain/planar"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

var (
	a = r2.Point{X: 0, Y: 0}
	b = r2.Point{X: 10, Y: 0}
	c = r2.Point{X: 5, Y: 10}
)

func triangle() *Scene {
	q := r2.Point{X: 5, Y: 5}
	return &Scene{
		Points:   []r2.Point{a, b, c},
		Segments: []planar.Segment{{From: a, To: b}, {From: b, To: c}, {From: c, To: a}},
		Query:    &q,
	}
}

func TestReadJSON(t *testing.T) {
	in := `{
	  "points": [{"x": 0, "y": 0}, {"x": 10, "y": 0}, {"x": 5, "y": 10}],
	  "segments": [
	    {"from": {"x": 0, "y": 0}, "to": {"x": 10, "y": 0}},
	    {"from": {"x": 10, "y": 0}, "to": {"x": 5, "y": 10}},
	    {"from": {"x": 5, "y": 10}, "to": {"x": 0, "y": 0}}
	  ],
	  "query": {"x": 5, "y": 5}
	}`
	got, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON(...) error = %v, want nil", err)
	}
	if diff := cmp.Diff(triangle(), got); diff != "" {
		t.Errorf("ReadJSON(...) mismatch (-want +got):\n%s", diff)
	}
}

func TestReadJSON_NoQuery(t *testing.T) {
	got, err := ReadJSON(strings.NewReader(`{"points": [{"x": 1, "y": 2}], "segments": []}`))
	if err != nil {
		t.Fatalf("ReadJSON(...) error = %v, want nil", err)
	}
	if got.Query != nil {
		t.Errorf("ReadJSON(...).Query = %v, want nil", *got.Query)
	}
	if diff := cmp.Diff([]r2.Point{{X: 1, Y: 2}}, got.Points); diff != "" {
		t.Errorf("ReadJSON(...).Points mismatch (-want +got):\n%s", diff)
	}
}

func TestReadJSON_Malformed(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader(`{"points": [`)); err == nil {
		t.Errorf("ReadJSON(...) error = nil, want non-nil")
	}
}

func TestReadTOML(t *testing.T) {
	in := `
[[points]]
x = 0.0
y = 0.0

[[points]]
x = 10.0
y = 0.0

[[points]]
x = 5.0
y = 10.0

[[segments]]
from = { x = 0.0, y = 0.0 }
to = { x = 10.0, y = 0.0 }

[[segments]]
from = { x = 10.0, y = 0.0 }
to = { x = 5.0, y = 10.0 }

[[segments]]
from = { x = 5.0, y = 10.0 }
to = { x = 0.0, y = 0.0 }

[query]
x = 5.0
y = 5.0
`
	got, err := ReadTOML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTOML(...) error = %v, want nil", err)
	}
	if diff := cmp.Diff(triangle(), got); diff != "" {
		t.Errorf("ReadTOML(...) mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteRead(t *testing.T) {
	tests := []struct {
		name  string
		write func(*bytes.Buffer, *Scene) error
		read  func(*bytes.Buffer) (*Scene, error)
	}{
		{
			"json",
			func(w *bytes.Buffer, s *Scene) error { return WriteJSON(w, s) },
			func(r *bytes.Buffer) (*Scene, error) { return ReadJSON(r) },
		},
		{
			"toml",
			func(w *bytes.Buffer, s *Scene) error { return WriteTOML(w, s) },
			func(r *bytes.Buffer) (*Scene, error) { return ReadTOML(r) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.write(&buf, triangle()); err != nil {
				t.Fatalf("write error = %v, want nil", err)
			}
			got, err := tt.read(&buf)
			if err != nil {
				t.Fatalf("read error = %v, want nil", err)
			}
			if diff := cmp.Diff(triangle(), got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"scene.json", "scene.toml", "SCENE.JSON"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(path, triangle()); err != nil {
				t.Fatalf("Save(%q, ...) error = %v, want nil", path, err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load(%q) error = %v, want nil", path, err)
			}
			if diff := cmp.Diff(triangle(), got); diff != "" {
				t.Errorf("Load(%q) mismatch (-want +got):\n%s", path, diff)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"unknown extension", filepath.Join(dir, "scene.yaml"), ErrUnknownFormat},
		{"no extension", filepath.Join(dir, "scene"), ErrUnknownFormat},
		{"missing file", filepath.Join(dir, "missing.json"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatalf("Load(%q) error = nil, want non-nil", tt.path)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestSave_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.txt")
	if err := Save(path, triangle()); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Save(%q, ...) error = %v, want %v", path, err, ErrUnknownFormat)
	}
}

func TestScene_FlipY(t *testing.T) {
	s := triangle()
	s.FlipY()

	q := r2.Point{X: 5, Y: -5}
	want := &Scene{
		Points: []r2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: -10}},
		Segments: []planar.Segment{
			{From: r2.Point{X: 0, Y: 0}, To: r2.Point{X: 10, Y: 0}},
			{From: r2.Point{X: 10, Y: 0}, To: r2.Point{X: 5, Y: -10}},
			{From: r2.Point{X: 5, Y: -10}, To: r2.Point{X: 0, Y: 0}},
		},
		Query: &q,
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("s.FlipY() mismatch (-want +got):\n%s", diff)
	}
}

func TestScene_Snap(t *testing.T) {
	s := &Scene{
		Points: []r2.Point{a, b, c},
		Segments: []planar.Segment{
			{From: r2.Point{X: 0.5, Y: -0.5}, To: r2.Point{X: 9, Y: 1}},
			{From: b, To: r2.Point{X: 40, Y: 40}},
		},
	}

	moved := s.Snap(2)
	if moved != 2 {
		t.Errorf("s.Snap(2) = %d, want 2", moved)
	}
	want := []planar.Segment{
		{From: a, To: b},
		{From: b, To: r2.Point{X: 40, Y: 40}},
	}
	if diff := cmp.Diff(want, s.Segments); diff != "" {
		t.Errorf("s.Snap(2) segments mismatch (-want +got):\n%s", diff)
	}
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package scene reads and writes point location scenes: a set of points, the
// segments between them and an optional query point.
//
// Scenes are stored as JSON or TOML. Both formats use the same keys:
//
//	{
//	  "points": [{"x": 0, "y": 0}, {"x": 10, "y": 0}, {"x": 5, "y": 10}],
//	  "segments": [{"from": {"x": 0, "y": 0}, "to": {"x": 5, "y": 10}}],
//	  "query": {"x": 5, "y": 5}
//	}
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/2dChan/monochain/planar"
	"github.com/BurntSushi/toml"
	"github.com/golang/geo/r2"
)

// ErrUnknownFormat reports a file extension that is neither JSON nor TOML.
var ErrUnknownFormat = errors.New("scene: unknown file format")

// Scene is a planar straight-line graph with a query point.
type Scene struct {
	Points   []r2.Point
	Segments []planar.Segment
	// Query is nil when the scene carries no query.
	Query *r2.Point
}

type point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

type segment struct {
	From point `json:"from" toml:"from"`
	To   point `json:"to" toml:"to"`
}

type file struct {
	Points   []point   `json:"points" toml:"points"`
	Segments []segment `json:"segments" toml:"segments"`
	Query    *point    `json:"query,omitempty" toml:"query,omitempty"`
}

func fromPoint(p r2.Point) point { return point{X: p.X, Y: p.Y} }

func (p point) toR2() r2.Point { return r2.Point{X: p.X, Y: p.Y} }

func (f *file) scene() *Scene {
	s := &Scene{
		Points:   make([]r2.Point, len(f.Points)),
		Segments: make([]planar.Segment, len(f.Segments)),
	}
	for i, p := range f.Points {
		s.Points[i] = p.toR2()
	}
	for i, sg := range f.Segments {
		s.Segments[i] = planar.Segment{From: sg.From.toR2(), To: sg.To.toR2()}
	}
	if f.Query != nil {
		q := f.Query.toR2()
		s.Query = &q
	}
	return s
}

func (s *Scene) file() *file {
	f := &file{
		Points:   make([]point, len(s.Points)),
		Segments: make([]segment, len(s.Segments)),
	}
	for i, p := range s.Points {
		f.Points[i] = fromPoint(p)
	}
	for i, sg := range s.Segments {
		f.Segments[i] = segment{From: fromPoint(sg.From), To: fromPoint(sg.To)}
	}
	if s.Query != nil {
		q := fromPoint(*s.Query)
		f.Query = &q
	}
	return f
}

// ReadJSON decodes a JSON scene from r. It does not close r.
func ReadJSON(r io.Reader) (*Scene, error) {
	var f file
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return f.scene(), nil
}

// WriteJSON encodes s as indented JSON.
func WriteJSON(w io.Writer, s *Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.file()); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// ReadTOML decodes a TOML scene from r. It does not close r.
func ReadTOML(r io.Reader) (*Scene, error) {
	var f file
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return f.scene(), nil
}

// WriteTOML encodes s as TOML.
func WriteTOML(w io.Writer, s *Scene) error {
	if err := toml.NewEncoder(w).Encode(s.file()); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}

type format int

const (
	formatJSON format = iota
	formatTOML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".toml":
		return formatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads the scene at path. The format is picked by extension: .json or
// .toml.
func Load(path string) (*Scene, error) {
	ft, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s *Scene
	switch ft {
	case formatTOML:
		s, err = ReadTOML(f)
	default:
		s, err = ReadJSON(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path, creating or truncating it. The format is picked by
// extension as in Load.
func Save(path string, s *Scene) (err error) {
	ft, err := formatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch ft {
	case formatTOML:
		err = WriteTOML(f, s)
	default:
		err = WriteJSON(f, s)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// FlipY mirrors the scene over the X axis, converting between screen
// coordinates (Y down) and the Y-up frame used for location.
func (s *Scene) FlipY() {
	for i, p := range s.Points {
		s.Points[i] = planar.FlipY(p)
	}
	for i, sg := range s.Segments {
		s.Segments[i] = planar.Segment{From: planar.FlipY(sg.From), To: planar.FlipY(sg.To)}
	}
	if s.Query != nil {
		q := planar.FlipY(*s.Query)
		s.Query = &q
	}
}

// Snap moves every segment endpoint onto the nearest scene point closer than
// eps. Endpoints with no point that close are left as they are. It returns
// the number of endpoints moved.
func (s *Scene) Snap(eps float64) int {
	moved := 0
	snap := func(p r2.Point) r2.Point {
		q, ok := planar.NearestPoint(p, s.Points, eps)
		if !ok || q == p {
			return p
		}
		moved++
		return q
	}
	for i, sg := range s.Segments {
		s.Segments[i] = planar.Segment{From: snap(sg.From), To: snap(sg.To)}
	}
	return moved
}

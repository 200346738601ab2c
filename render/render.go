// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws chain decompositions as SVG.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/2dChan/monochain"
	"github.com/2dChan/monochain/graph"
	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultMargin = 40

	baseLineWidth  = 2
	lineWidthShift = 2

	backgroundStyle = "fill:rgb(255,255,255)"
	edgeStyle       = "stroke:rgb(170,170,170);stroke-width:1"
	weightStyle     = "font-family:monospace;font-size:11px;fill:rgb(90,90,90);text-anchor:middle"
	pointStyle      = "fill:rgb(255,255,255);stroke:rgb(0,0,0);stroke-width:1"
	queryStyle      = "fill:rgb(220,38,38)"
)

// DefaultPalette colors chains in extraction order, wrapping around.
var DefaultPalette = []string{
	"rgb(220,38,38)",
	"rgb(253,186,116)",
	"rgb(180,83,9)",
	"rgb(74,222,128)",
	"rgb(21,94,117)",
	"rgb(96,165,250)",
	"rgb(167,139,250)",
	"rgb(244,114,182)",
}

type Options struct {
	Width   int
	Height  int
	Margin  int
	Palette []string
	Weights bool
	Query   *r2.Point

	marginSet bool
}

type Option func(*Options) error

func WithSize(width, height int) Option {
	return func(o *Options) error {
		if width <= 0 || height <= 0 {
			return errors.New("WithSize: width and height must be positive")
		}
		o.Width, o.Height = width, height
		return nil
	}
}

func WithMargin(margin int) Option {
	return func(o *Options) error {
		if margin < 0 {
			return errors.New("WithMargin: margin must be non-negative")
		}
		o.Margin, o.marginSet = margin, true
		return nil
	}
}

func WithPalette(colors ...string) Option {
	return func(o *Options) error {
		if len(colors) == 0 {
			return errors.New("WithPalette: palette must not be empty")
		}
		o.Palette = colors
		return nil
	}
}

// WithWeights labels every edge with its balanced weight.
func WithWeights(show bool) Option {
	return func(o *Options) error {
		o.Weights = show
		return nil
	}
}

// WithQuery marks q on the drawing.
func WithQuery(q r2.Point) Option {
	return func(o *Options) error {
		o.Query = &q
		return nil
	}
}

func newOptions(setters []Option) (*Options, error) {
	opts := &Options{
		Width:   defaultWidth,
		Height:  defaultHeight,
		Margin:  defaultMargin,
		Palette: DefaultPalette,
	}
	for _, set := range setters {
		if err := set(opts); err != nil {
			return nil, err
		}
	}
	// The default margin shrinks to a quarter of the shorter side on small
	// canvases. An explicit margin is kept as given.
	if !opts.marginSet {
		opts.Margin = min(defaultMargin, min(opts.Width, opts.Height)/4)
	}
	if 2*opts.Margin >= opts.Width || 2*opts.Margin >= opts.Height {
		return nil, fmt.Errorf("render: margin %d leaves no room in %dx%d", opts.Margin, opts.Width, opts.Height)
	}
	return opts, nil
}

// SVG writes res to w: the balanced graph in grey, every chain in its palette
// color with earlier chains drawn wider, then the vertices and the query.
// When res locates the query between chains, those two are drawn on top and
// the rest are faded.
func SVG(w io.Writer, res *monochain.Result, setters ...Option) error {
	opts, err := newOptions(setters)
	if err != nil {
		return err
	}

	ew := &errWriter{w: w}
	proj := newProjection(res.Edges, opts)
	canvas := svg.New(ew)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, backgroundStyle)

	canvas.Gid("edges")
	for _, e := range res.Edges {
		x1, y1 := proj.toScreen(e.From)
		x2, y2 := proj.toScreen(e.To)
		canvas.Line(x1, y1, x2, y2, edgeStyle)
	}
	canvas.Gend()

	highlight := res.Position == monochain.PositionBetween || res.Position == monochain.PositionSingle
	isEnclosing := func(c monochain.Chain) bool {
		return highlight && (c.Equal(res.Enclosing[0]) || c.Equal(res.Enclosing[1]))
	}
	canvas.Gid("chains")
	for _, pass := range []bool{false, true} {
		for i, c := range res.Chains {
			if isEnclosing(c) != pass {
				continue
			}
			opacity := 1.0
			if highlight && !pass {
				opacity = 0.35
			}
			style := fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-opacity:%.2f;stroke-linecap:round",
				opts.Palette[i%len(opts.Palette)], baseLineWidth+(len(res.Chains)-1-i)*lineWidthShift, opacity)
			for _, e := range c {
				x1, y1 := proj.toScreen(e.From)
				x2, y2 := proj.toScreen(e.To)
				canvas.Line(x1, y1, x2, y2, style)
			}
		}
	}
	canvas.Gend()

	if opts.Weights {
		canvas.Gid("weights")
		for _, e := range res.Edges {
			x, y := proj.toScreen(e.From.Add(e.To).Mul(0.5))
			canvas.Text(x, y-4, strconv.Itoa(e.Weight), weightStyle)
		}
		canvas.Gend()
	}

	canvas.Gid("points")
	for _, p := range vertices(res.Edges) {
		x, y := proj.toScreen(p)
		canvas.Circle(x, y, 4, pointStyle)
	}
	if opts.Query != nil {
		x, y := proj.toScreen(*opts.Query)
		canvas.Circle(x, y, 5, queryStyle)
	}
	canvas.Gend()
	canvas.End()

	return ew.err
}

func vertices(edges []graph.Edge) []r2.Point {
	seen := make(map[r2.Point]struct{}, len(edges)+1)
	var vs []r2.Point
	for _, e := range edges {
		for _, p := range [2]r2.Point{e.From, e.To} {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			vs = append(vs, p)
		}
	}
	return vs
}

// projection fits the drawing bounds into the canvas, preserving aspect
// ratio, and flips Y so that larger Y is drawn higher.
type projection struct {
	bounds r2.Rect
	scale  float64
	height int
	margin int
}

func newProjection(edges []graph.Edge, opts *Options) projection {
	bounds := r2.EmptyRect()
	for _, e := range edges {
		bounds = bounds.AddPoint(e.From).AddPoint(e.To)
	}
	if opts.Query != nil {
		bounds = bounds.AddPoint(*opts.Query)
	}
	if bounds.IsEmpty() {
		bounds = r2.RectFromPoints(r2.Point{})
	}

	size := bounds.Size()
	innerW := float64(opts.Width - 2*opts.Margin)
	innerH := float64(opts.Height - 2*opts.Margin)
	scale := math.Inf(1)
	if size.X > 0 {
		scale = innerW / size.X
	}
	if size.Y > 0 {
		scale = math.Min(scale, innerH/size.Y)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}
	return projection{bounds: bounds, scale: scale, height: opts.Height, margin: opts.Margin}
}

func (p projection) toScreen(pt r2.Point) (int, int) {
	lo := p.bounds.Lo()
	x := float64(p.margin) + (pt.X-lo.X)*p.scale
	y := float64(p.height-p.margin) - (pt.Y-lo.Y)*p.scale
	return int(math.Round(x)), int(math.Round(y))
}

// errWriter keeps the first write error so SVG can report it after svgo,
// which ignores write errors, finishes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

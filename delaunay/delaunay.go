// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay computes planar Delaunay triangulations. The triangle
// edges make well-formed planar straight-line graphs for chain decomposition.
package delaunay

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/2dChan/monochain/planar"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

type Triangulation struct {
	Vertices []r2.Point
	// NOTE: Vertices of every triangle are sorted CCW.
	Triangles [][3]int
}

func (dt *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// Segments returns every triangle edge once, ordered by vertex indices.
func (dt *Triangulation) Segments() []planar.Segment {
	type key struct{ a, b int }
	seen := make(map[key]struct{}, len(dt.Triangles)*3/2+1)
	keys := make([]key, 0, len(dt.Triangles)*3/2+1)
	for _, tri := range dt.Triangles {
		for _, v := range tri {
			k := key{v, NextVertex(tri, v)}
			if k.a > k.b {
				k.a, k.b = k.b, k.a
			}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(x, y key) int {
		if x.a != y.a {
			return x.a - y.a
		}
		return x.b - y.b
	})

	segments := make([]planar.Segment, len(keys))
	for i, k := range keys {
		segments[i] = planar.Segment{From: dt.Vertices[k.a], To: dt.Vertices[k.b]}
	}
	return segments
}

type TriangulationOptions struct {
	Eps float64
}

type TriangulationOption func(*TriangulationOptions) error

func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return errors.New("WithEps: eps must be positive")
		}
		o.Eps = eps
		return nil
	}
}

// NewTriangulation triangulates vertices by lifting them onto a paraboloid
// and keeping the lower faces of the convex hull.
//
// NOTE: All vertices must be distinct and not all collinear.
func NewTriangulation(vertices []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	n := len(vertices)
	if n < 3 {
		return nil,
			errors.New("delaunay: insufficient vertices for triangulation (minimum 3 required)")
	}
	if err := checkVertices(vertices); err != nil {
		return nil, err
	}

	lifted := lift(vertices)
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, opts.Eps)

	var inner r3.Vector
	for _, p := range lifted {
		inner = inner.Add(p)
	}
	inner = inner.Mul(1 / float64(len(lifted)))

	dt := &Triangulation{
		Vertices:  vertices,
		Triangles: make([][3]int, 0, 2*n),
	}
	for i := 0; i+2 < len(ch.Indices); i += 3 {
		tri := [3]int{ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]}
		if slices.Contains(tri[:], n) {
			continue
		}
		a, b, c := lifted[tri[0]], lifted[tri[1]], lifted[tri[2]]
		norm := b.Sub(a).Cross(c.Sub(a))
		if norm.Dot(inner.Sub(a)) > 0 {
			norm = norm.Mul(-1)
		}
		if norm.Z >= -opts.Eps*norm.Norm() {
			continue
		}
		sortTriangleVerticesCCW(&tri, vertices)
		dt.Triangles = append(dt.Triangles, tri)
	}
	if len(dt.Triangles) == 0 {
		return nil, errors.New("delaunay: convex hull has no lower faces")
	}

	return dt, nil
}

func checkVertices(vertices []r2.Point) error {
	seen := make(map[r2.Point]struct{}, len(vertices))
	for i, p := range vertices {
		if _, ok := seen[p]; ok {
			return fmt.Errorf("delaunay: duplicate vertex %d %v", i, p)
		}
		seen[p] = struct{}{}
	}

	a, b := vertices[0], vertices[1]
	for _, c := range vertices[2:] {
		if planar.SideOf(planar.Segment{From: a, To: b}, c) != planar.On {
			return nil
		}
	}
	return errors.New("delaunay: all vertices are collinear")
}

// lift maps vertices, normalized around their centroid, onto the paraboloid
// z = x² + y², and appends an apex above every lifted point so the hull is
// never flat. The apex has index len(vertices).
func lift(vertices []r2.Point) []r3.Vector {
	var center r2.Point
	for _, p := range vertices {
		center = center.Add(p)
	}
	center = center.Mul(1 / float64(len(vertices)))

	scale := 0.0
	for _, p := range vertices {
		d := p.Sub(center)
		scale = math.Max(scale, math.Max(math.Abs(d.X), math.Abs(d.Y)))
	}

	lifted := make([]r3.Vector, len(vertices)+1)
	top := 0.0
	for i, p := range vertices {
		d := p.Sub(center).Mul(1 / scale)
		lifted[i] = r3.Vector{X: d.X, Y: d.Y, Z: d.X*d.X + d.Y*d.Y}
		top = math.Max(top, lifted[i].Z)
	}
	lifted[len(vertices)] = r3.Vector{Z: 2*top + 1}
	return lifted
}

func sortTriangleVerticesCCW(t *[3]int, v []r2.Point) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	if p1.Sub(p0).Cross(p2.Sub(p0)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}

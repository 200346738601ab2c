// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package monochain implements planar point location with the monotone chain
// method.
//
// A planar straight-line graph is regularized so every vertex has an edge
// above and below it, its edge weights are balanced so that flow is conserved
// at every internal vertex, and the weighted graph is then drained into
// monotone chains running from the lowest to the highest point. Locating a
// query point is a binary search over the left-to-right ordered chains.
//
// Points are ordered by Y and then by X; "above" and "monotone" refer to that
// order. Every call builds its own graph, so calls are independent and
// deterministic.
package monochain

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/monochain/graph"
	"github.com/2dChan/monochain/planar"
	"github.com/golang/geo/r2"
)

var (
	// ErrTooFewPoints reports input with fewer than two distinct points.
	ErrTooFewPoints = errors.New("monochain: at least 2 distinct points required")
	// ErrNonFinitePoint reports a point with a NaN or infinite coordinate.
	ErrNonFinitePoint = errors.New("monochain: point coordinates must be finite")
	// ErrUnknownEndpoint reports a segment endpoint that is not an input point.
	ErrUnknownEndpoint = errors.New("monochain: segment endpoint is not a point")
	// ErrNoCorridorVertex reports a vertex that cannot be connected during
	// regularization without leaving its corridor.
	ErrNoCorridorVertex = errors.New("monochain: no vertex inside corridor")
	// ErrIrregular reports a vertex missing an edge the balancer needs.
	ErrIrregular = errors.New("monochain: graph is not regular")
	// ErrUnbalanced reports a chain walk that could not reach the top vertex.
	ErrUnbalanced = errors.New("monochain: graph is not balanced")
)

// Decomposition is the chain decomposition of a planar straight-line graph.
type Decomposition struct {
	// Chains holds the distinct chains ordered left to right.
	Chains []Chain
	// Edges holds the regularized and balanced graph before extraction.
	Edges []graph.Edge
	// Paths is the number of unit paths drained from the graph. It equals the
	// out-weight of the lowest vertex after balancing and is at least
	// len(Chains).
	Paths int
	// Regularized reports whether edges had to be synthesized.
	Regularized bool
}

// Decompose builds the graph of points and segments, regularizes and
// balances it, and extracts its monotone chains.
//
// Duplicate points collapse into one vertex. Duplicate segments add to the
// weight of a single edge. Every segment endpoint must be one of points.
func Decompose(points []r2.Point, segments []planar.Segment, setters ...Option) (*Decomposition, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger

	g := graph.New()
	for i, p := range points {
		if !isFinite(p) {
			return nil, fmt.Errorf("point %d %v: %w", i, p, ErrNonFinitePoint)
		}
		g.AddVertex(p)
	}
	if g.VertexCount() < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, g.VertexCount())
	}
	for i, s := range segments {
		if !g.HasVertex(s.From) || !g.HasVertex(s.To) {
			return nil, fmt.Errorf("segment %d %v: %w", i, s, ErrUnknownEndpoint)
		}
		c := s.Canonical()
		if err := g.AddEdge(c.From, c.To, 1); err != nil {
			return nil, fmt.Errorf("segment %d %v: %w", i, s, err)
		}
	}

	sorted := g.Vertices()
	d := &Decomposition{}
	if !isRegular(g, sorted) {
		logger.Debug("graph is irregular", "vertices", len(sorted), "edges", g.EdgeCount())
		if err := regularize(g, sorted, logger); err != nil {
			return nil, err
		}
		d.Regularized = true
	}
	if err := balance(g, sorted, logger); err != nil {
		return nil, err
	}
	d.Edges = g.Edges()

	d.Chains, d.Paths, err = extractChains(g, sorted, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("decomposed", "chains", len(d.Chains), "paths", d.Paths, "edges", len(d.Edges))
	return d, nil
}

func isFinite(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Enclose returns the adjacent chains around q.
func (d *Decomposition) Enclose(q r2.Point) Enclosure {
	return enclose(q, d.Chains)
}

// Result is the answer to a point location query.
type Result struct {
	// Enclosing holds the left and right boundary chains around the query.
	Enclosing [2]Chain
	// Position tells whether Enclosing is an exact pair or a fallback.
	Position Position
	// Chains is the full left-to-right chain decomposition.
	Chains []Chain
	// Edges is the regularized and balanced graph.
	Edges []graph.Edge
}

// Locate finds the two adjacent chains of the decomposition of points and
// segments that enclose query. The query does not need to be one of points.
func Locate(query r2.Point, points []r2.Point, segments []planar.Segment, setters ...Option) (*Result, error) {
	d, err := Decompose(points, segments, setters...)
	if err != nil {
		return nil, err
	}
	enc := d.Enclose(query)
	return &Result{
		Enclosing: [2]Chain{enc.Left, enc.Right},
		Position:  enc.Position,
		Chains:    d.Chains,
		Edges:     d.Edges,
	}, nil
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package graph implements the directed weighted graph the monotone chain
// decomposition runs on.
//
// Vertices are keyed by exact point identity. Each (from, to) pair stores a
// single positive integer weight; adding an edge that already exists adds to
// its weight instead of creating a parallel edge. A weight that drops to zero
// removes the edge. Self-loops are rejected.
//
// All listings (vertices, neighbors, edges) are sorted by the planar total
// order so that callers iterating over them behave deterministically.
//
// Errors:
//
//	ErrVertexNotFound - an endpoint is not a vertex of the graph.
//	ErrEdgeNotFound   - the requested edge does not exist.
//	ErrLoopNotAllowed - both endpoints are the same point.
//	ErrBadWeight      - a weight or decrement is not positive.
package graph

import (
	"errors"
	"fmt"
	"slices"

	"github.com/2dChan/monochain/planar"
	"github.com/golang/geo/r2"
)

// Sentinel errors for graph operations.
var (
	ErrVertexNotFound = errors.New("graph: vertex not found")
	ErrEdgeNotFound   = errors.New("graph: edge not found")
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
	ErrBadWeight      = errors.New("graph: weight must be positive")
)

// Edge is a directed arc with its weight.
type Edge struct {
	From   r2.Point
	To     r2.Point
	Weight int
}

// Segment returns the geometric segment of e.
func (e Edge) Segment() planar.Segment {
	return planar.Segment{From: e.From, To: e.To}
}

// Graph is a directed graph with positive integer edge weights.
// The zero value is not usable; create graphs with New.
type Graph struct {
	out map[r2.Point]map[r2.Point]int
	in  map[r2.Point]map[r2.Point]int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		out: make(map[r2.Point]map[r2.Point]int),
		in:  make(map[r2.Point]map[r2.Point]int),
	}
}

// AddVertex adds p to the graph. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(p r2.Point) {
	if _, ok := g.out[p]; ok {
		return
	}
	g.out[p] = make(map[r2.Point]int)
	g.in[p] = make(map[r2.Point]int)
}

// HasVertex reports whether p is a vertex of g.
func (g *Graph) HasVertex(p r2.Point) bool {
	_, ok := g.out[p]
	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return len(g.out)
}

// Vertices returns all vertices in ascending total order.
func (g *Graph) Vertices() []r2.Point {
	vs := make([]r2.Point, 0, len(g.out))
	for p := range g.out {
		vs = append(vs, p)
	}
	slices.SortFunc(vs, planar.Compare)
	return vs
}

// AddEdge adds weight to the edge from -> to, creating it if needed.
func (g *Graph) AddEdge(from, to r2.Point, weight int) error {
	if err := g.checkEndpoints(from, to); err != nil {
		return err
	}
	if weight < 1 {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	g.out[from][to] += weight
	g.in[to][from] += weight
	return nil
}

// SetEdgeWeight replaces the weight of an existing edge.
func (g *Graph) SetEdgeWeight(from, to r2.Point, weight int) error {
	if weight < 1 {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	if !g.HasEdge(from, to) {
		return fmt.Errorf("%w: %v -> %v", ErrEdgeNotFound, from, to)
	}
	g.out[from][to] = weight
	g.in[to][from] = weight
	return nil
}

// DecreaseWeight subtracts by from the weight of an existing edge and removes
// the edge once its weight is no longer positive.
func (g *Graph) DecreaseWeight(from, to r2.Point, by int) error {
	if by < 1 {
		return fmt.Errorf("%w: %d", ErrBadWeight, by)
	}
	w, ok := g.EdgeWeight(from, to)
	if !ok {
		return fmt.Errorf("%w: %v -> %v", ErrEdgeNotFound, from, to)
	}
	if w <= by {
		g.removeEdge(from, to)
		return nil
	}
	g.out[from][to] = w - by
	g.in[to][from] = w - by
	return nil
}

// RemoveEdge deletes the edge from -> to.
func (g *Graph) RemoveEdge(from, to r2.Point) error {
	if !g.HasEdge(from, to) {
		return fmt.Errorf("%w: %v -> %v", ErrEdgeNotFound, from, to)
	}
	g.removeEdge(from, to)
	return nil
}

// HasEdge reports whether the edge from -> to exists.
func (g *Graph) HasEdge(from, to r2.Point) bool {
	_, ok := g.EdgeWeight(from, to)
	return ok
}

// EdgeWeight returns the weight of from -> to.
func (g *Graph) EdgeWeight(from, to r2.Point) (int, bool) {
	w, ok := g.out[from][to]
	return w, ok
}

// OutDegree returns the number of edges leaving p.
func (g *Graph) OutDegree(p r2.Point) int {
	return len(g.out[p])
}

// InDegree returns the number of edges entering p.
func (g *Graph) InDegree(p r2.Point) int {
	return len(g.in[p])
}

// OutWeight returns the total weight of the edges leaving p.
func (g *Graph) OutWeight(p r2.Point) int {
	return sum(g.out[p])
}

// InWeight returns the total weight of the edges entering p.
func (g *Graph) InWeight(p r2.Point) int {
	return sum(g.in[p])
}

// OutNeighbors returns the heads of the edges leaving p in total order.
func (g *Graph) OutNeighbors(p r2.Point) []r2.Point {
	return sortedKeys(g.out[p])
}

// InNeighbors returns the tails of the edges entering p in total order.
func (g *Graph) InNeighbors(p r2.Point) []r2.Point {
	return sortedKeys(g.in[p])
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, adj := range g.out {
		n += len(adj)
	}
	return n
}

// Edges returns every edge, ordered by tail and then head.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.EdgeCount())
	for _, from := range g.Vertices() {
		for _, to := range sortedKeys(g.out[from]) {
			edges = append(edges, Edge{From: from, To: to, Weight: g.out[from][to]})
		}
	}
	return edges
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	c := New()
	for p := range g.out {
		c.AddVertex(p)
	}
	for from, adj := range g.out {
		for to, w := range adj {
			c.out[from][to] = w
			c.in[to][from] = w
		}
	}
	return c
}

func (g *Graph) checkEndpoints(from, to r2.Point) error {
	if from == to {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}
	if !g.HasVertex(from) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, to)
	}
	return nil
}

func (g *Graph) removeEdge(from, to r2.Point) {
	delete(g.out[from], to)
	delete(g.in[to], from)
}

func sum(adj map[r2.Point]int) int {
	total := 0
	for _, w := range adj {
		total += w
	}
	return total
}

func sortedKeys(adj map[r2.Point]int) []r2.Point {
	ps := make([]r2.Point, 0, len(adj))
	for p := range adj {
		ps = append(ps, p)
	}
	slices.SortFunc(ps, planar.Compare)
	return ps
}

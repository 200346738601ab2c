// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monochain

import (
	"fmt"
	"math"

	"github.com/2dChan/monochain/graph"
	"github.com/2dChan/monochain/planar"
	"github.com/charmbracelet/log"
	"github.com/golang/geo/r2"
)

// isRegular reports whether every vertex other than the extremes has both an
// incoming and an outgoing edge, the lowest vertex has an outgoing edge and
// the highest an incoming one. sorted must hold the vertices in total order.
func isRegular(g *graph.Graph, sorted []r2.Point) bool {
	n := len(sorted)
	if g.OutDegree(sorted[0]) == 0 || g.InDegree(sorted[n-1]) == 0 {
		return false
	}
	for _, v := range sorted[1 : n-1] {
		if g.InDegree(v) == 0 || g.OutDegree(v) == 0 {
			return false
		}
	}
	return true
}

// regularize adds weight-1 edges until g is regular. The downward sweep gives
// every vertex below the maximum an outgoing edge, the upward sweep gives
// every vertex above the minimum an incoming one.
func regularize(g *graph.Graph, sorted []r2.Point, logger *log.Logger) error {
	n := len(sorted)
	for i := n - 2; i >= 0; i-- {
		v := sorted[i]
		if g.OutDegree(v) > 0 {
			continue
		}
		u, err := nearestCorridorVertex(g, sorted, v, true)
		if err != nil {
			return err
		}
		if err := g.AddEdge(v, u, 1); err != nil {
			return err
		}
		logger.Debug("synthesized edge", "from", v, "to", u)
	}

	for i := 1; i < n; i++ {
		v := sorted[i]
		if g.InDegree(v) > 0 {
			continue
		}
		u, err := nearestCorridorVertex(g, sorted, v, false)
		if err != nil {
			return err
		}
		if err := g.AddEdge(u, v, 1); err != nil {
			return err
		}
		logger.Debug("synthesized edge", "from", u, "to", v)
	}
	return nil
}

// corridor holds the nearest edges bounding a vertex on its left and right.
// A nil bound leaves that side open.
type corridor struct {
	left  *planar.Segment
	right *planar.Segment
}

// admits reports whether p lies on the same side of both bounds as the vertex
// the corridor was built for. Points on a bound's supporting line are admitted.
func (c corridor) admits(p r2.Point) bool {
	if c.left != nil && planar.SideOf(*c.left, p) == planar.Left {
		return false
	}
	if c.right != nil && planar.SideOf(*c.right, p) == planar.Right {
		return false
	}
	return true
}

// corridorOf finds the nearest edges whose X span covers v, split by which
// side of them v lies on. Edges incident to v do not bound it.
func corridorOf(g *graph.Graph, v r2.Point) corridor {
	var c corridor
	leftDist, rightDist := math.Inf(1), math.Inf(1)
	for _, e := range g.Edges() {
		if e.From == v || e.To == v {
			continue
		}
		s := e.Segment()
		if !planar.InXSpan(s, v) {
			continue
		}
		d := planar.DistanceToLine(v, s)
		switch planar.SideOf(s, v) {
		case planar.Right:
			if d < leftDist {
				leftDist, c.left = d, &s
			}
		case planar.Left:
			if d < rightDist {
				rightDist, c.right = d, &s
			}
		}
	}
	return c
}

// nearestCorridorVertex returns the closest vertex strictly above v (below
// when up is false) in the total order that lies inside v's corridor. Ties go
// to the vertex that comes first in the total order.
func nearestCorridorVertex(g *graph.Graph, sorted []r2.Point, v r2.Point, up bool) (r2.Point, error) {
	c := corridorOf(g, v)

	var (
		nearest r2.Point
		found   bool
	)
	best := math.Inf(1)
	for _, p := range sorted {
		if p == v || planar.Less(p, v) == up {
			continue
		}
		if !c.admits(p) {
			continue
		}
		if d := planar.Distance(p, v); d < best {
			nearest, best, found = p, d, true
		}
	}
	if !found {
		dir := "upper"
		if !up {
			dir = "lower"
		}
		return r2.Point{}, fmt.Errorf("regularize: no %s vertex for %v: %w", dir, v, ErrNoCorridorVertex)
	}
	return nearest, nil
}

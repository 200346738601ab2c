// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monochain

import (
	"github.com/2dChan/monochain/graph"
	"github.com/2dChan/monochain/planar"
	"github.com/golang/geo/r2"
)

// Chain is a monotone path from the lowest to the highest vertex.
// Consecutive edges share endpoints and every edge has weight 1.
type Chain []graph.Edge

// Vertices returns the vertex sequence of the chain, both ends included.
func (c Chain) Vertices() []r2.Point {
	if len(c) == 0 {
		return nil
	}
	vs := make([]r2.Point, 0, len(c)+1)
	vs = append(vs, c[0].From)
	for _, e := range c {
		vs = append(vs, e.To)
	}
	return vs
}

// Equal reports whether c and o traverse the same edges in the same order.
func (c Chain) Equal(o Chain) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i].From != o[i].From || c[i].To != o[i].To {
			return false
		}
	}
	return true
}

// Side classifies q against the first edge of the chain whose Y span
// contains q.Y. It returns planar.On when no edge spans q.Y.
func (c Chain) Side(q r2.Point) planar.Side {
	for _, e := range c {
		s := e.Segment()
		if planar.InYSpan(s, q) {
			return planar.SideOf(s, q)
		}
	}
	return planar.On
}

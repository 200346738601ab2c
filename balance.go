// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monochain

import (
	"fmt"

	"github.com/2dChan/monochain/graph"
	"github.com/2dChan/monochain/planar"
	"github.com/charmbracelet/log"
	"github.com/golang/geo/r2"
)

// balance raises edge weights until every internal vertex carries as much
// weight out as in. The bottom-up pass must finish before the top-down pass
// starts: after it every internal vertex has out-weight >= in-weight, which
// the top-down pass then evens out from the top.
func balance(g *graph.Graph, sorted []r2.Point, logger *log.Logger) error {
	n := len(sorted)
	for i := 1; i < n-1; i++ {
		v := sorted[i]
		in, out := g.InWeight(v), g.OutWeight(v)
		if in <= out {
			continue
		}
		u, ok := planar.Leftmost(g.OutNeighbors(v), v)
		if !ok {
			return fmt.Errorf("balance: %v has no outgoing edge: %w", v, ErrIrregular)
		}
		if err := raise(g, v, u, in-out); err != nil {
			return err
		}
		logger.Debug("balanced outgoing", "vertex", v, "via", u, "by", in-out)
	}

	for i := n - 2; i > 0; i-- {
		v := sorted[i]
		in, out := g.InWeight(v), g.OutWeight(v)
		if out <= in {
			continue
		}
		u, ok := planar.Leftmost(g.InNeighbors(v), v)
		if !ok {
			return fmt.Errorf("balance: %v has no incoming edge: %w", v, ErrIrregular)
		}
		if err := raise(g, u, v, out-in); err != nil {
			return err
		}
		logger.Debug("balanced incoming", "vertex", v, "via", u, "by", out-in)
	}
	return nil
}

func raise(g *graph.Graph, from, to r2.Point, by int) error {
	w, _ := g.EdgeWeight(from, to)
	return g.SetEdgeWeight(from, to, w+by)
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monochain

import (
	"fmt"
	"slices"

	"github.com/2dChan/monochain/graph"
	"github.com/2dChan/monochain/planar"
	"github.com/charmbracelet/log"
	"github.com/golang/geo/r2"
)

// extractChains drains g one unit path at a time, from the lowest to the
// highest vertex, always stepping to the leftmost outgoing neighbor. It
// returns the distinct chains in extraction order, which runs left to right,
// and the number of drained paths.
func extractChains(g *graph.Graph, sorted []r2.Point, logger *log.Logger) ([]Chain, int, error) {
	lo, hi := sorted[0], sorted[len(sorted)-1]

	var chains []Chain
	paths := 0
	for g.OutDegree(lo) > 0 {
		var chain Chain
		for cur := lo; cur != hi; {
			next, ok := planar.Leftmost(g.OutNeighbors(cur), cur)
			if !ok {
				return nil, 0, fmt.Errorf("extract: path stuck at %v: %w", cur, ErrUnbalanced)
			}
			if err := g.DecreaseWeight(cur, next, 1); err != nil {
				return nil, 0, err
			}
			chain = append(chain, graph.Edge{From: cur, To: next, Weight: 1})
			cur = next
		}
		paths++

		if slices.ContainsFunc(chains, chain.Equal) {
			logger.Debug("suppressed duplicate chain", "edges", len(chain))
			continue
		}
		chains = append(chains, chain)
		logger.Debug("extracted chain", "index", len(chains)-1, "edges", len(chain))
	}
	return chains, paths, nil
}

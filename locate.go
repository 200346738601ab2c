// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monochain

import (
	"github.com/2dChan/monochain/planar"
	"github.com/golang/geo/r2"
)

// Position tells how an Enclosure was determined.
type Position int

const (
	// PositionNone means there were no chains to search.
	PositionNone Position = iota
	// PositionBetween means the query lies strictly right of Left and strictly
	// left of Right, which are adjacent in the chain order.
	PositionBetween
	// PositionSingle means there is only one chain; it is both boundaries.
	PositionSingle
	// PositionBeyond means the query Y is below the lowest or above the
	// highest vertex. The boundaries are the first and last chain.
	PositionBeyond
	// PositionOutside means the query is left of the first chain or right of
	// the last one. The boundaries are the first and last chain.
	PositionOutside
	// PositionUnresolved means the query lies on a chain or the chains
	// classified it inconsistently. The boundaries are the first and last chain.
	PositionUnresolved
)

func (p Position) String() string {
	switch p {
	case PositionBetween:
		return "between"
	case PositionSingle:
		return "single"
	case PositionBeyond:
		return "beyond"
	case PositionOutside:
		return "outside"
	case PositionUnresolved:
		return "unresolved"
	}
	return "none"
}

// Enclosure is the pair of chains found around a query point.
type Enclosure struct {
	Left     Chain
	Right    Chain
	Position Position
}

// enclose binary searches chains, ordered left to right, for the adjacent
// pair around q. It never fails: when no pair can be established it falls
// back to the first and last chain and says why in Position.
func enclose(q r2.Point, chains []Chain) Enclosure {
	n := len(chains)
	switch n {
	case 0:
		return Enclosure{}
	case 1:
		return Enclosure{Left: chains[0], Right: chains[0], Position: PositionSingle}
	}

	extremes := func(p Position) Enclosure {
		return Enclosure{Left: chains[0], Right: chains[n-1], Position: p}
	}

	first := chains[0]
	span := planar.Segment{From: first[0].From, To: first[len(first)-1].To}
	if !planar.InYSpan(span, q) {
		return extremes(PositionBeyond)
	}

	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi) / 2
		l, r := chains[mid].Side(q), chains[mid+1].Side(q)
		switch {
		case l == planar.Right && r == planar.Left:
			return Enclosure{Left: chains[mid], Right: chains[mid+1], Position: PositionBetween}
		case l == planar.Right && r == planar.Right:
			lo = mid + 1
		case l == planar.Left && r == planar.Left:
			hi = mid
		default:
			return extremes(PositionUnresolved)
		}
	}
	return extremes(PositionOutside)
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package planar provides the geometric predicates used by the monotone chain
// decomposition: the total order on points, distances, orientation tests and
// the leftmost-neighbor selector.
//
// Points are r2.Point values. Two points are the same vertex only if their
// coordinates are exactly equal; no tolerance is applied at this layer.
package planar

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Side is the position of a point relative to a directed segment.
type Side int

const (
	On Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "on"
}

// Segment is a pair of points in the orientation the caller presented them.
type Segment struct {
	From r2.Point
	To   r2.Point
}

// Canonical returns the segment directed so that From precedes To in the
// total order.
func (s Segment) Canonical() Segment {
	if Less(s.To, s.From) {
		return Segment{From: s.To, To: s.From}
	}
	return s
}

// IsDegenerate reports whether both endpoints are the same point.
func (s Segment) IsDegenerate() bool {
	return s.From == s.To
}

// Compare orders points by ascending Y, then ascending X.
func Compare(a, b r2.Point) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}

// Less reports whether a precedes b in the total order.
func Less(a, b r2.Point) bool {
	return Compare(a, b) < 0
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q r2.Point) float64 {
	return p.Sub(q).Norm()
}

// DistanceToLine returns the distance from p to the infinite line through s.
// For a degenerate segment it is the distance to its single point.
func DistanceToLine(p r2.Point, s Segment) float64 {
	d := s.To.Sub(s.From)
	n := d.Norm()
	if n == 0 {
		return Distance(p, s.From)
	}
	return math.Abs(d.Cross(p.Sub(s.From))) / n
}

// Orientation returns twice the signed area of the triangle (s.From, s.To, p).
// It is positive when p lies left of the directed segment, negative when it
// lies right, and zero when p is on the supporting line.
func Orientation(s Segment, p r2.Point) float64 {
	return s.To.Sub(s.From).Cross(p.Sub(s.From))
}

// SideOf classifies p against the directed segment s.
func SideOf(s Segment, p r2.Point) Side {
	o := Orientation(s, p)
	switch {
	case o > 0:
		return Left
	case o < 0:
		return Right
	}
	return On
}

// InXSpan reports whether p.X lies in the closed X interval of s.
func InXSpan(s Segment, p r2.Point) bool {
	return r1.IntervalFromPoint(s.From.X).AddPoint(s.To.X).Contains(p.X)
}

// InYSpan reports whether p.Y lies in the closed Y interval of s.
func InYSpan(s Segment, p r2.Point) bool {
	return r1.IntervalFromPoint(s.From.Y).AddPoint(s.To.Y).Contains(p.Y)
}

// Leftmost returns the candidate that bears furthest left as seen from pivot.
//
// Each candidate is scored by the cosine of its direction against the
// negative X axis, (pivot.X - c.X) / |c - pivot|. The highest score wins: a
// candidate strictly left of pivot beats any candidate at or right of it, and
// among the latter the one closest to vertical wins. Equal scores go to the
// candidate that comes first in the total order. Candidates equal to pivot are
// skipped. The boolean is false when no candidate is usable.
func Leftmost(candidates []r2.Point, pivot r2.Point) (r2.Point, bool) {
	var (
		best      r2.Point
		bestScore float64
		found     bool
	)
	for _, c := range candidates {
		d := Distance(c, pivot)
		if d == 0 {
			continue
		}
		score := (pivot.X - c.X) / d
		if !found || score > bestScore || (score == bestScore && Less(c, best)) {
			best, bestScore, found = c, score, true
		}
	}
	return best, found
}

// FlipY mirrors p across the X axis. Screen coordinates grow downwards while
// the decomposition assumes Y grows upwards.
func FlipY(p r2.Point) r2.Point {
	return r2.Point{X: p.X, Y: -p.Y}
}

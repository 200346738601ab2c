// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package planar

import (
	"math"

	"github.com/golang/geo/r2"
)

// NearestPoint returns the point of points closest to p, provided it is
// strictly closer than eps.
func NearestPoint(p r2.Point, points []r2.Point, eps float64) (r2.Point, bool) {
	var (
		nearest r2.Point
		found   bool
	)
	best := math.Inf(1)
	for _, q := range points {
		d := Distance(p, q)
		if d < eps && d < best {
			nearest, best, found = q, d, true
		}
	}
	return nearest, found
}

// NearestSegment returns the index of the segment whose supporting line is
// closest to p, considering only segments whose X span contains p and whose
// distance is strictly less than eps. It returns -1 when none qualifies.
func NearestSegment(p r2.Point, segments []Segment, eps float64) int {
	idx := -1
	best := math.Inf(1)
	for i, s := range segments {
		if !InXSpan(s, p) {
			continue
		}
		d := DistanceToLine(p, s)
		if d < eps && d < best {
			idx, best = i, d
		}
	}
	return idx
}

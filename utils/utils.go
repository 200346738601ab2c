// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating planar point sets.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates uniformly distributed points inside bounds.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64, bounds r2.Rect) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	lo, size := bounds.Lo(), bounds.Size()
	for i := range cnt {
		points[i] = r2.Point{
			X: lo.X + random.Float64()*size.X,
			Y: lo.Y + random.Float64()*size.Y,
		}
	}

	return points
}

// RoundPoints rounds every coordinate to the nearest multiple of step and
// drops the duplicates rounding creates, keeping first occurrences in order.
func RoundPoints(points []r2.Point, step float64) []r2.Point {
	seen := make(map[r2.Point]struct{}, len(points))
	rounded := make([]r2.Point, 0, len(points))
	for _, p := range points {
		q := r2.Point{
			X: math.Round(p.X/step) * step,
			Y: math.Round(p.Y/step) * step,
		}
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		rounded = append(rounded, q)
	}
	return rounded
}

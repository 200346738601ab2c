// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

var bounds = r2.RectFromPoints(r2.Point{X: -5, Y: 10}, r2.Point{X: 5, Y: 30})

func TestGenerateRandomPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GenerateRandomPoints(tt.cnt, tt.seed, bounds)
			if len(points) != tt.cnt {
				t.Errorf("GenerateRandomPoints(%v, %v, ...) len = %v, want %v", tt.cnt, tt.seed,
					len(points), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints_InBounds(t *testing.T) {
	const (
		cnt  = 100
		seed = 0
	)
	points := GenerateRandomPoints(cnt, seed, bounds)
	for i, p := range points {
		if !bounds.ContainsPoint(p) {
			t.Errorf("GenerateRandomPoints(%v, %v, %v)[%d] = %v, want inside bounds", cnt, seed,
				bounds, i, p)
		}
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	a := GenerateRandomPoints(cnt, seed, bounds)
	b := GenerateRandomPoints(cnt, seed, bounds)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GenerateRandomPoints(%v, %v, ...) mismatch (-want +got):\n%v", cnt, seed, diff)
	}
}

func TestRoundPoints(t *testing.T) {
	tests := []struct {
		name   string
		points []r2.Point
		step   float64
		want   []r2.Point
	}{
		{"empty", nil, 1, []r2.Point{}},
		{"integers", []r2.Point{{X: 1.4, Y: 2.6}, {X: -0.6, Y: 0.2}}, 1,
			[]r2.Point{{X: 1, Y: 3}, {X: -1, Y: 0}}},
		{"step ten", []r2.Point{{X: 14, Y: 26}}, 10, []r2.Point{{X: 10, Y: 30}}},
		{"drops duplicates", []r2.Point{{X: 1.1, Y: 1}, {X: 5, Y: 5}, {X: 0.9, Y: 1.2}}, 1,
			[]r2.Point{{X: 1, Y: 1}, {X: 5, Y: 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundPoints(tt.points, tt.step)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RoundPoints(%v, %v) mismatch (-want +got):\n%s", tt.points, tt.step, diff)
			}
		})
	}
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package cli implements the monochain command-line interface.
//
// # Commands
//
//   - locate: decompose a scene into monotone chains and print the pair
//     enclosing a query point as JSON
//   - render: draw the decomposition of a scene as SVG
//   - generate: write a random Delaunay scene to a JSON or TOML file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// the records the decomposition emits while regularizing, balancing and
// extracting chains. Loggers are passed through context.Context.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2dChan/monochain/scene"
	"github.com/charmbracelet/log"
	"github.com/golang/geo/r2"
)

// sceneOpts holds the flags shared by commands that read a scene.
type sceneOpts struct {
	query string  // "x,y" overriding the scene's query
	flipY bool    // treat the scene as screen coordinates (Y down)
	snap  float64 // snap segment endpoints to points closer than this
}

// loadScene reads the scene at path and applies the query override, the Y
// flip and endpoint snapping, in that order.
func loadScene(path string, opts *sceneOpts, logger *log.Logger) (*scene.Scene, error) {
	sc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.query != "" {
		q, err := parsePoint(opts.query)
		if err != nil {
			return nil, err
		}
		sc.Query = &q
	}
	if opts.flipY {
		sc.FlipY()
	}
	if opts.snap > 0 {
		if n := sc.Snap(opts.snap); n > 0 {
			logger.Debug("snapped segment endpoints", "count", n, "eps", opts.snap)
		}
	}
	logger.Debug("loaded scene", "path", path, "points", len(sc.Points), "segments", len(sc.Segments))
	return sc, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (r2.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return r2.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return r2.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return r2.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return r2.Point{X: x, Y: y}, nil
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/2dChan/monochain/delaunay"
	"github.com/2dChan/monochain/scene"
	"github.com/2dChan/monochain/utils"
	"github.com/golang/geo/r2"
	"github.com/spf13/cobra"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	output string
	points int
	seed   int64
	width  float64
	height float64
	round  float64 // grid step to round coordinates to, 0 keeps them as is
}

func newGenerateCmd() *cobra.Command {
	opts := generateOpts{
		output: "scene.json",
		points: 30,
		width:  defaultWidth,
		height: defaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random Delaunay triangulation scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file (.json or .toml)")
	cmd.Flags().IntVarP(&opts.points, "points", "n", opts.points, "number of points")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "width of the point area")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "height of the point area")
	cmd.Flags().Float64Var(&opts.round, "round", 0, "round coordinates to multiples of this step")

	return cmd
}

func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if opts.points < 3 {
		return fmt.Errorf("generate: need at least 3 points, got %d", opts.points)
	}
	if opts.width <= 0 || opts.height <= 0 {
		return errors.New("generate: width and height must be positive")
	}
	sc, err := generateScene(opts)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	logger.Debug("triangulated", "points", len(sc.Points), "segments", len(sc.Segments))

	if err := scene.Save(opts.output, sc); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d points and %d segments to %s", len(sc.Points), len(sc.Segments), opts.output))
	return nil
}

func generateScene(opts *generateOpts) (*scene.Scene, error) {
	bounds := r2.RectFromPoints(r2.Point{}, r2.Point{X: opts.width, Y: opts.height})
	points := utils.GenerateRandomPoints(opts.points+1, opts.seed, bounds)
	query := points[opts.points]
	points = points[:opts.points]
	if opts.round > 0 {
		points = utils.RoundPoints(points, opts.round)
	}

	dt, err := delaunay.NewTriangulation(points)
	if err != nil {
		return nil, err
	}
	return &scene.Scene{
		Points:   points,
		Segments: dt.Segments(),
		Query:    &query,
	}, nil
}

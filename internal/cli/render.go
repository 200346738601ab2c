// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/2dChan/monochain"
	"github.com/2dChan/monochain/render"
	"github.com/spf13/cobra"
)

const (
	defaultWidth  = 800 // default SVG width in pixels
	defaultHeight = 600 // default SVG height in pixels
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	sceneOpts
	output  string // output path, defaults to the scene path with .svg
	width   int
	height  int
	weights bool // label edges with their balanced weights
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		width:  defaultWidth,
		height: defaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render the chain decomposition of a scene to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	addSceneFlags(cmd, &opts.sceneOpts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: scene path with .svg)")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "image width")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "image height")
	cmd.Flags().BoolVar(&opts.weights, "weights", false, "label edges with their weights")

	return cmd
}

func runRender(ctx context.Context, path string, opts *renderOpts) (err error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	sc, err := loadScene(path, &opts.sceneOpts, logger)
	if err != nil {
		return err
	}

	setters := []render.Option{render.WithSize(opts.width, opts.height), render.WithWeights(opts.weights)}
	var res *monochain.Result
	if sc.Query != nil {
		res, err = monochain.Locate(*sc.Query, sc.Points, sc.Segments, monochain.WithLogger(logger))
		setters = append(setters, render.WithQuery(*sc.Query))
	} else {
		var d *monochain.Decomposition
		d, err = monochain.Decompose(sc.Points, sc.Segments, monochain.WithLogger(logger))
		if d != nil {
			res = &monochain.Result{Chains: d.Chains, Edges: d.Edges}
		}
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".svg"
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := render.SVG(f, res, setters...); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	prog.done(fmt.Sprintf("Rendered %d chains to %s", len(res.Chains), out))
	return nil
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/2dChan/monochain"
	"github.com/2dChan/monochain/planar"
	"github.com/golang/geo/r2"
	"github.com/spf13/cobra"
)

const defaultNearEps = 1e-6

var errNoQuery = errors.New("scene has no query: pass --query x,y")

func newLocateCmd() *cobra.Command {
	var opts sceneOpts

	cmd := &cobra.Command{
		Use:   "locate [scene]",
		Short: "Print the chains enclosing the query point as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}

	addSceneFlags(cmd, &opts)
	return cmd
}

func addSceneFlags(cmd *cobra.Command, opts *sceneOpts) {
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "query point as x,y (overrides the scene)")
	cmd.Flags().BoolVar(&opts.flipY, "flip-y", false, "read the scene as screen coordinates with Y growing down")
	cmd.Flags().Float64Var(&opts.snap, "snap", 0, "snap segment endpoints to points closer than this distance")
}

func runLocate(ctx context.Context, w io.Writer, path string, opts *sceneOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	sc, err := loadScene(path, opts, logger)
	if err != nil {
		return err
	}
	if sc.Query == nil {
		return errNoQuery
	}
	q := *sc.Query

	res, err := monochain.Locate(q, sc.Points, sc.Segments, monochain.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("locate: %w", err)
	}
	if res.Position == monochain.PositionUnresolved {
		eps := max(opts.snap, defaultNearEps)
		if i := planar.NearestSegment(q, sc.Segments, eps); i >= 0 {
			logger.Warn("query lies on a segment", "segment", i, "from", sc.Segments[i].From, "to", sc.Segments[i].To)
		}
	}
	prog.done(fmt.Sprintf("Located query %s among %d chains", res.Position, len(res.Chains)))

	return writeResult(w, q, res)
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type edgeJSON struct {
	From   pointJSON `json:"from"`
	To     pointJSON `json:"to"`
	Weight int       `json:"weight"`
}

type resultJSON struct {
	Query     pointJSON      `json:"query"`
	Position  string         `json:"position"`
	Enclosing [2][]pointJSON `json:"enclosing"`
	Chains    [][]pointJSON  `json:"chains"`
	Edges     []edgeJSON     `json:"edges"`
}

func toPointJSON(p r2.Point) pointJSON { return pointJSON{X: p.X, Y: p.Y} }

func chainJSON(c monochain.Chain) []pointJSON {
	vs := c.Vertices()
	out := make([]pointJSON, len(vs))
	for i, v := range vs {
		out[i] = toPointJSON(v)
	}
	return out
}

// writeResult encodes res as indented JSON. Chains are written as vertex
// sequences from the lowest to the highest point.
func writeResult(w io.Writer, q r2.Point, res *monochain.Result) error {
	out := resultJSON{
		Query:     toPointJSON(q),
		Position:  res.Position.String(),
		Enclosing: [2][]pointJSON{chainJSON(res.Enclosing[0]), chainJSON(res.Enclosing[1])},
		Chains:    make([][]pointJSON, len(res.Chains)),
		Edges:     make([]edgeJSON, len(res.Edges)),
	}
	for i, c := range res.Chains {
		out.Chains[i] = chainJSON(c)
	}
	for i, e := range res.Edges {
		out.Edges[i] = edgeJSON{From: toPointJSON(e.From), To: toPointJSON(e.To), Weight: e.Weight}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

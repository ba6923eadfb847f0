package main

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/hillclimb/adjacency"
	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/dfs"
	"github.com/katalvlaran/hillclimb/heightmap"
)

var errMismatch = errors.New("verification mismatch")

// verify recomputes the distance of a finished search with gonum's
// Dijkstra and, for small start searches, the exhaustive walk.
func verify(ctx context.Context, g *heightmap.Grid, c searchConfig, got bfs.Result) error {
	if want := gonumDistance(g, c); want != got.Distance {
		return fmt.Errorf("%w: bfs %d, gonum %d", errMismatch, got.Distance, want)
	}
	if c.from != fromStart || g.Len() > dfs.DefaultMaxCells {
		return nil
	}
	ex, err := dfs.Exhaustive(g, c.rule, dfs.WithContext(ctx))
	if err != nil {
		return err
	}
	if ex.Distance != got.Distance {
		return fmt.Errorf("%w: bfs %d, exhaustive %d", errMismatch, got.Distance, ex.Distance)
	}
	return nil
}

// gonumDistance measures the same distance on the exported gonum graph.
// Searches from the lowest cells run backwards from the end so a single
// shortest-path tree covers every candidate.
func gonumDistance(g *heightmap.Grid, c searchConfig) int {
	rule, src, targets := c.rule, g.Start(), []heightmap.Coord{g.End()}
	if c.from == fromLowest {
		rule, src, targets = adjacency.Reverse(c.rule), g.End(), g.CellsAt(heightmap.MinElevation)
	}
	dg := heightmap.ToDirectedGraph(g, rule)
	shortest := path.DijkstraFrom(dg.Node(int64(g.Index(src))), dg)

	best := bfs.Unreachable
	for _, t := range targets {
		w := shortest.WeightTo(int64(g.Index(t)))
		if math.IsInf(w, 1) {
			continue
		}
		if d := int(w); best == bfs.Unreachable || d < best {
			best = d
		}
	}
	return best
}

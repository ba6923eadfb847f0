// Package dfs implements an exhaustive depth-first enumeration of simple
// paths on a heightmap.Grid. It is a reference implementation: it marks
// cells only while they are on the current path, so a cell is revisited
// through every different route to it and the running time is exponential.
// Use bfs for real work and dfs to check bfs on small grids.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/adjacency"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// dfsWalker encapsulates state during the walk.
type dfsWalker struct {
	grid  *heightmap.Grid
	rule  adjacency.Rule
	opts  Options
	end   heightmap.Coord
	state []int
	res   Result
}

// Exhaustive returns the length of the shortest simple path of legal moves
// from g.Start() to g.End(), found by trying every such path.
// Returns ErrGridTooLarge when g has more than Options.MaxCells cells.
func Exhaustive(g *heightmap.Grid, rule adjacency.Rule, opts ...Option) (Result, error) {
	// 1. Validate input
	if g == nil {
		return Result{Distance: Unreachable}, ErrGridNil
	}
	if rule == nil {
		return Result{Distance: Unreachable}, ErrRuleNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return Result{Distance: Unreachable}, o.err
	}
	if g.Len() > o.MaxCells {
		return Result{Distance: Unreachable}, fmt.Errorf("%w: %d cells, limit %d", ErrGridTooLarge, g.Len(), o.MaxCells)
	}

	// 3. Walk from the start
	w := &dfsWalker{
		grid:  g,
		rule:  rule,
		opts:  o,
		end:   g.End(),
		state: make([]int, g.Len()),
		res:   Result{Distance: Unreachable},
	}
	if err := w.traverse(g.Start(), 0); err != nil {
		return Result{Distance: Unreachable}, err
	}

	return w.res, nil
}

// traverse extends the current path with c at the given depth.
func (w *dfsWalker) traverse(c heightmap.Coord, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Complete path
	if c == w.end {
		w.res.Paths++
		if w.res.Distance == Unreachable || depth < w.res.Distance {
			w.res.Distance = depth
		}
		return nil
	}

	// 3. Bound: the Manhattan distance is a lower bound on remaining moves
	if w.res.Distance != Unreachable && depth+manhattan(c, w.end) >= w.res.Distance {
		return nil
	}

	from, err := w.grid.ElevationAt(c)
	if err != nil {
		return err
	}

	// 4. Explore each neighbour not already on the path
	idx := w.grid.Index(c)
	w.state[idx] = Gray
	for _, nbr := range w.grid.NeighborsOf(c) {
		if w.state[w.grid.Index(nbr)] == Gray {
			continue
		}
		to, err := w.grid.ElevationAt(nbr)
		if err != nil {
			return err
		}
		if !w.rule.CanMove(from, to) {
			continue
		}
		if err = w.traverse(nbr, depth+1); err != nil {
			return err
		}
	}
	w.state[idx] = White

	return nil
}

func manhattan(a, b heightmap.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

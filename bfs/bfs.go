// Package bfs provides breadth-first search over a heightmap.Grid,
// returning the minimal number of legal moves between cells.
//
// A search explores cells in non-decreasing distance from its sources,
// marking each cell visited before it is enqueued, so every cell enters
// the frontier at most once and the first goal cell dequeued is at the
// minimal distance.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hillclimb/adjacency"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// queueItem pairs a cell's row-major index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state for a single call.
type walker struct {
	grid    *heightmap.Grid
	rule    adjacency.Rule
	goal    func(heightmap.Coord) bool
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	count   int
}

// ShortestDistance returns the minimal number of moves from g.Start() to
// g.End() under rule, or a Result with Distance == Unreachable.
// Returns ErrGridNil, ErrRuleNil or ErrOptionViolation for invalid input,
// the context error on cancellation, or any OnVisit hook error.
func ShortestDistance(g *heightmap.Grid, rule adjacency.Rule, opts ...Option) (Result, error) {
	if g == nil {
		return fail(ErrGridNil)
	}
	end := g.End()
	return Search(g, rule, []heightmap.Coord{g.Start()}, func(c heightmap.Coord) bool {
		return c == end
	}, opts...)
}

// NearestElevation returns the minimal number of moves from any cell at
// the given elevation to g.End() under rule. It runs a single search
// backwards from the end using adjacency.Reverse(rule) and stops at the
// first dequeued cell with that elevation.
func NearestElevation(g *heightmap.Grid, rule adjacency.Rule, elevation int, opts ...Option) (Result, error) {
	if g == nil {
		return fail(ErrGridNil)
	}
	if rule == nil {
		return fail(ErrRuleNil)
	}
	if elevation < heightmap.MinElevation || elevation > heightmap.MaxElevation {
		return fail(fmt.Errorf("%w: %d", ErrElevation, elevation))
	}
	return Search(g, adjacency.Reverse(rule), []heightmap.Coord{g.End()}, func(c heightmap.Coord) bool {
		e, err := g.ElevationAt(c)
		return err == nil && e == elevation
	}, opts...)
}

// Search is the multi-source primitive behind ShortestDistance and
// NearestElevation: it seeds the frontier with every source at depth 0
// (duplicates once) and returns the depth of the first dequeued cell for
// which goal reports true.
// Sources outside the grid yield heightmap.ErrOutOfBounds.
// Complexity: O(R×C) time and memory.
func Search(g *heightmap.Grid, rule adjacency.Rule, sources []heightmap.Coord, goal func(heightmap.Coord) bool, opts ...Option) (res Result, err error) {
	res = Result{Distance: Unreachable}
	defer func() { observe(res, err) }()

	if g == nil {
		return res, ErrGridNil
	}
	if rule == nil {
		return res, ErrRuleNil
	}
	if goal == nil {
		return res, ErrGoalNil
	}
	if len(sources) == 0 {
		return res, ErrNoSources
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return res, o.err
	}

	n := g.Len()
	w := &walker{
		grid:    g,
		rule:    rule,
		goal:    goal,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
	}
	for _, s := range sources {
		if !g.InBounds(s) {
			return res, fmt.Errorf("bfs: source: %w: %v", heightmap.ErrOutOfBounds, s)
		}
		if idx := g.Index(s); !w.visited[idx] {
			w.enqueue(idx, 0)
		}
	}

	res.Distance, err = w.loop()
	res.Visited = w.count
	if err != nil {
		res.Distance = Unreachable
	}
	return res, err
}

// fail records err as a failed search and returns it with an
// unreachable Result.
func fail(err error) (Result, error) {
	res := Result{Distance: Unreachable}
	observe(res, err)
	return res, err
}

// enqueue marks idx visited at depth d, calls OnEnqueue and appends it
// to the frontier.
func (w *walker) enqueue(idx, d int) {
	w.visited[idx] = true
	w.count++
	w.opts.OnEnqueue(w.grid.Coord(idx), d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the frontier until a goal is dequeued, it empties, or an
// error occurs.
func (w *walker) loop() (int, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return Unreachable, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		c := w.grid.Coord(item.idx)
		if err := w.opts.OnVisit(c, item.depth); err != nil {
			return Unreachable, fmt.Errorf("bfs: OnVisit error at %v: %w", c, err)
		}
		if w.goal(c) {
			return item.depth, nil
		}
		if err := w.enqueueNeighbors(c, item.depth); err != nil {
			return Unreachable, err
		}
	}
	return Unreachable, nil
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(w.grid.Coord(item.idx), item.depth)
	return item
}

// enqueueNeighbors enqueues every unvisited neighbour of c that the rule
// allows reaching from c, honoring MaxDepth.
func (w *walker) enqueueNeighbors(c heightmap.Coord, depth int) error {
	next := depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	from, err := w.grid.ElevationAt(c)
	if err != nil {
		return err
	}
	for _, nbr := range w.grid.NeighborsOf(c) {
		idx := w.grid.Index(nbr)
		if w.visited[idx] {
			continue
		}
		to, err := w.grid.ElevationAt(nbr)
		if err != nil {
			return err
		}
		if w.rule.CanMove(from, to) {
			w.enqueue(idx, next)
		}
	}
	return nil
}

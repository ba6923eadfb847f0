// Package bfs provides breadth-first search over a heightmap.Grid, returning
// the minimal number of legal moves between cells.
//
// What
//
//   - Explore cells in non-decreasing distance (move count) from the sources.
//   - ShortestDistance(g, rule): from g.Start() to g.End().
//   - NearestElevation(g, rule, e): from the closest cell at elevation e to
//     g.End(), found with one reverse search from the end.
//   - Search(g, rule, sources, goal): the multi-source primitive behind both.
//   - Returns a Result holding the distance, or Unreachable, and the number
//     of cells placed on the frontier.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a cell enters the frontier)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Every move costs one, so BFS order is distance order: the first goal
//     cell dequeued is at the minimal distance.
//   - Marking cells visited before enqueueing bounds work to one visit per cell.
//   - Unreachable is an ordinary result, not an error.
//
// Determinism
//
//	Neighbours are expanded in heightmap.Directions order (up, down, left,
//	right). The order can change which cells are visited first, never the
//	distance returned.
//
// Complexity (R×C = cells)
//
//   - Time:   O(R×C)   (each cell enqueued at most once, at most four arcs each)
//   - Memory: O(R×C)   (frontier and visited set, discarded after the call)
//
// Concurrency
//
//	A Grid is read-only, so any number of searches may share one. Each call
//	owns its frontier and visited set.
//
// Metrics
//
//	Every call, rejected input included, increments hillclimb_searches_total{outcome};
//	completed searches also observe hillclimb_search_visited_cells on the
//	default Prometheus registry.
//
// Usage
//
//	res, err := bfs.ShortestDistance(g, adjacency.ClimbOne)
//	if err != nil {
//		// ErrGridNil, ErrRuleNil, ErrOptionViolation, context or hook errors
//	}
//	if !res.Reachable() {
//		fmt.Println("no route")
//	}
//
//	// With functional options:
//	res, err = bfs.ShortestDistance(
//	    g, adjacency.ClimbOne,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(500),
//	    bfs.WithOnDequeue(func(c heightmap.Coord, depth int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrGridNil, ErrRuleNil, ErrGoalNil, ErrNoSources for invalid input.
//   - ErrElevation            if NearestElevation gets a target outside 0..25.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - heightmap.ErrOutOfBounds for a source outside the grid.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs

// Package dfs implements an exhaustive depth-first reference search on a
// heightmap.Grid.
//
// What:
//
//   - Exhaustive(g, rule, opts...): tries every simple path of legal moves
//     from g.Start() to g.End() and reports the shortest length found.
//   - Cells are marked White/Gray only while on the current path, so a cell
//     may be re-entered through a different route. This is what makes the
//     search exhaustive, and exponential.
//   - Branch-and-bound: once a path is known, branches whose depth plus the
//     Manhattan distance to the end cannot beat it are cut.
//
// Why:
//
//   - An independent oracle for bfs: on small grids both must agree.
//   - Counting complete paths helps when reasoning about puzzle inputs.
//
// Complexity:
//
//   - Time:   exponential in R×C in the worst case (unreachable end on a flat map).
//   - Memory: O(R×C) for the state slice and recursion stack.
//
// Options:
//
//   - WithContext(ctx)   allows cancellation; checked on every call.
//   - WithMaxCells(n)    grid-size guard (default DefaultMaxCells = 25).
//
// Errors:
//
//   - ErrGridNil, ErrRuleNil    for nil inputs.
//   - ErrGridTooLarge           if R×C exceeds MaxCells.
//   - ErrOptionViolation        for a non-positive MaxCells.
//   - context.Canceled / DeadlineExceeded if ctx is done.
package dfs

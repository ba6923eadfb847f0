// Package adjacency decides whether a single move between two adjacent
// cells is legal, given only their elevations.
//
// What:
//
//   - Rule: the predicate interface consumed by bfs, dfs and heightmap.ToDirectedGraph.
//   - ClimbOne: ascend at most one unit, descend any amount (the default rule).
//   - ClimbAtMost(n): ascend at most n units, descend any amount.
//   - Within(n): |to-from| <= n in both directions.
//   - Reverse(r): the rule for walking r's moves backwards.
//   - Lookup(name, step): resolve a rule from configuration.
//
// Rules are pure functions of the two elevations: no grid position, no state.
// Within(n) is a tightening of ClimbAtMost(n), so a search under Within(n)
// never reports a shorter distance than under ClimbAtMost(n).
package adjacency

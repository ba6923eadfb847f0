// Package hillclimb finds the fewest moves across an elevation grid, from a
// start cell to an end cell, when each move may climb by at most a fixed step.
//
// 🚀 What is hillclimb?
//
//	A small set of focused packages:
//		• heightmap: the immutable Grid, its letter-format parser, a cached
//		  fs.FS-backed Store and a gonum graph export
//		• adjacency: move rules (ClimbOne, ClimbAtMost, Within, Reverse)
//		• bfs:       breadth-first shortest distance with hooks, context and metrics
//		• dfs:       an exhaustive simple-path search used to verify bfs on small maps
//		• cmd/hillclimb: the solve, render and serve commands
//
// ✨ Why hillclimb?
//
//   - Every move costs one, so breadth-first order is distance order.
//   - Grids never change after construction, so searches share them freely.
//   - Unreachable is a result, not an error: bfs.Result reports it directly.
//
// Input format:
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
//	'a'..'z' are elevations 0..25, 'S' is the start (elevation a) and
//	'E' the end (elevation z). The fewest moves here is 31.
//
// Quick start:
//
//	g, err := heightmap.ParseString(text)
//	if err != nil {
//		return err // matches heightmap.ErrMalformedGrid
//	}
//	res, err := bfs.ShortestDistance(g, adjacency.ClimbOne)
//	if err != nil {
//		return err
//	}
//	fmt.Println(res) // "31", or "unreachable"
//
// See each subpackage's doc.go for complexity notes and error values.
package hillclimb

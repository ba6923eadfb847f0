// Package heightmap treats a 2D grid of elevations as the implicit graph
// searched by the bfs and dfs packages.
//
// What:
//
//   - Grid wraps a rectangular elevation map (0..25) with one start and one end cell.
//   - Parse reads the letter format: 'a'..'z' are elevations, 'S' and 'E' the markers.
//   - NeighborsOf enumerates up, down, left, right, filtered by InBounds.
//   - ToDirectedGraph exports the legal-move graph to gonum for cross-checks.
//   - Store caches parsed grids loaded from an fs.FS (LRU, Prometheus counters).
//   - Random generates reproducible grids for tests and benchmarks.
//
// Why:
//
//   - Construction validates once, so searches never see a partial or ragged grid.
//   - Immutability lets any number of searches share one Grid without locks.
//
// Complexity:
//
//   - New, Parse:     O(R×C), Memory: O(R×C).
//   - InBounds, ElevationAt, NeighborsOf: O(1).
//   - CellsAt, Histogram: O(R×C).
//   - ToDirectedGraph: O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrMalformedGrid: parent of every construction error below.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: a character is neither a lowercase letter nor a marker.
//   - ErrStartMarker, ErrEndMarker: a marker is missing or repeated.
//   - ErrElevationRange: New was given a value outside [0, 25].
//   - ErrMarkerOutOfBounds: New was given a start or end outside the grid.
//   - ErrOutOfBounds: ElevationAt was asked for a coordinate outside the grid.
//
// Example:
//
//	g, err := heightmap.ParseString("Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n")
//	if err != nil {
//		return err
//	}
//	fmt.Println(g.Rows(), g.Cols(), g.Start(), g.End()) // 5 8 (0,0) (2,5)
package heightmap

package heightmap

// CellsAt returns every cell whose elevation equals elevation, in row-major
// order. The start and end cells are included after normalisation.
//
// Time:   O(R·C).
// Memory: O(k) for the k matching cells.
func (g *Grid) CellsAt(elevation int) []Coord {
	var out []Coord
	for i, v := range g.cells {
		if v == elevation {
			out = append(out, g.Coord(i))
		}
	}
	return out
}

// Histogram counts cells per elevation; index e holds the number of cells
// at elevation e.
//
// Time:   O(R·C).
// Memory: O(1).
func (g *Grid) Histogram() [MaxElevation + 1]int {
	var h [MaxElevation + 1]int
	for _, v := range g.cells {
		h[v]++
	}
	return h
}

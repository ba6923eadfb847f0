package heightmap

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice indexed
// values[row][col]. It deep-copies the input to ensure immutability.
// The start cell is normalised to MinElevation and the end cell to
// MaxElevation, in that order, so a grid whose start equals its end stores
// MaxElevation there.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrElevationRange or
// ErrMarkerOutOfBounds, all of which match ErrMalformedGrid.
// Complexity: O(R×C) time and memory.
func New(values [][]int, start, end Coord) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]int, 0, rows*cols),
		start: start,
		end:   end,
	}
	for r, row := range values {
		for c, v := range row {
			if v < MinElevation || v > MaxElevation {
				return nil, fmt.Errorf("%w: %d at %v", ErrElevationRange, v, Coord{r, c})
			}
		}
		g.cells = append(g.cells, row...)
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, fmt.Errorf("%w: start %v, end %v, size %dx%d", ErrMarkerOutOfBounds, start, end, rows, cols)
	}
	g.cells[g.Index(start)] = MinElevation
	g.cells[g.Index(end)] = MaxElevation

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// End returns the end coordinate.
func (g *Grid) End() Coord { return g.end }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// ElevationAt returns the elevation stored at c. It never clamps: an
// out-of-range coordinate yields ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) ElevationAt(c Coord) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return g.cells[g.Index(c)], nil
}

// NeighborsOf returns the in-bounds cells adjacent to c, in the order of
// Directions. The slice is freshly allocated.
// Complexity: O(1).
func (g *Grid) NeighborsOf(c Coord) []Coord {
	out := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		if n := c.Add(d); g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Index maps c to its row-major index: Row*Cols + Col.
// The result is meaningless for coordinates outside the grid.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coord converts a row-major index back to a coordinate.
// Complexity: O(1).
func (g *Grid) Coord(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// String renders the grid as lines of letters, using the default markers
// for the start and end cells. Parsing the output yields an equal grid
// unless start and end coincide.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			at := Coord{r, c}
			switch at {
			case g.start:
				sb.WriteRune(DefaultStartMarker)
			case g.end:
				sb.WriteRune(DefaultEndMarker)
			default:
				sb.WriteByte(byte('a' + g.cells[g.Index(at)]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Package heightmap defines the coordinate, direction, and grid types
// for the heightmap subpackage of github.com/katalvlaran/hillclimb.
package heightmap

import "fmt"

// Elevation bounds. Letters 'a'..'z' map onto this range.
const (
	MinElevation = 0
	MaxElevation = 25
)

// Default markers recognised by Parse.
const (
	DefaultStartMarker = 'S'
	DefaultEndMarker   = 'E'
)

// Coord addresses a single cell by row and column. It is comparable and
// may be used as a map key.
type Coord struct {
	Row, Col int
}

// Add returns c moved one step in direction d.
func (c Coord) Add(d Direction) Coord {
	return Coord{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is a unit offset along a single axis.
type Direction struct {
	DRow, DCol int
}

// The four axis-aligned moves.
var (
	Up    = Direction{DRow: -1}
	Down  = Direction{DRow: +1}
	Left  = Direction{DCol: -1}
	Right = Direction{DCol: +1}
)

// Directions lists the moves in the fixed order used by NeighborsOf.
var Directions = [4]Direction{Up, Down, Left, Right}

// Grid is a rectangular height map with a designated start and end cell.
// It is immutable once built and safe for concurrent readers.
// Elevations are stored row-major in cells; Index and Coord convert
// between the two addressing schemes.
type Grid struct {
	rows, cols int
	cells      []int
	start, end Coord
}

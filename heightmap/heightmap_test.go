package heightmap_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/heightmap"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged or out-of-range inputs.
func TestNew_Errors(t *testing.T) {
	origin := heightmap.Coord{}
	cases := []struct {
		name       string
		grid       [][]int
		start, end heightmap.Coord
		err        error
	}{
		{"EmptyRows", [][]int{}, origin, origin, heightmap.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, origin, origin, heightmap.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, origin, origin, heightmap.ErrNonRectangular},
		{"Negative", [][]int{{0, -1}}, origin, origin, heightmap.ErrElevationRange},
		{"TooHigh", [][]int{{26, 0}}, origin, origin, heightmap.ErrElevationRange},
		{"StartOutside", [][]int{{0, 1}}, heightmap.Coord{Row: 1}, origin, heightmap.ErrMarkerOutOfBounds},
		{"EndOutside", [][]int{{0, 1}}, origin, heightmap.Coord{Col: 2}, heightmap.ErrMarkerOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := heightmap.New(tc.grid, tc.start, tc.end)
			assert.Nil(t, g)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
			assert.ErrorIs(t, err, heightmap.ErrMalformedGrid)
		})
	}
}

// TestNew_NormalisesMarkers checks start becomes 0 and end becomes 25.
func TestNew_NormalisesMarkers(t *testing.T) {
	values := [][]int{{7, 8}, {9, 10}}
	g, err := heightmap.New(values, heightmap.Coord{Row: 0, Col: 1}, heightmap.Coord{Row: 1, Col: 0})
	require.NoError(t, err)

	e, err := g.ElevationAt(g.Start())
	require.NoError(t, err)
	assert.Equal(t, heightmap.MinElevation, e)
	e, err = g.ElevationAt(g.End())
	require.NoError(t, err)
	assert.Equal(t, heightmap.MaxElevation, e)

	// the input is copied, not aliased
	values[0][0] = 20
	e, err = g.ElevationAt(heightmap.Coord{})
	require.NoError(t, err)
	assert.Equal(t, 7, e)
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := heightmap.New([][]int{{0, 1, 0}, {1, 0, 1}}, heightmap.Coord{}, heightmap.Coord{Row: 1, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 6, g.Len())

	for _, c := range []heightmap.Coord{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []heightmap.Coord{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		_, err := g.ElevationAt(c)
		assert.ErrorIs(t, err, heightmap.ErrOutOfBounds, "ElevationAt(%v)", c)
	}
}

//----------------------------------------------------------------------------//
// Neighbours and indexing
//----------------------------------------------------------------------------//

// TestNeighborsOf checks the fixed up, down, left, right order and bounds filtering.
func TestNeighborsOf(t *testing.T) {
	g, err := heightmap.New([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, heightmap.Coord{}, heightmap.Coord{Row: 2, Col: 2})
	require.NoError(t, err)

	cases := []struct {
		at   heightmap.Coord
		want []heightmap.Coord
	}{
		{heightmap.Coord{Row: 1, Col: 1}, []heightmap.Coord{{0, 1}, {2, 1}, {1, 0}, {1, 2}}},
		{heightmap.Coord{Row: 0, Col: 0}, []heightmap.Coord{{1, 0}, {0, 1}}},
		{heightmap.Coord{Row: 2, Col: 2}, []heightmap.Coord{{1, 2}, {2, 1}}},
		{heightmap.Coord{Row: 0, Col: 1}, []heightmap.Coord{{1, 1}, {0, 0}, {0, 2}}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, g.NeighborsOf(tc.at)); diff != "" {
			t.Errorf("NeighborsOf(%v) mismatch (-want +got):\n%s", tc.at, diff)
		}
	}
}

// TestIndexRoundTrip checks Index and Coord are inverse on every cell.
func TestIndexRoundTrip(t *testing.T) {
	g, err := heightmap.Random(4, 7)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		c := g.Coord(i)
		require.True(t, g.InBounds(c))
		require.Equal(t, i, g.Index(c))
	}
}

func TestCoordAndDirection(t *testing.T) {
	c := heightmap.Coord{Row: 3, Col: 4}
	assert.Equal(t, heightmap.Coord{Row: 2, Col: 4}, c.Add(heightmap.Up))
	assert.Equal(t, heightmap.Coord{Row: 4, Col: 4}, c.Add(heightmap.Down))
	assert.Equal(t, heightmap.Coord{Row: 3, Col: 3}, c.Add(heightmap.Left))
	assert.Equal(t, heightmap.Coord{Row: 3, Col: 5}, c.Add(heightmap.Right))
	assert.Equal(t, "(3,4)", c.String())
	assert.Equal(t, [4]heightmap.Direction{heightmap.Up, heightmap.Down, heightmap.Left, heightmap.Right}, heightmap.Directions)
}

// TestString renders the grid back to letters.
func TestString(t *testing.T) {
	const text = "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"
	g, err := heightmap.ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, text, g.String())
}

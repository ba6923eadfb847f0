package heightmap

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/hillclimb/adjacency"
)

// ToDirectedGraph converts the grid into a gonum directed graph under rule.
// Each cell becomes a node whose ID is its row-major Index; an arc u→v
// exists for every pair of adjacent cells where rule permits the move.
// Arcs carry no weight, so gonum's shortest-path routines count moves.
//
// Complexity: O(R×C) time and memory (at most four arcs per cell).
func ToDirectedGraph(g *Grid, rule adjacency.Rule) *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	for i := range g.cells {
		dg.AddNode(simple.Node(int64(i)))
	}
	for i, from := range g.cells {
		u := g.Coord(i)
		for _, v := range g.NeighborsOf(u) {
			j := g.Index(v)
			if rule.CanMove(from, g.cells[j]) {
				dg.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
			}
		}
	}
	return dg
}

package bfs_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/hillclimb/adjacency"
	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/dfs"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// OracleSuite checks bfs against two independent implementations: the
// exhaustive dfs walk on small grids and gonum's shortest paths on larger ones.
type OracleSuite struct {
	suite.Suite
	rules map[string]adjacency.Rule
}

func (s *OracleSuite) SetupSuite() {
	s.rules = map[string]adjacency.Rule{
		"climb1":  adjacency.ClimbOne,
		"climb3":  adjacency.ClimbAtMost(3),
		"within1": adjacency.Within(1),
		"within4": adjacency.Within(4),
	}
}

// randomGrid draws dimensions in [1, maxSide] and, for every other seed on
// grids of at most smoothCells cells, a smooth elevation profile.
func (s *OracleSuite) randomGrid(seed int64, maxSide, smoothCells int) *heightmap.Grid {
	rng := rand.New(rand.NewSource(seed))
	rows, cols := 1+rng.Intn(maxSide), 1+rng.Intn(maxSide)
	opts := []heightmap.RandomOption{heightmap.WithRand(rng)}
	if seed%2 == 0 && rows*cols <= smoothCells {
		opts = append(opts, heightmap.WithMaxStep(1))
	}
	g, err := heightmap.Random(rows, cols, opts...)
	s.Require().NoError(err)

	return g
}

// TestMatchesExhaustive compares with brute-force enumeration on grids up to 5×5.
func (s *OracleSuite) TestMatchesExhaustive() {
	for seed := int64(1); seed <= 150; seed++ {
		g := s.randomGrid(seed, 5, 16)
		for name, rule := range s.rules {
			got, err := bfs.ShortestDistance(g, rule)
			s.Require().NoError(err)
			want, err := dfs.Exhaustive(g, rule)
			s.Require().NoError(err)
			s.Equal(want.Distance, got.Distance, "seed=%d rule=%s\n%s", seed, name, g)
		}
	}
}

// TestMatchesGonum compares with Dijkstra over the exported unit-cost graph.
func (s *OracleSuite) TestMatchesGonum() {
	for seed := int64(1); seed <= 40; seed++ {
		g := s.randomGrid(seed, 20, 400)
		for name, rule := range s.rules {
			got, err := bfs.ShortestDistance(g, rule)
			s.Require().NoError(err)

			dg := heightmap.ToDirectedGraph(g, rule)
			sh := path.DijkstraFrom(simple.Node(int64(g.Index(g.Start()))), dg)
			w := sh.WeightTo(int64(g.Index(g.End())))
			want := bfs.Unreachable
			if !math.IsInf(w, 1) {
				want = int(w)
			}
			s.Equal(want, got.Distance, "seed=%d rule=%s", seed, name)
		}
	}
}

// TestTighteningNeverShortens checks Within(n) against ClimbAtMost(n).
func (s *OracleSuite) TestTighteningNeverShortens() {
	for seed := int64(1); seed <= 100; seed++ {
		g := s.randomGrid(seed, 12, 144)
		for step := 0; step <= 3; step++ {
			loose, err := bfs.ShortestDistance(g, adjacency.ClimbAtMost(step))
			s.Require().NoError(err)
			tight, err := bfs.ShortestDistance(g, adjacency.Within(step))
			s.Require().NoError(err)
			if !tight.Reachable() {
				continue
			}
			s.True(loose.Reachable(), "seed=%d step=%d", seed, step)
			s.GreaterOrEqual(tight.Distance, loose.Distance, "seed=%d step=%d", seed, step)
		}
	}
}

// TestNearestElevationMatchesBruteForce compares the reverse search with one
// forward search per candidate source.
func (s *OracleSuite) TestNearestElevationMatchesBruteForce() {
	for seed := int64(1); seed <= 60; seed++ {
		g := s.randomGrid(seed, 8, 64)
		end := g.End()
		for name, rule := range s.rules {
			for _, elevation := range []int{0, 5, 12} {
				got, err := bfs.NearestElevation(g, rule, elevation)
				s.Require().NoError(err)

				want := bfs.Unreachable
				for _, src := range g.CellsAt(elevation) {
					res, err := bfs.Search(g, rule, []heightmap.Coord{src}, func(c heightmap.Coord) bool { return c == end })
					s.Require().NoError(err)
					if res.Reachable() && (want == bfs.Unreachable || res.Distance < want) {
						want = res.Distance
					}
				}
				s.Equal(want, got.Distance, "seed=%d rule=%s elevation=%d", seed, name, elevation)
			}
		}
	}
}

func TestOracleSuite(t *testing.T) {
	suite.Run(t, new(OracleSuite))
}

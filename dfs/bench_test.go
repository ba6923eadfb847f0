package dfs_test

import (
	"testing"

	"github.com/katalvlaran/hillclimb/adjacency"
	"github.com/katalvlaran/hillclimb/dfs"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// BenchmarkExhaustive_Smooth4x4 measures the reference walk on a smooth 4×4 map.
func BenchmarkExhaustive_Smooth4x4(b *testing.B) {
	g, err := heightmap.Random(4, 4, heightmap.WithSeed(7), heightmap.WithMaxStep(1))
	if err != nil {
		b.Fatalf("Random: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Exhaustive(g, adjacency.ClimbOne)
	}
}

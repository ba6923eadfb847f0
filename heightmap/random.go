package heightmap

import (
	"fmt"
	"math/rand"
)

// RandomOption customises Random.
type RandomOption func(*randomConfig)

type randomConfig struct {
	rng     *rand.Rand
	maxStep int // <0: independent uniform elevations
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) RandomOption {
	if r == nil {
		panic("heightmap: WithRand(nil)")
	}
	return func(c *randomConfig) {
		c.rng = r
	}
}

// WithMaxStep makes each cell differ from the previous one in row-major
// order by at most step, producing smoother, more often climbable terrain.
// Panics on a negative step.
func WithMaxStep(step int) RandomOption {
	if step < 0 {
		panic(fmt.Sprintf("heightmap: WithMaxStep(%d)", step))
	}
	return func(c *randomConfig) {
		c.maxStep = step
	}
}

// Random builds a rows×cols grid with pseudo-random elevations and distinct
// random start and end cells (they coincide only in a 1×1 grid).
// The default source is seeded with 1, so results are reproducible.
// Complexity: O(rows×cols).
func Random(rows, cols int, opts ...RandomOption) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	cfg := randomConfig{rng: rand.New(rand.NewSource(1)), maxStep: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	values := make([][]int, rows)
	prev := cfg.rng.Intn(MaxElevation + 1)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			v := cfg.rng.Intn(MaxElevation + 1)
			if cfg.maxStep >= 0 {
				v = clampElevation(prev + cfg.rng.Intn(2*cfg.maxStep+1) - cfg.maxStep)
			}
			values[r][c] = v
			prev = v
		}
	}

	n := rows * cols
	si := cfg.rng.Intn(n)
	ei := si
	if n > 1 {
		ei = (si + 1 + cfg.rng.Intn(n-1)) % n
	}
	start := Coord{Row: si / cols, Col: si % cols}
	end := Coord{Row: ei / cols, Col: ei % cols}

	return New(values, start, end)
}

func clampElevation(v int) int {
	switch {
	case v < MinElevation:
		return MinElevation
	case v > MaxElevation:
		return MaxElevation
	}
	return v
}

// Package dfs defines types and options for the exhaustive depth-first
// reference search, including cancellation and the grid-size guard.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Cell states during the walk.
const (
	White = iota // White: the cell is not on the current path.
	Gray         // Gray: the cell is on the current path (recursion stack).
)

// Unreachable is the Result.Distance reported when no simple path connects
// the start to the end.
const Unreachable = -1

// DefaultMaxCells is the largest grid Exhaustive accepts by default (5×5).
const DefaultMaxCells = 25

var (
	// ErrGridNil is returned when a nil grid is passed to Exhaustive.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrRuleNil is returned when a nil adjacency rule is passed.
	ErrRuleNil = errors.New("dfs: adjacency rule is nil")

	// ErrGridTooLarge indicates the grid exceeds Options.MaxCells.
	ErrGridTooLarge = errors.New("dfs: grid too large for exhaustive search")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of Exhaustive.
type Option func(*Options)

// Options holds configurable parameters for the exhaustive walk.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked on every recursive call.
	Ctx context.Context

	// MaxCells caps R×C. The walk enumerates simple paths and is
	// exponential in the grid size. Default is DefaultMaxCells.
	MaxCells int

	err error
}

// DefaultOptions returns Options with a background context and
// MaxCells = DefaultMaxCells.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxCells: DefaultMaxCells,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCells raises or lowers the grid-size guard. n must be positive.
func WithMaxCells(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxCells must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCells = n
	}
}

// Result is the outcome of an exhaustive walk.
//   - Distance: length of the shortest simple path found, or Unreachable.
//   - Paths: number of complete start→end paths reached; branches that
//     could not beat the best distance so far are pruned and not counted.
type Result struct {
	Distance int
	Paths    int
}

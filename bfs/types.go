// Package bfs provides tunable options, error definitions and the result
// type for breadth-first search over a heightmap.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrRuleNil is returned if a nil adjacency rule is passed.
	ErrRuleNil = errors.New("bfs: adjacency rule is nil")

	// ErrNoSources is returned by Search when sources is empty.
	ErrNoSources = errors.New("bfs: no source cells")

	// ErrGoalNil is returned by Search when goal is nil.
	ErrGoalNil = errors.New("bfs: goal predicate is nil")

	// ErrElevation is returned by NearestElevation for a target outside
	// [heightmap.MinElevation, heightmap.MaxElevation].
	ErrElevation = errors.New("bfs: target elevation out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unreachable is the Result.Distance reported when no legal sequence of
// moves connects the sources to the goal.
const Unreachable = -1

// Result is the outcome of one search.
//   - Distance: minimal number of moves, or Unreachable.
//   - Visited: number of cells placed on the frontier, sources included.
type Result struct {
	Distance int
	Visited  int
}

// Reachable reports whether a goal cell was reached.
func (r Result) Reachable() bool {
	return r.Distance != Unreachable
}

// String renders the distance, or "unreachable".
func (r Result) String() string {
	if !r.Reachable() {
		return "unreachable"
	}
	return strconv.Itoa(r.Distance)
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// OnEnqueue is called when a cell is placed on the frontier.
	// Receives the cell and its distance from the nearest source.
	OnEnqueue func(c heightmap.Coord, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(c heightmap.Coord, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(c heightmap.Coord, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth; a goal further
	// away is reported as Unreachable. 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(heightmap.Coord, int) {},
		OnDequeue: func(heightmap.Coord, int) {},
		OnVisit:   func(heightmap.Coord, int) error { return nil },
		MaxDepth:  0,
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

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c heightmap.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c heightmap.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c heightmap.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

package adjacency

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRule is returned by Lookup for an unrecognised name.
	ErrUnknownRule = errors.New("adjacency: unknown rule")
	// ErrNegativeStep is returned by Lookup for a negative step.
	ErrNegativeStep = errors.New("adjacency: step must not be negative")
)

// Rule names accepted by Lookup.
const (
	NameClimb  = "climb"
	NameWithin = "within"
)

// Rule reports whether moving from a cell at elevation from to an adjacent
// cell at elevation to is legal.
type Rule interface {
	CanMove(from, to int) bool
}

// RuleFunc adapts an ordinary function to Rule.
type RuleFunc func(from, to int) bool

// CanMove calls f(from, to).
func (f RuleFunc) CanMove(from, to int) bool { return f(from, to) }

// ClimbOne permits ascending by at most one unit and descending by any amount.
var ClimbOne Rule = ClimbAtMost(1)

// ClimbAtMost permits to-from <= step.
func ClimbAtMost(step int) Rule {
	return RuleFunc(func(from, to int) bool {
		return to-from <= step
	})
}

// Within permits |to-from| <= step.
func Within(step int) Rule {
	return RuleFunc(func(from, to int) bool {
		d := to - from
		return d <= step && -d <= step
	})
}

// Reverse returns the rule for traversing r's moves backwards:
// Reverse(r).CanMove(a, b) == r.CanMove(b, a).
func Reverse(r Rule) Rule {
	return RuleFunc(func(from, to int) bool {
		return r.CanMove(to, from)
	})
}

// Lookup resolves a rule by name: NameClimb → ClimbAtMost(step),
// NameWithin → Within(step).
func Lookup(name string, step int) (Rule, error) {
	if step < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeStep, step)
	}
	switch name {
	case NameClimb:
		return ClimbAtMost(step), nil
	case NameWithin:
		return Within(step), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/adjacency"
	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// Search origins.
const (
	fromStart  = "start"
	fromLowest = "lowest"
)

var errUnknownOrigin = errors.New("unknown origin")

// searchConfig selects where a search begins and which moves are legal.
type searchConfig struct {
	from string
	rule adjacency.Rule
}

// newSearchConfig validates the origin and resolves the named rule.
func newSearchConfig(from, ruleName string, step int) (searchConfig, error) {
	if from != fromStart && from != fromLowest {
		return searchConfig{}, fmt.Errorf("%w: %q (want %q or %q)", errUnknownOrigin, from, fromStart, fromLowest)
	}
	rule, err := adjacency.Lookup(ruleName, step)
	if err != nil {
		return searchConfig{}, err
	}
	return searchConfig{from: from, rule: rule}, nil
}

// search runs the configured breadth-first search on g.
func (c searchConfig) search(g *heightmap.Grid, opts ...bfs.Option) (bfs.Result, error) {
	if c.from == fromLowest {
		return bfs.NearestElevation(g, c.rule, heightmap.MinElevation, opts...)
	}
	return bfs.ShortestDistance(g, c.rule, opts...)
}

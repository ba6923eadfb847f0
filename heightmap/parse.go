package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// maxLineBytes bounds a single input row.
const maxLineBytes = 1 << 20

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

type parseOptions struct {
	startMarker rune
	endMarker   rune
	err         error
}

func defaultParseOptions() parseOptions {
	return parseOptions{
		startMarker: DefaultStartMarker,
		endMarker:   DefaultEndMarker,
	}
}

// WithStartMarker replaces the default 'S' start marker.
// Lowercase letters are rejected with ErrInvalidMarker.
func WithStartMarker(m rune) ParseOption {
	return func(o *parseOptions) {
		if isElevationLetter(m) {
			o.err = fmt.Errorf("%w: start marker %q is an elevation letter", ErrInvalidMarker, m)
			return
		}
		o.startMarker = m
	}
}

// WithEndMarker replaces the default 'E' end marker.
// Lowercase letters are rejected with ErrInvalidMarker.
func WithEndMarker(m rune) ParseOption {
	return func(o *parseOptions) {
		if isElevationLetter(m) {
			o.err = fmt.Errorf("%w: end marker %q is an elevation letter", ErrInvalidMarker, m)
			return
		}
		o.endMarker = m
	}
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts ...ParseOption) (*Grid, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Parse reads a height map, one row per line. Each cell is a lowercase
// letter ('a' = 0 … 'z' = 25), the start marker (elevation 0) or the end
// marker (elevation 25); each marker must occur exactly once.
// Carriage returns and trailing blank lines are ignored.
//
// Construction errors match ErrMalformedGrid; those tied to a position are
// wrapped in a *ParseError.
// Complexity: O(R×C) time and memory.
func Parse(r io.Reader, opts ...ParseOption) (*Grid, error) {
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.startMarker == o.endMarker {
		return nil, fmt.Errorf("%w: start and end markers are both %q", ErrInvalidMarker, o.startMarker)
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	if lines[0] == "" {
		return nil, &ParseError{
			Line: 1,
			Err:  fmt.Errorf("%w: blank line before the first row", ErrNonRectangular),
		}
	}

	cols := utf8.RuneCountInString(lines[0])
	values := make([][]int, len(lines))
	var start, end []Coord
	for row, line := range lines {
		if n := utf8.RuneCountInString(line); n != cols {
			return nil, &ParseError{
				Line: row + 1,
				Err:  fmt.Errorf("%w: %d cells, want %d", ErrNonRectangular, n, cols),
			}
		}
		values[row] = make([]int, 0, cols)
		col := 0
		for _, ch := range line {
			at := Coord{Row: row, Col: col}
			switch {
			case ch == o.startMarker:
				start = append(start, at)
				if len(start) > 1 {
					return nil, &ParseError{Line: row + 1, Col: col + 1, Err: ErrStartMarker}
				}
				values[row] = append(values[row], MinElevation)
			case ch == o.endMarker:
				end = append(end, at)
				if len(end) > 1 {
					return nil, &ParseError{Line: row + 1, Col: col + 1, Err: ErrEndMarker}
				}
				values[row] = append(values[row], MaxElevation)
			case isElevationLetter(ch):
				values[row] = append(values[row], int(ch-'a'))
			default:
				return nil, &ParseError{
					Line: row + 1,
					Col:  col + 1,
					Err:  fmt.Errorf("%w: %q", ErrInvalidCell, ch),
				}
			}
			col++
		}
	}
	if len(start) == 0 {
		return nil, fmt.Errorf("%w: %q not found", ErrStartMarker, o.startMarker)
	}
	if len(end) == 0 {
		return nil, fmt.Errorf("%w: %q not found", ErrEndMarker, o.endMarker)
	}

	return New(values, start[0], end[0])
}

// readLines returns the input lines with carriage returns and trailing
// blank lines removed.
func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read input: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func isElevationLetter(ch rune) bool {
	return ch >= 'a' && ch <= 'z'
}

package heightmap

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid is the parent of every construction error; match it
	// with errors.Is to catch any of the more specific errors below.
	ErrMalformedGrid = errors.New("heightmap: malformed grid")

	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrInvalidCell indicates a character that is neither a lowercase letter nor a marker.
	ErrInvalidCell = fmt.Errorf("%w: invalid cell", ErrMalformedGrid)
	// ErrStartMarker indicates the start marker does not occur exactly once.
	ErrStartMarker = fmt.Errorf("%w: start marker must occur exactly once", ErrMalformedGrid)
	// ErrEndMarker indicates the end marker does not occur exactly once.
	ErrEndMarker = fmt.Errorf("%w: end marker must occur exactly once", ErrMalformedGrid)
	// ErrElevationRange indicates a value outside [MinElevation, MaxElevation].
	ErrElevationRange = fmt.Errorf("%w: elevation out of range", ErrMalformedGrid)
	// ErrMarkerOutOfBounds indicates a start or end coordinate outside the grid.
	ErrMarkerOutOfBounds = fmt.Errorf("%w: start or end outside the grid", ErrMalformedGrid)

	// ErrInvalidMarker is returned for marker options that would be ambiguous.
	ErrInvalidMarker = errors.New("heightmap: invalid marker")

	// ErrOutOfBounds indicates a coordinate escaped InBounds filtering.
	// It signals a caller defect, not a recoverable condition.
	ErrOutOfBounds = errors.New("heightmap: coordinate out of bounds")
)

// ParseError locates a construction error within the input text.
// Line and Col are 1-based; Col is 0 when the error concerns a whole line.
type ParseError struct {
	Line, Col int
	Err       error
}

func (e *ParseError) Error() string {
	if e.Col == 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, col %d: %v", e.Line, e.Col, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

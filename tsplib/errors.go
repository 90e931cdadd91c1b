package tsplib

import "errors"

var (
	// ErrNoCoordinates is returned when the input has no NODE_COORD_SECTION rows.
	ErrNoCoordinates = errors.New("tsplib: no node coordinates")

	// ErrDimensionMismatch is returned when DIMENSION disagrees with the number
	// of coordinate rows.
	ErrDimensionMismatch = errors.New("tsplib: DIMENSION does not match coordinate count")

	// ErrMalformedLine is wrapped with the 1-based line number of a header or
	// coordinate row that cannot be parsed.
	ErrMalformedLine = errors.New("tsplib: malformed line")
)

// Package tsp - validation utilities shared by constructors and the improver.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) worst case; no hidden allocations.
package tsp

import "math"

// validateCities rejects empty inputs and non-finite coordinates.
//
// Complexity: O(n).
func validateCities(cities []City) error {
	if len(cities) == 0 {
		return ErrTooFewCities
	}

	var i int
	for i = range cities {
		if !finite(cities[i].X) || !finite(cities[i].Y) {
			return ErrNonFiniteCoordinate
		}
	}

	return nil
}

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return ErrInvalidOptions
	}
	switch opts.Algo {
	case AlgoGreedy, AlgoNearestNeighbor, AlgoNearestInsertion:
		// ok
	default:
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// validateOpenRoute checks the shape TwoOpt relies on: finite coordinates and
// an index slice that is either absent or exactly as long as Cities.
//
// Complexity: O(n).
func validateOpenRoute(r *Route) error {
	if r == nil {
		return ErrDimensionMismatch
	}
	if r.Index != nil && len(r.Index) != len(r.Cities) {
		return ErrDimensionMismatch
	}

	var i int
	for i = range r.Cities {
		if !finite(r.Cities[i].X) || !finite(r.Cities[i].Y) {
			return ErrNonFiniteCoordinate
		}
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

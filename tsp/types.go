// Package tsp — shared types, options and sentinel errors.
package tsp

import (
	"errors"
	"time"

	"golang.org/x/exp/rand"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrTooFewCities is returned when a constructor receives no cities at all.
	ErrTooFewCities = errors.New("tsp: at least one city is required")

	// ErrNonFiniteCoordinate is returned when a city has a NaN or ±Inf coordinate.
	ErrNonFiniteCoordinate = errors.New("tsp: non-finite city coordinate")

	// ErrDimensionMismatch signals inconsistent lengths or out-of-range indices
	// in a route, permutation or tour.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrBrokenEdgeSet is an internal-consistency failure: while stitching the
	// accepted greedy edges into a visiting order, a step found zero or several
	// edges incident to the current tail. It means the degree or union-find
	// bookkeeping is broken; no route is returned.
	ErrBrokenEdgeSet = errors.New("tsp: malformed greedy edge set")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrInvalidOptions is returned for self-contradictory Options (e.g. negative TimeLimit).
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrTimeLimit is returned by TwoOpt when Options.TimeLimit expired. The route
	// is still a valid tour holding every improvement made so far.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")
)

// DefaultIterations is the 2-opt iteration budget used by DefaultOptions.
const DefaultIterations uint64 = 10_000_000

// LightIterations is the lighter 2-opt budget, handy for tests and large inputs.
const LightIterations uint64 = 100_000

// City is an immutable coordinate pair. A city is identified by its position
// in the input slice (its city index).
type City struct {
	X float64
	Y float64
}

// Route is an OPEN visiting order: every city appears exactly once and the
// closing return to the first city is implicit.
//
// Index[k] is the input city index of Cities[k]. Index may be nil when a
// caller only tracks coordinates; when present it always has len(Cities).
type Route struct {
	Cities []City
	Index  []int
}

// Algorithm selects a tour constructor.
type Algorithm int

const (
	// AlgoGreedy builds the tour from globally shortest edges first (see greedy.go).
	AlgoGreedy Algorithm = iota
	// AlgoNearestNeighbor walks to the closest unvisited city (see nearest_neighbor.go).
	AlgoNearestNeighbor
	// AlgoNearestInsertion grows a loop by inserting the closest remaining city (see nearest_insertion.go).
	AlgoNearestInsertion
)

// Options configures constructors, the 2-opt improver and Solve.
// Use DefaultOptions() and override the fields you need.
type Options struct {
	// Algo is the constructor used by Solve.
	Algo Algorithm

	// TwoOpt enables the 2-opt post-pass in Solve.
	TwoOpt bool

	// Iterations is the 2-opt budget used by Solve.
	Iterations uint64

	// Seed drives the 2-opt generator; 0 selects the package default seed.
	Seed int64

	// Rand, when non-nil, is used instead of a generator derived from Seed.
	// It is consumed, not copied; do not share it across goroutines.
	Rand *rand.Rand

	// SpatialIndex makes NearestNeighbor query an R-tree instead of scanning
	// every unvisited city. The resulting route is identical.
	SpatialIndex bool

	// TimeLimit is a soft wall-clock budget for 2-opt; 0 means unlimited.
	TimeLimit time.Duration

	// Observer receives progress events; nil disables reporting.
	Observer Observer
}

// DefaultOptions returns Greedy construction without 2-opt, the reference
// iteration budget and the deterministic default seed.
func DefaultOptions() Options {
	return Options{
		Algo:       AlgoGreedy,
		TwoOpt:     false,
		Iterations: DefaultIterations,
	}
}

// Result is returned by Solve.
type Result struct {
	// Route is the final open visiting order.
	Route Route

	// Length is the closed tour length in the truncated metric.
	Length int64

	// TwoOpt holds improver statistics when the post-pass ran, nil otherwise.
	TwoOpt *TwoOptStats
}

// TwoOptStats summarizes one TwoOpt run.
type TwoOptStats struct {
	// Iterations is the number of random moves evaluated.
	Iterations uint64

	// Applied counts accepted (strictly improving) reversals.
	Applied uint64

	// LastImprovement is the 0-based iteration of the last accepted reversal.
	// It is diagnostic only and meaningless when Applied == 0.
	LastImprovement uint64

	// Initial and Final are the closed tour lengths before and after the run.
	Initial int64
	Final   int64
}

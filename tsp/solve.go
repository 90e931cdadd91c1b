// Package tsp - unified dispatcher for tour construction and improvement.
//
// Solve validates the inputs, runs the constructor selected by Options.Algo
// and, when Options.TwoOpt is set, hands the open route to TwoOpt for
// Options.Iterations moves. The closed length is computed from the final route.
//
// Design principles:
//   - Deterministic: seed routing to the improver; no time-based randomness.
//   - Strict sentinels: only errors from types.go, wrapped where context helps.
package tsp

import (
	"errors"
	"strings"
)

var algorithmNames = [...]string{
	AlgoGreedy:           "greedy",
	AlgoNearestNeighbor:  "nearest-neighbor",
	AlgoNearestInsertion: "nearest-insertion",
}

// algorithmAliases maps accepted spellings to algorithms.
var algorithmAliases = map[string]Algorithm{
	"greedy":            AlgoGreedy,
	"nearest-neighbor":  AlgoNearestNeighbor,
	"nearest_neighbor":  AlgoNearestNeighbor,
	"nn":                AlgoNearestNeighbor,
	"nearest-insertion": AlgoNearestInsertion,
	"nearest_insertion": AlgoNearestInsertion,
	"ni":                AlgoNearestInsertion,
}

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	if a >= 0 && int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}

	return "unknown"
}

// ParseAlgorithm resolves a case-insensitive algorithm name or short alias
// ("greedy", "nn", "ni", "nearest-neighbor", …).
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}

	return 0, ErrUnsupportedAlgorithm
}

// Construct runs the constructor selected by opts.Algo.
func Construct(cities []City, opts Options) (Route, error) {
	switch opts.Algo {
	case AlgoGreedy:
		return Greedy(cities, opts)
	case AlgoNearestNeighbor:
		return NearestNeighbor(cities, opts)
	case AlgoNearestInsertion:
		return NearestInsertion(cities, opts)
	default:
		return Route{}, ErrUnsupportedAlgorithm
	}
}

// Solve constructs a route and optionally improves it with 2-opt.
//
// When the 2-opt time budget expires, Solve still returns the improved route
// and its length together with ErrTimeLimit.
//
// Complexity: per constructor (see greedy.go, nearest_neighbor.go,
// nearest_insertion.go) plus O(Iterations) for the 2-opt post-pass.
func Solve(cities []City, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	route, err := Construct(cities, opts)
	if err != nil {
		return Result{}, err
	}

	res := Result{Route: route}
	if opts.TwoOpt {
		var stats TwoOptStats
		stats, err = TwoOpt(&res.Route, opts.Iterations, opts)
		if err != nil && !errors.Is(err, ErrTimeLimit) {
			return Result{}, err
		}
		res.TwoOpt = &stats
	}
	res.Length = res.Route.Length()

	return res, err
}

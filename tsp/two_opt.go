// Package tsp - randomized 2-opt local search.
//
// TwoOpt is stochastic hill climbing over segment reversals on an OPEN route
// of length L, for a fixed budget of K iterations:
//
//  1. Draw i, j uniformly from [0, L); order them so i ≤ j.
//  2. x = (i+L-1) mod L is the predecessor of i, y = (j+1) mod L the successor of j.
//  3. d1 = w(x,i) + w(j,y) is the current cost, d2 = w(x,j) + w(i,y) the cost
//     after reversing [i..j].
//  4. Reverse [i..j] in place iff d2 < d1, x ≠ j and y ≠ i. The last two guards
//     reject the wrap-around cases where the removed edges share an endpoint.
//  5. Repeat K times. There is no early exit on stagnation; the iteration of the
//     last improvement is reported for diagnostics.
//
// Every applied move shortens the closed tour by exactly d1 − d2 in the
// truncated metric; rejected moves leave it unchanged. There is no temperature
// and no acceptance of worsening moves.
//
// Design:
//   - Deterministic under a seed (see rng.go).
//   - Soft time budget via Options.TimeLimit, checked every 2048 iterations.
//   - O(1) per iteration plus O(j−i) per accepted move; no allocations in the loop.
package tsp

import (
	"errors"
	"time"
)

// deadlineMask throttles wall-clock checks to every 2048 iterations.
const deadlineMask = 2047

// TwoOpt improves the open route r in place for the given number of iterations.
// Coordinates and, when present, indices are reversed in lock-step.
//
// Routes with fewer than four cities are returned untouched: every reversal
// of such a cycle yields the same cycle.
//
// Errors:
//   - ErrDimensionMismatch / ErrNonFiniteCoordinate for a malformed route;
//   - ErrInvalidOptions for a negative TimeLimit;
//   - ErrTimeLimit when the time budget expired (stats and route stay valid).
func TwoOpt(r *Route, iterations uint64, opts Options) (TwoOptStats, error) {
	if err := validateOpenRoute(r); err != nil {
		return TwoOptStats{}, err
	}
	if opts.TimeLimit < 0 {
		return TwoOptStats{}, ErrInvalidOptions
	}

	cs := r.Cities
	L := len(cs)
	stats := TwoOptStats{Initial: openLength(cs)}
	stats.Final = stats.Initial
	if L < 4 || iterations == 0 {
		return stats, nil
	}

	rng := rngFor(opts)
	obs := opts.Observer

	var (
		useDeadline bool
		deadline    time.Time
	)
	if opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}

	var (
		k      uint64
		i, j   int
		x, y   int
		d1, d2 int64
		length = stats.Initial
	)
	for k = 0; k < iterations; k++ {
		if useDeadline && k&deadlineMask == deadlineMask && time.Now().After(deadline) {
			stats.Iterations = k
			stats.Final = length

			return stats, ErrTimeLimit
		}

		i = rng.Intn(L)
		j = rng.Intn(L)
		if i > j {
			i, j = j, i
		}
		x = (i + L - 1) % L
		y = (j + 1) % L
		if x == j || y == i {
			continue
		}

		d1 = Distance(cs[x], cs[i]) + Distance(cs[j], cs[y])
		d2 = Distance(cs[x], cs[j]) + Distance(cs[i], cs[y])
		if d2 >= d1 {
			continue
		}

		reverseInPlace(r, i, j)
		length -= d1 - d2
		stats.Applied++
		stats.LastImprovement = k

		notify(obs, Event{Kind: SegmentReversed, Iteration: k, From: i, To: j, Order: r.Index})
	}

	stats.Iterations = iterations
	stats.Final = length

	return stats, nil
}

// ImproveTwoOpt is the coordinate-only form of TwoOpt: it improves open in
// place and returns the closed tour (open followed by its first city).
// On ErrTimeLimit the partially improved closed tour is returned with the error.
func ImproveTwoOpt(open []City, iterations uint64, opts Options) ([]City, error) {
	r := Route{Cities: open}
	_, err := TwoOpt(&r, iterations, opts)
	if err != nil && !errors.Is(err, ErrTimeLimit) {
		return nil, err
	}

	return r.Closed(), err
}

// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toomuat/tsp/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic 2-opt seed (0 => package default seed).
	seedDet = int64(0)

	// itersLight is a 2-opt budget that converges small instances quickly.
	itersLight = tsp.LightIterations

	// randomN is the default size for random-instance property tests.
	randomN = 60
)

// -----------------------------------------------------------------------------
// Instances
// -----------------------------------------------------------------------------

// square is the 10×10 axis-aligned square; its perimeter (40) is optimal.
func square() []tsp.City {
	return []tsp.City{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
}

// triangle is the 3-4-5 right triangle with perimeter 12.
func triangle() []tsp.City {
	return []tsp.City{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 4}}
}

// randomCities draws n cities uniformly from [0, span)² with a fixed seed.
func randomCities(seed int64, n int, span float64) []tsp.City {
	r := rand.New(rand.NewSource(seed))
	out := make([]tsp.City, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = tsp.City{X: r.Float64() * span, Y: r.Float64() * span}
	}

	return out
}

// gridCities places n cities on an integer grid of the given width, which
// produces many exact distance ties.
func gridCities(n, width int) []tsp.City {
	out := make([]tsp.City, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = tsp.City{X: float64(i % width * 10), Y: float64(i / width * 10)}
	}

	return out
}

// rippledCircle places n cities on a slightly perturbed circle; the shape
// avoids symmetric ties while keeping the optimum easy to reason about.
func rippledCircle(n int, radius float64) []tsp.City {
	out := make([]tsp.City, n)
	var (
		i  int
		th float64
		r  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = radius * (1.0 + 0.02*float64((i*5)%7))
		out[i] = tsp.City{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return out
}

// shuffled returns a deterministic permutation of cities.
func shuffled(seed int64, cities []tsp.City) []tsp.City {
	r := rand.New(rand.NewSource(seed))
	out := append([]tsp.City(nil), cities...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}

// -----------------------------------------------------------------------------
// Generic helpers
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// requireValidRoute asserts that r visits every city exactly once and that
// its closed form satisfies the closed-tour invariant.
func requireValidRoute(t *testing.T, r tsp.Route, cities []tsp.City) {
	t.Helper()
	require.NoError(t, tsp.ValidateRoute(r, cities))
	require.NoError(t, tsp.ValidateClosedTour(r.ClosedIndex(), len(cities)))
}

// lengthOf computes the closed length of an index order over cities.
func lengthOf(cities []tsp.City, order []int) int64 {
	closed := make([]tsp.City, 0, len(order)+1)
	for _, v := range order {
		closed = append(closed, cities[v])
	}
	if len(order) > 0 {
		closed = append(closed, cities[order[0]])
	}

	return tsp.TourLength(closed)
}

// recorder collects observer events by value (Order is copied).
type recorder struct {
	events []tsp.Event
}

func (r *recorder) Observe(e tsp.Event) {
	if e.Order != nil {
		e.Order = append([]int(nil), e.Order...)
	}
	r.events = append(r.events, e)
}

// count returns how many recorded events have kind k.
func (r *recorder) count(k tsp.EventKind) int {
	var c int
	for _, e := range r.events {
		if e.Kind == k {
			c++
		}
	}

	return c
}

// nanValue is a NaN coordinate for rejection tests.
func nanValue() float64 { return math.NaN() }

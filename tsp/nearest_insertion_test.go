// Package tsp_test covers the nearest-insertion constructor: the seed loop,
// insertion after the matched city and first-found tie breaking.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toomuat/tsp/tsp"
)

func TestNearestInsertion_Square(t *testing.T) {
	rec := &recorder{}
	opts := tsp.DefaultOptions()
	opts.Observer = rec

	r, err := tsp.NearestInsertion(square(), opts)
	require.NoError(t, err)
	requireValidRoute(t, r, square())
	// City 3 is 10 away from cities 0 and 2; position 0 is scanned first.
	assert.Equal(t, []int{0, 3, 1, 2}, r.Index)
	assert.Equal(t, int64(48), r.Length())

	require.Len(t, rec.events, 1)
	e := rec.events[0]
	assert.Equal(t, tsp.CityInserted, e.Kind)
	assert.Equal(t, 0, e.From)
	assert.Equal(t, 3, e.To)
	assert.Equal(t, []int{0, 3, 1, 2}, e.Order)
}

func TestNearestInsertion_SeedOnly(t *testing.T) {
	r, err := tsp.NearestInsertion(triangle(), tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, r.Index)
	assert.Equal(t, int64(12), r.Length())

	r, err = tsp.NearestInsertion([]tsp.City{{X: 1, Y: 1}, {X: 4, Y: 5}}, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, r.Index)
	assert.Equal(t, int64(10), r.Length())

	r, err = tsp.NearestInsertion([]tsp.City{{X: 1, Y: 1}}, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, r.Index)

	_, err = tsp.NearestInsertion(nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrTooFewCities)

	_, err = tsp.NearestInsertion([]tsp.City{{X: nanValue(), Y: 0}, {}, {}}, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNonFiniteCoordinate)
}

// TestNearestInsertion_TieBreaking: both remaining cities are 5 away from
// position 0, so the lower index goes first. The square's centre ties with
// every corner and lands after position 0.
func TestNearestInsertion_TieBreaking(t *testing.T) {
	cities := []tsp.City{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}, {X: 0, Y: 5}, {X: 5, Y: 0}}
	r, err := tsp.NearestInsertion(cities, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 3, 1, 2}, r.Index)

	centre := append(square(), tsp.City{X: 5, Y: 5})
	r, err = tsp.NearestInsertion(centre, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 3, 1, 2}, r.Index)
}

func TestNearestInsertion_InsertsAfterClosestCity(t *testing.T) {
	cities := randomCities(17, randomN, 1000)
	rec := &recorder{}
	opts := tsp.DefaultOptions()
	opts.Observer = rec

	r, err := tsp.NearestInsertion(cities, opts)
	require.NoError(t, err)
	requireValidRoute(t, r, cities)
	require.Equal(t, len(cities)-3, rec.count(tsp.CityInserted))

	for k, e := range rec.events {
		require.Equal(t, uint64(k), e.Iteration)
		require.Len(t, e.Order, k+4)

		at := -1
		for p, v := range e.Order {
			if v == e.To {
				at = p
			}
		}
		require.Greater(t, at, 0)
		require.Equal(t, e.From, e.Order[at-1], "city %d must follow its anchor", e.To)

		// No remaining city may have been strictly closer to any tour city.
		inTour := make(map[int]bool, len(e.Order))
		for _, v := range e.Order {
			inTour[v] = true
		}
		best := tsp.Distance(cities[e.From], cities[e.To])
		for _, v := range e.Order {
			if v == e.To {
				continue
			}
			for c := range cities {
				if !inTour[c] {
					require.GreaterOrEqual(t, tsp.Distance(cities[v], cities[c]), best)
				}
			}
		}
	}
}

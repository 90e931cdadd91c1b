// Package tsp_test covers the nearest-neighbour constructor and checks that
// the R-tree search reproduces the linear scan exactly.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toomuat/tsp/tsp"
)

func nnOpts(indexed bool) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.AlgoNearestNeighbor
	opts.SpatialIndex = indexed

	return opts
}

func TestNearestNeighbor_Square(t *testing.T) {
	for _, indexed := range []bool{false, true} {
		r, err := tsp.NearestNeighbor(square(), nnOpts(indexed))
		require.NoError(t, err)
		requireValidRoute(t, r, square())
		assert.Equal(t, []int{0, 1, 2, 3}, r.Index, "indexed=%v", indexed)
		assert.Equal(t, int64(40), r.Length())
	}
}

// TestNearestNeighbor_TruncationTie: 3.9 and 3.1 both truncate to 3, so the
// lower index wins even though it is farther away.
func TestNearestNeighbor_TruncationTie(t *testing.T) {
	cities := []tsp.City{{X: 0, Y: 0}, {X: 3.9, Y: 0}, {X: 3.1, Y: 0}}
	for _, indexed := range []bool{false, true} {
		r, err := tsp.NearestNeighbor(cities, nnOpts(indexed))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, r.Index, "indexed=%v", indexed)
	}
}

func TestNearestNeighbor_Degenerate(t *testing.T) {
	for _, indexed := range []bool{false, true} {
		_, err := tsp.NearestNeighbor(nil, nnOpts(indexed))
		require.ErrorIs(t, err, tsp.ErrTooFewCities)

		r, err := tsp.NearestNeighbor([]tsp.City{{X: 2, Y: 3}}, nnOpts(indexed))
		require.NoError(t, err)
		assert.Equal(t, []int{0}, r.Index)

		r, err = tsp.NearestNeighbor([]tsp.City{{X: 0, Y: 0}, {X: 6, Y: 8}}, nnOpts(indexed))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, r.Index)
		assert.Equal(t, int64(20), r.Length())

		_, err = tsp.NearestNeighbor([]tsp.City{{X: 0, Y: 0}, {X: math.Inf(1), Y: 0}}, nnOpts(indexed))
		require.ErrorIs(t, err, tsp.ErrNonFiniteCoordinate)
	}
}

// TestNearestNeighbor_StepsAreNearest re-checks every visit against a brute
// force search over the cities not yet in the order.
func TestNearestNeighbor_StepsAreNearest(t *testing.T) {
	cities := randomCities(21, randomN, 1000)
	rec := &recorder{}
	opts := nnOpts(false)
	opts.Observer = rec

	r, err := tsp.NearestNeighbor(cities, opts)
	require.NoError(t, err)
	requireValidRoute(t, r, cities)
	require.Equal(t, len(cities)-1, rec.count(tsp.CityVisited))

	for k, e := range rec.events {
		require.Equal(t, tsp.CityVisited, e.Kind)
		require.Equal(t, uint64(k), e.Iteration)
		require.Len(t, e.Order, k+2)
		require.Equal(t, e.From, e.Order[k])
		require.Equal(t, e.To, e.Order[k+1])

		visited := make(map[int]bool, len(e.Order))
		for _, v := range e.Order[:k+1] {
			visited[v] = true
		}
		want := int64(-1)
		for v := range cities {
			if visited[v] {
				continue
			}
			if d := tsp.Distance(cities[e.From], cities[v]); want < 0 || d < want {
				want = d
			}
		}
		require.Equal(t, want, tsp.Distance(cities[e.From], cities[e.To]), "step %d", k)
	}
	assert.Equal(t, r.Index, rec.events[len(rec.events)-1].Order)
}

func TestNearestNeighbor_IndexedMatchesScan(t *testing.T) {
	instances := map[string][]tsp.City{
		"random":          randomCities(4, 300, 1000),
		"random small":    randomCities(9, 40, 10),
		"grid ties":       gridCities(100, 10),
		"shuffled grid":   shuffled(2, gridCities(64, 8)),
		"rippled circle":  rippledCircle(80, 50),
		"duplicates":      {{X: 1, Y: 1}, {X: 5, Y: 5}, {X: 1, Y: 1}, {X: 5, Y: 5}, {X: 1, Y: 1}},
		"collinear":       {{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 0}, {X: 8, Y: 0}, {X: 6, Y: 0}},
		"sub-unit spread": randomCities(13, 50, 3),
		"large coords":    largeCoords(),
		"dense near tail": denseNearStart(),
	}
	for name, cities := range instances {
		t.Run(name, func(t *testing.T) {
			scan, err := tsp.NearestNeighbor(cities, nnOpts(false))
			require.NoError(t, err)
			indexed, err := tsp.NearestNeighbor(cities, nnOpts(true))
			require.NoError(t, err)
			requireValidRoute(t, indexed, cities)
			require.Equal(t, scan.Index, indexed.Index)
		})
	}
}

// largeCoords shifts random cities to around 1e7, where float rounding in the
// tree's box distance is largest.
func largeCoords() []tsp.City {
	cs := randomCities(14, 120, 5000)
	for i := range cs {
		cs[i].X += 1e7
		cs[i].Y -= 1e7
	}

	return cs
}

// denseNearStart packs many cities (with duplicates) around city 0 and a few
// far away; the walk visits the dense block first, so most of the tree is
// visited before it is rebuilt.
func denseNearStart() []tsp.City {
	cs := []tsp.City{{X: 0, Y: 0}}
	cs = append(cs, gridCities(64, 8)...)
	cs = append(cs, gridCities(16, 4)...)
	cs = append(cs, tsp.City{X: 5000, Y: 5000}, tsp.City{X: -4000, Y: 300}, tsp.City{X: 0, Y: 9000})

	return cs
}

func TestNearestNeighbor_IndexedEventsMatchScan(t *testing.T) {
	cities := denseNearStart()
	scan, indexed := &recorder{}, &recorder{}

	opts := nnOpts(false)
	opts.Observer = scan
	_, err := tsp.NearestNeighbor(cities, opts)
	require.NoError(t, err)

	opts = nnOpts(true)
	opts.Observer = indexed
	_, err = tsp.NearestNeighbor(cities, opts)
	require.NoError(t, err)

	require.Equal(t, scan.events, indexed.events)
}

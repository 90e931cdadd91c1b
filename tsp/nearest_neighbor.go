// Package tsp — nearest-neighbour tour constructor.
//
// NearestNeighbor starts at city 0 and repeatedly moves to the unvisited city
// closest (truncated metric) to the current tail. Ties go to the first city
// seen in the unvisited list, which is kept in ascending index order, so the
// lowest index wins.
//
// Two search strategies produce the same route:
//   - linear scan over the unvisited list: O(n²) total;
//   - R-tree priority search (Options.SpatialIndex): candidates arrive in
//     ascending Euclidean distance, so the scan can stop once no later
//     candidate can truncate to the current best; typically far below O(n²)
//     on spread-out inputs. Visited cities stay in the tree until the next
//     rebuild and are skipped.
package tsp

import (
	"errors"

	"github.com/peterstace/simplefeatures/rtree"
)

// nnStopMargin widens the early-exit bound of the R-tree scan. Candidates are
// ordered by the tree's own floating-point box distance; the margin absorbs
// any rounding difference against Distance so no tied city is skipped.
const nnStopMargin = 1.5

// NearestNeighbor constructs a route with the nearest-neighbour rule.
//
// Degenerate inputs: one city yields the single-city route; two cities yield
// the two-city loop.
//
// Errors: ErrTooFewCities, ErrNonFiniteCoordinate.
func NearestNeighbor(cities []City, opts Options) (Route, error) {
	if err := validateCities(cities); err != nil {
		return Route{}, err
	}

	var order []int
	if opts.SpatialIndex {
		order = nearestNeighborIndexed(cities, opts.Observer)
	} else {
		order = nearestNeighborScan(cities, opts.Observer)
	}

	return routeFromOrder(cities, order), nil
}

// nearestNeighborScan is the reference O(n²) linear scan.
func nearestNeighborScan(cities []City, obs Observer) []int {
	n := len(cities)

	unvisited := make([]int, 0, n-1)
	var i int
	for i = 1; i < n; i++ {
		unvisited = append(unvisited, i)
	}

	order := make([]int, 1, n)
	order[0] = 0
	tail := 0

	var (
		best  int
		bestD int64
		d     int64
		k     int
		step  uint64
	)
	for len(unvisited) > 0 {
		best, bestD = 0, -1
		for k = range unvisited {
			d = Distance(cities[tail], cities[unvisited[k]])
			if bestD < 0 || d < bestD {
				best, bestD = k, d
			}
		}

		next := unvisited[best]
		unvisited = append(unvisited[:best], unvisited[best+1:]...)
		order = append(order, next)
		notify(obs, Event{Kind: CityVisited, Iteration: step, From: tail, To: next, Order: order})
		tail = next
		step++
	}

	return order
}

// nearestNeighborIndexed answers each "closest unvisited city" query with an
// R-tree priority search. The tree is immutable, so visited cities are
// skipped in the callback; once they outnumber the unvisited ones the tree is
// rebuilt from the unvisited cities only.
func nearestNeighborIndexed(cities []City, obs Observer) []int {
	n := len(cities)
	visited := make([]bool, n)
	visited[0] = true

	tree := buildIndex(cities, visited)
	stale := 0

	order := make([]int, 1, n)
	order[0] = 0
	tail := 0

	var (
		best  int
		bestD int64
		step  uint64
	)
	for remaining := n - 1; remaining > 0; remaining-- {
		best, bestD = -1, -1
		origin := cities[tail]
		err := tree.PrioritySearch(pointBox(origin), func(id int) error {
			c := cities[id]
			if bestD >= 0 && euclid(origin, c) > float64(bestD)+nnStopMargin {
				return rtree.Stop
			}
			if visited[id] {
				return nil
			}
			d := Distance(origin, c)
			if bestD < 0 || d < bestD || (d == bestD && id < best) {
				best, bestD = id, d
			}

			return nil
		})
		if err != nil && !errors.Is(err, rtree.Stop) {
			// The callback only ever returns nil or rtree.Stop.
			panic("tsp: rtree search failed: " + err.Error())
		}

		visited[best] = true
		order = append(order, best)
		notify(obs, Event{Kind: CityVisited, Iteration: step, From: tail, To: best, Order: order})
		tail = best
		step++

		stale++
		if stale > remaining-1 && remaining > 1 {
			tree = buildIndex(cities, visited)
			stale = 0
		}
	}

	return order
}

// buildIndex bulk-loads every unvisited city into a fresh R-tree.
func buildIndex(cities []City, visited []bool) *rtree.RTree {
	items := make([]rtree.BulkItem, 0, len(cities))
	var i int
	for i = range cities {
		if !visited[i] {
			items = append(items, rtree.BulkItem{Box: pointBox(cities[i]), RecordID: i})
		}
	}

	return rtree.BulkLoad(items)
}

// pointBox is the degenerate bounding box of a single city.
func pointBox(c City) rtree.Box {
	return rtree.Box{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
}

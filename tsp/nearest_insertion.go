// Package tsp — nearest-insertion tour constructor.
//
// NearestInsertion seeds a loop with cities 0, 1, 2 and, while cities remain,
// scans every (tour position, remaining city) pair for the smallest truncated
// distance between the remaining city and the tour city at that position.
// The winner is inserted immediately AFTER the matched position.
//
// Selection rule: distance to an existing tour vertex, not the classic
// minimum added-length over an edge. Ties keep the first pair found, with tour
// positions in the outer loop and remaining cities (ascending index) inside.
//
// The loop is held open: the closing duplicate of city 0 would only ever tie
// with position 0, which is scanned first, so it can never win.
//
// Complexity: O(n³) worst case (n insertions × tour length × remaining cities).
package tsp

// NearestInsertion constructs a route with the nearest-insertion rule.
//
// Degenerate inputs: one city yields the single-city route; two cities yield
// the two-city loop; three cities are the seed itself.
//
// Errors: ErrTooFewCities, ErrNonFiniteCoordinate.
func NearestInsertion(cities []City, opts Options) (Route, error) {
	if err := validateCities(cities); err != nil {
		return Route{}, err
	}
	n := len(cities)

	seed := 3
	if n < seed {
		seed = n
	}

	order := make([]int, seed, n)
	var i int
	for i = 0; i < seed; i++ {
		order[i] = i
	}

	remaining := make([]int, 0, n-seed)
	for i = seed; i < n; i++ {
		remaining = append(remaining, i)
	}

	var (
		pos    int
		k      int
		d      int64
		bestD  int64
		bestAt int
		bestK  int
		step   uint64
	)
	for len(remaining) > 0 {
		bestD, bestAt, bestK = -1, 0, 0
		for pos = range order {
			for k = range remaining {
				d = Distance(cities[order[pos]], cities[remaining[k]])
				if bestD < 0 || d < bestD {
					bestD, bestAt, bestK = d, pos, k
				}
			}
		}

		city := remaining[bestK]
		anchor := order[bestAt]
		remaining = append(remaining[:bestK], remaining[bestK+1:]...)
		order = insertAt(order, bestAt+1, city)

		notify(opts.Observer, Event{Kind: CityInserted, Iteration: step, From: anchor, To: city, Order: order})
		step++
	}

	return routeFromOrder(cities, order), nil
}

// insertAt inserts v at position at, shifting the tail right.
func insertAt(s []int, at, v int) []int {
	s = append(s, 0)
	copy(s[at+1:], s[at:])
	s[at] = v

	return s
}

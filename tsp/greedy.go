// Package tsp — greedy-edge (greedy matching) tour constructor.
//
// Greedy builds a Hamiltonian cycle from the globally shortest edges first:
//
//  1. Enumerate every unordered pair (i, j), i < j, with its truncated distance.
//  2. Stable-sort ascending by distance; equal distances keep enumeration order.
//  3. Sweep: accept (i, j) iff i and j are in different union-find components
//     (no premature sub-cycle) and neither endpoint already has degree 2.
//  4. The accepted edges form a single Hamiltonian path; join its two
//     degree-1 ends with one closing edge.
//  5. Stitch the edge set into a visiting order by repeatedly consuming the one
//     remaining edge incident to the current tail.
//
// Invariants checked while stitching: every step finds exactly one incident
// edge. Anything else means broken bookkeeping and aborts with ErrBrokenEdgeSet.
//
// Complexity: O(n² log n) for the sort, O(n² α(n)) for the sweep, O(n²) for the
// stitch; O(n²) memory for the candidate edge list.
package tsp

import (
	"fmt"
	"sort"

	"github.com/toomuat/tsp/unionfind"
)

// edge is a candidate city pair with its truncated length.
type edge struct {
	d    int64
	u, v int
}

// Greedy constructs a route with the greedy-edge rule.
//
// Degenerate inputs: one city yields the single-city route; two cities yield
// the two-city loop.
//
// Errors: ErrTooFewCities, ErrNonFiniteCoordinate, ErrBrokenEdgeSet (wrapped).
func Greedy(cities []City, opts Options) (Route, error) {
	if err := validateCities(cities); err != nil {
		return Route{}, err
	}
	n := len(cities)
	if n == 1 {
		return routeFromOrder(cities, []int{0}), nil
	}

	connected := acceptGreedyEdges(cities, opts.Observer)

	order, err := stitchEdges(connected, n)
	if err != nil {
		return Route{}, err
	}

	return routeFromOrder(cities, order), nil
}

// acceptGreedyEdges runs steps 1–4 and returns the accepted edges, closing
// edge last.
func acceptGreedyEdges(cities []City, obs Observer) [][2]int {
	n := len(cities)

	// 1) All unordered pairs in (i, j>i) enumeration order.
	edges := make([]edge, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			edges = append(edges, edge{d: Distance(cities[i], cities[j]), u: i, v: j})
		}
	}

	// 2) Stable sort keeps enumeration order among equal distances.
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].d < edges[b].d
	})

	// 3) Sweep with the cycle and degree guards.
	var (
		uf        = unionfind.New(n)
		degree    = make([]int, n)
		connected = make([][2]int, 0, n)
		step      uint64
		e         edge
	)
	for _, e = range edges {
		if degree[e.u] == 2 || degree[e.v] == 2 || uf.Same(e.u, e.v) {
			continue
		}
		connected = append(connected, [2]int{e.u, e.v})
		degree[e.u]++
		degree[e.v]++
		uf.Unite(e.u, e.v)

		notify(obs, Event{Kind: EdgeAccepted, Iteration: step, From: e.u, To: e.v})
		step++

		if len(connected) == n-1 {
			// A spanning path is complete; no later edge can pass the guards.
			break
		}
	}

	// 4) Close the path between its two free ends.
	ends := make([]int, 0, 2)
	for i = 0; i < n; i++ {
		if degree[i] == 1 {
			ends = append(ends, i)
		}
	}
	if len(ends) == 2 {
		connected = append(connected, [2]int{ends[0], ends[1]})
		notify(obs, Event{Kind: EdgeClosed, Iteration: step, From: ends[0], To: ends[1]})
	}

	return connected
}

// stitchEdges converts the accepted edge set into an open visiting order. It
// starts from the first edge's endpoints and repeatedly consumes the single
// remaining edge incident to the tail. The walk returns to the first city on
// the last edge; that closing duplicate is dropped from the result.
//
// Complexity: O(n²) time, O(n) space.
func stitchEdges(connected [][2]int, n int) ([]int, error) {
	if len(connected) == 0 {
		return nil, fmt.Errorf("%w: no accepted edges for %d cities", ErrBrokenEdgeSet, n)
	}

	remaining := make([][2]int, len(connected)-1)
	copy(remaining, connected[1:])

	seq := make([]int, 0, n+1)
	seq = append(seq, connected[0][0], connected[0][1])

	var (
		tail    int
		k       int
		hit     int
		matches int
		next    int
	)
	for len(remaining) > 0 {
		tail = seq[len(seq)-1]
		hit, matches = -1, 0
		for k = range remaining {
			if remaining[k][0] == tail || remaining[k][1] == tail {
				if matches == 0 {
					hit = k
				}
				matches++
			}
		}
		if matches != 1 {
			return nil, fmt.Errorf("%w: %d edges incident to city %d at position %d",
				ErrBrokenEdgeSet, matches, tail, len(seq)-1)
		}

		next = remaining[hit][0]
		if next == tail {
			next = remaining[hit][1]
		}
		seq = append(seq, next)
		remaining = append(remaining[:hit], remaining[hit+1:]...)
	}

	// A closed walk over n edges ends on the start city.
	if len(seq) != n+1 || seq[0] != seq[n] {
		return nil, fmt.Errorf("%w: stitched walk of %d cities does not close over %d cities",
			ErrBrokenEdgeSet, len(seq), n)
	}
	order := seq[:n]
	if err := ValidatePermutation(order, n); err != nil {
		return nil, fmt.Errorf("%w: stitched walk revisits a city", ErrBrokenEdgeSet)
	}

	return order, nil
}

// routeFromOrder materializes a Route from an open index order.
func routeFromOrder(cities []City, order []int) Route {
	r := Route{
		Cities: make([]City, len(order)),
		Index:  make([]int, len(order)),
	}
	copy(r.Index, order)

	var k int
	for k = range order {
		r.Cities[k] = cities[order[k]]
	}

	return r
}

// Package tsp — route utilities shared by constructors and the improver.
//
// This file contains compact helpers that operate on visiting orders:
//   - Route methods: Len, Clone, Closed, ClosedIndex, Length.
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - ValidateRoute: an index-tracked route is a permutation consistent with its cities.
//   - ValidateClosedTour: closed-tour invariant (first == last, every city once).
//   - reverseInPlace: in-place inclusive segment reversal (the 2-opt primitive).
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time for every helper.
package tsp

// Len returns the number of distinct cities on the route.
func (r Route) Len() int { return len(r.Cities) }

// Clone returns a deep copy so the result can be improved without touching r.
func (r Route) Clone() Route {
	out := Route{Cities: make([]City, len(r.Cities))}
	copy(out.Cities, r.Cities)
	if r.Index != nil {
		out.Index = make([]int, len(r.Index))
		copy(out.Index, r.Index)
	}

	return out
}

// Closed returns a fresh closed coordinate sequence: the route followed by
// its first city. An empty route yields nil.
func (r Route) Closed() []City {
	if len(r.Cities) == 0 {
		return nil
	}
	out := make([]City, len(r.Cities)+1)
	copy(out, r.Cities)
	out[len(r.Cities)] = r.Cities[0]

	return out
}

// ClosedIndex returns the closed city-index sequence, or nil when the route
// carries no indices.
func (r Route) ClosedIndex() []int {
	if len(r.Index) == 0 {
		return nil
	}
	out := make([]int, len(r.Index)+1)
	copy(out, r.Index)
	out[len(r.Index)] = r.Index[0]

	return out
}

// Length returns the closed tour length in the truncated metric.
func (r Route) Length() int64 { return openLength(r.Cities) }

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n || n <= 0 {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ValidateRoute checks that r visits every city of cities exactly once:
// r.Index is a permutation of {0..len(cities)-1} and r.Cities[k] is the city
// at r.Index[k].
//
// Complexity: O(n) time, O(n) space.
func ValidateRoute(r Route, cities []City) error {
	n := len(cities)
	if len(r.Cities) != n || len(r.Index) != n {
		return ErrDimensionMismatch
	}
	if err := ValidatePermutation(r.Index, n); err != nil {
		return err
	}

	var k int
	for k = 0; k < n; k++ {
		if r.Cities[k] != cities[r.Index[k]] {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// ValidateClosedTour enforces the closed-tour invariant on an index sequence:
// len(order) == n+1, order[0] == order[n], and order[0..n-1] is a permutation.
//
// Complexity: O(n) time, O(n) space.
func ValidateClosedTour(order []int, n int) error {
	if n <= 0 || len(order) != n+1 {
		return ErrDimensionMismatch
	}
	if order[0] != order[n] {
		return ErrDimensionMismatch
	}

	return ValidatePermutation(order[:n], n)
}

// reverseInPlace reverses the inclusive segment [i..j] of the route, keeping
// the index slice (when present) in lock-step with the coordinates.
//
// Contracts: 0 ≤ i ≤ j < r.Len(); checked by the caller.
//
// Complexity: O(j-i) time, O(1) space.
func reverseInPlace(r *Route, i, j int) {
	cs := r.Cities
	idx := r.Index
	for i < j {
		cs[i], cs[j] = cs[j], cs[i]
		if idx != nil {
			idx[i], idx[j] = idx[j], idx[i]
		}
		i++
		j--
	}
}

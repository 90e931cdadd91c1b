// Package tsp provides heuristic solvers for the Euclidean Travelling
// Salesman Problem on 2-D points.
//
// Constructors (all return an open Route; the return to the first city is implicit):
//
//   - Greedy — shortest edges first, guarded by degree ≤ 2 and a union-find
//     cycle check, then stitched into a visiting order. O(n² log n).
//   - NearestNeighbor — always walk to the closest unvisited city. O(n²);
//     Options.SpatialIndex answers the queries with an R-tree instead.
//   - NearestInsertion — insert the remaining city closest to any tour city
//     right after that city. O(n³).
//
// Improver:
//
//   - TwoOpt — randomized 2-opt hill climbing for a fixed iteration budget,
//     mutating the route in place.
//
// Metric:
//   - Every comparison uses the Euclidean distance truncated toward zero
//     (Distance). Tour lengths are sums of those integers (TourLength).
//
// Progress:
//   - Options.Observer receives an Event after every accepted edge, visited or
//     inserted city and applied reversal; package plot renders them with gnuplot.
//
// Use Solve to run a constructor and the optional post-pass in one call.
// This package is not an exact solver: no tour is guaranteed optimal.
package tsp

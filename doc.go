// Package euclidtsp is a heuristic engine for the Euclidean Travelling Salesman
// Problem: build a good round trip through 2-D cities quickly, then polish it.
//
// 🚀 What is inside?
//
//   - Constructors: greedy edge matching, nearest neighbour (linear scan or
//     R-tree), nearest insertion
//   - Improver: randomized 2-opt hill climbing with a seedable generator and
//     an optional soft time limit
//   - One integer metric everywhere: Euclidean distance truncated toward zero
//   - Progress events for every accepted edge, visit, insertion and reversal
//
// Packages:
//
//	tsp/       — City, Route, Options, the constructors, TwoOpt and Solve
//	unionfind/ — disjoint-set forest used by the greedy cycle check
//	tsplib/    — TSPLIB NODE_COORD_SECTION reader
//	gen/       — synthetic city sets (uniform, grid, circle, clusters)
//	plot/      — gnuplot command stream driven by progress events
//	cmd/tsp/   — command-line front end
//
// Quick ASCII example:
//
//	(0,10)───(10,10)
//	  │         │
//	(0,0)────(10,0)
//
// The greedy tour over these four corners is the perimeter, length 40.
//
//	go run ./cmd/tsp -file berlin52.tsp -algo ni -2opt
package euclidtsp

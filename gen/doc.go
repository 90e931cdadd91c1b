// SPDX-License-Identifier: MIT
// Package: tsp/gen
//
// Package gen builds synthetic city sets for experiments, benchmarks and the
// command-line tool's -random mode.
//
// Constructors:
//   - Uniform(n, width, height): cities drawn uniformly from a rectangle.
//   - Grid(rows, cols, spacing): an axis-aligned lattice; rich in distance ties.
//   - Circle(n, radius): cities on a circle, optionally rippled.
//   - Clustered(n, k, width, height): Gaussian blobs around k random centres.
//
// Determinism:
//   - Stochastic constructors draw from golang.org/x/exp/rand. WithSeed or
//     WithRand fixes the stream; the default seed is 1.
//   - Output order is the generation order, which becomes the city index.
//
// Errors:
//   - Only the sentinels in errors.go, wrapped with the constructor name.
//   - Option constructors panic on meaningless arguments; generators never do.
package gen

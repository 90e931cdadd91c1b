// Package unionfind provides a disjoint-set forest over the dense integer
// universe {0..n-1}.
//
// What & Why
//
//   - A disjoint set tracks which elements belong to the same component and
//     how large each component is. The greedy-edge tour constructor in package
//     tsp uses it to refuse any edge that would close a sub-cycle before every
//     city is on the path.
//
// Operations
//
//   - New(n)        — n singleton components.
//   - Root(i)       — component representative, with full path compression.
//   - Unite(a, b)   — union by size; the smaller root is attached under the larger.
//   - Same(a, b)    — Root(a) == Root(b).
//   - Size(i)       — size of i's component.
//
// Complexity: every operation runs in amortized O(α(n)).
//
// Root is iterative: a recursive compressor would need stack depth
// proportional to the longest uncompressed chain.
//
// Indices outside [0, n) are programming errors and fault with the usual Go
// index-out-of-range panic; no recovery is attempted.
//
// A UnionFind is not safe for concurrent use.
package unionfind

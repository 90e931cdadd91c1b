// Package tsp - RNG utilities for the randomized 2-opt improver.
//
// Goals:
//   - Determinism: same seed ⇒ identical move sequence and identical tour.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// The generator is golang.org/x/exp/rand backed by its PCG source, which gives
// unbiased Intn sampling over [0, L) and a 64-bit seed space.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
package tsp

import "golang.org/x/exp/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(uint64(s)))
}

// rngFor resolves the generator for a run: an injected opts.Rand wins,
// otherwise a fresh stream is derived from opts.Seed.
func rngFor(opts Options) *rand.Rand {
	if opts.Rand != nil {
		return opts.Rand
	}

	return rngFromSeed(opts.Seed)
}

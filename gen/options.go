// SPDX-License-Identifier: MIT
// Package: tsp/gen
//
// options.go — functional options for the gen package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seed via WithSeed or WithRand.

package gen

import "golang.org/x/exp/rand"

const defaultSeed uint64 = 1

// Option customizes a generator.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	ripple float64
	spread float64
}

func newConfig(opts ...Option) config {
	c := config{spread: defaultSpread}
	for _, o := range opts {
		o(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return c
}

// WithSeed draws from a fresh generator seeded with seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRipple perturbs Circle radii by up to the given fraction. Panics if
// ripple is outside [0, 1).
func WithRipple(ripple float64) Option {
	if ripple < 0 || ripple >= 1 {
		panic("gen: WithRipple(ripple outside [0,1))")
	}
	return func(c *config) {
		c.ripple = ripple
	}
}

// WithSpread sets the Clustered standard deviation as a fraction of the
// smaller side. Panics if spread <= 0.
func WithSpread(spread float64) Option {
	if spread <= 0 {
		panic("gen: WithSpread(spread<=0)")
	}
	return func(c *config) {
		c.spread = spread
	}
}

// SPDX-License-Identifier: MIT
// Package: tsp/gen
//
// gen.go — city set constructors.
//
// Complexity: O(n) time and space for every constructor.

package gen

import (
	"math"

	"github.com/toomuat/tsp/tsp"
)

const (
	methodUniform   = "Uniform"
	methodGrid      = "Grid"
	methodCircle    = "Circle"
	methodClustered = "Clustered"

	minCities = 1

	// defaultSpread is the Clustered sigma relative to the smaller side.
	defaultSpread = 0.05
)

// Uniform draws n cities uniformly from [0,width)×[0,height).
func Uniform(n int, width, height float64, opts ...Option) ([]tsp.City, error) {
	if n < minCities {
		return nil, wrapf(methodUniform, ErrTooFewCities, "n=%d < min=%d", n, minCities)
	}
	if !positive(width) || !positive(height) {
		return nil, wrapf(methodUniform, ErrInvalidExtent, "width=%g height=%g", width, height)
	}

	cfg := newConfig(opts...)
	out := make([]tsp.City, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = tsp.City{X: cfg.rng.Float64() * width, Y: cfg.rng.Float64() * height}
	}

	return out, nil
}

// Grid places rows×cols cities spacing apart, in row-major order.
func Grid(rows, cols int, spacing float64) ([]tsp.City, error) {
	if rows < minCities || cols < minCities {
		return nil, wrapf(methodGrid, ErrTooFewCities, "rows=%d, cols=%d (each must be ≥ %d)", rows, cols, minCities)
	}
	if !positive(spacing) {
		return nil, wrapf(methodGrid, ErrInvalidExtent, "spacing=%g", spacing)
	}

	out := make([]tsp.City, 0, rows*cols)
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			out = append(out, tsp.City{X: float64(c) * spacing, Y: float64(r) * spacing})
		}
	}

	return out, nil
}

// Circle places n cities at equal angles on a circle centred on the origin.
// WithRipple scales each radius by a random factor in [1, 1+ripple).
func Circle(n int, radius float64, opts ...Option) ([]tsp.City, error) {
	if n < minCities {
		return nil, wrapf(methodCircle, ErrTooFewCities, "n=%d < min=%d", n, minCities)
	}
	if !positive(radius) {
		return nil, wrapf(methodCircle, ErrInvalidExtent, "radius=%g", radius)
	}

	cfg := newConfig(opts...)
	out := make([]tsp.City, n)
	var (
		i     int
		theta float64
		rad   float64
	)
	for i = 0; i < n; i++ {
		theta = 2 * math.Pi * float64(i) / float64(n)
		rad = radius
		if cfg.ripple > 0 {
			rad *= 1 + cfg.ripple*cfg.rng.Float64()
		}
		out[i] = tsp.City{X: rad * math.Cos(theta), Y: rad * math.Sin(theta)}
	}

	return out, nil
}

// Clustered scatters n cities around k centres drawn uniformly from
// [0,width)×[0,height). City i belongs to centre i mod k; offsets are
// Gaussian and clamped to the rectangle.
func Clustered(n, k int, width, height float64, opts ...Option) ([]tsp.City, error) {
	if n < minCities || k < minCities {
		return nil, wrapf(methodClustered, ErrTooFewCities, "n=%d, k=%d (each must be ≥ %d)", n, k, minCities)
	}
	if !positive(width) || !positive(height) {
		return nil, wrapf(methodClustered, ErrInvalidExtent, "width=%g height=%g", width, height)
	}

	cfg := newConfig(opts...)
	centres := make([]tsp.City, k)
	var i int
	for i = range centres {
		centres[i] = tsp.City{X: cfg.rng.Float64() * width, Y: cfg.rng.Float64() * height}
	}

	sigma := cfg.spread * math.Min(width, height)
	out := make([]tsp.City, n)
	for i = 0; i < n; i++ {
		c := centres[i%k]
		out[i] = tsp.City{
			X: clamp(c.X+cfg.rng.NormFloat64()*sigma, 0, width),
			Y: clamp(c.Y+cfg.rng.NormFloat64()*sigma, 0, height),
		}
	}

	return out, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// SPDX-License-Identifier: MIT
// Package: tsp/gen
//
// errors.go — sentinel errors for the gen package.

package gen

import (
	"errors"
	"fmt"
)

// ErrTooFewCities indicates a size parameter below the constructor minimum.
var ErrTooFewCities = errors.New("gen: parameter too small")

// ErrInvalidExtent indicates a non-positive or non-finite width, height,
// radius or spacing.
var ErrInvalidExtent = errors.New("gen: invalid extent")

// wrapf attaches the constructor name and a formatted detail to a sentinel.
func wrapf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// SPDX-License-Identifier: MIT
// Package: opentsp/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with wrapf, which keeps the sentinel reachable.
//   • Sources never panic; validation panics are confined to WithX options.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates a node count below MinNodes, or an empty CSV.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrInvalidSeed indicates a seed outside the accepted range (seed must be > 0).
var ErrInvalidSeed = errors.New("builder: invalid seed")

// ErrConstructFailed indicates the coordinate range cannot hold the requested
// number of distinct points.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrCSVFormat indicates a missing x/y header or an unparsable coordinate.
var ErrCSVFormat = errors.New("builder: malformed csv")

// ErrNilSource indicates NewInstance was called without a source.
var ErrNilSource = errors.New("builder: nil source")

// wrapf prefixes err with the method name and a formatted message.
// The result matches err under errors.Is.
//
// Complexity: O(len(format) + Σlen(args)).
func wrapf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

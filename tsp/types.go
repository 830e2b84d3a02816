package tsp

import (
	"errors"
	"time"

	"github.com/katalvlaran/opentsp/core"
	"github.com/katalvlaran/opentsp/matrix"
)

// DefaultSizeGuard is the largest node count SolveExact accepts without
// Options.AllowLarge: 11 nodes already means 3,628,800 permutations.
const DefaultSizeGuard = 11

// Sentinel errors of the exact solver.
var (
	// ErrSizeGuardExceeded is returned when the node count is above the size
	// guard and the caller did not opt in with AllowLarge.
	ErrSizeGuardExceeded = errors.New("tsp: node count exceeds the brute-force size guard")

	// ErrDimensionMismatch is returned when Options.Distances does not match
	// the instance node count.
	ErrDimensionMismatch = errors.New("tsp: distance matrix dimension mismatch")

	// ErrNegativeWeight is returned when Options.Distances holds a negative,
	// NaN or infinite distance.
	ErrNegativeWeight = errors.New("tsp: invalid distance")
)

// Options configures SolveExact. The zero value is valid.
type Options struct {
	// SizeGuard overrides DefaultSizeGuard when > 0.
	SizeGuard int

	// AllowLarge bypasses the size guard.
	AllowLarge bool

	// Workers is the number of concurrent search blocks; ≤ 1 searches sequentially.
	Workers int

	// Distances optionally supplies an n×n matrix parallel to node order
	// (row i−1 is node i). Nil means distances are computed from the points.
	Distances matrix.Matrix
}

// Result holds the outcome of SolveExact.
type Result struct {
	// Path is the closed tour, anchor first and last.
	Path core.Path

	// Length is the total tour length as accumulated by the search.
	Length float64

	// Elapsed is the wall time spent in the search.
	Elapsed time.Duration

	// Evaluated is the number of permutations visited.
	Evaluated uint64
}

// sizeGuard returns the effective threshold.
func (o Options) sizeGuard() int {
	if o.SizeGuard > 0 {
		return o.SizeGuard
	}

	return DefaultSizeGuard
}

// ExceedsSizeGuard reports whether n nodes are above the threshold configured
// in opts. AllowLarge is not consulted: the answer is the same whether or
// not the caller intends to override.
func ExceedsSizeGuard(n int, opts Options) bool {
	return n > opts.sizeGuard()
}

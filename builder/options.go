// SPDX-License-Identifier: MIT
// Package: opentsp/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Sources and NewInstance never panic.
//   • Determinism is explicit: use WithSeed or WithRand to lock the draw.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before a source runs.
type BuilderOption func(*builderConfig)

// WithSeed makes random sources draw from seed and records it on the instance.
// Panics on seed ≤ 0; SeedSource reports the same condition as an error.
func WithSeed(seed int64) BuilderOption {
	if seed <= 0 {
		panic("builder: WithSeed(seed<=0)")
	}
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
		c.seed = seed
	}
}

// WithRand provides an explicit RNG. The instance seed is left at 0 since
// the generator state is unknown. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
		c.seed = 0
	}
}

// WithBounds sets the half-open integer range [lower, upper) random
// coordinates are drawn from. Panics unless lower < upper.
func WithBounds(lower, upper int) BuilderOption {
	if lower >= upper {
		panic("builder: WithBounds(lower>=upper)")
	}
	return func(c *builderConfig) {
		c.lower, c.upper = lower, upper
	}
}

// WithRelativeEdges stores both directions of every node pair, which the
// pruner requires.
func WithRelativeEdges(relative bool) BuilderOption {
	return func(c *builderConfig) { c.relative = relative }
}

// WithDistanceMatrix populates the pairwise distance matrix.
func WithDistanceMatrix(on bool) BuilderOption {
	return func(c *builderConfig) { c.distanceMatrix = on }
}

// WithNodeDensities populates node densities.
func WithNodeDensities(on bool) BuilderOption {
	return func(c *builderConfig) { c.nodeDensities = on }
}

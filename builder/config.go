// SPDX-License-Identifier: MIT
// Package: opentsp/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng            = nil    (sources draw a fresh eight-digit seed)
//   • lower, upper   = 0, 100 (integer coordinates in [0, 100))
//   • relative       = false  (one edge per unordered pair)
//   • distanceMatrix = false
//   • nodeDensities  = false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by sources and NewInstance.
// It is passed by value.
type builderConfig struct {
	// rng drives random draws; nil means "draw a fresh seed".
	rng *rand.Rand
	// seed is recorded on the instance when rng was created from it.
	seed int64

	lower, upper int

	relative       bool
	distanceMatrix bool
	nodeDensities  bool
}

// newBuilderConfig applies opts in order over the defaults; later options
// override earlier ones.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		lower: DefaultLower,
		upper: DefaultUpper,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

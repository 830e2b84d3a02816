// Package builder - RNG utilities for random sources.
//
// Seed policy:
//   - An explicit seed (WithSeed, SeedSource) is used verbatim.
//   - Otherwise a fresh eight-digit seed in [SeedMin, SeedMax] is drawn from
//     a time-seeded source and recorded, so the instance can be recreated.
//
// Concurrency: math/rand.Rand is not goroutine-safe; every source call owns
// its generator.
package builder

import (
	"math/rand"
	"time"
)

// rngFromSeed returns a deterministic *rand.Rand.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// drawSeed returns a fresh eight-digit seed.
//
// Complexity: O(1).
func drawSeed() int64 {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return SeedMin + r.Int63n(SeedMax-SeedMin+1)
}

// resolveRNG returns the configured generator and seed, drawing a fresh
// seed when none was configured.
func resolveRNG(cfg builderConfig) (*rand.Rand, int64) {
	if cfg.rng != nil {
		return cfg.rng, cfg.seed
	}
	seed := drawSeed()

	return rngFromSeed(seed), seed
}

// drawInt returns an integer uniform on [lower, upper).
//
// Complexity: O(1).
func drawInt(r *rand.Rand, lower, upper int) int {
	return lower + r.Intn(upper-lower)
}

// SPDX-License-Identifier: MIT
// Package: opentsp/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: NewInstance(src, opts...). Resolves cfg, runs src,
//     builds the instance and the requested derived data.
//   - Sources are closures over their parameters (type Source); they read
//     the resolved builderConfig and return points plus the seed used.
//   - Determinism: same source, options and seed ⇒ identical instances.

package builder

import (
	"fmt"

	"github.com/katalvlaran/opentsp/core"
)

// Source produces node coordinates from the resolved configuration. The
// returned seed is recorded on the instance; 0 means "not generated".
type Source func(cfg builderConfig) (points []core.Point, seed int64, err error)

// NewInstance runs src and builds an instance from its points: the edge
// store is always populated; the distance matrix and node densities follow
// WithDistanceMatrix and WithNodeDensities.
//
// Errors: ErrNilSource, any source sentinel, and core errors such as
// core.ErrDuplicatePoint for caller-supplied points, each wrapped with
// "NewInstance: ...".
//
// Complexity: O(n²) for the edge store plus the cost of the source.
func NewInstance(src Source, opts ...BuilderOption) (*core.Instance, error) {
	if src == nil {
		return nil, wrapf(MethodNewInstance, ErrNilSource, "no source")
	}
	cfg := newBuilderConfig(opts...)

	points, seed, err := src(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodNewInstance, err)
	}
	inst, err := core.NewInstance(points, core.WithRelativeEdges(cfg.relative), core.WithSeed(seed))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodNewInstance, err)
	}

	inst.PopulateEdges()
	if cfg.distanceMatrix {
		if err = inst.PopulateDistanceMatrix(); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodNewInstance, err)
		}
	}
	if cfg.nodeDensities {
		if err = inst.PopulateNodeDensities(); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodNewInstance, err)
		}
	}

	return inst, nil
}

// RandomSource draws n distinct integer points from [lower, upper)² using
// the configured RNG, or a fresh eight-digit seed when none is configured.
//
// Errors: ErrTooFewNodes for n < MinNodes, ErrConstructFailed when the
// range holds fewer than n distinct points.
//
// Complexity: O(n) expected draws.
func RandomSource(n int) Source {
	return func(cfg builderConfig) ([]core.Point, int64, error) {
		if n < MinNodes {
			return nil, 0, wrapf(MethodRandom, ErrTooFewNodes, "need ≥ %d, got %d", MinNodes, n)
		}
		r, seed := resolveRNG(cfg)
		pts, err := drawPoints(MethodRandom, r, n, cfg.lower, cfg.upper)

		return pts, seed, err
	}
}

// SeedSource draws n points like RandomSource from the given seed,
// overriding any WithSeed/WithRand option.
//
// Errors: ErrInvalidSeed for seed ≤ 0, plus those of RandomSource.
func SeedSource(n int, seed int64) Source {
	return func(cfg builderConfig) ([]core.Point, int64, error) {
		if n < MinNodes {
			return nil, 0, wrapf(MethodSeed, ErrTooFewNodes, "need ≥ %d, got %d", MinNodes, n)
		}
		if seed <= 0 {
			return nil, 0, wrapf(MethodSeed, ErrInvalidSeed, "seed %d", seed)
		}
		pts, err := drawPoints(MethodSeed, rngFromSeed(seed), n, cfg.lower, cfg.upper)

		return pts, seed, err
	}
}

// ListSource returns a copy of points. Distinctness is checked by NewInstance.
//
// Errors: ErrTooFewNodes for an empty list.
func ListSource(points []core.Point) Source {
	return func(builderConfig) ([]core.Point, int64, error) {
		if len(points) == 0 {
			return nil, 0, wrapf(MethodList, ErrTooFewNodes, "empty point list")
		}
		cp := make([]core.Point, len(points))
		copy(cp, points)

		return cp, 0, nil
	}
}

package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/opentsp/builder"
	"github.com/katalvlaran/opentsp/config"
	"github.com/katalvlaran/opentsp/core"
	"github.com/katalvlaran/opentsp/prune"
	"github.com/katalvlaran/opentsp/solve"
	"github.com/katalvlaran/opentsp/tsp"
)

// newLogger builds a production (json) or development (console) logger at
// the configured level.
func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	if lc.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// source maps the instance section to a builder source.
func source(ic config.InstanceConfig) builder.Source {
	switch ic.Source {
	case config.SourceSeed:
		return builder.SeedSource(ic.Nodes, ic.Seed)
	case config.SourceCSV:
		return builder.CSVSource(ic.CSVPath)
	default:
		return builder.RandomSource(ic.Nodes)
	}
}

// builderOptions maps the instance section to builder options. Pruning
// needs relative edges, so it turns them on.
func builderOptions(ic config.InstanceConfig, prune bool) []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithBounds(ic.Lower, ic.Upper),
		builder.WithRelativeEdges(ic.RelativeEdges || prune),
		builder.WithDistanceMatrix(ic.DistanceMatrix),
		builder.WithNodeDensities(ic.NodeDensities),
	}
}

func solveOptions(sc config.SolveConfig, logger *zap.Logger) solve.Options {
	return solve.Options{
		ConvexHull: sc.ConvexHull,
		BruteForce: sc.BruteForce,
		Prune:      sc.Prune,
		Exact: tsp.Options{
			SizeGuard:  sc.SizeGuard,
			AllowLarge: sc.AllowLarge,
			Workers:    sc.Workers,
		},
		Pruner: prune.Options{Workers: sc.Workers},
		Logger: logger,
	}
}

// run builds the instance, solves it and writes the summary to w.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, w io.Writer) error {
	inst, err := builder.NewInstance(source(cfg.Instance), builderOptions(cfg.Instance, cfg.Solve.Prune)...)
	if err != nil {
		return err
	}
	logger.Info("instance built",
		zap.Stringer("instance", inst.ID),
		zap.Int64("seed", inst.Seed),
		zap.Int("nodes", inst.NumNodes()),
		zap.Int("edges", inst.NumEdges()))

	sum, err := solve.Run(ctx, inst, solveOptions(cfg.Solve, logger))
	if err != nil {
		return err
	}

	return printSummary(w, inst, sum)
}

// printSummary writes the node coordinates, the recorded result paths and,
// after pruning, the retained edges.
func printSummary(w io.Writer, inst *core.Instance, sum solve.Summary) error {
	var err error
	pf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	pf("instance %s (seed %d, %d nodes)\n", inst.ID, inst.Seed, inst.NumNodes())
	for i, p := range inst.Nodes() {
		pf("  %3d %v\n", i+1, p)
	}

	for _, key := range inst.ResultKeys() {
		p, rerr := inst.Result(key)
		if rerr != nil {
			return rerr
		}
		pf("%s: length %.4f\n  %v\n", key, p.Length(), p)
	}
	if sum.Exact != nil {
		order, oerr := tsp.TourOrder(inst, sum.Exact.Path)
		if oerr != nil {
			return oerr
		}
		pf("brute force: %d tours evaluated in %v\n  order %v\n", sum.Exact.Evaluated, sum.Exact.Elapsed, order)
	}

	if sum.Prune != nil {
		pf("diamond prune: %d of %d edges retained\n", len(sum.Prune.Good), inst.NumEdges())
		for _, id := range sum.Prune.Good {
			e, eerr := inst.Edge(id)
			if eerr != nil {
				return eerr
			}
			pf("  %4d %d->%d %.4f\n", id, e.From, e.To, e.Length())
		}
		for _, tie := range sum.Prune.Ambiguous {
			pf("  unresolved: %v\n", tie)
		}
		if len(sum.Prune.Saturated) > 0 {
			pf("  saturated nodes: %v\n", sum.Prune.Saturated)
		}
	}

	return err
}

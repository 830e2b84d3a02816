package solve

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/opentsp/core"
	"github.com/katalvlaran/opentsp/hull"
	"github.com/katalvlaran/opentsp/prune"
	"github.com/katalvlaran/opentsp/tsp"
)

// Options selects the stages Run executes and configures them.
type Options struct {
	ConvexHull bool
	BruteForce bool
	Prune      bool

	// Exact configures the exact solver (size guard, workers).
	Exact tsp.Options

	// Pruner configures the diamond pruner. Its Logger defaults to Logger.
	Pruner prune.Options

	// Logger receives stage logs. Nil means zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions runs the convex hull and the exact solver, no pruning.
func DefaultOptions() Options {
	return Options{ConvexHull: true, BruteForce: true}
}

// Summary reports what Run produced. Paths are also recorded on the instance.
type Summary struct {
	Hull   *core.Path
	Exact  *tsp.Result
	Prune  *prune.Report
	Stages []string
	Total  time.Duration
}

// Stage names as they appear in Summary.Stages and logs.
const (
	StageConvexHull = "convex_hull"
	StageBruteForce = "brute_force"
	StagePrune      = "prune"
)

// Run executes the requested stages in order hull, exact, prune and stops at
// the first error; stages already finished keep their recorded results.
//
// Errors are wrapped with the failing stage name and keep their sentinels,
// e.g. tsp.ErrSizeGuardExceeded or core.ErrNotRelative.
func Run(ctx context.Context, inst *core.Instance, opts Options) (Summary, error) {
	if inst == nil {
		return Summary{}, fmt.Errorf("solve: nil instance: %w", core.ErrInvalidInput)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.Stringer("instance", inst.ID), zap.Int("nodes", inst.NumNodes()))

	var (
		sum   Summary
		start = time.Now()
	)

	if opts.ConvexHull {
		t := time.Now()
		h, err := hull.Compute(inst)
		if err != nil {
			return sum, stageErr(log, StageConvexHull, err)
		}
		inst.Record(core.ResultConvexHull, h)
		sum.Hull = &h
		sum.Stages = append(sum.Stages, StageConvexHull)
		log.Info("convex hull computed",
			zap.Int("vertices", h.Len()-1),
			zap.Float64("length", h.Length()),
			zap.Duration("elapsed", time.Since(t)))
	}

	if opts.BruteForce {
		log.Info("brute force started", zap.Uint64("tours", tsp.TourCount(inst.NumNodes())))
		res, err := tsp.SolveExact(ctx, inst, opts.Exact)
		if err != nil {
			return sum, stageErr(log, StageBruteForce, err)
		}
		if err = tsp.ValidateTour(inst, res.Path); err != nil {
			return sum, stageErr(log, StageBruteForce, err)
		}
		inst.Record(core.ResultBruteForce, res.Path)
		inst.Record(core.ResultOptimalSolution, res.Path)
		inst.SetSolveTime(res.Elapsed)
		sum.Exact = &res
		sum.Stages = append(sum.Stages, StageBruteForce)
		log.Info("brute force completed",
			zap.Float64("length", res.Length),
			zap.Uint64("evaluated", res.Evaluated),
			zap.Duration("elapsed", res.Elapsed))
	}

	if opts.Prune {
		t := time.Now()
		popts := opts.Pruner
		if popts.Logger == nil {
			popts.Logger = log
		}
		rep, err := prune.Diamond(ctx, inst, popts)
		if err != nil {
			return sum, stageErr(log, StagePrune, err)
		}
		sum.Prune = &rep
		sum.Stages = append(sum.Stages, StagePrune)
		log.Info("diamond prune completed",
			zap.Int("good", len(rep.Good)),
			zap.Int("discarded", rep.Discarded),
			zap.Int("ambiguous", len(rep.Ambiguous)),
			zap.Duration("elapsed", time.Since(t)))
	}

	sum.Total = time.Since(start)

	return sum, nil
}

func stageErr(log *zap.Logger, stage string, err error) error {
	log.Error("stage failed", zap.String("stage", stage), zap.Error(err))
	return fmt.Errorf("solve: %s: %w", stage, err)
}

package prune

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/opentsp/core"
)

// SweepLimit is the per-node edge count at which sweeping stops.
const SweepLimit = 4

// Options configures Diamond.
type Options struct {
	// Workers is the number of nodes processed concurrently; ≤ 1 is sequential.
	Workers int

	// Logger receives warnings for saturated nodes and ambiguities.
	// Nil means zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns sequential processing with a no-op logger.
func DefaultOptions() Options {
	return Options{Workers: 1, Logger: zap.NewNop()}
}

// Report summarizes one Diamond run.
type Report struct {
	// Good holds the ids of the edges still tagged Good, ascending.
	Good []int

	// Discarded is the number of edges this run tagged Bad.
	Discarded int

	// Ambiguous holds one entry per node whose terminal case was not resolved.
	Ambiguous []*core.TieError

	// Saturated lists the nodes left with more than SweepLimit edges at a fixed point.
	Saturated []int
}

// Err joins the ambiguities into one error, nil when there are none.
// The result matches core.ErrAmbiguousTie under errors.Is.
func (r Report) Err() error {
	if len(r.Ambiguous) == 0 {
		return nil
	}
	errs := make([]error, len(r.Ambiguous))
	for i, t := range r.Ambiguous {
		errs[i] = t
	}

	return errors.Join(errs...)
}

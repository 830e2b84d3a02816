package prune

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/opentsp/core"
)

// edgeView is the per-node snapshot of one store edge.
type edgeView struct {
	id     int
	length float64
	angle  float64
	origin core.Point
	dest   core.Point
}

// nodeResult is what one node pass decided.
type nodeResult struct {
	discarded []int
	tie       *core.TieError
	saturated bool
}

// Diamond prunes the edge store of inst in place and reports the outcome.
//
// Errors:
//   - core.ErrInvalidInput for a nil instance.
//   - core.ErrNotRelative when the instance does not store both edge directions.
//   - core.ErrDegenerateGeometry when a node coincides with the centroid; the
//     check runs before anything is committed.
//   - ctx.Err() on cancellation; nodes finished before it keep their commits.
//
// Ambiguities are not errors: see Report.Ambiguous and Report.Err.
func Diamond(ctx context.Context, inst *core.Instance, opts Options) (Report, error) {
	if inst == nil {
		return Report{}, fmt.Errorf("prune: nil instance: %w", core.ErrInvalidInput)
	}
	if !inst.RelativeEdges() {
		return Report{}, fmt.Errorf("prune: diamond: %w", core.ErrNotRelative)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	inst.PopulateEdges()
	edges, err := annotate(inst)
	if err != nil {
		return Report{}, err
	}

	n := inst.NumNodes()
	results := make([]nodeResult, n)
	work := func(ctx context.Context, node int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := pruneNode(inst, edges, node)
		if err != nil {
			return err
		}
		results[node-1] = res

		return nil
	}

	if opts.Workers <= 1 {
		for node := 1; node <= n; node++ {
			if err = work(ctx, node); err != nil {
				return Report{}, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for node := 1; node <= n; node++ {
			node := node
			g.Go(func() error { return work(gctx, node) })
		}
		if err = g.Wait(); err != nil {
			return Report{}, err
		}
	}

	var rep Report
	for i, res := range results {
		rep.Discarded += len(res.discarded)
		if res.tie != nil {
			rep.Ambiguous = append(rep.Ambiguous, res.tie)
			log.Warn("terminal case unresolved",
				zap.Int("node", i+1),
				zap.Float64("length", res.tie.Length),
				zap.String("reason", res.tie.Reason))
		}
		if res.saturated {
			rep.Saturated = append(rep.Saturated, i+1)
			log.Warn("node saturated at fixed point", zap.Int("node", i+1))
		}
	}
	rep.Good = inst.GoodEdges()
	log.Debug("diamond prune finished",
		zap.Stringer("instance", inst.ID),
		zap.Int("good", len(rep.Good)),
		zap.Int("discarded", rep.Discarded),
		zap.Int("ambiguous", len(rep.Ambiguous)),
		zap.Int("saturated", len(rep.Saturated)))

	return rep, nil
}

// annotate computes every edge angle against the centroid and commits them
// in one batch. It returns the annotated snapshot of the store.
func annotate(inst *core.Instance) ([]core.Edge, error) {
	var (
		centroid = inst.Centroid()
		edges    = inst.Edges()
		updates  = make([]core.EdgeUpdate, len(edges))
		err      error
	)
	for i := range edges {
		e := &edges[i]
		if e.Angle, err = core.SignedAngle(e.NodeOne, centroid, e.NodeTwo); err != nil {
			return nil, fmt.Errorf("prune: angle of edge %d (node %d): %w", i+1, e.From, err)
		}
		updates[i] = core.EdgeUpdate{ID: i + 1, Angle: e.Angle, Fitness: e.Fitness}
	}
	if err = inst.CommitEdges(updates); err != nil {
		return nil, fmt.Errorf("prune: commit angles: %w", err)
	}

	return edges, nil
}

// pruneNode runs the sweep and terminal rule over the Good edges leaving
// node and commits the discards.
func pruneNode(inst *core.Instance, edges []core.Edge, node int) (nodeResult, error) {
	ids, err := inst.EdgesFrom(node, true)
	if err != nil {
		return nodeResult{}, fmt.Errorf("prune: node %d: %w", node, err)
	}

	list := make([]edgeView, len(ids))
	for i, id := range ids {
		e := edges[id-1]
		list[i] = edgeView{id: id, length: e.Length(), angle: e.Angle, origin: e.NodeOne, dest: e.NodeTwo}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].angle != list[j].angle {
			return list[i].angle < list[j].angle
		}
		return list[i].id < list[j].id
	})

	var res nodeResult
	good, bad, fixed := sweep(list)
	for _, v := range bad {
		res.discarded = append(res.discarded, v.id)
	}
	res.saturated = fixed && len(good) > SweepLimit

	if len(good) == 3 {
		drop, tie, err := terminal(good)
		if err != nil {
			return nodeResult{}, fmt.Errorf("prune: node %d: %w", node, err)
		}
		if tie != nil {
			tie.Node = node
			res.tie = tie
		} else {
			res.discarded = append(res.discarded, good[drop].id)
		}
	}

	if len(res.discarded) > 0 {
		updates := make([]core.EdgeUpdate, len(res.discarded))
		for i, id := range res.discarded {
			updates[i] = core.EdgeUpdate{ID: id, Angle: edges[id-1].Angle, Fitness: core.Bad}
		}
		if err = inst.CommitEdges(updates); err != nil {
			return nodeResult{}, fmt.Errorf("prune: node %d: %w", node, err)
		}
	}

	return res, nil
}

package tsp

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/opentsp/core"
	"github.com/katalvlaran/opentsp/matrix"
)

// ctxCheckMask sets how often the search polls the context (every 4096 permutations).
const ctxCheckMask = 1<<12 - 1

// SolveExact returns the shortest closed tour through every node of inst.
//
// Errors:
//   - core.ErrInvalidInput if inst is nil or has fewer than 3 nodes.
//   - ErrSizeGuardExceeded if the node count is above the guard and AllowLarge is false.
//   - ErrDimensionMismatch / ErrNegativeWeight for a bad Options.Distances.
//   - ctx.Err() if the context is cancelled mid-search.
//
// Complexity: O((n−1)!·n) time in the worst case.
func SolveExact(ctx context.Context, inst *core.Instance, opts Options) (Result, error) {
	if inst == nil {
		return Result{}, fmt.Errorf("tsp: nil instance: %w", core.ErrInvalidInput)
	}
	nodes := inst.Nodes()
	n := len(nodes)
	if n < 3 {
		return Result{}, fmt.Errorf("tsp: %d nodes, need at least 3: %w", n, core.ErrInvalidInput)
	}
	if ExceedsSizeGuard(n, opts) && !opts.AllowLarge {
		return Result{}, fmt.Errorf("tsp: %d nodes > guard %d: %w", n, opts.sizeGuard(), ErrSizeGuardExceeded)
	}

	start := time.Now()
	if n == 3 {
		p := core.NewPath(nodes[2], nodes[0], nodes[1], nodes[2])
		return Result{Path: p, Length: p.Length(), Elapsed: time.Since(start), Evaluated: 1}, nil
	}

	w, err := weights(nodes, opts.Distances)
	if err != nil {
		return Result{}, err
	}

	s := &search{n: n, w: w}
	s.bound.Store(math.Float64bits(math.Inf(1)))

	// Block b holds every permutation whose first element is b, so blocks in
	// ascending order cover the lexicographic enumeration exactly once.
	blocks := make([]blockResult, n-1)
	if opts.Workers <= 1 {
		for b := range blocks {
			if blocks[b], err = s.runBlock(ctx, b); err != nil {
				return Result{}, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for b := range blocks {
			b := b
			g.Go(func() error {
				var berr error
				blocks[b], berr = s.runBlock(gctx, b)
				return berr
			})
		}
		if err = g.Wait(); err != nil {
			return Result{}, err
		}
	}

	var (
		best      = math.Inf(1)
		bestPerm  []int
		evaluated uint64
	)
	for _, br := range blocks {
		evaluated += br.evaluated
		if br.perm != nil && br.length < best {
			best, bestPerm = br.length, br.perm
		}
	}

	pb := core.NewPathBuilder(n + 1)
	pb.Push(nodes[n-1])
	for _, v := range bestPerm {
		pb.Push(nodes[v])
	}
	pb.Push(nodes[n-1])

	return Result{
		Path:      pb.Freeze(),
		Length:    best,
		Elapsed:   time.Since(start),
		Evaluated: evaluated,
	}, nil
}

// search is the state shared by all blocks of one SolveExact call.
type search struct {
	n     int
	w     []float64     // row-major n×n
	bound atomic.Uint64 // float64 bits of the best complete length seen by any block
}

type blockResult struct {
	perm      []int
	length    float64
	evaluated uint64
}

// lowerBound publishes l as the shared cutoff if it improves it.
func (s *search) lowerBound(l float64) {
	for {
		old := s.bound.Load()
		if l >= math.Float64frombits(old) {
			return
		}
		if s.bound.CompareAndSwap(old, math.Float64bits(l)) {
			return
		}
	}
}

// runBlock enumerates, in lexicographic order, the permutations of node
// indices 0..n−2 that start with first and returns the earliest shortest one.
// Candidates whose partial length exceeds the shared bound are abandoned;
// equal lengths are never cut off, so the earliest optimum of the block survives.
func (s *search) runBlock(ctx context.Context, first int) (blockResult, error) {
	var (
		n      = s.n
		anchor = n - 1
		w      = s.w
		perm   = make([]int, 0, n-1)
		out    = blockResult{length: math.Inf(1)}
		total  float64
		prev   int
		k      int
	)
	perm = append(perm, first)
	for v := 0; v < anchor; v++ {
		if v != first {
			perm = append(perm, v)
		}
	}

	for {
		if out.evaluated&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return blockResult{}, err
			}
		}
		out.evaluated++

		bound := math.Float64frombits(s.bound.Load())
		total, prev = 0, anchor
		for k = 0; k < len(perm); k++ {
			total += w[prev*n+perm[k]]
			if total > bound {
				break
			}
			prev = perm[k]
		}
		if k == len(perm) {
			total += w[prev*n+anchor]
			if total <= bound && total < out.length {
				out.length = total
				out.perm = append(out.perm[:0], perm...)
				s.lowerBound(total)
			}
		}

		if !nextPermutation(perm[1:]) {
			break
		}
	}

	return out, nil
}

// weights flattens the distance model into a row-major buffer so the hot loop
// avoids interface calls.
func weights(nodes []core.Point, m matrix.Matrix) ([]float64, error) {
	n := len(nodes)
	w := make([]float64, n*n)
	if m == nil {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := core.Distance(nodes[i], nodes[j])
				w[i*n+j], w[j*n+i] = d, d
			}
		}

		return w, nil
	}

	if m.Rows() != n || m.Cols() != n {
		return nil, fmt.Errorf("tsp: matrix %dx%d for %d nodes: %w", m.Rows(), m.Cols(), n, ErrDimensionMismatch)
	}
	var (
		i, j int
		d    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if d, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("tsp: matrix At(%d,%d): %w", i, j, err)
			}
			if i != j && (d < 0 || math.IsNaN(d) || math.IsInf(d, 0)) {
				return nil, fmt.Errorf("tsp: distance %g at (%d,%d): %w", d, i, j, ErrNegativeWeight)
			}
			w[i*n+j] = d
		}
	}

	return w, nil
}

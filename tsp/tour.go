// Package tsp - tour utilities.
//
// Helpers that check and describe closed tours over an instance:
//   - TourOrder: the 1-based node indices a closed tour visits.
//   - ValidateTour: enforce Hamiltonian-cycle invariants.
//   - TourCost: sum a distance matrix along a tour order.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors.
//   - O(n) time except TourCost, which is O(n) matrix lookups.
package tsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/opentsp/core"
	"github.com/katalvlaran/opentsp/matrix"
)

// ErrInvalidTour indicates a path that is not a closed tour visiting every
// node of the instance exactly once.
var ErrInvalidTour = errors.New("tsp: invalid tour")

// TourOrder maps every point of the closed tour p to its 1-based node index
// in inst, closing repetition included.
//
// Errors: ErrInvalidTour for a point that is not an instance node.
//
// Complexity: O(n) after an O(n) index build.
func TourOrder(inst *core.Instance, p core.Path) ([]int, error) {
	if inst == nil {
		return nil, fmt.Errorf("tsp: nil instance: %w", core.ErrInvalidInput)
	}
	index := make(map[[2]float64]int, inst.NumNodes())
	for i, n := range inst.Nodes() {
		index[n.Key()] = i + 1
	}

	pts := p.Points()
	order := make([]int, len(pts))
	for i, pt := range pts {
		v, ok := index[pt.Key()]
		if !ok {
			return nil, fmt.Errorf("tsp: point %v is not a node: %w", pt, ErrInvalidTour)
		}
		order[i] = v
	}

	return order, nil
}

// ValidateTour enforces the Hamiltonian-cycle invariants:
//
//	p.Len() == n+1, first point == last point,
//	every node appears exactly once among the first n points.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(inst *core.Instance, p core.Path) error {
	order, err := TourOrder(inst, p)
	if err != nil {
		return err
	}
	n := inst.NumNodes()
	if len(order) != n+1 {
		return fmt.Errorf("tsp: tour has %d points for %d nodes: %w", len(order), n, ErrInvalidTour)
	}
	if order[0] != order[n] {
		return fmt.Errorf("tsp: tour not closed: %w", ErrInvalidTour)
	}

	seen := make([]bool, n+1)
	for _, v := range order[:n] {
		if seen[v] {
			return fmt.Errorf("tsp: node %d visited twice: %w", v, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums dist along order, a sequence of 1-based node indices
// (row i−1 of dist is node i).
//
// Complexity: O(len(order)).
func TourCost(dist matrix.Matrix, order []int) (float64, error) {
	var (
		total float64
		d     float64
		err   error
	)
	for i := 0; i+1 < len(order); i++ {
		if d, err = dist.At(order[i]-1, order[i+1]-1); err != nil {
			return 0, fmt.Errorf("tsp: cost %d->%d: %w", order[i], order[i+1], err)
		}
		total += d
	}

	return total, nil
}

package hull

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/opentsp/core"
)

// cross returns the z component of (a−o)×(b−o): positive for a left turn
// o→a→b, zero for collinear points.
func cross(o, a, b core.Point) float64 {
	u, v := a.Coord().Minus(o.Coord()), b.Coord().Minus(o.Coord())
	return u.X*v.Y - u.Y*v.X
}

// keepLeft pushes p onto the chain after popping every point that would not
// make a strict left turn towards p.
func keepLeft(chain *core.PathBuilder, p core.Point) {
	for chain.Len() >= 2 {
		top, _ := chain.Peek(0)
		below, _ := chain.Peek(1)
		if cross(below, top, p) > 0 {
			break
		}
		chain.Pop()
	}
	chain.Push(p)
}

// ConvexHull returns the closed counter-clockwise hull of points.
//
// A single distinct point yields [p, p]; two distinct points (or any
// collinear set) yield [a, b, a] with a, b the extreme points.
//
// Errors: core.ErrInvalidInput on an empty input.
func ConvexHull(points []core.Point) (core.Path, error) {
	if len(points) == 0 {
		return core.Path{}, fmt.Errorf("hull: empty point set: %w", core.ErrInvalidInput)
	}

	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b core.Point) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	sorted = slices.CompactFunc(sorted, core.Point.Equal)
	if len(sorted) == 1 {
		return core.NewPath(sorted[0], sorted[0]), nil
	}

	var (
		lower = core.NewPathBuilder(len(sorted))
		upper = core.NewPathBuilder(len(sorted))
	)
	for _, p := range sorted {
		keepLeft(lower, p)
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		keepLeft(upper, sorted[i])
	}

	// each chain ends where the other starts
	out := lower.Freeze().Points()
	up := upper.Freeze().Points()
	out = append(out, up[1:len(up)-1]...)
	out = append(out, out[0])

	return core.NewPath(out...), nil
}

// Compute returns the hull of the instance nodes. It does not record the
// result; see the solve package for that.
func Compute(inst *core.Instance) (core.Path, error) {
	if inst == nil {
		return core.Path{}, fmt.Errorf("hull: nil instance: %w", core.ErrInvalidInput)
	}

	return ConvexHull(inst.Nodes())
}

// Contains reports whether p lies inside or on the boundary of hull, a
// counter-clockwise polygon as returned by ConvexHull.
func Contains(hull core.Path, p core.Point) bool {
	ring := hull.Points()
	if hull.IsClosed() && len(ring) > 1 {
		ring = ring[:len(ring)-1]
	}

	switch len(ring) {
	case 0:
		return false
	case 1:
		return ring[0].Equal(p)
	case 2:
		return cross(ring[0], ring[1], p) == 0 && between(ring[0], ring[1], p)
	}

	for i := range ring {
		if cross(ring[i], ring[(i+1)%len(ring)], p) < 0 {
			return false
		}
	}

	return true
}

// between reports whether p lies in the axis-aligned box spanned by a and b.
func between(a, b, p core.Point) bool {
	return min(a.X(), b.X()) <= p.X() && p.X() <= max(a.X(), b.X()) &&
		min(a.Y(), b.Y()) <= p.Y() && p.Y() <= max(a.Y(), b.Y())
}

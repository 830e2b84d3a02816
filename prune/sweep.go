package prune

import (
	"math"

	"github.com/katalvlaran/opentsp/core"
)

// sweep repeatedly drops interior edges that are longer than the last kept
// edge before them or the edge right after them. It stops once at most
// SweepLimit edges remain or a pass drops nothing; fixed reports the latter.
// list must be in angular order and is not modified.
func sweep(list []edgeView) (good, bad []edgeView, fixed bool) {
	good = list
	for len(good) > SweepLimit {
		var (
			lastGood = 0
			next     = make([]edgeView, 0, len(good))
		)
		next = append(next, good[0])
		for idx := 1; idx < len(good)-1; idx++ {
			e := good[idx]
			if e.length > good[lastGood].length || e.length > good[idx+1].length {
				bad = append(bad, e)
				continue
			}
			lastGood = idx
			next = append(next, e)
		}
		next = append(next, good[len(good)-1])

		if len(next) == len(good) {
			return good, bad, true
		}
		good = next
	}

	return good, bad, false
}

// terminal applies the three-edge rule to e0, e1, e2 (angular order) and
// returns the index of the edge to drop, or a TieError when no rule applies.
//
// The divergence of an outer edge is the absolute angle, at the shared
// origin, between the middle edge and that edge.
func terminal(list []edgeView) (drop int, tie *core.TieError, err error) {
	e0, e1, e2 := list[0], list[1], list[2]
	a0, err := core.SignedAngle(e1.origin, e1.dest, e0.dest)
	if err != nil {
		return -1, nil, err
	}
	a2, err := core.SignedAngle(e1.origin, e1.dest, e2.dest)
	if err != nil {
		return -1, nil, err
	}
	a0, a2 = math.Abs(a0), math.Abs(a2)
	l0, l1, l2 := e0.length, e1.length, e2.length

	switch {
	case l1 < l0 && l1 < l2:
		// middle shortest: keep the straighter neighbour
		switch {
		case a0 > a2:
			return 0, nil, nil
		case a2 > a0:
			return 2, nil, nil
		}
		return -1, &core.TieError{Length: l1, Reason: "middle edge shortest, neighbours equally divergent"}, nil

	case l1 > l0 || l1 > l2:
		switch {
		case a0 < a2 && l0 < l2:
			return 1, nil, nil
		case a0 < a2 && l0 > l2:
			return 0, nil, nil
		case a0 > a2 && l0 > l2:
			return 1, nil, nil
		case a0 > a2 && l0 < l2:
			return 2, nil, nil
		}
		return -1, &core.TieError{Length: l1, Reason: "middle-length case matched no divergence/length combination"}, nil
	}

	return -1, &core.TieError{Length: l1, Reason: "middle edge ties a neighbour in length"}, nil
}

package builder

import (
	"math/rand"

	"github.com/katalvlaran/opentsp/core"
)

// drawPoints draws n distinct integer points from [lower, upper)². A draw
// that repeats an earlier point is discarded and drawn again, so the first
// occurrences keep their order.
//
// Complexity: O(n) expected when n is small against the range.
func drawPoints(method string, r *rand.Rand, n, lower, upper int) ([]core.Point, error) {
	side := upper - lower
	if side <= 0 || side*side < n {
		return nil, wrapf(method, ErrConstructFailed, "range [%d,%d) holds fewer than %d distinct points", lower, upper, n)
	}

	var (
		pts  = make([]core.Point, 0, n)
		seen = make(map[[2]int]struct{}, n)
		x, y int
	)
	for len(pts) < n {
		x = drawInt(r, lower, upper)
		y = drawInt(r, lower, upper)
		if _, dup := seen[[2]int{x, y}]; dup {
			continue
		}
		seen[[2]int{x, y}] = struct{}{}
		pts = append(pts, core.NewPoint(float64(x), float64(y)))
	}

	return pts, nil
}

package core

import (
	"fmt"
	"math"
)

// Distance returns the Euclidean norm of b−a. It has no failure modes for
// finite coordinates.
func Distance(a, b Point) float64 {
	return a.c.DistanceFrom(b.c)
}

// SignedAngle returns the angle in degrees, in (−180, 180], between the ray
// vertex→start and the ray vertex→dest. Positive means anti-clockwise.
//
// The raw value atan2(dest−vertex) − atan2(start−vertex) is shifted by −2π
// when above π and by +2π when at or below −π, then converted to degrees.
//
// Returns ErrDegenerateGeometry when vertex coincides with start or dest.
func SignedAngle(vertex, start, dest Point) (float64, error) {
	if vertex.Equal(start) || vertex.Equal(dest) {
		return 0, fmt.Errorf("angle at %v between %v and %v: %w", vertex, start, dest, ErrDegenerateGeometry)
	}
	toDest := dest.c.Minus(vertex.c)
	toStart := start.c.Minus(vertex.c)

	rad := math.Atan2(toDest.Y, toDest.X) - math.Atan2(toStart.Y, toStart.X)
	if rad > math.Pi {
		rad -= 2 * math.Pi
	} else if rad <= -math.Pi {
		rad += 2 * math.Pi
	}

	// conversion rounding must not leave the half-open interval
	deg := math.Min(rad*180/math.Pi, 180)
	if deg <= -180 {
		deg += 360
	}

	return deg, nil
}

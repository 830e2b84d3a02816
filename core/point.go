package core

import (
	"fmt"

	"github.com/jbeda/geom"
)

// Point is an immutable pair of real coordinates with an optional density
// annotation. The density is carried for downstream consumers and ignored by
// Equal, Less and Key.
//
// Compare points with Equal, not ==: == also compares the density annotation.
type Point struct {
	c          geom.Coord
	density    float64
	hasDensity bool
}

// NewPoint returns the point (x, y) without a density annotation.
func NewPoint(x, y float64) Point {
	return Point{c: geom.Coord{X: x, Y: y}}
}

// PointFromCoord wraps a geom.Coord.
func PointFromCoord(c geom.Coord) Point { return Point{c: c} }

// X returns the x coordinate.
func (p Point) X() float64 { return p.c.X }

// Y returns the y coordinate.
func (p Point) Y() float64 { return p.c.Y }

// Coord returns the underlying geom.Coord.
func (p Point) Coord() geom.Coord { return p.c }

// WithDensity returns a copy of p annotated with density d.
func (p Point) WithDensity(d float64) Point {
	p.density, p.hasDensity = d, true
	return p
}

// Density returns the density annotation and whether one is set.
func (p Point) Density() (float64, bool) { return p.density, p.hasDensity }

// Equal reports whether p and q have exactly the same coordinates.
func (p Point) Equal(q Point) bool {
	return p.c.X == q.c.X && p.c.Y == q.c.Y
}

// Less orders points lexicographically by (x, y).
func (p Point) Less(q Point) bool {
	return p.c.X < q.c.X || (p.c.X == q.c.X && p.c.Y < q.c.Y)
}

// Key returns the coordinate pair, usable as a map key. Two points have the
// same Key iff they are Equal.
func (p Point) Key() [2]float64 { return [2]float64{p.c.X, p.c.Y} }

// DistanceTo returns the Euclidean distance from p to q.
func (p Point) DistanceTo(q Point) float64 { return Distance(p, q) }

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.c.X, p.c.Y)
}

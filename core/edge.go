package core

import "fmt"

// Edge connects NodeOne to NodeTwo.
//
// The length is computed once at construction; Length never recomputes it
// for edges built with NewEdge or NewDirectedEdge, so concurrent reads are
// race-free. Fitness starts Good and, inside an Instance, only ever moves to
// Bad. Angle is written by the pruner only. Weight is reserved.
type Edge struct {
	// NodeOne is the origin endpoint.
	NodeOne Point

	// NodeTwo is the destination endpoint.
	NodeTwo Point

	// From and To are the 1-based instance indices of NodeOne and NodeTwo.
	// Both are 0 for an edge that does not belong to an instance.
	From, To int

	// Directed selects ordered (true) or unordered (false) identity.
	Directed bool

	// Fitness is the pruner's retain/discard tag.
	Fitness Fitness

	// Angle is the signed angle (degrees) of the edge relative to the
	// instance centroid, populated by the pruner.
	Angle float64

	// Weight is reserved and not consumed by any algorithm.
	Weight float64

	length   float64
	computed bool
}

// NewEdge returns an undirected Edge between a and b.
func NewEdge(a, b Point) Edge {
	return Edge{NodeOne: a, NodeTwo: b, length: Distance(a, b), computed: true}
}

// NewDirectedEdge returns a directed Edge from a to b.
func NewDirectedEdge(a, b Point) Edge {
	e := NewEdge(a, b)
	e.Directed = true
	return e
}

// Length returns the Euclidean length of the edge.
func (e Edge) Length() float64 {
	if e.computed {
		return e.length
	}

	return Distance(e.NodeOne, e.NodeTwo) // zero-value literal, nothing cached
}

// Equal reports edge identity. An undirected receiver matches o when the
// endpoint sets are equal in either order; a directed receiver requires the
// same order.
func (e Edge) Equal(o Edge) bool {
	if e.NodeOne.Equal(o.NodeOne) && e.NodeTwo.Equal(o.NodeTwo) {
		return true
	}
	if e.Directed {
		return false
	}

	return e.NodeOne.Equal(o.NodeTwo) && e.NodeTwo.Equal(o.NodeOne)
}

// Less reports whether e is strictly shorter than o. Equal lengths are not
// ordered either way.
func (e Edge) Less(o Edge) bool { return e.Length() < o.Length() }

// Midpoint returns the point halfway between the endpoints.
func (e Edge) Midpoint() Point {
	return PointFromCoord(e.NodeOne.c.Plus(e.NodeTwo.c).Times(0.5))
}

// Nodes returns the two endpoints, origin first.
func (e Edge) Nodes() []Point { return []Point{e.NodeOne, e.NodeTwo} }

// String renders the edge with its length, direction flag, angle and fitness.
func (e Edge) String() string {
	return fmt.Sprintf("(%v, %v, %g, %t, %g, %s)", e.NodeOne, e.NodeTwo, e.Length(), e.Directed, e.Angle, e.Fitness)
}

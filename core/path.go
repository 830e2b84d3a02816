package core

import (
	"fmt"
	"sort"
	"strings"
)

// Path is an immutable ordered sequence of points: a tour or a hull boundary.
//
// A Path may be implicitly circular (first != last, the tour returns to the
// start) or explicitly circular (first == last). Both forms compare equal
// under Equal. The zero Path is empty.
type Path struct {
	points []Point
}

// NewPath copies points into a new Path.
func NewPath(points ...Point) Path {
	cp := make([]Point, len(points))
	copy(cp, points)

	return Path{points: cp}
}

// Len returns the number of stored points, closing duplicate included.
func (p Path) Len() int { return len(p.points) }

// Point returns the i-th stored point (0-based) or ErrInvalidInput.
func (p Path) Point(i int) (Point, error) {
	if i < 0 || i >= len(p.points) {
		return Point{}, fmt.Errorf("path index %d of %d: %w", i, len(p.points), ErrInvalidInput)
	}

	return p.points[i], nil
}

// Points returns a mutable copy of the stored points.
func (p Path) Points() []Point {
	cp := make([]Point, len(p.points))
	copy(cp, p.points)

	return cp
}

// IsClosed reports whether the last stored point repeats the first.
func (p Path) IsClosed() bool {
	n := len(p.points)
	return n > 1 && p.points[0].Equal(p.points[n-1])
}

// Edges links consecutive points, preserving order and direction. There is
// no wrap-around edge unless the last stored point repeats the first.
func (p Path) Edges() []Edge {
	if len(p.points) < 2 {
		return nil
	}
	out := make([]Edge, len(p.points)-1)
	for i := 0; i < len(p.points)-1; i++ {
		out[i] = NewEdge(p.points[i], p.points[i+1])
	}

	return out
}

// Length returns the sum of consecutive distances.
// Complexity: O(n).
func (p Path) Length() float64 {
	var total float64
	for i := 0; i+1 < len(p.points); i++ {
		total += Distance(p.points[i], p.points[i+1])
	}

	return total
}

// AverageEdgeLength returns the mean edge length, or 0 for a path with no edges.
func (p Path) AverageEdgeLength() float64 {
	if len(p.points) < 2 {
		return 0
	}

	return p.Length() / float64(len(p.points)-1)
}

// EdgeLengths returns the edge lengths sorted ascending.
func (p Path) EdgeLengths() []float64 {
	edges := p.Edges()
	out := make([]float64, len(edges))
	for i, e := range edges {
		out[i] = e.Length()
	}
	sort.Float64s(out)

	return out
}

// Centroid returns the arithmetic mean of the distinct points of the path,
// so the closing duplicate is not counted twice.
// Returns ErrInvalidInput for an empty path.
func (p Path) Centroid() (Point, error) {
	if len(p.points) == 0 {
		return Point{}, fmt.Errorf("centroid of empty path: %w", ErrInvalidInput)
	}
	var (
		seen   = make(map[[2]float64]struct{}, len(p.points))
		sx, sy float64
	)
	for _, pt := range p.points {
		if _, dup := seen[pt.Key()]; dup {
			continue
		}
		seen[pt.Key()] = struct{}{}
		sx += pt.X()
		sy += pt.Y()
	}
	k := float64(len(seen))

	return NewPoint(sx/k, sy/k), nil
}

// open drops a trailing point that duplicates the first.
func (p Path) open() []Point {
	if p.IsClosed() {
		return p.points[:len(p.points)-1]
	}

	return p.points
}

// Equal reports whether p and o describe the same cyclic sequence.
//
// Both paths are reduced to implicit form, o is rotated so that it starts at
// the first point of p, and the sequences are compared position by position.
// Reversed traversal is not equal.
//
// Complexity: O(n).
func (p Path) Equal(o Path) bool {
	a, b := p.open(), o.open()
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	var (
		n     = len(a)
		pivot = -1
		i     int
	)
	for i = 0; i < n; i++ {
		if b[i].Equal(a[0]) {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return false
	}
	for i = 0; i < n; i++ {
		if !a[i].Equal(b[(pivot+i)%n]) {
			return false
		}
	}

	return true
}

// NSortedEdges returns the n shortest edges in ascending order, or the n
// longest in descending order when reverse is set. The sort is stable, so
// equal lengths keep path order.
//
// For n == 1 the single edge is returned only when it is strictly the
// shortest (or longest); an exact tie with the runner-up yields a *TieError
// carrying the shared length. n larger than the edge count is clamped.
//
// Errors: ErrInvalidInput for n < 1 or a path without edges.
func (p Path) NSortedEdges(n int, reverse bool) ([]Edge, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrInvalidInput)
	}
	edges := p.Edges()
	if len(edges) == 0 {
		return nil, fmt.Errorf("path has no edges: %w", ErrInvalidInput)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		if reverse {
			return edges[j].Less(edges[i])
		}
		return edges[i].Less(edges[j])
	})

	if n == 1 {
		if len(edges) > 1 && edges[0].Length() == edges[1].Length() {
			return nil, &TieError{Length: edges[0].Length(), Reason: "more than one edge shares the extreme length"}
		}
		return edges[:1], nil
	}
	if n > len(edges) {
		n = len(edges)
	}

	return edges[:n], nil
}

// String renders the points in order.
func (p Path) String() string {
	parts := make([]string, len(p.points))
	for i, pt := range p.points {
		parts[i] = pt.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// PathBuilder is the mutable ordered list algorithms fill before freezing it
// into a Path. The zero value is ready to use.
type PathBuilder struct {
	points []Point
}

// NewPathBuilder returns a builder with room for capacity points.
func NewPathBuilder(capacity int) *PathBuilder {
	return &PathBuilder{points: make([]Point, 0, capacity)}
}

// Push appends points.
func (b *PathBuilder) Push(pts ...Point) { b.points = append(b.points, pts...) }

// Pop removes and returns the last point; ok is false when empty.
func (b *PathBuilder) Pop() (pt Point, ok bool) {
	if len(b.points) == 0 {
		return Point{}, false
	}
	pt = b.points[len(b.points)-1]
	b.points = b.points[:len(b.points)-1]

	return pt, true
}

// Peek returns the k-th point from the end (Peek(0) is the last one).
func (b *PathBuilder) Peek(k int) (Point, bool) {
	i := len(b.points) - 1 - k
	if k < 0 || i < 0 {
		return Point{}, false
	}

	return b.points[i], true
}

// Len returns the number of points pushed so far.
func (b *PathBuilder) Len() int { return len(b.points) }

// Reset empties the builder, keeping its capacity.
func (b *PathBuilder) Reset() { b.points = b.points[:0] }

// Freeze returns an immutable Path holding a copy of the points.
func (b *PathBuilder) Freeze() Path { return NewPath(b.points...) }

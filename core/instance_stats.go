package core

import (
	"fmt"
	"sort"
)

// Axis selects a coordinate for NodesByCoord.
type Axis uint8

const (
	// AxisX sorts by x.
	AxisX Axis = iota
	// AxisY sorts by y.
	AxisY
)

// XValues returns the x coordinates in node order.
func (in *Instance) XValues() []float64 {
	in.mu.RLock()
	defer in.mu.RUnlock()
	out := make([]float64, len(in.nodes))
	for i, p := range in.nodes {
		out[i] = p.X()
	}

	return out
}

// YValues returns the y coordinates in node order.
func (in *Instance) YValues() []float64 {
	in.mu.RLock()
	defer in.mu.RUnlock()
	out := make([]float64, len(in.nodes))
	for i, p := range in.nodes {
		out[i] = p.Y()
	}

	return out
}

// Coordinates returns the nodes as plain [x, y] pairs in node order.
func (in *Instance) Coordinates() [][2]float64 {
	in.mu.RLock()
	defer in.mu.RUnlock()
	out := make([][2]float64, len(in.nodes))
	for i, p := range in.nodes {
		out[i] = p.Key()
	}

	return out
}

// Centroid returns the arithmetic mean of all nodes.
func (in *Instance) Centroid() Point {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return centroidOf(in.nodes)
}

func centroidOf(pts []Point) Point {
	var sx, sy float64
	for _, p := range pts {
		sx += p.X()
		sy += p.Y()
	}
	k := float64(len(pts))

	return NewPoint(sx/k, sy/k)
}

// EdgeSum returns the sum of all edge lengths in the store.
func (in *Instance) EdgeSum() float64 {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return in.edgeSumLocked()
}

func (in *Instance) edgeSumLocked() float64 {
	var sum float64
	for i := range in.edges {
		sum += in.edges[i].Length()
	}

	return sum
}

// AverageEdgeLength returns the mean edge length of the store, 0 when empty.
func (in *Instance) AverageEdgeLength() float64 {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if len(in.edges) == 0 {
		return 0
	}

	return in.edgeSumLocked() / float64(len(in.edges))
}

// NEdgeLengths returns up to n sorted edge lengths, shortest first unless
// reverse. When edges are relative every length appears twice, so only every
// second sorted length is kept. With all set, every length is returned and n
// is ignored.
func (in *Instance) NEdgeLengths(n int, reverse, all bool) []float64 {
	in.mu.RLock()
	lengths := make([]float64, len(in.edges))
	for i := range in.edges {
		lengths[i] = in.edges[i].Length()
	}
	in.mu.RUnlock()

	if reverse {
		sort.Sort(sort.Reverse(sort.Float64Slice(lengths)))
	} else {
		sort.Float64s(lengths)
	}
	if all {
		return lengths
	}

	step := 1
	if in.relative {
		step = 2
	}
	out := make([]float64, 0, n)
	for i := 0; i < len(lengths) && len(out) < n; i += step {
		out = append(out, lengths[i])
	}

	return out
}

// NEdgesByLength returns the n shortest edges (longest first with reverse),
// clamped to the number of nodes.
func (in *Instance) NEdgesByLength(n int, reverse bool) ([]Edge, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrInvalidInput)
	}
	edges := in.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		if reverse {
			return edges[j].Less(edges[i])
		}
		return edges[i].Less(edges[j])
	})
	if limit := len(in.nodes); n > limit {
		n = limit
	}
	if n > len(edges) {
		n = len(edges)
	}

	return edges[:n], nil
}

// NodesByDistanceToCentroid returns up to n node indices ordered by distance
// to the centroid, nearest first unless reverse. Ties keep node order.
func (in *Instance) NodesByDistanceToCentroid(n int, reverse bool) []int {
	c := in.Centroid()
	nodes := in.Nodes()

	return orderedIndices(nodes, n, func(a, b Point) bool {
		da, db := Distance(a, c), Distance(b, c)
		if reverse {
			return da > db
		}
		return da < db
	})
}

// NodesByCoord returns all node indices ordered by the chosen coordinate,
// ascending unless reverse. Ties keep node order.
func (in *Instance) NodesByCoord(axis Axis, reverse bool) []int {
	nodes := in.Nodes()
	coord := Point.X
	if axis == AxisY {
		coord = Point.Y
	}

	return orderedIndices(nodes, len(nodes), func(a, b Point) bool {
		if reverse {
			return coord(a) > coord(b)
		}
		return coord(a) < coord(b)
	})
}

// orderedIndices stable-sorts 1-based node indices by less and keeps n.
func orderedIndices(nodes []Point, n int, less func(a, b Point) bool) []int {
	idx := make([]int, len(nodes))
	for i := range idx {
		idx[i] = i + 1
	}
	sort.SliceStable(idx, func(i, j int) bool { return less(nodes[idx[i]-1], nodes[idx[j]-1]) })
	if n < 0 {
		n = 0
	}
	if n > len(idx) {
		n = len(idx)
	}

	return idx[:n]
}

// PopulateNodeDensities annotates every node with the sum of the lengths of
// its incident edges divided by the sum of all edge lengths. Nodes that
// already carry a density keep it. Requires a populated edge store.
func (in *Instance) PopulateNodeDensities() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	if len(in.edges) == 0 {
		return fmt.Errorf("node densities need edges: %w", ErrInvalidInput)
	}

	var (
		total    = in.edgeSumLocked()
		incident = make([]float64, len(in.nodes))
	)
	for i := range in.edges {
		l := in.edges[i].Length()
		incident[in.edges[i].From-1] += l
		incident[in.edges[i].To-1] += l
	}
	for i, p := range in.nodes {
		if _, ok := p.Density(); ok {
			continue
		}
		in.nodes[i] = p.WithDensity(incident[i] / total)
	}

	return nil
}

// Densities returns the density annotation per 1-based node index; nodes
// without one are absent.
func (in *Instance) Densities() map[int]float64 {
	in.mu.RLock()
	defer in.mu.RUnlock()
	out := make(map[int]float64, len(in.nodes))
	for i, p := range in.nodes {
		if d, ok := p.Density(); ok {
			out[i+1] = d
		}
	}

	return out
}

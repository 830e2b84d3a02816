package core

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jbeda/geom"

	"github.com/katalvlaran/opentsp/matrix"
)

// Instance is a point set plus its derived edges, distance matrix and named
// result paths.
//
// Nodes are addressed by contiguous 1-based indices. Edges live in one
// canonical store addressed by 1-based ids; per-node views are lists of ids
// into that store, and fitness/angle changes are committed through it.
//
// When relative is true the store holds both directions of every pair,
// n·(n−1) edges in total; otherwise it holds one edge per unordered pair,
// n·(n−1)/2 edges.
type Instance struct {
	// ID identifies the instance in logs.
	ID uuid.UUID

	// Seed is the generator seed the nodes were drawn with, 0 if none.
	Seed int64

	mu        sync.RWMutex
	relative  bool
	nodes     []Point
	edges     []Edge
	from      [][]int // from[i] = ids of edges whose origin is node i+1
	dist      *matrix.Dense
	results   map[ResultKey]Path
	solveTime time.Duration
}

// InstanceOption configures an Instance before creation.
type InstanceOption func(*Instance)

// WithRelativeEdges selects whether the edge store holds both directions.
func WithRelativeEdges(relative bool) InstanceOption {
	return func(in *Instance) { in.relative = relative }
}

// WithSeed records the seed the points were generated with.
func WithSeed(seed int64) InstanceOption {
	return func(in *Instance) { in.Seed = seed }
}

// WithID overrides the generated instance id.
func WithID(id uuid.UUID) InstanceOption {
	return func(in *Instance) { in.ID = id }
}

// NewInstance creates an instance over points; points[k] becomes node k+1.
// The edge store starts empty, see PopulateEdges.
//
// Errors: ErrInvalidInput for an empty point set, ErrDuplicatePoint when two
// points share coordinates.
func NewInstance(points []Point, opts ...InstanceOption) (*Instance, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("instance without nodes: %w", ErrInvalidInput)
	}
	seen := make(map[[2]float64]int, len(points))
	for i, p := range points {
		if j, dup := seen[p.Key()]; dup {
			return nil, fmt.Errorf("nodes %d and %d at %v: %w", j, i+1, p, ErrDuplicatePoint)
		}
		seen[p.Key()] = i + 1
	}

	in := &Instance{
		ID:      uuid.New(),
		nodes:   make([]Point, len(points)),
		results: make(map[ResultKey]Path),
	}
	copy(in.nodes, points)
	for _, opt := range opts {
		opt(in)
	}

	return in, nil
}

// RelativeEdges reports whether the edge store holds both directions of every pair.
func (in *Instance) RelativeEdges() bool { return in.relative }

// NumNodes returns the number of nodes.
func (in *Instance) NumNodes() int { return len(in.nodes) }

// NumEdges returns the number of edges in the store.
func (in *Instance) NumEdges() int {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return len(in.edges)
}

// Node returns the node at 1-based index i.
func (in *Instance) Node(i int) (Point, error) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if i < 1 || i > len(in.nodes) {
		return Point{}, fmt.Errorf("node %d of %d: %w", i, len(in.nodes), ErrNodeNotFound)
	}

	return in.nodes[i-1], nil
}

// Nodes returns a copy of the nodes; element k is node k+1.
func (in *Instance) Nodes() []Point {
	in.mu.RLock()
	defer in.mu.RUnlock()
	cp := make([]Point, len(in.nodes))
	copy(cp, in.nodes)

	return cp
}

// PopulateEdges fills the edge store according to the relative flag. It is
// a no-op when the store is already populated.
//
// Relative order: for each origin i, every destination j != i ascending.
// Unique order: pairs (i, j) with i < j in lexicographic order.
//
// Complexity: O(n²).
func (in *Instance) PopulateEdges() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if len(in.edges) > 0 {
		return
	}

	var (
		n    = len(in.nodes)
		i, j int
	)
	if in.relative {
		in.edges = make([]Edge, 0, n*(n-1))
	} else {
		in.edges = make([]Edge, 0, n*(n-1)/2)
	}
	in.from = make([][]int, n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || (!in.relative && j < i) {
				continue
			}
			e := NewEdge(in.nodes[i], in.nodes[j])
			e.From, e.To = i+1, j+1
			in.edges = append(in.edges, e)
			in.from[i] = append(in.from[i], len(in.edges)) // ids are 1-based
		}
	}
}

// Edge returns a copy of the edge with 1-based id.
func (in *Instance) Edge(id int) (Edge, error) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if id < 1 || id > len(in.edges) {
		return Edge{}, fmt.Errorf("edge %d of %d: %w", id, len(in.edges), ErrEdgeNotFound)
	}

	return in.edges[id-1], nil
}

// Edges returns a copy of the edge store; element k has id k+1.
func (in *Instance) Edges() []Edge {
	in.mu.RLock()
	defer in.mu.RUnlock()
	cp := make([]Edge, len(in.edges))
	copy(cp, in.edges)

	return cp
}

// EdgesFrom returns the ids of the edges whose origin is node, in store
// order. With goodOnly set, Bad edges are skipped.
//
// Errors: ErrNotRelative unless the store is relative, ErrNodeNotFound.
func (in *Instance) EdgesFrom(node int, goodOnly bool) ([]int, error) {
	if !in.relative {
		return nil, ErrNotRelative
	}
	in.mu.RLock()
	defer in.mu.RUnlock()
	if node < 1 || node > len(in.nodes) {
		return nil, fmt.Errorf("node %d of %d: %w", node, len(in.nodes), ErrNodeNotFound)
	}
	if in.from == nil {
		return nil, nil
	}
	ids := make([]int, 0, len(in.from[node-1]))
	for _, id := range in.from[node-1] {
		if goodOnly && in.edges[id-1].Fitness == Bad {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// GoodEdges returns the ids of all edges still tagged Good, ascending.
func (in *Instance) GoodEdges() []int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	ids := make([]int, 0, len(in.edges))
	for i := range in.edges {
		if in.edges[i].Fitness == Good {
			ids = append(ids, i+1)
		}
	}

	return ids
}

// EdgeUpdate is one committed change to the edge store.
type EdgeUpdate struct {
	ID      int
	Angle   float64
	Fitness Fitness
}

// CommitEdges applies updates atomically: either every update is valid and
// all are applied under one write lock, or none is.
//
// Errors: ErrEdgeNotFound for an unknown id, ErrFitnessRevert when an update
// would move a Bad edge back to Good.
func (in *Instance) CommitEdges(updates []EdgeUpdate) error {
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, u := range updates {
		if u.ID < 1 || u.ID > len(in.edges) {
			return fmt.Errorf("commit edge %d: %w", u.ID, ErrEdgeNotFound)
		}
		if in.edges[u.ID-1].Fitness == Bad && u.Fitness == Good {
			return fmt.Errorf("commit edge %d: %w", u.ID, ErrFitnessRevert)
		}
	}
	for _, u := range updates {
		e := &in.edges[u.ID-1]
		e.Angle = u.Angle
		e.Fitness = u.Fitness
	}

	return nil
}

// PopulateDistanceMatrix computes the pairwise distance matrix, parallel to
// node order (row i−1 is node i).
func (in *Instance) PopulateDistanceMatrix() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	m, err := matrix.Pairwise(len(in.nodes), func(i, j int) float64 {
		return Distance(in.nodes[i], in.nodes[j])
	}, true)
	if err != nil {
		return fmt.Errorf("distance matrix: %w", err)
	}
	in.dist = m

	return nil
}

// DistanceMatrix returns a copy of the distance matrix, if populated.
func (in *Instance) DistanceMatrix() (*matrix.Dense, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if in.dist == nil {
		return nil, false
	}

	return in.dist.Clone().(*matrix.Dense), true
}

// Record stores p under key, replacing a previous run of the same producer.
func (in *Instance) Record(key ResultKey, p Path) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.results[key] = p
}

// Result returns the path recorded under key.
func (in *Instance) Result(key ResultKey) (Path, error) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	p, ok := in.results[key]
	if !ok {
		return Path{}, fmt.Errorf("result %q: %w", key, ErrResultNotFound)
	}

	return p, nil
}

// ResultKeys returns the recorded keys in sorted order.
func (in *Instance) ResultKeys() []ResultKey {
	in.mu.RLock()
	defer in.mu.RUnlock()
	keys := make([]ResultKey, 0, len(in.results))
	for k := range in.results {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// SetSolveTime records the wall time of the last exact solve.
func (in *Instance) SetSolveTime(d time.Duration) {
	in.mu.Lock()
	in.solveTime = d
	in.mu.Unlock()
}

// SolveTime returns the wall time of the last exact solve.
func (in *Instance) SolveTime() time.Duration {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return in.solveTime
}

// Bounds returns the axis-aligned bounding box of the nodes.
func (in *Instance) Bounds() geom.Rect {
	in.mu.RLock()
	defer in.mu.RUnlock()
	r := geom.Rect{Min: in.nodes[0].c, Max: in.nodes[0].c}
	for _, p := range in.nodes[1:] {
		r.ExpandToContainCoord(p.c)
	}

	return r
}

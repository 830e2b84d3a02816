// Package core: sentinel errors, tie reporting, fitness tags and result keys.
//
// Errors:
//
//	ErrInvalidInput       - input violates a size or shape contract.
//	ErrDegenerateGeometry - an angle was requested on a zero-length ray.
//	ErrAmbiguousTie       - a selector met a tie it does not resolve.
//	ErrDuplicatePoint     - two nodes of an instance share coordinates.
//	ErrNodeNotFound       - a 1-based node index is out of range.
//	ErrEdgeNotFound       - a 1-based edge id is out of range.
//	ErrResultNotFound     - no result was recorded under a key.
//	ErrNotRelative        - a per-node edge view was requested on non-relative edges.
//	ErrFitnessRevert      - an update tried to turn a Bad edge Good again.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrInvalidInput indicates the input violates a size or shape contract.
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrDegenerateGeometry indicates an angle computation on a zero-length ray.
	ErrDegenerateGeometry = errors.New("core: degenerate geometry")

	// ErrAmbiguousTie indicates a tie or unmatched case left unresolved on purpose.
	ErrAmbiguousTie = errors.New("core: ambiguous tie")

	// ErrDuplicatePoint indicates two nodes share the same coordinates.
	ErrDuplicatePoint = errors.New("core: duplicate point")

	// ErrNodeNotFound indicates a node index outside 1..n.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an edge id outside 1..m.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrResultNotFound indicates no result path under the requested key.
	ErrResultNotFound = errors.New("core: result not found")

	// ErrNotRelative indicates the instance edge set does not hold both directions.
	ErrNotRelative = errors.New("core: edges are not relative")

	// ErrFitnessRevert indicates an attempt to move an edge from Bad back to Good.
	ErrFitnessRevert = errors.New("core: fitness cannot revert to good")
)

// TieError reports a tie the caller has to resolve with its own policy.
// It matches ErrAmbiguousTie under errors.Is.
type TieError struct {
	// Length is the shared length when the tie is between equal lengths,
	// otherwise the length of the reference edge.
	Length float64

	// Node is the 1-based node the tie was found at; 0 when not node-specific.
	Node int

	// Reason describes the unresolved case.
	Reason string
}

// Error implements error.
func (e *TieError) Error() string {
	if e.Node > 0 {
		return fmt.Sprintf("core: ambiguous tie at node %d (length %g): %s", e.Node, e.Length, e.Reason)
	}

	return fmt.Sprintf("core: ambiguous tie (length %g): %s", e.Length, e.Reason)
}

// Is reports whether target is ErrAmbiguousTie.
func (e *TieError) Is(target error) bool { return target == ErrAmbiguousTie }

// Fitness is the pruner's retain/discard tag. Edges start Good and may only
// move to Bad.
type Fitness uint8

const (
	// Good marks a retained edge.
	Good Fitness = iota
	// Bad marks a discarded edge.
	Bad
)

// String returns "good" or "bad".
func (f Fitness) String() string {
	if f == Bad {
		return "bad"
	}

	return "good"
}

// ResultKey names an entry of Instance results.
type ResultKey string

// Result keys written by the solvers.
const (
	ResultConvexHull      ResultKey = "convex_hull"
	ResultBruteForce      ResultKey = "brute_force"
	ResultOptimalSolution ResultKey = "optimal_solution"
)

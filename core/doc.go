// Package core provides the geometric primitives of opentsp and the
// Instance aggregate the solvers operate on.
//
// The types are:
//
//   - Point    — immutable (x, y) value with an optional density annotation.
//     Equality and hashing use the coordinate pair only.
//   - Edge     — two endpoints, a directed flag, an eagerly computed length,
//     a Good/Bad fitness tag and a pruner-populated angle.
//   - Path     — immutable ordered sequence of points (tour or hull boundary),
//     equal under rotation, direction-sensitive.
//   - PathBuilder — the mutable list algorithms fill before freezing a Path.
//   - Instance — 1-based contiguous nodes, a canonical edge store, an optional
//     distance matrix and the named result paths.
//
// Geometry helpers:
//
//	Distance(a, b)                  Euclidean norm of b−a.
//	SignedAngle(vertex, start, dest) degrees in (−180, 180], anti-clockwise positive.
//
// Concurrency:
//
//	Point, Edge and Path are values and safe to share. Instance guards its
//	edge store, results and derived data with a sync.RWMutex; every accessor
//	returns a copy, so callers never alias internal state.
//
// Quick ASCII example (square instance, nodes 1..4):
//
//	2 (0,10) ─── 3 (10,10)
//	  │             │
//	1 (0,0)  ─── 4 (10,0)
//
// The optimal tour is the perimeter, length 40.
package core

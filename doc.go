// Package opentsp is a small toolkit for exploring the Travelling Salesman
// Problem on planar point sets: exact tours for small instances, convex
// hulls, and a geometric edge pruner that narrows the candidate edge set.
//
// Everything is organized under these subpackages:
//
//	core/    — Point, Edge, Path and the Instance aggregate the solvers share
//	matrix/  — bounds-checked dense distance matrices
//	builder/ — instance construction from seeds, explicit points or CSV
//	tsp/     — brute-force exact solver with early cutoff and a size guard
//	hull/    — monotone-chain convex hull
//	prune/   — diamond edge pruner over the relative edge set
//	solve/   — runs the selected stages over one instance and records results
//	config/  — TOML + environment configuration for the command
//	cmd/opentsp — command-line entry point
//
// Quick ASCII example (node indices are 1-based):
//
//	2───3
//	│   │
//	1───4
//
// The exact tour of this square is 4 → 1 → 2 → 3 → 4: the highest-index node
// anchors every candidate tour.
//
// Instances above 11 nodes are refused by the exact solver unless the caller
// opts in explicitly; the enumeration grows as (n−1)!.
//
//	go run github.com/katalvlaran/opentsp/cmd/opentsp -config opentsp.toml
package opentsp

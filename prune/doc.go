// Package prune implements the "diamond" edge pruner.
//
// The pruner reduces the candidate edge set of an instance with relative
// edges (both directions stored) to a handful of edges per node:
//
//  1. Every edge is annotated with its signed angle, at its origin, between
//     the ray towards the instance centroid and the ray along the edge.
//  2. Per node, the outgoing Good edges are sorted by angle and swept: an
//     interior edge longer than the last retained edge before it, or than the
//     edge right after it, is discarded. Sweeps repeat until at most four
//     edges remain or a sweep discards nothing.
//  3. With exactly three edges left, a terminal rule drops one of them using
//     the divergence of the outer edges from the middle one and their lengths.
//
// Cases the rule does not resolve are reported as *core.TieError values in
// Report.Ambiguous; the edges involved stay Good. Nodes still holding more
// than four edges at a fixed point keep them and are listed in
// Report.Saturated.
//
// Discarded edges are tagged core.Bad in the instance edge store. Fitness
// only moves from Good to Bad, so running Diamond again is a no-op on the
// edge set.
//
// Complexity: O(n² log n) for the annotation and sort plus O(n²) per sweep.
package prune

// Package hull computes the convex hull of a point set with Andrew's
// monotone chain.
//
// Points are sorted lexicographically by (X, Y) and folded twice through
// keepLeft: forward for the lower chain, in reverse for the upper chain. A
// point survives only if it makes a strict left turn, so collinear middle
// points are dropped and duplicates collapse. The result is a closed,
// counter-clockwise core.Path starting at the lexicographically smallest point.
//
// Complexity: O(n log n) time, O(n) space.
package hull

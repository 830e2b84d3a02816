// Package matrix holds the distance model of an instance.
//
// The package provides:
//
//   - Matrix, a minimal bounds-checked interface over a two-dimensional array
//     of float64 values.
//   - Dense, a row-major implementation stored in a single flat slice.
//   - Pairwise, which materializes an n×n distance matrix from any distance
//     function over indices 0..n-1.
//
// Distance matrices are parallel to node iteration order: row/column i holds
// the node at 1-based index i+1. They are best for the small instances this
// module targets, where O(n²) memory is negligible.
package matrix

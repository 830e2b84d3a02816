// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinel errors. Callers match them with errors.Is; Dense methods wrap
// them with the method name and indices.
var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare indicates a distance matrix with rows != cols.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf indicates a non-finite distance.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilFunc indicates that Pairwise was called without a distance function.
	ErrNilFunc = errors.New("matrix: nil distance function")
)

package matrix

import (
	"fmt"
	"math"
)

// Pairwise builds the n×n matrix whose cell (i, j) holds dist(i, j).
//
// Contract:
//   - n > 0, dist non-nil.
//   - The diagonal is written as exactly 0 without calling dist.
//   - Every off-diagonal value must be finite; otherwise ErrNaNInf.
//   - When symmetric is true, dist is evaluated once per unordered pair and
//     mirrored, so the result is bit-for-bit symmetric.
//
// Complexity: O(n²) time and memory.
func Pairwise(n int, dist DistanceFunc, symmetric bool) (*Dense, error) {
	if dist == nil {
		return nil, ErrNilFunc
	}
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal stays 0
			}
			if symmetric && j < i {
				m.cells[i*n+j] = m.cells[j*n+i]
				continue
			}
			d = dist(i, j)
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return nil, fmt.Errorf("Pairwise(%d,%d): %w", i, j, ErrNaNInf)
			}
			m.cells[i*n+j] = d
		}
	}

	return m, nil
}

// ValidateSquare returns ErrNonSquare unless m has as many rows as columns.
func ValidateSquare(m Matrix) error {
	if m == nil || m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}

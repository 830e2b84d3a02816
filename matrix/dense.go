package matrix

import (
	"fmt"
	"strings"
)

// Dense stores rows×cols float64 cells in one row-major slice.
type Dense struct {
	rows, cols int
	cells      []float64 // len == rows*cols
}

// NewDense returns a zero-filled rows×cols matrix.
//
// Errors: ErrInvalidDimensions unless both sizes are positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{rows: rows, cols: cols, cells: make([]float64, rows*cols)}, nil
}

// Rows implements Matrix.
func (m *Dense) Rows() int { return m.rows }

// Cols implements Matrix.
func (m *Dense) Cols() int { return m.cols }

// offset maps (i, j) onto cells, wrapping ErrOutOfRange with op and indices.
func (m *Dense) offset(op string, i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", op, i, j, ErrOutOfRange)
	}

	return i*m.cols + j, nil
}

// At implements Matrix. Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	k, err := m.offset("At", i, j)
	if err != nil {
		return 0, err
	}

	return m.cells[k], nil
}

// Set implements Matrix. Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	k, err := m.offset("Set", i, j)
	if err != nil {
		return err
	}
	m.cells[k] = v

	return nil
}

// Row copies row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if _, err := m.offset("Row", i, 0); err != nil {
		return nil, err
	}

	return append([]float64(nil), m.cells[i*m.cols:(i+1)*m.cols]...), nil
}

// Rows2D copies the whole matrix into nested slices.
func (m *Dense) Rows2D() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = append([]float64(nil), m.cells[i*m.cols:(i+1)*m.cols]...)
	}

	return out
}

// Clone implements Matrix with an independent copy of the cells.
// Complexity: O(rows·cols).
func (m *Dense) Clone() Matrix {
	return &Dense{rows: m.rows, cols: m.cols, cells: append([]float64(nil), m.cells...)}
}

// String prints one bracketed row per line, cells in %g.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j, v := range m.cells[i*m.cols : (i+1)*m.cols] {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

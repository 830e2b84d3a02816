package matrix

// Matrix is the read/write view the solvers take distances through.
// Indices are 0-based; implementations bounds-check every access.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns cell (i, j), or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set writes cell (i, j), or returns ErrOutOfRange.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}

// DistanceFunc returns the distance between the items at 0-based indices i and j.
type DistanceFunc func(i, j int) float64

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/opentsp/matrix"
	"github.com/stretchr/testify/require"
)

func TestPairwise_Symmetric(t *testing.T) {
	xs := []float64{0, 3, 7}
	calls := 0
	m, err := matrix.Pairwise(len(xs), func(i, j int) float64 {
		calls++
		return math.Abs(xs[i] - xs[j])
	}, true)
	require.NoError(t, err)
	require.Equal(t, 3, calls) // one evaluation per unordered pair
	require.Equal(t, [][]float64{
		{0, 3, 7},
		{3, 0, 4},
		{7, 4, 0},
	}, m.Rows2D())
	require.NoError(t, matrix.ValidateSquare(m))
}

func TestPairwise_Asymmetric(t *testing.T) {
	m, err := matrix.Pairwise(2, func(i, j int) float64 { return float64(10*i + j) }, false)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1}, {10, 0}}, m.Rows2D())
}

func TestPairwise_Errors(t *testing.T) {
	_, err := matrix.Pairwise(2, nil, true)
	require.ErrorIs(t, err, matrix.ErrNilFunc)

	_, err = matrix.Pairwise(0, func(i, j int) float64 { return 0 }, true)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Pairwise(2, func(i, j int) float64 { return math.NaN() }, true)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNonSquare)
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
}

package tsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opentsp/core"
	"github.com/katalvlaran/opentsp/tsp"
)

func TestTourOrderAndValidate(t *testing.T) {
	in := mustInstance(t, pts(0, 0, 0, 10, 10, 10, 10, 0))
	res, err := tsp.SolveExact(context.Background(), in, tsp.Options{})
	require.NoError(t, err)

	order, err := tsp.TourOrder(in, res.Path)
	require.NoError(t, err)
	require.Equal(t, []int{4, 1, 2, 3, 4}, order)
	require.NoError(t, tsp.ValidateTour(in, res.Path))

	require.NoError(t, in.PopulateDistanceMatrix())
	m, ok := in.DistanceMatrix()
	require.True(t, ok)
	cost, err := tsp.TourCost(m, order)
	require.NoError(t, err)
	require.InDelta(t, res.Length, cost, 1e-12)
}

func TestValidateTour_Rejects(t *testing.T) {
	in := mustInstance(t, pts(0, 0, 0, 10, 10, 10, 10, 0))
	cases := map[string]core.Path{
		"open":         core.NewPath(pts(0, 0, 0, 10, 10, 10, 10, 0)...),
		"short":        core.NewPath(pts(0, 0, 0, 10, 10, 10, 0, 0)...),
		"repeat":       core.NewPath(pts(0, 0, 0, 10, 0, 10, 10, 0, 0, 0)...),
		"foreign":      core.NewPath(pts(0, 0, 0, 10, 10, 10, 5, 5, 0, 0)...),
		"wrong ending": core.NewPath(pts(0, 0, 0, 10, 10, 10, 10, 0, 0, 10)...),
	}
	for name, p := range cases {
		require.ErrorIs(t, tsp.ValidateTour(in, p), tsp.ErrInvalidTour, name)
	}
}

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opentsp/core"
)

func TestPoint_EqualityIgnoresDensity(t *testing.T) {
	p := core.NewPoint(1, 2)
	q := core.NewPoint(1, 2).WithDensity(0.3)

	require.True(t, p.Equal(q))
	require.Equal(t, p.Key(), q.Key())
	_, ok := p.Density()
	require.False(t, ok)
	d, ok := q.Density()
	require.True(t, ok)
	require.Equal(t, 0.3, d)

	require.False(t, p.Equal(core.NewPoint(2, 1)))
	require.Equal(t, "(1, 2)", p.String())
}

func TestPoint_LessIsLexicographic(t *testing.T) {
	require.True(t, core.NewPoint(0, 5).Less(core.NewPoint(1, 0)))
	require.True(t, core.NewPoint(1, 0).Less(core.NewPoint(1, 1)))
	require.False(t, core.NewPoint(1, 1).Less(core.NewPoint(1, 1)))
}

func TestDistance(t *testing.T) {
	require.Equal(t, 5.0, core.Distance(core.NewPoint(0, 0), core.NewPoint(3, 4)))
	require.Equal(t, 0.0, core.Distance(core.NewPoint(7, 7), core.NewPoint(7, 7)))
}

func TestSignedAngle(t *testing.T) {
	origin := core.NewPoint(0, 0)
	east := core.NewPoint(1, 0)
	north := core.NewPoint(0, 1)
	west := core.NewPoint(-1, 0)

	cases := []struct {
		name        string
		start, dest core.Point
		want        float64
	}{
		{"anticlockwise right angle", east, north, 90},
		{"clockwise right angle", north, east, -90},
		{"straight angle stays positive", east, west, 180},
		{"straight angle from the other side", west, east, 180},
		{"wraps below -180", core.NewPoint(-1, 1), core.NewPoint(-1, -1), 90},
		{"same ray", east, core.NewPoint(5, 0), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := core.SignedAngle(origin, tc.start, tc.dest)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)
			require.Greater(t, got, -180.0)
			require.LessOrEqual(t, got, 180.0)
		})
	}
}

func TestSignedAngle_Degenerate(t *testing.T) {
	o := core.NewPoint(2, 2)
	_, err := core.SignedAngle(o, o, core.NewPoint(3, 3))
	require.ErrorIs(t, err, core.ErrDegenerateGeometry)

	_, err = core.SignedAngle(o, core.NewPoint(3, 3), o)
	require.ErrorIs(t, err, core.ErrDegenerateGeometry)
}

func TestEdge_LengthAndMidpoint(t *testing.T) {
	e := core.NewEdge(core.NewPoint(2, 3), core.NewPoint(6, 7))

	require.InDelta(t, math.Sqrt(32), e.Length(), 1e-12)
	require.InDelta(t, 5.65685, e.Length(), 1e-5)
	require.True(t, e.Midpoint().Equal(core.NewPoint(4, 5)))
	require.False(t, e.Directed)
	require.Equal(t, core.Good, e.Fitness)
	require.Len(t, e.Nodes(), 2)

	// a literal without a cached length still reports the right value
	lit := core.Edge{NodeOne: core.NewPoint(0, 0), NodeTwo: core.NewPoint(0, 2)}
	require.Equal(t, 2.0, lit.Length())
}

func TestEdge_Equality(t *testing.T) {
	a, b := core.NewPoint(0, 0), core.NewPoint(1, 1)

	require.True(t, core.NewEdge(a, b).Equal(core.NewEdge(b, a)))
	require.True(t, core.NewDirectedEdge(a, b).Equal(core.NewDirectedEdge(a, b)))
	require.False(t, core.NewDirectedEdge(a, b).Equal(core.NewDirectedEdge(b, a)))
	require.False(t, core.NewEdge(a, b).Equal(core.NewEdge(a, core.NewPoint(2, 2))))
}

func TestEdge_Less(t *testing.T) {
	short := core.NewEdge(core.NewPoint(0, 0), core.NewPoint(1, 0))
	long := core.NewEdge(core.NewPoint(0, 0), core.NewPoint(2, 0))
	twin := core.NewEdge(core.NewPoint(5, 5), core.NewPoint(6, 5))

	require.True(t, short.Less(long))
	require.False(t, long.Less(short))
	// equal lengths are unordered both ways
	require.False(t, short.Less(twin))
	require.False(t, twin.Less(short))
}

func TestFitness_String(t *testing.T) {
	require.Equal(t, "good", core.Good.String())
	require.Equal(t, "bad", core.Bad.String())
}

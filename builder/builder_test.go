package builder_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opentsp/builder"
	"github.com/katalvlaran/opentsp/core"
)

func TestSeedSource_Deterministic(t *testing.T) {
	a, err := builder.NewInstance(builder.SeedSource(10, 12345678))
	require.NoError(t, err)
	b, err := builder.NewInstance(builder.SeedSource(10, 12345678))
	require.NoError(t, err)

	require.Equal(t, a.Nodes(), b.Nodes())
	require.Equal(t, int64(12345678), a.Seed)
	require.NotEqual(t, a.ID, b.ID)

	for _, p := range a.Nodes() {
		require.GreaterOrEqual(t, p.X(), 0.0)
		require.Less(t, p.X(), 100.0)
		require.Equal(t, float64(int(p.Y())), p.Y(), "integer coordinates")
	}
}

func TestRandomSource_RecordsEightDigitSeed(t *testing.T) {
	in, err := builder.NewInstance(builder.RandomSource(6))
	require.NoError(t, err)
	require.Equal(t, 6, in.NumNodes())
	require.GreaterOrEqual(t, in.Seed, builder.SeedMin)
	require.LessOrEqual(t, in.Seed, builder.SeedMax)

	again, err := builder.NewInstance(builder.SeedSource(6, in.Seed))
	require.NoError(t, err)
	require.Equal(t, in.Nodes(), again.Nodes(), "recorded seed recreates the instance")
}

func TestRandomSource_WithSeedMatchesSeedSource(t *testing.T) {
	a, err := builder.NewInstance(builder.RandomSource(7), builder.WithSeed(87654321))
	require.NoError(t, err)
	b, err := builder.NewInstance(builder.SeedSource(7, 87654321))
	require.NoError(t, err)
	require.Equal(t, a.Nodes(), b.Nodes())
	require.Equal(t, a.Seed, b.Seed)

	c, err := builder.NewInstance(builder.RandomSource(7), builder.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)
	require.Zero(t, c.Seed)
}

func TestSources_Validation(t *testing.T) {
	_, err := builder.NewInstance(builder.RandomSource(2))
	require.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.NewInstance(builder.SeedSource(2, 11111111))
	require.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.NewInstance(builder.SeedSource(5, 0))
	require.ErrorIs(t, err, builder.ErrInvalidSeed)

	_, err = builder.NewInstance(nil)
	require.ErrorIs(t, err, builder.ErrNilSource)

	_, err = builder.NewInstance(builder.RandomSource(5), builder.WithBounds(0, 2))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSource_FillsSmallRange(t *testing.T) {
	in, err := builder.NewInstance(builder.RandomSource(4), builder.WithBounds(0, 2), builder.WithSeed(22222222))
	require.NoError(t, err)
	require.ElementsMatch(t, []core.Point{
		core.NewPoint(0, 0), core.NewPoint(0, 1), core.NewPoint(1, 0), core.NewPoint(1, 1),
	}, in.Nodes())
}

func TestNewInstance_DerivedData(t *testing.T) {
	in, err := builder.NewInstance(builder.SeedSource(5, 13579246),
		builder.WithRelativeEdges(true),
		builder.WithDistanceMatrix(true),
		builder.WithNodeDensities(true))
	require.NoError(t, err)

	require.True(t, in.RelativeEdges())
	require.Equal(t, 20, in.NumEdges())
	m, ok := in.DistanceMatrix()
	require.True(t, ok)
	require.Equal(t, 5, m.Rows())
	require.Len(t, in.Densities(), 5)

	plain, err := builder.NewInstance(builder.SeedSource(5, 13579246))
	require.NoError(t, err)
	require.Equal(t, 10, plain.NumEdges())
	_, ok = plain.DistanceMatrix()
	require.False(t, ok)
}

func TestListSource(t *testing.T) {
	pts := []core.Point{core.NewPoint(0, 0), core.NewPoint(3, 4), core.NewPoint(-1, 2.5)}
	in, err := builder.NewInstance(builder.ListSource(pts))
	require.NoError(t, err)
	require.Equal(t, pts, in.Nodes())
	require.Zero(t, in.Seed)

	_, err = builder.NewInstance(builder.ListSource(nil))
	require.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.NewInstance(builder.ListSource(append(pts, core.NewPoint(3, 4))))
	require.ErrorIs(t, err, core.ErrDuplicatePoint)
}

func TestReaderSource(t *testing.T) {
	in, err := builder.NewInstance(builder.ReaderSource(strings.NewReader("id,X, y\n1,0,0\n2,10.5,2\n3, 4 ,7\n")))
	require.NoError(t, err)
	require.Equal(t, []core.Point{core.NewPoint(0, 0), core.NewPoint(10.5, 2), core.NewPoint(4, 7)}, in.Nodes())

	bad := []struct {
		name, data string
	}{
		{"missing column", "x,z\n1,2\n"},
		{"bad number", "x,y\n1,abc\n"},
		{"short row", "x,y\n1\n"},
		{"not finite", "x,y\n1,NaN\n"},
	}
	for _, tc := range bad {
		_, err := builder.NewInstance(builder.ReaderSource(strings.NewReader(tc.data)))
		require.ErrorIs(t, err, builder.ErrCSVFormat, tc.name)
	}

	for _, data := range []string{"", "x,y\n"} {
		_, err = builder.NewInstance(builder.ReaderSource(strings.NewReader(data)))
		require.ErrorIs(t, err, builder.ErrTooFewNodes)
	}
}

func TestCSVSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n1,1\n5,1\n3,4\n"), 0o600))

	in, err := builder.NewInstance(builder.CSVSource(path), builder.WithRelativeEdges(true))
	require.NoError(t, err)
	require.Equal(t, 3, in.NumNodes())
	require.Equal(t, 6, in.NumEdges())

	_, err = builder.NewInstance(builder.CSVSource(filepath.Join(t.TempDir(), "missing.csv")))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { builder.WithSeed(0) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithBounds(5, 5) })
}

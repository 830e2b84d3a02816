package builder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrawSeed_EightDigits(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := drawSeed()
		require.GreaterOrEqual(t, s, int64(SeedMin))
		require.LessOrEqual(t, s, int64(SeedMax))
	}
}

func TestRngFromSeed_Deterministic(t *testing.T) {
	a, b := rngFromSeed(12345678), rngFromSeed(12345678)
	for i := 0; i < 32; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestResolveRNG(t *testing.T) {
	cfg := newBuilderConfig(WithSeed(42))
	r, seed := resolveRNG(cfg)
	require.Equal(t, int64(42), seed)
	require.Equal(t, rngFromSeed(42).Int63(), r.Int63())

	_, drawn := resolveRNG(newBuilderConfig())
	require.GreaterOrEqual(t, drawn, int64(SeedMin))
}

func TestDrawInt_HalfOpen(t *testing.T) {
	r := rngFromSeed(7)
	for i := 0; i < 1000; i++ {
		v := drawInt(r, -3, 2)
		require.GreaterOrEqual(t, v, -3)
		require.Less(t, v, 2)
	}
}

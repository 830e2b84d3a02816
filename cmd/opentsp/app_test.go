package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/opentsp/config"
	"github.com/katalvlaran/opentsp/tsp"
)

func TestNewLogger(t *testing.T) {
	l, err := newLogger(config.LogConfig{Level: "warn", Format: "console"})
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Core().Enabled(zapcore.WarnLevel))

	_, err = newLogger(config.LogConfig{Level: "loud", Format: "json"})
	require.Error(t, err)
}

func TestRun_SeedInstance(t *testing.T) {
	cfg := config.Default()
	cfg.Instance.Source = config.SourceSeed
	cfg.Instance.Nodes = 6
	cfg.Instance.Seed = 12345678

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &cfg, zap.NewNop(), &out))

	text := out.String()
	require.Contains(t, text, "seed 12345678, 6 nodes")
	require.Contains(t, text, "convex_hull: length")
	require.Contains(t, text, "brute_force: length")
	require.Contains(t, text, "optimal_solution: length")
	require.Contains(t, text, "120 tours evaluated")
	require.NotContains(t, text, "diamond prune:")
}

func TestRun_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n0,0\n0,10\n10,10\n10,0\n"), 0o600))

	cfg := config.Default()
	cfg.Instance.Source = config.SourceCSV
	cfg.Instance.CSVPath = path

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &cfg, zap.NewNop(), &out))
	require.Contains(t, out.String(), "brute_force: length 40.0000")
	require.Contains(t, out.String(), "order [4 1 2 3 4]")
}

func TestRun_Prune(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rectangle.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n0,0\n0,4\n8,4\n8,0\n"), 0o600))

	cfg := config.Default()
	cfg.Instance.Source = config.SourceCSV
	cfg.Instance.CSVPath = path
	cfg.Solve.Prune = true

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &cfg, zap.NewNop(), &out))
	require.Contains(t, out.String(), "diamond prune: 8 of 12 edges retained")
	require.NotContains(t, out.String(), "unresolved")
}

func TestRun_SizeGuard(t *testing.T) {
	cfg := config.Default()
	cfg.Instance.Nodes = 12

	var out bytes.Buffer
	err := run(context.Background(), &cfg, zap.NewNop(), &out)
	require.ErrorIs(t, err, tsp.ErrSizeGuardExceeded)
}

func TestSolveOptions(t *testing.T) {
	sc := config.Default().Solve
	sc.SizeGuard = 9
	sc.Workers = 3
	opts := solveOptions(sc, zap.NewNop())
	require.True(t, opts.ConvexHull)
	require.True(t, opts.BruteForce)
	require.Equal(t, 9, opts.Exact.SizeGuard)
	require.Equal(t, 3, opts.Exact.Workers)
	require.Equal(t, 3, opts.Pruner.Workers)
}

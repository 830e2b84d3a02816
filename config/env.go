package config

import (
	"fmt"
	"strconv"
	"time"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "OPENTSP_"

type envBinding struct {
	key string
	set func(c *Config, v string) error
}

func str(dst func(*Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*dst(c) = v
		return nil
	}
}

func integer(dst func(*Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst(c) = n
		return nil
	}
}

func boolean(dst func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst(c) = b
		return nil
	}
}

// envBindings maps OPENTSP_<SECTION>_<KEY> to config fields.
var envBindings = []envBinding{
	{"INSTANCE_SOURCE", str(func(c *Config) *string { return &c.Instance.Source })},
	{"INSTANCE_NODES", integer(func(c *Config) *int { return &c.Instance.Nodes })},
	{"INSTANCE_SEED", func(c *Config, v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		c.Instance.Seed = n
		return nil
	}},
	{"INSTANCE_CSV_PATH", str(func(c *Config) *string { return &c.Instance.CSVPath })},
	{"INSTANCE_LOWER", integer(func(c *Config) *int { return &c.Instance.Lower })},
	{"INSTANCE_UPPER", integer(func(c *Config) *int { return &c.Instance.Upper })},
	{"INSTANCE_RELATIVE_EDGES", boolean(func(c *Config) *bool { return &c.Instance.RelativeEdges })},
	{"INSTANCE_DISTANCE_MATRIX", boolean(func(c *Config) *bool { return &c.Instance.DistanceMatrix })},
	{"INSTANCE_NODE_DENSITIES", boolean(func(c *Config) *bool { return &c.Instance.NodeDensities })},
	{"SOLVE_CONVEX_HULL", boolean(func(c *Config) *bool { return &c.Solve.ConvexHull })},
	{"SOLVE_BRUTE_FORCE", boolean(func(c *Config) *bool { return &c.Solve.BruteForce })},
	{"SOLVE_PRUNE", boolean(func(c *Config) *bool { return &c.Solve.Prune })},
	{"SOLVE_SIZE_GUARD", integer(func(c *Config) *int { return &c.Solve.SizeGuard })},
	{"SOLVE_ALLOW_LARGE", boolean(func(c *Config) *bool { return &c.Solve.AllowLarge })},
	{"SOLVE_WORKERS", integer(func(c *Config) *int { return &c.Solve.Workers })},
	{"SOLVE_TIMEOUT", func(c *Config, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		c.Solve.Timeout.Duration = d
		return nil
	}},
	{"LOG_LEVEL", str(func(c *Config) *string { return &c.Log.Level })},
	{"LOG_FORMAT", str(func(c *Config) *string { return &c.Log.Format })},
}

// applyEnv overlays every set OPENTSP_* variable onto c.
func applyEnv(c *Config, lookup func(string) (string, bool)) error {
	for _, b := range envBindings {
		v, ok := lookup(EnvPrefix + b.key)
		if !ok {
			continue
		}
		if err := b.set(c, v); err != nil {
			return fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, b.key, v, err)
		}
	}

	return nil
}

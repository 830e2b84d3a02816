// Package config loads the opentsp command configuration.
//
// Sources, later ones overriding earlier ones:
//
//  1. Defaults (see Default).
//  2. A TOML file, when a path is given.
//  3. A .env file, loaded into the process environment without overriding
//     variables that are already set. A missing file is not an error.
//  4. OPENTSP_* environment variables, e.g. OPENTSP_INSTANCE_NODES=9.
//
// The result is validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Instance sources.
const (
	SourceRandom = "random"
	SourceSeed   = "seed"
	SourceCSV    = "csv"
)

// DefaultEnvFile is the .env file Load reads when none is named.
const DefaultEnvFile = ".env"

// Config is the full command configuration.
type Config struct {
	Instance InstanceConfig `toml:"instance"`
	Solve    SolveConfig    `toml:"solve"`
	Log      LogConfig      `toml:"log"`
}

// InstanceConfig selects how the instance is generated.
type InstanceConfig struct {
	Source         string `toml:"source" validate:"oneof=random seed csv"`
	Nodes          int    `toml:"nodes" validate:"gte=0"`
	Seed           int64  `toml:"seed" validate:"required_if=Source seed,gte=0"`
	CSVPath        string `toml:"csv_path" validate:"required_if=Source csv"`
	Lower          int    `toml:"lower" validate:"ltfield=Upper"`
	Upper          int    `toml:"upper"`
	RelativeEdges  bool   `toml:"relative_edges"`
	DistanceMatrix bool   `toml:"distance_matrix"`
	NodeDensities  bool   `toml:"node_densities"`
}

// SolveConfig selects the stages to run.
type SolveConfig struct {
	ConvexHull bool     `toml:"convex_hull"`
	BruteForce bool     `toml:"brute_force"`
	Prune      bool     `toml:"prune"`
	SizeGuard  int      `toml:"size_guard" validate:"gte=0"`
	AllowLarge bool     `toml:"allow_large"`
	Workers    int      `toml:"workers" validate:"gte=0"`
	Timeout    Duration `toml:"timeout"`
}

// LogConfig configures the zap logger built by the command.
type LogConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" validate:"oneof=json console"`
}

// Duration is a time.Duration written as a string ("30s", "5m") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when nothing is set: ten random
// nodes in [0, 100), convex hull and brute force, info-level JSON logs.
func Default() Config {
	return Config{
		Instance: InstanceConfig{
			Source: SourceRandom,
			Nodes:  10,
			Lower:  0,
			Upper:  100,
		},
		Solve: SolveConfig{
			ConvexHull: true,
			BruteForce: true,
			Workers:    1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, the TOML file at path (skipped
// when path is empty), envFile (DefaultEnvFile when empty) and the
// environment, then validates it.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load %s: %w", envFile, err)
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

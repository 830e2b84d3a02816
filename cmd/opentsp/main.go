// Command opentsp generates an instance, solves it and prints a summary.
//
// Usage:
//
//	opentsp [-config opentsp.toml] [-env .env]
//
// See package config for the configuration keys and OPENTSP_* overrides.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/opentsp/config"
	"github.com/katalvlaran/opentsp/tsp"
)

func main() {
	var configPath, envFile string
	flag.StringVar(&configPath, "config", "", "TOML configuration file")
	flag.StringVar(&envFile, "env", config.DefaultEnvFile, ".env file with OPENTSP_* overrides")
	flag.Parse()

	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	if cfg.Solve.Timeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Solve.Timeout.Duration)
		defer cancel()
	}

	if err = run(ctx, cfg, logger, os.Stdout); err != nil {
		if errors.Is(err, tsp.ErrSizeGuardExceeded) {
			fmt.Fprintf(os.Stderr, "%v\nset solve.allow_large = true (or OPENTSP_SOLVE_ALLOW_LARGE=true) to run the search anyway\n", err)
		} else {
			logger.Error("run failed", zap.Error(err))
		}
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}
}

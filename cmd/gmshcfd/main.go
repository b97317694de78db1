// Package main is the gmshcfd command line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/acrovato/gmshcfd/internal/config"
	"github.com/acrovato/gmshcfd/internal/logger"
)

func main() {
	defer logger.Sync()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the run configuration and initializes logging
// before any pipeline work.
func loadConfig(path, logLevel string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, err
	}
	return cfg, nil
}

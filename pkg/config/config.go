// Package config loads the HTTP transport's environment configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"calcudoku/pkg/constants"
)

// Config holds the HTTP server's runtime configuration.
type Config struct {
	Port          string
	PuzzlesFile   string
	DefaultN      int
	MaxIterations int
	DiffCap       int
}

// Load reads configuration from the environment. Calcudoku has no
// credential to validate, but Load still fails closed on malformed
// numeric overrides, so a typo'd env var surfaces at startup rather
// than silently falling back.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", constants.DefaultPort),
		PuzzlesFile:   getEnv("PUZZLES_FILE", constants.DefaultPuzzlesFile),
		DefaultN:      6,
		MaxIterations: 40,
		DiffCap:       0,
	}

	if v := os.Getenv("DEFAULT_N"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < constants.MinN || n > constants.MaxN {
			return nil, fmt.Errorf("config: DEFAULT_N must be an integer in [%d,%d], got %q", constants.MinN, constants.MaxN, v)
		}
		cfg.DefaultN = n
	}

	if v := os.Getenv("MAX_ITER"); v != "" {
		it, err := strconv.Atoi(v)
		if err != nil || it < 0 {
			return nil, fmt.Errorf("config: MAX_ITER must be a non-negative integer, got %q", v)
		}
		cfg.MaxIterations = it
	}

	if v := os.Getenv("DIFF_CAP"); v != "" {
		cap, err := strconv.Atoi(v)
		if err != nil || cap < 0 {
			return nil, fmt.Errorf("config: DIFF_CAP must be a non-negative integer, got %q", v)
		}
		cfg.DiffCap = cap
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

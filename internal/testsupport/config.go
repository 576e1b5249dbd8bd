// Package testsupport provides shared helpers for package tests: temp-dir
// configurations and CSV fixture writers.
package testsupport

import (
	"path/filepath"
	"testing"

	"olist/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.InputDir = filepath.Join(base, "raw")
	cfg.Paths.OutputDir = filepath.Join(base, "cleaned")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithValidStatuses overrides the order status whitelist.
func WithValidStatuses(statuses ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Cleaning.ValidOrderStatuses = statuses
	}
}

// Package config loads, validates, and normalizes the TOML configuration
// that drives the pipeline: input/output directories, raw file names,
// cleaning thresholds, and log output settings.
package config

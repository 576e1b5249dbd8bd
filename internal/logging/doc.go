// Package logging wraps log/slog with the repository's console and JSON
// handlers plus standardized field keys for run, stage, and dataset context.
package logging

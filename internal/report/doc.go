// Package report persists pipeline run history to a SQLite database: one
// row per run plus one row per dataset outcome, queryable from the CLI.
package report

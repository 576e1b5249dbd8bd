// Package dataset provides the in-memory table model shared by every
// pipeline stage, along with CSV load/save and the per-run batch record.
//
// Tables hold all cell values as strings exactly as they appear in the CSV
// files; cleaning stages parse and reformat individual cells but the table
// itself stays untyped. A Batch carries the tables, per-dataset outcomes,
// and the final master table through a single pipeline run.
package dataset

// Package cleaning implements the per-table cleaning stages: encoding
// repair, timestamp standardization, duplicate removal, range validation,
// and category-median imputation. Each cleaner loads its raw CSV during
// Prepare, transforms the table in place during Execute, and writes the
// cleaned CSV to the configured output directory.
package cleaning

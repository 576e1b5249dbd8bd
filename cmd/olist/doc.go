// Command olist cleans the raw Olist e-commerce CSV exports and merges
// them into a single denormalized master dataset for analytics use.
package main

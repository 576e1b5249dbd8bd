// Package merge builds the denormalized master dataset from the cleaned
// tables: a fixed sequence of left joins keyed on order, customer, product,
// and seller identifiers, per-order payment and review aggregation, a
// geolocation attach on the customer zip prefix, and two derived columns.
package merge

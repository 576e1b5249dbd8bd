// Package pipeline sequences the cleaning stages and the master merge into
// a single guarded batch run, recording outcomes in the report store.
package pipeline

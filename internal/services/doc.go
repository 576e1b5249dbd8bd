// Package services holds the error taxonomy and context plumbing shared by
// pipeline stages.
package services

package stage

import (
	"context"

	"olist/internal/dataset"
)

// Handler describes the contract the pipeline manager needs from each stage.
type Handler interface {
	// Name returns the stage name used for logging and reporting.
	Name() string
	// Prepare loads whatever inputs the stage needs into the batch.
	Prepare(context.Context, *dataset.Batch) error
	// Execute performs the stage's transformation on the batch.
	Execute(context.Context, *dataset.Batch) error
	// HealthCheck reports whether the stage can run at all.
	HealthCheck(context.Context) Health
}

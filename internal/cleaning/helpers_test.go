package cleaning_test

import (
	"context"
	"testing"

	"olist/internal/dataset"
	"olist/internal/stage"
)

// runCleaner loads the stage inputs and executes the stage against a fresh
// batch.
func runCleaner(t *testing.T, handler stage.Handler) *dataset.Batch {
	t.Helper()

	ctx := context.Background()
	batch := dataset.NewBatch("test-run")
	if err := handler.Prepare(ctx, batch); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if err := handler.Execute(ctx, batch); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	return batch
}

func columnValues(t *testing.T, table *dataset.Table, column string) []string {
	t.Helper()

	if !table.HasColumn(column) {
		t.Fatalf("table %s has no column %s", table.Name(), column)
	}
	values := make([]string, 0, table.Len())
	for row := 0; row < table.Len(); row++ {
		values = append(values, table.Value(row, column))
	}
	return values
}

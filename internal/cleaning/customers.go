package cleaning

import (
	"context"
	"log/slog"
	"time"

	"olist/internal/config"
	"olist/internal/dataset"
)

// CustomersCleaner repairs city names and keeps the first row per unique
// customer.
type CustomersCleaner struct {
	base
}

// NewCustomers constructs the customers cleaning stage.
func NewCustomers(cfg *config.Config, logger *slog.Logger) *CustomersCleaner {
	return &CustomersCleaner{newBase(cfg, logger, "clean-customers", dataset.Customers)}
}

func (c *CustomersCleaner) Execute(ctx context.Context, batch *dataset.Batch) error {
	start := time.Now()
	table, err := c.table(batch, dataset.Customers)
	if err != nil {
		return err
	}
	outcome := batch.Outcomes[dataset.Customers]

	outcome.RepairedCells += repairCityColumn(table, "customer_city")
	outcome.DroppedDuplicates += table.DropDuplicatesBy("customer_unique_id")

	return c.finish(ctx, batch, table, outcome, start)
}

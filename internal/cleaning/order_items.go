package cleaning

import (
	"context"
	"log/slog"
	"time"

	"olist/internal/config"
	"olist/internal/dataset"
)

// OrderItemsCleaner standardizes the shipping deadline, drops items with
// negative price or freight, and removes identical rows.
type OrderItemsCleaner struct {
	base
}

// NewOrderItems constructs the order-items cleaning stage.
func NewOrderItems(cfg *config.Config, logger *slog.Logger) *OrderItemsCleaner {
	return &OrderItemsCleaner{newBase(cfg, logger, "clean-order-items", dataset.OrderItems)}
}

func (c *OrderItemsCleaner) Execute(ctx context.Context, batch *dataset.Batch) error {
	start := time.Now()
	table, err := c.table(batch, dataset.OrderItems)
	if err != nil {
		return err
	}
	outcome := batch.Outcomes[dataset.OrderItems]

	outcome.RepairedCells += standardizeTimestamps(table, []string{"shipping_limit_date"})
	outcome.DroppedInvalid += table.Filter(func(row int) bool {
		price, okPrice := parseFloat(table.Value(row, "price"))
		freight, okFreight := parseFloat(table.Value(row, "freight_value"))
		if !okPrice || !okFreight {
			return false
		}
		return price >= 0 && freight >= 0
	})
	outcome.DroppedDuplicates += table.DropDuplicateRows()

	return c.finish(ctx, batch, table, outcome, start)
}

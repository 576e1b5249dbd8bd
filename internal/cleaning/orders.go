package cleaning

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"olist/internal/config"
	"olist/internal/dataset"
)

// orderDateColumns are the five order lifecycle timestamps.
var orderDateColumns = []string{
	"order_purchase_timestamp",
	"order_approved_at",
	"order_delivered_carrier_date",
	"order_delivered_customer_date",
	"order_estimated_delivery_date",
}

// OrdersCleaner standardizes order timestamps, deduplicates on order_id,
// and keeps only orders in a configured status.
type OrdersCleaner struct {
	base
}

// NewOrders constructs the orders cleaning stage.
func NewOrders(cfg *config.Config, logger *slog.Logger) *OrdersCleaner {
	return &OrdersCleaner{newBase(cfg, logger, "clean-orders", dataset.Orders)}
}

func (c *OrdersCleaner) Execute(ctx context.Context, batch *dataset.Batch) error {
	start := time.Now()
	table, err := c.table(batch, dataset.Orders)
	if err != nil {
		return err
	}
	outcome := batch.Outcomes[dataset.Orders]

	outcome.RepairedCells += standardizeTimestamps(table, orderDateColumns)
	outcome.DroppedDuplicates += table.DropDuplicatesBy("order_id")

	valid := c.cfg.ValidStatusSet()
	outcome.DroppedInvalid += table.Filter(func(row int) bool {
		status := strings.ToLower(strings.TrimSpace(table.Value(row, "order_status")))
		_, ok := valid[status]
		return ok
	})

	return c.finish(ctx, batch, table, outcome, start)
}

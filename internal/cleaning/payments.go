package cleaning

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"olist/internal/config"
	"olist/internal/dataset"
)

// PaymentsCleaner drops negative payment values and normalizes payment
// types to lowercase.
type PaymentsCleaner struct {
	base
}

// NewPayments constructs the payments cleaning stage.
func NewPayments(cfg *config.Config, logger *slog.Logger) *PaymentsCleaner {
	return &PaymentsCleaner{newBase(cfg, logger, "clean-payments", dataset.Payments)}
}

func (c *PaymentsCleaner) Execute(ctx context.Context, batch *dataset.Batch) error {
	start := time.Now()
	table, err := c.table(batch, dataset.Payments)
	if err != nil {
		return err
	}
	outcome := batch.Outcomes[dataset.Payments]

	outcome.DroppedInvalid += table.Filter(func(row int) bool {
		value, ok := parseFloat(table.Value(row, "payment_value"))
		return ok && value >= 0
	})
	outcome.RepairedCells += repairColumn(table, "payment_type", func(value string) string {
		return strings.ToLower(strings.TrimSpace(value))
	})

	return c.finish(ctx, batch, table, outcome, start)
}

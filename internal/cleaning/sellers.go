package cleaning

import (
	"context"
	"log/slog"
	"time"

	"olist/internal/config"
	"olist/internal/dataset"
)

// SellersCleaner repairs city names and deduplicates on seller_id.
type SellersCleaner struct {
	base
}

// NewSellers constructs the sellers cleaning stage.
func NewSellers(cfg *config.Config, logger *slog.Logger) *SellersCleaner {
	return &SellersCleaner{newBase(cfg, logger, "clean-sellers", dataset.Sellers)}
}

func (c *SellersCleaner) Execute(ctx context.Context, batch *dataset.Batch) error {
	start := time.Now()
	table, err := c.table(batch, dataset.Sellers)
	if err != nil {
		return err
	}
	outcome := batch.Outcomes[dataset.Sellers]

	outcome.RepairedCells += repairCityColumn(table, "seller_city")
	outcome.DroppedDuplicates += table.DropDuplicatesBy("seller_id")

	return c.finish(ctx, batch, table, outcome, start)
}

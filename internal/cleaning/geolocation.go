package cleaning

import (
	"context"
	"log/slog"
	"time"

	"olist/internal/config"
	"olist/internal/dataset"
)

// GeolocationCleaner repairs city names, deduplicates zip code prefixes,
// and drops rows with out-of-range coordinates.
type GeolocationCleaner struct {
	base
}

// NewGeolocation constructs the geolocation cleaning stage.
func NewGeolocation(cfg *config.Config, logger *slog.Logger) *GeolocationCleaner {
	return &GeolocationCleaner{newBase(cfg, logger, "clean-geolocation", dataset.Geolocation)}
}

func (c *GeolocationCleaner) Execute(ctx context.Context, batch *dataset.Batch) error {
	start := time.Now()
	table, err := c.table(batch, dataset.Geolocation)
	if err != nil {
		return err
	}
	outcome := batch.Outcomes[dataset.Geolocation]

	outcome.RepairedCells += repairCityColumn(table, "geolocation_city")
	outcome.DroppedDuplicates += table.DropDuplicatesBy("geolocation_zip_code_prefix")
	outcome.DroppedInvalid += table.Filter(func(row int) bool {
		lat, okLat := parseFloat(table.Value(row, "geolocation_lat"))
		lng, okLng := parseFloat(table.Value(row, "geolocation_lng"))
		if !okLat || !okLng {
			return false
		}
		return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
	})

	return c.finish(ctx, batch, table, outcome, start)
}

package cleaning

import (
	"context"
	"log/slog"
	"time"

	"olist/internal/config"
	"olist/internal/dataset"
	"olist/internal/services"
)

// dimensionColumns are the physical product attributes imputed with the
// category median when missing.
var dimensionColumns = []string{
	"product_weight_g",
	"product_length_cm",
	"product_height_cm",
	"product_width_cm",
}

// ProductsCleaner deduplicates products, attaches the English category name
// from the translation table, and imputes missing dimensions with the
// category median. Products without a category are not imputed.
type ProductsCleaner struct {
	base
}

// NewProducts constructs the products cleaning stage.
func NewProducts(cfg *config.Config, logger *slog.Logger) *ProductsCleaner {
	return &ProductsCleaner{newBase(cfg, logger, "clean-products", dataset.Products, dataset.Translation)}
}

func (c *ProductsCleaner) Execute(ctx context.Context, batch *dataset.Batch) error {
	start := time.Now()
	table, err := c.table(batch, dataset.Products)
	if err != nil {
		return err
	}
	translation, err := c.table(batch, dataset.Translation)
	if err != nil {
		return err
	}
	outcome := batch.Outcomes[dataset.Products]

	outcome.DroppedDuplicates += table.DropDuplicatesBy("product_id")

	if err := c.attachTranslation(table, translation); err != nil {
		return err
	}
	outcome.ImputedCells += c.imputeDimensions(table)

	// The translation table is exported as-is alongside the other
	// cleaned datasets.
	translationOutcome := batch.Outcomes[dataset.Translation]
	translationOutcome.RowsOut = translation.Len()
	translationOutcome.Duration = time.Since(start)
	batch.SetOutcome(translationOutcome)
	if err := translation.Save(c.cfg.CleanedPath(dataset.Translation)); err != nil {
		return services.Wrap(services.ErrTransient, c.stage, "export", dataset.Translation, err)
	}

	return c.finish(ctx, batch, table, outcome, start)
}

func (c *ProductsCleaner) attachTranslation(table, translation *dataset.Table) error {
	english := make(map[string]string, translation.Len())
	for row := 0; row < translation.Len(); row++ {
		category := translation.Value(row, "product_category_name")
		if category == "" {
			continue
		}
		if _, ok := english[category]; !ok {
			english[category] = translation.Value(row, "product_category_name_english")
		}
	}

	if err := table.AddColumn("product_category_name_english", ""); err != nil {
		return services.Wrap(services.ErrValidation, c.stage, "translate", "add english category column", err)
	}
	for row := 0; row < table.Len(); row++ {
		category := table.Value(row, "product_category_name")
		if name, ok := english[category]; ok {
			table.Set(row, "product_category_name_english", name)
		}
	}
	return nil
}

func (c *ProductsCleaner) imputeDimensions(table *dataset.Table) int {
	medians := make(map[string]map[string]float64, len(dimensionColumns))
	for _, column := range dimensionColumns {
		if !table.HasColumn(column) {
			continue
		}
		byCategory := make(map[string][]float64)
		for row := 0; row < table.Len(); row++ {
			category := table.Value(row, "product_category_name")
			if category == "" {
				continue
			}
			if value, ok := parseFloat(table.Value(row, column)); ok {
				byCategory[category] = append(byCategory[category], value)
			}
		}
		medians[column] = make(map[string]float64, len(byCategory))
		for category, values := range byCategory {
			if m, ok := median(values); ok {
				medians[column][category] = m
			}
		}
	}

	imputed := 0
	for _, column := range dimensionColumns {
		categoryMedians, ok := medians[column]
		if !ok {
			continue
		}
		for row := 0; row < table.Len(); row++ {
			if _, present := parseFloat(table.Value(row, column)); present {
				continue
			}
			category := table.Value(row, "product_category_name")
			if m, known := categoryMedians[category]; known && category != "" {
				table.Set(row, column, formatFloat(m))
				imputed++
			}
		}
	}
	return imputed
}

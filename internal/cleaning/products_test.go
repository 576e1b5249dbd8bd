package cleaning_test

import (
	"os"
	"testing"

	"olist/internal/cleaning"
	"olist/internal/dataset"
	"olist/internal/testsupport"
)

func TestProductsCleaner(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteInput(t, cfg, dataset.Products, [][]string{
		{"product_id", "product_category_name", "product_weight_g", "product_length_cm", "product_height_cm", "product_width_cm"},
		{"p1", "moveis_decoracao", "650", "28", "9", "14"},
		{"p2", "moveis_decoracao", "", "30", "10", "20"},
		{"p3", "moveis_decoracao", "400", "25", "8", "12"},
		{"p4", "", "", "40", "15", "30"},
		{"p1", "moveis_decoracao", "650", "28", "9", "14"},
	})
	testsupport.WriteInput(t, cfg, dataset.Translation, [][]string{
		{"product_category_name", "product_category_name_english"},
		{"moveis_decoracao", "furniture_decor"},
	})

	batch := runCleaner(t, cleaning.NewProducts(cfg, nil))
	table := batch.Table(dataset.Products)

	if table.Len() != 4 {
		t.Fatalf("Len = %d, want 4", table.Len())
	}
	if got := table.Value(0, "product_category_name_english"); got != "furniture_decor" {
		t.Fatalf("english category = %q, want furniture_decor", got)
	}
	if got := table.Value(3, "product_category_name_english"); got != "" {
		t.Fatalf("english category for uncategorized product = %q, want empty", got)
	}

	// The missing weight is filled with the category median of 650 and 400.
	if got := table.Value(1, "product_weight_g"); got != "525" {
		t.Fatalf("imputed weight = %q, want 525", got)
	}
	// No category means no median to impute from.
	if got := table.Value(3, "product_weight_g"); got != "" {
		t.Fatalf("uncategorized weight = %q, want empty", got)
	}

	outcome := batch.Outcomes[dataset.Products]
	if outcome.DroppedDuplicates != 1 {
		t.Fatalf("dropped duplicates = %d, want 1", outcome.DroppedDuplicates)
	}
	if outcome.ImputedCells != 1 {
		t.Fatalf("imputed cells = %d, want 1", outcome.ImputedCells)
	}

	// The translation table is exported alongside the products.
	if _, err := os.Stat(cfg.CleanedPath(dataset.Translation)); err != nil {
		t.Fatalf("translation export missing: %v", err)
	}
	translationOutcome := batch.Outcomes[dataset.Translation]
	if translationOutcome.RowsOut != 1 {
		t.Fatalf("translation rows out = %d, want 1", translationOutcome.RowsOut)
	}
}

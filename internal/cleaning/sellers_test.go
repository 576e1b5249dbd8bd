package cleaning_test

import (
	"testing"

	"olist/internal/cleaning"
	"olist/internal/dataset"
	"olist/internal/testsupport"
)

func TestSellersCleaner(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteInput(t, cfg, dataset.Sellers, [][]string{
		{"seller_id", "seller_zip_code_prefix", "seller_city", "seller_state"},
		{"s1", "14010", "ribeirÃ£o preto", "SP"},
		{"s2", "30130", "belo horizonte", "MG"},
		{"s2", "30130", "belo horizonte", "MG"},
	})

	batch := runCleaner(t, cleaning.NewSellers(cfg, nil))
	table := batch.Table(dataset.Sellers)

	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}
	if got := table.Value(0, "seller_city"); got != "ribeirão preto" {
		t.Fatalf("mojibake not repaired: %q", got)
	}

	outcome := batch.Outcomes[dataset.Sellers]
	if outcome.DroppedDuplicates != 1 {
		t.Fatalf("dropped duplicates = %d, want 1", outcome.DroppedDuplicates)
	}
}

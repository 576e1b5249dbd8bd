package cleaning_test

import (
	"testing"

	"olist/internal/cleaning"
	"olist/internal/dataset"
	"olist/internal/testsupport"
)

func TestCustomersCleaner(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteInput(t, cfg, dataset.Customers, [][]string{
		{"customer_id", "customer_unique_id", "customer_zip_code_prefix", "customer_city", "customer_state"},
		{"c1", "u1", "01310", "sÃ£o paulo", "SP"},
		{"c2", "u2", "30130", "belo horizonte ", "MG"},
		{"c3", "u1", "01310", "sÃ£o paulo", "SP"},
	})

	batch := runCleaner(t, cleaning.NewCustomers(cfg, nil))
	table := batch.Table(dataset.Customers)

	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}
	if got := table.Value(0, "customer_city"); got != "são paulo" {
		t.Fatalf("mojibake not repaired: %q", got)
	}
	if got := table.Value(1, "customer_city"); got != "belo horizonte" {
		t.Fatalf("city not trimmed: %q", got)
	}

	outcome := batch.Outcomes[dataset.Customers]
	if outcome.DroppedDuplicates != 1 {
		t.Fatalf("dropped duplicates = %d, want 1", outcome.DroppedDuplicates)
	}
	// Both sÃ£o paulo cells are repaired before the duplicate is removed.
	if outcome.RepairedCells != 3 {
		t.Fatalf("repaired cells = %d, want 3", outcome.RepairedCells)
	}
}

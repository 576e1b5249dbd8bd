package cleaning_test

import (
	"testing"

	"olist/internal/cleaning"
	"olist/internal/dataset"
	"olist/internal/testsupport"
)

func TestPaymentsCleaner(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteInput(t, cfg, dataset.Payments, [][]string{
		{"order_id", "payment_sequential", "payment_type", "payment_installments", "payment_value"},
		{"o1", "1", "credit_card", "8", "99.33"},
		{"o1", "2", " VOUCHER ", "1", "20"},
		{"o2", "1", "boleto", "1", "-218.04"},
		{"o3", "1", "credit_card", "1", "not-a-number"},
	})

	batch := runCleaner(t, cleaning.NewPayments(cfg, nil))
	table := batch.Table(dataset.Payments)

	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}
	if got := table.Value(1, "payment_type"); got != "voucher" {
		t.Fatalf("payment type not normalized: %q", got)
	}

	outcome := batch.Outcomes[dataset.Payments]
	if outcome.DroppedInvalid != 2 {
		t.Fatalf("dropped invalid = %d, want 2", outcome.DroppedInvalid)
	}
	if outcome.RepairedCells != 1 {
		t.Fatalf("repaired cells = %d, want 1", outcome.RepairedCells)
	}
}

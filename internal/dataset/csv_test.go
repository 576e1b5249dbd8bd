package dataset_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"olist/internal/dataset"
)

func TestReadDropsMalformedRows(t *testing.T) {
	raw := strings.Join([]string{
		"order_id,order_status",
		"o1,delivered",
		"o2,shipped,extra",
		"o3",
		"o4,canceled",
	}, "\n")

	table, dropped, err := dataset.Read("orders", strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if dropped != 2 {
		t.Fatalf("dropped = %d, want 2", dropped)
	}
	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}
	if got := table.Value(1, "order_id"); got != "o4" {
		t.Fatalf("row order wrong: got %q", got)
	}
}

func TestReadStripsByteOrderMark(t *testing.T) {
	raw := "\ufefforder_id,order_status\no1,delivered\n"
	table, _, err := dataset.Read("orders", strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !table.HasColumn("order_id") {
		t.Fatalf("BOM not stripped from header: %v", table.Columns())
	}
}

func TestReadEmptyFile(t *testing.T) {
	if _, _, err := dataset.Read("orders", strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestReadQuotedFields(t *testing.T) {
	raw := "review_id,review_comment_message\nr1,\"chegou antes, recomendo\"\n"
	table, dropped, err := dataset.Read("reviews", strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if dropped != 0 {
		t.Fatalf("dropped = %d, want 0", dropped)
	}
	if got := table.Value(0, "review_comment_message"); got != "chegou antes, recomendo" {
		t.Fatalf("quoted field = %q", got)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	table := mustTable(t, "sellers", []string{"seller_id", "seller_city"},
		[]string{"s1", "sao paulo"},
		[]string{"s2", "campinas"},
	)

	var buf bytes.Buffer
	if err := table.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	reloaded, dropped, err := dataset.Read("sellers", &buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if dropped != 0 || reloaded.Len() != 2 {
		t.Fatalf("round trip lost rows: dropped=%d len=%d", dropped, reloaded.Len())
	}
	if got := reloaded.Value(1, "seller_city"); got != "campinas" {
		t.Fatalf("cell = %q, want campinas", got)
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	table := mustTable(t, "orders", []string{"order_id"}, []string{"o1"})
	path := filepath.Join(t.TempDir(), "nested", "out", "cleaned_orders.csv")
	if err := table.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, _, err := dataset.Load("orders", path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if reloaded.Len() != 1 {
		t.Fatalf("Len = %d, want 1", reloaded.Len())
	}
}

package cleaning_test

import (
	"bytes"
	"context"
	"os"
	"reflect"
	"strings"
	"testing"

	"olist/internal/cleaning"
	"olist/internal/dataset"
	"olist/internal/logging"
	"olist/internal/testsupport"
)

func TestOrdersCleaner(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteInput(t, cfg, dataset.Orders, [][]string{
		{"order_id", "customer_id", "order_status", "order_purchase_timestamp", "order_approved_at", "order_delivered_carrier_date", "order_delivered_customer_date", "order_estimated_delivery_date"},
		{"o1", "c1", "delivered", "2017-10-02 10:56:33", "2017-10-02T11:07:15", "2017-10-04 19:55:00", "2017-10-10 21:25:13", "2017-10-18 00:00:00"},
		{"o1", "c1", "delivered", "2017-10-02 10:56:33", "2017-10-02T11:07:15", "2017-10-04 19:55:00", "2017-10-10 21:25:13", "2017-10-18 00:00:00"},
		{"o2", "c2", "SHIPPED", "2018-01-14 14:33:31", "2018-01-14 14:48:30", "2018-01-16 12:36:48", "########", "2018-02-05 00:00:00"},
		{"o3", "c3", "unavailable", "2018-02-19 22:54:58", "", "", "", "2018-03-15 00:00:00"},
	})

	batch := runCleaner(t, cleaning.NewOrders(cfg, nil))
	table := batch.Table(dataset.Orders)

	if got := columnValues(t, table, "order_id"); !reflect.DeepEqual(got, []string{"o1", "o2"}) {
		t.Fatalf("order ids = %v, want [o1 o2]", got)
	}
	if got := table.Value(0, "order_approved_at"); got != "2017-10-02 11:07:15" {
		t.Fatalf("approved_at not standardized: %q", got)
	}
	if got := table.Value(1, "order_delivered_customer_date"); got != "" {
		t.Fatalf("missing marker survived: %q", got)
	}

	outcome := batch.Outcomes[dataset.Orders]
	if outcome.RowsIn != 4 || outcome.RowsOut != 2 {
		t.Fatalf("rows in/out = %d/%d, want 4/2", outcome.RowsIn, outcome.RowsOut)
	}
	if outcome.DroppedDuplicates != 1 {
		t.Fatalf("dropped duplicates = %d, want 1", outcome.DroppedDuplicates)
	}
	if outcome.DroppedInvalid != 1 {
		t.Fatalf("dropped invalid = %d, want 1", outcome.DroppedInvalid)
	}

	if _, err := os.Stat(cfg.CleanedPath(dataset.Orders)); err != nil {
		t.Fatalf("cleaned file not written: %v", err)
	}
}

func TestOrdersCleanerHonorsConfiguredStatuses(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithValidStatuses("delivered"))
	testsupport.WriteInput(t, cfg, dataset.Orders, [][]string{
		{"order_id", "order_status", "order_purchase_timestamp"},
		{"o1", "delivered", "2017-10-02 10:56:33"},
		{"o2", "shipped", "2018-01-14 14:33:31"},
	})

	batch := runCleaner(t, cleaning.NewOrders(cfg, nil))
	table := batch.Table(dataset.Orders)
	if table.Len() != 1 || table.Value(0, "order_id") != "o1" {
		t.Fatalf("status whitelist not applied: %d rows", table.Len())
	}
}

func TestOrdersCleanerLogsDatasetField(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteInput(t, cfg, dataset.Orders, [][]string{
		{"order_id", "order_status", "order_purchase_timestamp"},
		{"o1", "delivered", "2017-10-02 10:56:33"},
	})

	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New logger failed: %v", err)
	}

	runCleaner(t, cleaning.NewOrders(cfg, logger))

	out := buf.String()
	if !strings.Contains(out, "dataset loaded") || !strings.Contains(out, "dataset cleaned") {
		t.Fatalf("stage log lines missing: %q", out)
	}
	if !strings.Contains(out, "dataset=orders") {
		t.Fatalf("dataset field missing from log output: %q", out)
	}
}

func TestOrdersCleanerHealthCheck(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cleaner := cleaning.NewOrders(cfg, nil)

	if health := cleaner.HealthCheck(context.Background()); health.Ready {
		t.Fatal("expected unhealthy when input file is missing")
	}

	testsupport.WriteInput(t, cfg, dataset.Orders, [][]string{
		{"order_id", "order_status", "order_purchase_timestamp"},
	})
	if health := cleaner.HealthCheck(context.Background()); !health.Ready {
		t.Fatalf("expected healthy once input exists: %s", health.Detail)
	}
}

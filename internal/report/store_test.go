package report_test

import (
	"context"
	"testing"
	"time"

	"olist/internal/dataset"
	"olist/internal/report"
	"olist/internal/testsupport"
)

func TestStartAndFinishRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	run, err := store.StartRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("StartRun failed: %v", err)
	}
	if run.Status != report.RunStatusRunning {
		t.Fatalf("status = %q, want running", run.Status)
	}
	if run.FinishedAt != nil {
		t.Fatal("FinishedAt set on a running run")
	}

	if err := store.FinishRun(ctx, "run-1", report.RunStatusCompleted, "", 118310, 40); err != nil {
		t.Fatalf("FinishRun failed: %v", err)
	}

	fetched, err := store.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("run not found after finish")
	}
	if fetched.Status != report.RunStatusCompleted {
		t.Fatalf("status = %q, want completed", fetched.Status)
	}
	if fetched.MasterRows != 118310 || fetched.MasterColumns != 40 {
		t.Fatalf("master shape = %dx%d", fetched.MasterRows, fetched.MasterColumns)
	}
	if fetched.FinishedAt == nil {
		t.Fatal("FinishedAt not recorded")
	}
}

func TestStartRunRequiresID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if _, err := store.StartRun(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty run id")
	}
}

func TestFinishRunUnknownID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	err := store.FinishRun(context.Background(), "missing", report.RunStatusFailed, "boom", 0, 0)
	if err == nil {
		t.Fatal("expected error for unknown run id")
	}
}

func TestFailedRunKeepsErrorMessage(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := store.StartRun(ctx, "run-err"); err != nil {
		t.Fatalf("StartRun failed: %v", err)
	}
	if err := store.FinishRun(ctx, "run-err", report.RunStatusFailed, "orders table not loaded", 0, 0); err != nil {
		t.Fatalf("FinishRun failed: %v", err)
	}

	fetched, err := store.GetRun(ctx, "run-err")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if fetched.ErrorMessage != "orders table not loaded" {
		t.Fatalf("error message = %q", fetched.ErrorMessage)
	}
}

func TestRecordOutcomeUpserts(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := store.StartRun(ctx, "run-2"); err != nil {
		t.Fatalf("StartRun failed: %v", err)
	}

	outcome := dataset.Outcome{
		Dataset:           dataset.Orders,
		RowsIn:            99441,
		RowsOut:           99440,
		DroppedDuplicates: 1,
		Duration:          125 * time.Millisecond,
	}
	if err := store.RecordOutcome(ctx, "run-2", outcome); err != nil {
		t.Fatalf("RecordOutcome failed: %v", err)
	}

	outcome.RowsOut = 99430
	outcome.DroppedInvalid = 10
	if err := store.RecordOutcome(ctx, "run-2", outcome); err != nil {
		t.Fatalf("RecordOutcome upsert failed: %v", err)
	}

	records, err := store.Outcomes(ctx, "run-2")
	if err != nil {
		t.Fatalf("Outcomes failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	record := records[0]
	if record.RowsOut != 99430 || record.DroppedInvalid != 10 {
		t.Fatalf("upsert not applied: %+v", record)
	}
	if record.Duration != 125*time.Millisecond {
		t.Fatalf("duration = %s", record.Duration)
	}
}

func TestRecordOutcomeRequiresDataset(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if err := store.RecordOutcome(context.Background(), "run-3", dataset.Outcome{}); err == nil {
		t.Fatal("expected error for outcome without dataset name")
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	for _, id := range []string{"run-a", "run-b", "run-c"} {
		if _, err := store.StartRun(ctx, id); err != nil {
			t.Fatalf("StartRun %s failed: %v", id, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	runs, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	if runs[0].ID != "run-c" || runs[1].ID != "run-b" {
		t.Fatalf("order = [%s %s], want [run-c run-b]", runs[0].ID, runs[1].ID)
	}
}

func TestCheckHealth(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if err := store.CheckHealth(context.Background()); err != nil {
		t.Fatalf("CheckHealth failed: %v", err)
	}
}

func TestGetRunMissing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	run, err := store.GetRun(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if run != nil {
		t.Fatalf("expected nil run, got %+v", run)
	}
}

package cleaning_test

import (
	"testing"

	"olist/internal/cleaning"
	"olist/internal/dataset"
	"olist/internal/testsupport"
)

func TestReviewsCleaner(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteInput(t, cfg, dataset.Reviews, [][]string{
		{"review_id", "order_id", "review_score", "review_comment_title", "review_comment_message", "review_creation_date", "review_answer_timestamp"},
		{"r1", "o1", "5", "", "Ã³timo produto", "2017-10-11 00:00:00", "2017-10-12 03:43:48"},
		{"r1", "o1", "5", "", "Ã³timo produto", "2017-10-11 00:00:00", "2017-10-12 03:43:48"},
		{"r2", "o1", "4", "recomendo", "chegou rÃ¡pido", "2017-10-12", "2017-10-13 10:02:01"},
		{"r3", "o2", "9", "", "", "2018-01-20 00:00:00", "2018-01-21 18:30:00"},
		{"r4", "o3", "0", "", "", "2018-01-20 00:00:00", "2018-01-21 18:30:00"},
		{"r5", "o4", "", "", "", "2018-01-20 00:00:00", "2018-01-21 18:30:00"},
	})

	batch := runCleaner(t, cleaning.NewReviews(cfg, nil))
	table := batch.Table(dataset.Reviews)

	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}
	if got := table.Value(0, "review_comment_message"); got != "ótimo produto" {
		t.Fatalf("mojibake not repaired: %q", got)
	}
	if got := table.Value(1, "review_comment_message"); got != "chegou rápido" {
		t.Fatalf("mojibake not repaired: %q", got)
	}
	if got := table.Value(1, "review_creation_date"); got != "2017-10-12 00:00:00" {
		t.Fatalf("date-only timestamp not expanded: %q", got)
	}

	outcome := batch.Outcomes[dataset.Reviews]
	// Scores 9, 0, and empty fall outside the configured 1..5 range.
	if outcome.DroppedInvalid != 3 {
		t.Fatalf("dropped invalid = %d, want 3", outcome.DroppedInvalid)
	}
	if outcome.DroppedDuplicates != 1 {
		t.Fatalf("dropped duplicates = %d, want 1", outcome.DroppedDuplicates)
	}
}

func TestReviewsCleanerScoreBounds(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Cleaning.MinReviewScore = 3
	cfg.Cleaning.MaxReviewScore = 5
	testsupport.WriteInput(t, cfg, dataset.Reviews, [][]string{
		{"review_id", "order_id", "review_score", "review_comment_title", "review_comment_message", "review_creation_date", "review_answer_timestamp"},
		{"r1", "o1", "2", "", "", "", ""},
		{"r2", "o2", "3", "", "", "", ""},
	})

	batch := runCleaner(t, cleaning.NewReviews(cfg, nil))
	table := batch.Table(dataset.Reviews)
	if table.Len() != 1 || table.Value(0, "review_id") != "r2" {
		t.Fatalf("configured score bounds not applied: %d rows", table.Len())
	}
}

package cleaning

import (
	"context"
	"log/slog"
	"time"

	"olist/internal/config"
	"olist/internal/dataset"
	"olist/internal/textutil"
)

// reviewDateColumns are the review lifecycle timestamps.
var reviewDateColumns = []string{"review_creation_date", "review_answer_timestamp"}

// reviewTextColumns carry free-form Portuguese text with mojibake damage.
var reviewTextColumns = []string{"review_comment_title", "review_comment_message"}

// ReviewsCleaner standardizes review timestamps, repairs comment text,
// enforces the score range, and deduplicates on review_id.
type ReviewsCleaner struct {
	base
}

// NewReviews constructs the reviews cleaning stage.
func NewReviews(cfg *config.Config, logger *slog.Logger) *ReviewsCleaner {
	return &ReviewsCleaner{newBase(cfg, logger, "clean-reviews", dataset.Reviews)}
}

func (c *ReviewsCleaner) Execute(ctx context.Context, batch *dataset.Batch) error {
	start := time.Now()
	table, err := c.table(batch, dataset.Reviews)
	if err != nil {
		return err
	}
	outcome := batch.Outcomes[dataset.Reviews]

	outcome.RepairedCells += standardizeTimestamps(table, reviewDateColumns)
	for _, column := range reviewTextColumns {
		outcome.RepairedCells += repairColumn(table, column, textutil.Repair)
	}

	minScore := float64(c.cfg.Cleaning.MinReviewScore)
	maxScore := float64(c.cfg.Cleaning.MaxReviewScore)
	outcome.DroppedInvalid += table.Filter(func(row int) bool {
		score, ok := parseFloat(table.Value(row, "review_score"))
		return ok && score >= minScore && score <= maxScore
	})
	outcome.DroppedDuplicates += table.DropDuplicatesBy("review_id")

	return c.finish(ctx, batch, table, outcome, start)
}

package cleaning

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"olist/internal/config"
	"olist/internal/dataset"
	"olist/internal/logging"
	"olist/internal/services"
	"olist/internal/stage"
	"olist/internal/textutil"
)

// base carries the shared plumbing for per-table cleaners: raw CSV loading,
// input health checks, and cleaned CSV export with outcome bookkeeping.
type base struct {
	cfg    *config.Config
	logger *slog.Logger
	stage  string
	inputs []string
}

func newBase(cfg *config.Config, logger *slog.Logger, stageName string, inputs ...string) base {
	if logger == nil {
		logger = logging.NewNop()
	}
	return base{cfg: cfg, logger: logger, stage: stageName, inputs: inputs}
}

// Name returns the stage name.
func (b *base) Name() string { return b.stage }

// Prepare loads every input dataset the stage declared.
func (b *base) Prepare(ctx context.Context, batch *dataset.Batch) error {
	for _, name := range b.inputs {
		if err := b.load(ctx, batch, name); err != nil {
			return err
		}
	}
	return nil
}

// HealthCheck verifies every declared input file exists.
func (b *base) HealthCheck(_ context.Context) stage.Health {
	for _, name := range b.inputs {
		path := b.cfg.InputPath(name)
		info, err := os.Stat(path)
		if err != nil {
			return stage.Unhealthy(b.stage, fmt.Sprintf("input file %s: %v", path, err))
		}
		if info.IsDir() {
			return stage.Unhealthy(b.stage, fmt.Sprintf("input path %s is a directory", path))
		}
	}
	return stage.Healthy(b.stage)
}

func (b *base) load(ctx context.Context, batch *dataset.Batch, name string) error {
	ctx = services.WithDataset(ctx, name)
	path := b.cfg.InputPath(name)
	table, dropped, err := dataset.Load(name, path)
	if err != nil {
		return services.Wrap(services.ErrNotFound, b.stage, "load", name, err)
	}

	outcome := batch.Outcomes[name]
	outcome.Dataset = name
	outcome.RowsIn = table.Len()
	outcome.DroppedMalformed = dropped
	batch.SetOutcome(outcome)
	batch.Tables[name] = table

	logging.WithContext(ctx, b.logger).Info("dataset loaded",
		logging.Int("rows", table.Len()),
		logging.Int("columns", table.ColumnCount()),
		logging.Int("dropped_malformed", dropped),
	)
	return nil
}

// finish persists the cleaned table and records the stage outcome.
func (b *base) finish(ctx context.Context, batch *dataset.Batch, table *dataset.Table, outcome dataset.Outcome, start time.Time) error {
	ctx = services.WithDataset(ctx, table.Name())
	outcome.RowsOut = table.Len()
	outcome.Duration = time.Since(start)
	batch.SetOutcome(outcome)

	path := b.cfg.CleanedPath(table.Name())
	if err := table.Save(path); err != nil {
		return services.Wrap(services.ErrTransient, b.stage, "export", table.Name(), err)
	}

	logging.WithContext(ctx, b.logger).Info("dataset cleaned",
		logging.Int("rows_in", outcome.RowsIn),
		logging.Int("rows_out", outcome.RowsOut),
		logging.Int("dropped_duplicates", outcome.DroppedDuplicates),
		logging.Int("dropped_invalid", outcome.DroppedInvalid),
		logging.Int("repaired_cells", outcome.RepairedCells),
		logging.Int("imputed_cells", outcome.ImputedCells),
		logging.Duration("duration", outcome.Duration),
	)
	return nil
}

// table fetches a loaded table or fails with a validation error.
func (b *base) table(batch *dataset.Batch, name string) (*dataset.Table, error) {
	t := batch.Table(name)
	if t == nil {
		return nil, services.Wrap(services.ErrValidation, b.stage, "execute", name+" table not loaded", nil)
	}
	return t, nil
}

// repairColumn applies fix over one column and reports how many cells
// changed. Missing columns are a no-op.
func repairColumn(t *dataset.Table, column string, fix func(string) string) int {
	if !t.HasColumn(column) {
		return 0
	}
	repaired := 0
	for row := 0; row < t.Len(); row++ {
		value := t.Value(row, column)
		fixed := fix(value)
		if fixed != value {
			t.Set(row, column, fixed)
			repaired++
		}
	}
	return repaired
}

// repairCityColumn repairs mojibake in a city-name column.
func repairCityColumn(t *dataset.Table, column string) int {
	return repairColumn(t, column, textutil.RepairCity)
}

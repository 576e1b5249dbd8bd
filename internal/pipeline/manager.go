package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"olist/internal/cleaning"
	"olist/internal/config"
	"olist/internal/dataset"
	"olist/internal/logging"
	"olist/internal/merge"
	"olist/internal/report"
	"olist/internal/services"
	"olist/internal/stage"
)

// Manager runs the cleaning stages and the master merge in order.
type Manager struct {
	cfg    *config.Config
	store  *report.Store
	logger *slog.Logger
	stages []stage.Handler
}

// Summary describes one finished pipeline run.
type Summary struct {
	RunID         string
	Outcomes      []dataset.Outcome
	MasterRows    int
	MasterColumns int
	Duration      time.Duration
}

// NewManager constructs a manager with the default stage order: the eight
// table cleaners followed by the master merge. A nil store disables run
// reporting.
func NewManager(cfg *config.Config, store *report.Store, logger *slog.Logger) *Manager {
	stages := []stage.Handler{
		cleaning.NewGeolocation(cfg, logger),
		cleaning.NewOrders(cfg, logger),
		cleaning.NewOrderItems(cfg, logger),
		cleaning.NewCustomers(cfg, logger),
		cleaning.NewSellers(cfg, logger),
		cleaning.NewProducts(cfg, logger),
		cleaning.NewPayments(cfg, logger),
		cleaning.NewReviews(cfg, logger),
		merge.NewMaster(cfg, logger),
	}
	return NewManagerWithStages(cfg, store, logger, stages)
}

// NewManagerWithStages constructs a manager with an explicit stage list
// (used in tests).
func NewManagerWithStages(cfg *config.Config, store *report.Store, logger *slog.Logger, stages []stage.Handler) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Manager{cfg: cfg, store: store, logger: logger, stages: stages}
}

// Run executes the full pipeline once. A lock file under the log directory
// keeps concurrent runs from interleaving writes to the output directory.
func (m *Manager) Run(ctx context.Context) (*Summary, error) {
	// The lock file lives under the log directory, which may not exist yet.
	if err := m.cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(m.cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another pipeline run holds the lock at %s", m.cfg.LockPath())
	}
	defer func() { _ = lock.Unlock() }()

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, m.logger)

	for _, handler := range m.stages {
		health := handler.HealthCheck(ctx)
		if !health.Ready {
			return nil, services.Wrap(services.ErrConfiguration, health.Name, "health check", health.Detail, nil)
		}
	}

	if m.store != nil {
		if _, err := m.store.StartRun(ctx, runID); err != nil {
			return nil, err
		}
	}

	batch := dataset.NewBatch(runID)
	start := time.Now()
	logger.Info("pipeline run started", logging.Int("stages", len(m.stages)))

	for _, handler := range m.stages {
		if err := ctx.Err(); err != nil {
			return nil, m.fail(ctx, runID, batch, err)
		}
		stageCtx := services.WithStage(ctx, handler.Name())
		stageLogger := logging.WithContext(stageCtx, m.logger)

		stageStart := time.Now()
		stageLogger.Info("stage started")
		if err := handler.Prepare(stageCtx, batch); err != nil {
			stageLogger.Error("stage preparation failed", logging.Error(err))
			return nil, m.fail(ctx, runID, batch, err)
		}
		if err := handler.Execute(stageCtx, batch); err != nil {
			stageLogger.Error("stage failed", logging.Error(err))
			return nil, m.fail(ctx, runID, batch, err)
		}
		stageLogger.Info("stage finished", logging.Duration("duration", time.Since(stageStart)))
	}

	m.persistOutcomes(ctx, runID, batch)

	summary := &Summary{
		RunID:    runID,
		Duration: time.Since(start),
	}
	for _, name := range dataset.Names() {
		if outcome, ok := batch.Outcomes[name]; ok {
			summary.Outcomes = append(summary.Outcomes, outcome)
		}
	}
	if batch.Master != nil {
		summary.MasterRows = batch.Master.Len()
		summary.MasterColumns = batch.Master.ColumnCount()
	}

	if m.store != nil {
		if err := m.store.FinishRun(ctx, runID, report.RunStatusCompleted, "", summary.MasterRows, summary.MasterColumns); err != nil {
			logger.Warn("failed to record run completion", logging.Error(err))
		}
	}

	logger.Info("pipeline run completed",
		logging.Int("master_rows", summary.MasterRows),
		logging.Int("master_columns", summary.MasterColumns),
		logging.Duration("duration", summary.Duration),
	)
	return summary, nil
}

func (m *Manager) fail(ctx context.Context, runID string, batch *dataset.Batch, stageErr error) error {
	m.persistOutcomes(ctx, runID, batch)
	if m.store != nil {
		if err := m.store.FinishRun(ctx, runID, report.RunStatusFailed, stageErr.Error(), 0, 0); err != nil {
			logging.WithContext(ctx, m.logger).Warn("failed to record run failure", logging.Error(err))
		}
	}
	return stageErr
}

func (m *Manager) persistOutcomes(ctx context.Context, runID string, batch *dataset.Batch) {
	if m.store == nil {
		return
	}
	for _, name := range dataset.Names() {
		outcome, ok := batch.Outcomes[name]
		if !ok {
			continue
		}
		if err := m.store.RecordOutcome(ctx, runID, outcome); err != nil {
			logging.WithContext(ctx, m.logger).Warn("failed to record dataset outcome",
				logging.String(logging.FieldDataset, name),
				logging.Error(err),
			)
		}
	}
}

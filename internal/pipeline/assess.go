package pipeline

import (
	"context"
	"log/slog"

	"olist/internal/config"
	"olist/internal/dataset"
	"olist/internal/logging"
	"olist/internal/quality"
	"olist/internal/services"
)

// AssessInputs loads every raw table and profiles it without cleaning
// anything, in canonical dataset order.
func AssessInputs(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]quality.Profile, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	profiles := make([]quality.Profile, 0, len(dataset.Names()))
	for _, name := range dataset.Names() {
		table, dropped, err := dataset.Load(name, cfg.InputPath(name))
		if err != nil {
			return nil, services.Wrap(services.ErrNotFound, "assess", "load", name, err)
		}
		profile := quality.Assess(table)
		logging.WithContext(services.WithDataset(ctx, name), logger).Info("dataset assessed",
			logging.Int("rows", profile.Rows),
			logging.Int("columns", profile.Columns),
			logging.Int("duplicate_rows", profile.DuplicateRows),
			logging.Int("dropped_malformed", dropped),
		)
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

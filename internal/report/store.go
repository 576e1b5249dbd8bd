package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"olist/internal/config"
	"olist/internal/dataset"
)

// Store manages run-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the report database and applies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.ReportDBPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// CheckHealth verifies the database is reachable and passes an integrity
// check.
func (s *Store) CheckHealth(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New("report database connection unavailable")
	}
	connCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(connCtx); err != nil {
		return fmt.Errorf("ping report database: %w", err)
	}

	var result string
	row := s.db.QueryRowContext(connCtx, "PRAGMA integrity_check")
	if err := row.Scan(&result); err != nil {
		return fmt.Errorf("integrity check: %w", err)
	}
	if result != "ok" {
		return fmt.Errorf("report database %s failed integrity check: %s", s.path, result)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// StartRun records a new run in the running state.
func (s *Store) StartRun(ctx context.Context, runID string) (*Run, error) {
	if runID == "" {
		return nil, errors.New("run id is empty")
	}
	now := time.Now().UTC()
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (id, started_at, status) VALUES (?, ?, ?)`,
		runID,
		now.Format(time.RFC3339Nano),
		RunStatusRunning,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return s.GetRun(ctx, runID)
}

// FinishRun marks a run completed or failed and records the master shape.
func (s *Store) FinishRun(ctx context.Context, runID string, status RunStatus, errorMessage string, masterRows, masterColumns int) error {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE runs
         SET finished_at = ?, status = ?, error_message = ?, master_rows = ?, master_columns = ?
         WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano),
		status,
		nullableString(errorMessage),
		masterRows,
		masterColumns,
		runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("finish run: run %s not found", runID)
	}
	return nil
}

// RecordOutcome upserts a dataset outcome for a run.
func (s *Store) RecordOutcome(ctx context.Context, runID string, o dataset.Outcome) error {
	if o.Dataset == "" {
		return errors.New("outcome has no dataset name")
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO run_datasets (
            run_id, dataset, rows_in, rows_out, dropped_malformed,
            dropped_duplicates, dropped_invalid, repaired_cells, imputed_cells, duration_ms
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (run_id, dataset) DO UPDATE SET
            rows_in = excluded.rows_in,
            rows_out = excluded.rows_out,
            dropped_malformed = excluded.dropped_malformed,
            dropped_duplicates = excluded.dropped_duplicates,
            dropped_invalid = excluded.dropped_invalid,
            repaired_cells = excluded.repaired_cells,
            imputed_cells = excluded.imputed_cells,
            duration_ms = excluded.duration_ms`,
		runID,
		o.Dataset,
		o.RowsIn,
		o.RowsOut,
		o.DroppedMalformed,
		o.DroppedDuplicates,
		o.DroppedInvalid,
		o.RepairedCells,
		o.ImputedCells,
		o.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}

// GetRun fetches one run by identifier, or nil when absent.
func (s *Store) GetRun(ctx context.Context, runID string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Outcomes returns the dataset records for a run in dataset name order.
func (s *Store) Outcomes(ctx context.Context, runID string) ([]*DatasetRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT run_id, dataset, rows_in, rows_out, dropped_malformed,
                dropped_duplicates, dropped_invalid, repaired_cells, imputed_cells, duration_ms
         FROM run_datasets WHERE run_id = ? ORDER BY dataset`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list outcomes: %w", err)
	}
	defer rows.Close()

	var records []*DatasetRecord
	for rows.Next() {
		var (
			record     DatasetRecord
			durationMS int64
		)
		if err := rows.Scan(
			&record.RunID,
			&record.Dataset,
			&record.RowsIn,
			&record.RowsOut,
			&record.DroppedMalformed,
			&record.DroppedDuplicates,
			&record.DroppedInvalid,
			&record.RepairedCells,
			&record.ImputedCells,
			&durationMS,
		); err != nil {
			return nil, err
		}
		record.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, &record)
	}
	return records, rows.Err()
}

const runColumns = "id, started_at, finished_at, status, error_message, master_rows, master_columns"

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		run         Run
		statusStr   string
		startedRaw  string
		finishedRaw sql.NullString
		errMessage  sql.NullString
	)
	if err := scanner.Scan(
		&run.ID,
		&startedRaw,
		&finishedRaw,
		&statusStr,
		&errMessage,
		&run.MasterRows,
		&run.MasterColumns,
	); err != nil {
		return nil, err
	}
	run.Status = RunStatus(statusStr)
	run.ErrorMessage = errMessage.String
	if started, err := time.Parse(time.RFC3339Nano, startedRaw); err == nil {
		run.StartedAt = started
	}
	if finishedRaw.Valid {
		if finished, err := time.Parse(time.RFC3339Nano, finishedRaw.String); err == nil {
			run.FinishedAt = &finished
		}
	}
	return &run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

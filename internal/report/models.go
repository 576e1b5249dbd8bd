package report

import "time"

// RunStatus describes the lifecycle state of a recorded run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Run is one recorded pipeline run.
type Run struct {
	ID            string
	StartedAt     time.Time
	FinishedAt    *time.Time
	Status        RunStatus
	ErrorMessage  string
	MasterRows    int
	MasterColumns int
}

// DatasetRecord is one dataset outcome within a run.
type DatasetRecord struct {
	RunID             string
	Dataset           string
	RowsIn            int
	RowsOut           int
	DroppedMalformed  int
	DroppedDuplicates int
	DroppedInvalid    int
	RepairedCells     int
	ImputedCells      int
	Duration          time.Duration
}

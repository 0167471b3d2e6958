package models

import "time"

// RunOutcome is the terminal state of a run or of one of its workers.
type RunOutcome string

const (
	RunOutcomeRunning   RunOutcome = "running"
	RunOutcomeCompleted RunOutcome = "completed"
	RunOutcomeCanceled  RunOutcome = "canceled"
	RunOutcomeFaulted   RunOutcome = "faulted"
)

// Run is the journal record of one cohort.
type Run struct {
	ID         string
	Workers    int
	StartedAt  time.Time
	StoppedAt  *time.Time
	DrainedAt  *time.Time
	Outcome    RunOutcome
	Iterations int64
	Error      string
	WorkerRuns []WorkerRun
}

// WorkerRun is the outcome of a single worker of a run.
type WorkerRun struct {
	RunID      string
	Worker     int
	Outcome    RunOutcome
	Iterations int64
	Error      string
}

// Duration returns the time between start and drain, or zero while the run is live.
func (r Run) Duration() time.Duration {
	if r.DrainedAt == nil {
		return 0
	}
	return r.DrainedAt.Sub(r.StartedAt)
}

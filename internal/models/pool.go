package models

import "fmt"

// PoolState represents the lifecycle state of the pool.
type PoolState string

const (
	// PoolStateIdle - no cohort tracked
	PoolStateIdle PoolState = "idle"
	// PoolStateStarting - draining stopped cohorts before spawning a new one
	PoolStateStarting PoolState = "starting"
	// PoolStateRunning - a cohort is live
	PoolStateRunning PoolState = "running"
	// PoolStateStopping - cancellation requested, bookkeeping being cleared
	PoolStateStopping PoolState = "stopping"
)

func ParsePoolState(s string) (PoolState, error) {
	switch PoolState(s) {
	case PoolStateIdle, PoolStateStarting, PoolStateRunning, PoolStateStopping:
		return PoolState(s), nil
	default:
		return "", fmt.Errorf("invalid pool state: %s", s)
	}
}

// PoolStatus is a point-in-time view of the pool.
type PoolStatus struct {
	State       PoolState
	Workers     int
	MaxWorkers  int
	LiveWorkers int
	CohortID    string
	Draining    int
	CanStart    bool
	CanStop     bool
	CanCancel   bool
	LastRun     *Run
}

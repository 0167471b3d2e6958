// Package services implements the business logic layer of shoedryer.
//
// Services sit between the HTTP handlers and the store. The pool owns the workers
// and their lifecycle; the run service reads the journal the pool writes; the settings
// service persists the worker count across restarts.
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints)
//	    │
//	    ▼
//	Services Layer
//	    ├── Pool ──────────────► Scheduler, WorkloadBuilder, RunJournal (Store)
//	    ├── RunService ────────► Store
//	    └── SettingsService ───► Store
//
// # Pool
//
// The pool runs one cohort of busy workers at a time. A cohort is the set of workers
// spawned together under one cancel.Signal.
//
// State Machine:
//
//	┌──────┐ Start ┌──────────┐ spawned ┌─────────┐ Stop ┌──────────┐
//	│ Idle │──────►│ Starting │────────►│ Running │─────►│ Stopping │
//	└──────┘       └──────────┘         └─────────┘      └──────────┘
//	    ▲               ▲                    │ Start           │
//	    │               └────────────────────┘ (stop first)    │
//	    └────────────────────── drained ───────────────────────┘
//
// States:
//   - Idle: no cohort tracked and nothing draining
//   - Starting: a cohort is tracked, stopped cohorts are still draining
//   - Running: the tracked cohort's workers are spawned
//   - Stopping: no cohort tracked, stopped cohorts are still draining
//
// Start first runs the Stop sequence on a tracked cohort, then waits for every stopped
// cohort to drain, so workers of two cohorts never run at the same time. Stop requests
// the signal and clears the bookkeeping; it never joins the workers.
//
// Commands:
//
//	┌──────────────┬─────────────────────────────────────────────────────────┐
//	│  Command     │  Gate                                                   │
//	├──────────────┼─────────────────────────────────────────────────────────┤
//	│  Start       │  workers > 0, no cohort tracked, no Start in flight     │
//	│  Start.cancel│  Start in flight and not yet canceled                   │
//	│  Stop        │  a cohort is tracked                                    │
//	└──────────────┴─────────────────────────────────────────────────────────┘
//
// The Start command's execution completes when every worker of its cohort is
// terminal. Workers only end through cancellation or a failing unit, so after a Stop
// the execution ends Canceled and the Start gate reopens.
//
// Worker loop:
//
//	for {
//	    if sig.IsRequested() {
//	        return nil, sig.Err() // canceled
//	    }
//	    if err := unit(); err != nil {
//	        return nil, err // faulted
//	    }
//	}
//
// The signal is checked inline on every iteration. A workload that blocks inside its
// unit delays cancellation by as long as it blocks.
//
// Each drained cohort is recorded as a models.Run in the RunJournal. Journal failures
// are logged and never affect Start or Stop.
//
// # RunService
//
// Lists and fetches journaled runs with the store's ListOption filters.
package services

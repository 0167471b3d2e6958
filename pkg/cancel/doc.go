// Package cancel provides the cooperative cancellation primitives shared by a run's
// workers.
//
// A Signal is a one-shot flag: once requested it stays requested. Workers poll it with
// IsRequested on every iteration of their loop, which is a single atomic load, so
// propagation latency equals the cost of one iteration. Workloads that block instead
// of spinning can select on Done or use Context.
//
// A Controller owns the active Signal of a command or pool and replaces it when a new
// run is prepared:
//
//	┌─────────────┐  PrepareNewRun   ┌─────────────┐  RequestCancel  ┌─────────────┐
//	│  (none)     │ ───────────────► │  Signal #1  │ ──────────────► │  Signal #1  │
//	│             │                  │  live       │                 │  requested  │
//	└─────────────┘                  └─────────────┘                 └──────┬──────┘
//	                                        ▲                               │
//	                                        │ no-op while live              │ PrepareNewRun
//	                                        │                               ▼
//	                                        │                        ┌─────────────┐
//	                                        └─────────────────────── │  Signal #2  │
//	                                                                 │  live       │
//	                                                                 └─────────────┘
//
// PrepareNewRun never replaces a live signal, so workers already bound to it are never
// orphaned. A requested signal is never reused for a later run.
//
// Cancellation is cooperative, not preemptive. A workload that never checks its
// signal never stops.
package cancel

// Package store implements the data access layer of shoedryer.
//
// Storage is a DuckDB database (a file, or ":memory:" in tests) holding the pool
// settings and the run journal.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├────────────────────────────────┬────────────────────────────────┤
//	│         SettingsStore          │           RunStore             │
//	│              ▼                 │              ▼                 │
//	│           settings             │      runs, worker_runs         │
//	├────────────────────────────────┴────────────────────────────────┤
//	│                      QueryInterceptor                           │
//	└─────────────────────────────────────────────────────────────────┘
//
// Tables created by migrations (internal/store/migrations/sql/):
//
//	┌────────────────────┬─────────────────────────────────────────────┐
//	│  Table             │  Purpose                                    │
//	├────────────────────┼─────────────────────────────────────────────┤
//	│  settings          │  Pool settings (worker count)               │
//	│  runs              │  One row per drained cohort                 │
//	│  worker_runs       │  Outcome of each worker of a run            │
//	│  schema_migrations │  Migration version tracking                 │
//	└────────────────────┴─────────────────────────────────────────────┘
//
// # Initialization Flow
//
//	db, _ := store.NewDB(path)
//	migrations.Run(ctx, db)
//	st := store.NewStore(db)
//
// # SettingsStore
//
// Single-row table guarded by CHECK (id = 1) and written with
// INSERT ... ON CONFLICT (id) DO UPDATE.
//
// Methods:
//   - Get(ctx) → *models.PoolSettings (ResourceNotFoundError when never saved)
//   - Save(ctx, settings) → error
//
// # RunStore
//
// Save upserts the run row and replaces its worker rows in one transaction.
// List and Count take ListOption functions that modify a squirrel.SelectBuilder:
//
//	runs, err := st.Run().List(ctx,
//	    store.ByOutcomes("faulted"),
//	    store.StartedAfter(since),
//	    store.WithDefaultSort(),
//	    store.WithLimit(20),
//	    store.WithOffset(0),
//	)
//
// # QueryInterceptor
//
// Every statement goes through a QueryInterceptor that logs it at debug level with
// its arguments and duration:
//   - QueryRowContext
//   - QueryContext
//   - ExecContext
//   - statements inside WithTx
package store

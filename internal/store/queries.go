package store

// Settings queries
const (
	queryGetSettings = `
		SELECT workers, updated_at
		FROM settings WHERE id = 1`

	queryUpsertSettings = `
		INSERT INTO settings (id, workers, updated_at)
		VALUES (1, ?, now())
		ON CONFLICT (id) DO UPDATE SET
			workers = EXCLUDED.workers,
			updated_at = now()`
)

// Run queries
const (
	queryUpsertRun = `
		INSERT INTO runs (id, workers, outcome, iterations, error, started_at, stopped_at, drained_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			workers = EXCLUDED.workers,
			outcome = EXCLUDED.outcome,
			iterations = EXCLUDED.iterations,
			error = EXCLUDED.error,
			stopped_at = EXCLUDED.stopped_at,
			drained_at = EXCLUDED.drained_at`

	queryDeleteWorkerRuns = `DELETE FROM worker_runs WHERE run_id = ?`
)

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/khimalex/shoedryer/internal/models"
	srvErrors "github.com/khimalex/shoedryer/pkg/errors"
)

// RunStore journals drained cohorts and their worker outcomes.
type RunStore struct {
	db QueryInterceptor
}

func NewRunStore(db QueryInterceptor) *RunStore {
	return &RunStore{db: db}
}

var runColumns = []string{
	"runs.id",
	"runs.workers",
	"runs.outcome",
	"runs.iterations",
	"runs.error",
	"runs.started_at",
	"runs.stopped_at",
	"runs.drained_at",
}

// Save upserts run and replaces its worker outcomes.
func (s *RunStore) Save(ctx context.Context, run models.Run) error {
	return s.db.WithTx(ctx, func(tx TxInterceptor) error {
		_, err := tx.ExecContext(ctx, queryUpsertRun,
			run.ID,
			run.Workers,
			string(run.Outcome),
			run.Iterations,
			nullString(run.Error),
			run.StartedAt.UTC(),
			nullTime(run.StoppedAt),
			nullTime(run.DrainedAt),
		)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, queryDeleteWorkerRuns, run.ID); err != nil {
			return err
		}

		if len(run.WorkerRuns) == 0 {
			return nil
		}

		builder := sq.Insert("worker_runs").Columns("run_id", "worker", "outcome", "iterations", "error")
		for _, w := range run.WorkerRuns {
			builder = builder.Values(run.ID, w.Worker, string(w.Outcome), w.Iterations, nullString(w.Error))
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, query, args...)
		return err
	})
}

// Get returns the run with the given id, including its worker outcomes.
func (s *RunStore) Get(ctx context.Context, id string) (*models.Run, error) {
	query, args, err := sq.Select(runColumns...).From("runs").Where(sq.Eq{"runs.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	run, err := scanRun(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewRunNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}

	run.WorkerRuns, err = s.WorkerRuns(ctx, id)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

// List returns runs without their worker outcomes.
func (s *RunStore) List(ctx context.Context, opts ...ListOption) ([]models.Run, error) {
	builder := sq.Select(runColumns...).From("runs")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func (s *RunStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("COUNT(*)").From("runs")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// WorkerRuns returns the worker outcomes of a run ordered by worker index.
func (s *RunStore) WorkerRuns(ctx context.Context, runID string) ([]models.WorkerRun, error) {
	query, args, err := sq.Select("run_id", "worker", "outcome", "iterations", "error").
		From("worker_runs").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("worker").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []models.WorkerRun
	for rows.Next() {
		var (
			w       models.WorkerRun
			outcome string
			errMsg  sql.NullString
		)
		if err := rows.Scan(&w.RunID, &w.Worker, &outcome, &w.Iterations, &errMsg); err != nil {
			return nil, err
		}
		w.Outcome = models.RunOutcome(outcome)
		w.Error = errMsg.String
		workers = append(workers, w)
	}

	return workers, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (models.Run, error) {
	var (
		run       models.Run
		outcome   string
		errMsg    sql.NullString
		stoppedAt sql.NullTime
		drainedAt sql.NullTime
	)

	err := row.Scan(
		&run.ID,
		&run.Workers,
		&outcome,
		&run.Iterations,
		&errMsg,
		&run.StartedAt,
		&stoppedAt,
		&drainedAt,
	)
	if err != nil {
		return models.Run{}, err
	}

	run.Outcome = models.RunOutcome(outcome)
	run.Error = errMsg.String
	if stoppedAt.Valid {
		run.StoppedAt = &stoppedAt.Time
	}
	if drainedAt.Valid {
		run.DrainedAt = &drainedAt.Time
	}

	return run, nil
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByOutcomes(outcomes ...string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(outcomes) == 0 {
			return b
		}
		return b.Where(sq.Eq{"runs.outcome": outcomes})
	}
}

func StartedAfter(t time.Time) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.GtOrEq{"runs.started_at": t.UTC()})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}

// WithDefaultSort sorts newest runs first, breaking ties by id.
func WithDefaultSort() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.OrderBy("runs.started_at DESC", "runs.id")
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

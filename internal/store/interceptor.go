package store

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// QueryInterceptor wraps a database handle and logs every statement it runs.
type QueryInterceptor struct {
	db *sql.DB
}

func NewQueryInterceptor(db *sql.DB) QueryInterceptor {
	return QueryInterceptor{db: db}
}

func (q QueryInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	defer logQuery("query_row", query, args, time.Now())
	return q.db.QueryRowContext(ctx, query, args...)
}

func (q QueryInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	defer logQuery("query", query, args, time.Now())
	return q.db.QueryContext(ctx, query, args...)
}

func (q QueryInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	defer logQuery("exec", query, args, time.Now())
	return q.db.ExecContext(ctx, query, args...)
}

// WithTx runs fn in a transaction committed when fn returns nil.
func (q QueryInterceptor) WithTx(ctx context.Context, fn func(tx TxInterceptor) error) error {
	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(TxInterceptor{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// TxInterceptor is QueryInterceptor for statements inside a transaction.
type TxInterceptor struct {
	tx *sql.Tx
}

func (t TxInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	defer logQuery("tx_exec", query, args, time.Now())
	return t.tx.ExecContext(ctx, query, args...)
}

func logQuery(op, query string, args []any, start time.Time) {
	zap.S().Named("store").Debugw(op, "query", query, "args", args, "duration", time.Since(start))
}

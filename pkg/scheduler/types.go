package scheduler

import (
	"context"
)

// Work is a unit of work run by the scheduler. ctx is canceled when the work's future is
// stopped or the scheduler closes.
type Work[T any] func(ctx context.Context) (T, error)

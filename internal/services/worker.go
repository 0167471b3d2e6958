package services

import (
	"context"
	"fmt"

	"github.com/khimalex/shoedryer/internal/models"
	"github.com/khimalex/shoedryer/pkg/scheduler"
)

// newWorker returns the loop run by worker idx of cohort c. The loop checks the cohort
// signal before every unit and exits only when it is requested or a unit fails.
// Canceling ctx requests the cohort signal.
func newWorker(c *Cohort, idx int, unit models.Unit) scheduler.Work[any] {
	return func(ctx context.Context) (any, error) {
		stop := c.sig.Bind(ctx)
		defer stop()

		var n int64
		defer func() {
			c.iterations[idx].Store(n)
		}()

		for {
			if c.sig.IsRequested() {
				return nil, c.sig.Err()
			}
			if err := unit(); err != nil {
				return nil, fmt.Errorf("worker %d: %w", idx, err)
			}
			n++
		}
	}
}

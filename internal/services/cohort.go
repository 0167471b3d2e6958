package services

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/khimalex/shoedryer/internal/models"
	"github.com/khimalex/shoedryer/pkg/cancel"
	"github.com/khimalex/shoedryer/pkg/future"
	"github.com/khimalex/shoedryer/pkg/observer"
)

// Cohort is the set of workers spawned together under one cancellation signal.
type Cohort struct {
	id        string
	sig       *cancel.Signal
	size      int
	startedAt time.Time

	spawned    chan struct{}
	seal       sync.Once
	iterations []atomic.Int64

	mu        sync.RWMutex
	futures   []*future.Future[any]
	observers []*observer.Observer[any]
	stoppedAt *time.Time
}

func newCohort(id string, sig *cancel.Signal, size int) *Cohort {
	return &Cohort{
		id:         id,
		sig:        sig,
		size:       size,
		startedAt:  time.Now(),
		spawned:    make(chan struct{}),
		iterations: make([]atomic.Int64, size),
	}
}

func (c *Cohort) ID() string {
	return c.id
}

func (c *Cohort) Signal() *cancel.Signal {
	return c.sig
}

// Size returns the number of workers the cohort was created for.
func (c *Cohort) Size() int {
	return c.size
}

func (c *Cohort) StartedAt() time.Time {
	return c.startedAt
}

// Spawned is closed once spawning is over, whether or not any worker was spawned.
func (c *Cohort) Spawned() <-chan struct{} {
	return c.spawned
}

// Futures returns the worker futures in spawn order.
func (c *Cohort) Futures() []*future.Future[any] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.futures)
}

// Observers returns the per-worker observers in spawn order.
func (c *Cohort) Observers() []*observer.Observer[any] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.observers)
}

// Live returns the number of workers that have not reached a terminal state.
func (c *Cohort) Live() int {
	live := 0
	for _, f := range c.Futures() {
		if !f.IsCompleted() {
			live++
		}
	}
	return live
}

// Drained reports whether spawning is over and every worker is terminal.
func (c *Cohort) Drained() bool {
	select {
	case <-c.spawned:
	default:
		return false
	}
	return c.Live() == 0
}

// Wait blocks until the cohort is drained or ctx is done.
func (c *Cohort) Wait(ctx context.Context) error {
	select {
	case <-c.spawned:
	case <-ctx.Done():
		return ctx.Err()
	}
	for _, f := range c.Futures() {
		select {
		case <-f.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// WhenAll returns a future completing when every spawned worker is terminal.
func (c *Cohort) WhenAll() *future.Future[struct{}] {
	return future.WhenAll(c.Futures()...)
}

// Iterations returns the loop iterations reported by workers that have exited.
func (c *Cohort) Iterations() int64 {
	var total int64
	for i := range c.iterations {
		total += c.iterations[i].Load()
	}
	return total
}

func (c *Cohort) attach(f *future.Future[any], obs *observer.Observer[any]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.futures = append(c.futures, f)
	c.observers = append(c.observers, obs)
}

func (c *Cohort) sealSpawn() {
	c.seal.Do(func() { close(c.spawned) })
}

func (c *Cohort) markStopped(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stoppedAt == nil {
		c.stoppedAt = &at
	}
}

// record builds the journal entry of a drained cohort.
func (c *Cohort) record(drainedAt time.Time) models.Run {
	c.mu.RLock()
	defer c.mu.RUnlock()

	run := models.Run{
		ID:        c.id,
		Workers:   len(c.futures),
		StartedAt: c.startedAt,
		StoppedAt: c.stoppedAt,
		DrainedAt: &drainedAt,
		Outcome:   models.RunOutcomeCanceled,
	}

	faulted, canceled := false, false
	for i, f := range c.futures {
		wr := models.WorkerRun{
			RunID:      c.id,
			Worker:     i,
			Outcome:    outcomeFromStatus(f.Status()),
			Iterations: c.iterations[i].Load(),
		}
		switch f.Status() {
		case future.Faulted:
			faulted = true
			wr.Error = f.Err().Error()
			if run.Error == "" {
				run.Error = wr.Error
			}
		case future.Canceled:
			canceled = true
		}
		run.Iterations += wr.Iterations
		run.WorkerRuns = append(run.WorkerRuns, wr)
	}

	switch {
	case faulted:
		run.Outcome = models.RunOutcomeFaulted
	case canceled, len(c.futures) == 0:
		run.Outcome = models.RunOutcomeCanceled
	default:
		run.Outcome = models.RunOutcomeCompleted
	}

	return run
}

func outcomeFromStatus(s future.Status) models.RunOutcome {
	switch s {
	case future.RanToCompletion:
		return models.RunOutcomeCompleted
	case future.Faulted:
		return models.RunOutcomeFaulted
	case future.Canceled:
		return models.RunOutcomeCanceled
	default:
		return models.RunOutcomeRunning
	}
}

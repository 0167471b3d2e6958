package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khimalex/shoedryer/internal/models"
	"github.com/khimalex/shoedryer/pkg/cancel"
	"github.com/khimalex/shoedryer/pkg/command"
	srvErrors "github.com/khimalex/shoedryer/pkg/errors"
	"github.com/khimalex/shoedryer/pkg/future"
	"github.com/khimalex/shoedryer/pkg/notify"
	"github.com/khimalex/shoedryer/pkg/observer"
	"github.com/khimalex/shoedryer/pkg/scheduler"
)

const (
	PropState       = "State"
	PropWorkers     = "Workers"
	PropLiveWorkers = "LiveWorkers"
	PropCohort      = "Cohort"
	PropLastRun     = "LastRun"
)

const journalTimeout = 5 * time.Second

// RunJournal persists the record of drained cohorts.
type RunJournal interface {
	Save(ctx context.Context, run models.Run) error
}

type PoolOption func(*Pool)

// WithJournal records every drained cohort in j.
func WithJournal(j RunJournal) PoolOption {
	return func(p *Pool) {
		p.journal = j
	}
}

// WithWorkers sets the initial worker count.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		p.workers = n
	}
}

// Pool runs cohorts of busy workers on a scheduler and exposes Start and Stop commands.
//
// Start and Stop bookkeeping is mutated under a single mutex; workers only read
// their cohort's signal. A stopped cohort moves to the draining set and leaves it
// once all its workers are terminal.
type Pool struct {
	sched      *scheduler.Scheduler
	builder    models.WorkloadBuilder
	journal    RunJournal
	maxWorkers int
	ctrl       *cancel.Controller
	changed    *notify.Notifier
	startCmd   *command.Command[struct{}, struct{}]
	stopCmd    *command.Command[struct{}, struct{}]
	finalizers sync.WaitGroup

	mu       sync.Mutex
	state    models.PoolState
	workers  int
	cohort   *Cohort
	draining []*Cohort
	lastRun  *models.Run
	closed   bool
}

// NewPool creates a pool running at most sched.Size() workers.
func NewPool(sched *scheduler.Scheduler, builder models.WorkloadBuilder, opts ...PoolOption) *Pool {
	p := &Pool{
		sched:      sched,
		builder:    builder,
		maxWorkers: sched.Size(),
		ctrl:       cancel.NewController(),
		changed:    notify.New("pool"),
		state:      models.PoolStateIdle,
		workers:    sched.Size(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workers = min(max(p.workers, 0), p.maxWorkers)

	p.startCmd = command.New(p.startOperation,
		command.WithName("start"),
		command.WithGate(func(struct{}) bool { return p.canStart() }),
	)
	p.stopCmd = command.New(func(*cancel.Signal) *future.Future[struct{}] {
		p.Stop()
		return future.Completed(struct{}{})
	},
		command.WithName("stop"),
		command.WithGate(func(struct{}) bool { return p.canStop() }),
	)

	return p
}

func (p *Pool) StartCommand() *command.Command[struct{}, struct{}] {
	return p.startCmd
}

func (p *Pool) StopCommand() *command.Command[struct{}, struct{}] {
	return p.stopCmd
}

// PropertyChanged raises PropState, PropWorkers, PropLiveWorkers, PropCohort and PropLastRun.
func (p *Pool) PropertyChanged() *notify.Notifier {
	return p.changed
}

func (p *Pool) MaxWorkers() int {
	return p.maxWorkers
}

func (p *Pool) Workers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.workers
}

func (p *Pool) State() models.PoolState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Cohort returns the tracked cohort, nil when none.
func (p *Pool) Cohort() *Cohort {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cohort
}

// ValidateWorkers returns an InvalidWorkerCountError when n is outside [0, MaxWorkers].
func (p *Pool) ValidateWorkers(n int) error {
	if n < 0 || n > p.maxWorkers {
		return srvErrors.NewInvalidWorkerCountError(n, p.maxWorkers)
	}
	return nil
}

// SetWorkers sets the number of workers of the next cohort. Zero closes the Start gate.
func (p *Pool) SetWorkers(n int) error {
	if err := p.ValidateWorkers(n); err != nil {
		return err
	}

	p.mu.Lock()
	changed := p.workers != n
	p.workers = n
	p.mu.Unlock()

	if changed {
		zap.S().Named("pool").Infow("worker count changed", "workers", n)
		p.changed.Notify(PropWorkers)
		p.raiseGates()
	}
	return nil
}

func (p *Pool) canStart() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.closed && p.workers > 0 && p.cohort == nil
}

// CanStartWith reports whether the Start command would accept an execution once the
// worker count is set to n. It does not change the count.
func (p *Pool) CanStartWith(n int) bool {
	if p.ValidateWorkers(n) != nil || p.startCmd.IsExecuting() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.closed && n > 0 && p.cohort == nil
}

func (p *Pool) canStop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cohort != nil
}

// Start stops the tracked cohort if any, waits for every stopped cohort to drain and
// spawns a new cohort. It returns once the workers are spawned.
func (p *Pool) Start(ctx context.Context) (*Cohort, error) {
	c, drain, err := p.begin()
	if err != nil {
		return nil, err
	}
	if err := p.launch(ctx, c, drain); err != nil {
		return c, err
	}
	return c, nil
}

// startOperation backs the Start command. Its future completes when every worker of
// the cohort is terminal, so it ends Canceled after a Stop. Canceling the command
// stops the cohort.
func (p *Pool) startOperation(sig *cancel.Signal) *future.Future[struct{}] {
	c, drain, err := p.begin()
	if err != nil {
		return future.Failed[struct{}](err)
	}

	stop := context.AfterFunc(sig.Context(), func() { p.stopCohort(c) })

	// spawn on the calling goroutine when nothing must drain, so a Stop issued right
	// after ExecuteAsync returns finds the workers
	if len(drain) == 0 {
		if err := p.launch(context.Background(), c, nil); err != nil {
			stop()
			return future.Failed[struct{}](err)
		}
		return future.Go(func() (struct{}, error) {
			defer stop()
			return awaitCohort(c)
		})
	}

	return future.Go(func() (struct{}, error) {
		defer stop()
		if err := p.launch(context.Background(), c, drain); err != nil {
			return struct{}{}, err
		}
		return awaitCohort(c)
	})
}

func awaitCohort(c *Cohort) (struct{}, error) {
	all := c.WhenAll()
	<-all.Done()
	return struct{}{}, all.Err()
}

// begin runs the Stop sequence on the tracked cohort and tracks a new, empty cohort
// bound to a fresh signal. It returns the cohorts that must drain before spawning.
func (p *Pool) begin() (*Cohort, []*Cohort, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, nil, srvErrors.NewPoolClosedError()
	}
	if p.workers == 0 {
		p.mu.Unlock()
		return nil, nil, srvErrors.NewInvalidWorkerCountError(0, p.maxWorkers)
	}

	restarted := p.stopLocked()

	p.ctrl.PrepareNewRun()
	c := newCohort(uuid.NewString(), p.ctrl.Current(), p.workers)
	p.cohort = c
	p.state = models.PoolStateStarting
	drain := slices.Clone(p.draining)
	p.finalizers.Add(1)
	p.mu.Unlock()

	go p.finalize(c)

	zap.S().Named("pool").Infow("starting cohort", "cohort", c.ID(), "workers", c.Size(), "draining", len(drain), "restarted", restarted)

	p.changed.Notify(PropState, PropCohort)
	p.raiseGates()

	return c, drain, nil
}

// launch waits for drain to finish and spawns the workers of c. It gives up when c was
// stopped in the meantime.
func (p *Pool) launch(ctx context.Context, c *Cohort, drain []*Cohort) error {
	defer c.sealSpawn()

	for _, d := range drain {
		if err := d.Wait(ctx); err != nil {
			p.stopCohort(c)
			return err
		}
	}

	p.mu.Lock()
	if p.cohort != c || c.sig.IsRequested() {
		p.mu.Unlock()
		zap.S().Named("pool").Infow("cohort stopped before spawning", "cohort", c.ID())
		return cancel.ErrCanceled
	}

	for i := range c.Size() {
		f := p.sched.AddWork(newWorker(c, i, p.builder.Build(i)))
		obs := observer.New(f,
			observer.WithName("worker"),
			observer.WithSubscriber(func(name string) {
				if name == observer.PropStatus {
					p.changed.Notify(PropLiveWorkers)
				}
			}),
		)
		c.attach(f, obs)
	}
	p.state = models.PoolStateRunning
	p.mu.Unlock()

	zap.S().Named("pool").Infow("cohort running", "cohort", c.ID(), "workers", c.Size())

	p.changed.Notify(PropState, PropLiveWorkers)
	p.raiseGates()

	return nil
}

// Stop requests cancellation of the tracked cohort and clears the bookkeeping without
// waiting for its workers. It reports whether a cohort was tracked; when none is, Stop
// does nothing and raises no notification.
func (p *Pool) Stop() bool {
	p.mu.Lock()
	stopped := p.stopLocked()
	p.mu.Unlock()

	if !stopped {
		return false
	}

	// the Start command's signal is separate from the cohort's; request it too so its
	// cancel gate closes with the cohort
	if cancelCmd := p.startCmd.CancelCommand(); cancelCmd.CanExecute() {
		cancelCmd.Execute()
	}

	p.changed.Notify(PropState, PropCohort, PropLiveWorkers)
	p.raiseGates()
	return true
}

// stopCohort stops c if it is still the tracked cohort.
func (p *Pool) stopCohort(c *Cohort) {
	p.mu.Lock()
	if p.cohort != c {
		p.mu.Unlock()
		return
	}
	p.stopLocked()
	p.mu.Unlock()

	p.changed.Notify(PropState, PropCohort, PropLiveWorkers)
	p.raiseGates()
}

func (p *Pool) stopLocked() bool {
	c := p.cohort
	if c == nil {
		return false
	}

	p.state = models.PoolStateStopping
	p.ctrl.RequestCancel()
	c.markStopped(time.Now())
	if !c.Drained() {
		p.draining = append(p.draining, c)
	}
	p.cohort = nil
	if len(p.draining) == 0 {
		p.state = models.PoolStateIdle
	}

	zap.S().Named("pool").Infow("cohort stopped", "cohort", c.ID(), "draining", len(p.draining))
	return true
}

// finalize waits for c to drain, removes it from the draining set and journals it.
func (p *Pool) finalize(c *Cohort) {
	defer p.finalizers.Done()

	_ = c.Wait(context.Background())
	run := c.record(time.Now())

	p.mu.Lock()
	p.draining = slices.DeleteFunc(p.draining, func(d *Cohort) bool { return d == c })
	p.lastRun = &run
	if p.cohort == nil && len(p.draining) == 0 {
		p.state = models.PoolStateIdle
	}
	p.mu.Unlock()

	zap.S().Named("pool").Infow("cohort drained", "cohort", run.ID, "outcome", run.Outcome, "workers", run.Workers, "iterations", run.Iterations)

	if p.journal != nil {
		ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
		if err := p.journal.Save(ctx, run); err != nil {
			zap.S().Named("pool").Errorw("failed to journal run", "cohort", run.ID, "error", err)
		}
		cancel()
	}

	p.changed.Notify(PropState, PropLiveWorkers, PropLastRun)
	p.raiseGates()
}

func (p *Pool) raiseGates() {
	p.startCmd.RaiseCanExecuteChanged()
	p.stopCmd.RaiseCanExecuteChanged()
}

// Snapshot returns the current status of the pool.
func (p *Pool) Snapshot() models.PoolStatus {
	p.mu.Lock()
	st := models.PoolStatus{
		State:      p.state,
		Workers:    p.workers,
		MaxWorkers: p.maxWorkers,
		Draining:   len(p.draining),
	}
	cohorts := slices.Clone(p.draining)
	if p.cohort != nil {
		st.CohortID = p.cohort.ID()
		cohorts = append(cohorts, p.cohort)
	}
	if p.lastRun != nil {
		run := *p.lastRun
		st.LastRun = &run
	}
	p.mu.Unlock()

	for _, c := range cohorts {
		st.LiveWorkers += c.Live()
	}
	st.CanStart = p.startCmd.CanExecute(struct{}{})
	st.CanStop = p.stopCmd.CanExecute(struct{}{})
	st.CanCancel = p.startCmd.CancelCommand().CanExecute()

	return st
}

// Close stops the pool, waits for every cohort to drain and closes the scheduler.
// Start fails with a PoolClosedError afterwards.
func (p *Pool) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	p.Stop()

	drained := make(chan struct{})
	go func() {
		p.finalizers.Wait()
		close(drained)
	}()

	var err error
	select {
	case <-drained:
	case <-ctx.Done():
		err = ctx.Err()
	}

	p.sched.Close()
	zap.S().Named("pool").Info("pool closed")
	return err
}

package cancel

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrCanceled is returned by Signal.Err once cancellation has been requested.
// It wraps context.Canceled so context-aware code classifies it the same way.
var ErrCanceled = fmt.Errorf("run canceled: %w", context.Canceled)

// Query is the read side of a Signal handed to workloads.
type Query interface {
	IsRequested() bool
}

// Signal is a one-shot cancellation flag.
// All methods are safe for concurrent use.
type Signal struct {
	requested atomic.Bool
	ctx       context.Context
	cancel    context.CancelCauseFunc
}

// NewSignal creates a signal that has not been requested.
func NewSignal() *Signal {
	ctx, cancel := context.WithCancelCause(context.Background())
	return &Signal{ctx: ctx, cancel: cancel}
}

// Request sets the flag. Safe to call multiple times; subsequent calls are no-ops.
func (s *Signal) Request() {
	if s.requested.Swap(true) {
		return
	}
	s.cancel(ErrCanceled)
}

// IsRequested reports whether cancellation has been requested.
func (s *Signal) IsRequested() bool {
	return s.requested.Load()
}

// Err returns ErrCanceled once the signal is requested, nil before.
func (s *Signal) Err() error {
	if s.requested.Load() {
		return ErrCanceled
	}
	return nil
}

// Done returns a channel closed when the signal is requested.
func (s *Signal) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Context returns a context canceled, with ErrCanceled as cause, when the signal is requested.
func (s *Signal) Context() context.Context {
	return s.ctx
}

// Bind requests the signal when ctx is done.
// The returned stop function unbinds it, reporting whether it stopped the binding
// before it fired.
func (s *Signal) Bind(ctx context.Context) (stop func() bool) {
	return context.AfterFunc(ctx, s.Request)
}

// Controller owns a replaceable Signal.
type Controller struct {
	mu     sync.RWMutex
	signal *Signal
}

// NewController creates a controller holding a fresh signal.
func NewController() *Controller {
	return &Controller{signal: NewSignal()}
}

// Current returns the active signal.
func (c *Controller) Current() *Signal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.signal
}

// IsRequested reports whether the active signal has been requested.
func (c *Controller) IsRequested() bool {
	return c.Current().IsRequested()
}

// RequestCancel requests the active signal. Idempotent.
func (c *Controller) RequestCancel() {
	c.Current().Request()
}

// PrepareNewRun installs a fresh signal if the active one is missing or already
// requested, and reports whether it did. A live signal is left in place.
func (c *Controller) PrepareNewRun() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.signal != nil && !c.signal.IsRequested() {
		return false
	}
	c.signal = NewSignal()
	return true
}

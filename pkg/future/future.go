package future

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
)

// Status is the lifecycle state of a Future.
type Status int

const (
	Running Status = iota
	RanToCompletion
	Faulted
	Canceled
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case RanToCompletion:
		return "ran_to_completion"
	case Faulted:
		return "faulted"
	case Canceled:
		return "canceled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// IsTerminal reports whether s is one of the three completed states.
func (s Status) IsTerminal() bool {
	return s != Running
}

// Classify maps an error returned by a unit of work to its terminal status.
func Classify(err error) Status {
	switch {
	case err == nil:
		return RanToCompletion
	case errors.Is(err, context.Canceled):
		return Canceled
	default:
		return Faulted
	}
}

// PanicError carries a value recovered from a panicking function.
type PanicError struct {
	Value any
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Resolver completes its Future. Only the first call has an effect; it reports whether
// this call was the one that completed the future.
type Resolver[T any] func(value T, err error) bool

// Future is a single-assignment result. It completes exactly once and then never changes.
type Future[T any] struct {
	done   chan struct{}
	once   sync.Once
	status Status
	value  T
	err    error
	stop   context.CancelFunc
}

// New returns a pending future and the function that completes it.
func New[T any]() (*Future[T], Resolver[T]) {
	f := &Future[T]{done: make(chan struct{})}
	return f, f.resolveClassified
}

// NewWithStop is New for futures backed by work that can be asked to stop.
func NewWithStop[T any](stop context.CancelFunc) (*Future[T], Resolver[T]) {
	f, r := New[T]()
	f.stop = stop
	return f, r
}

// Go runs fn on its own goroutine and returns a future of its outcome.
func Go[T any](fn func() (T, error)) *Future[T] {
	f, resolve := New[T]()
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				var zero T
				f.resolve(Faulted, zero, &PanicError{Value: rec, Stack: debug.Stack()})
			}
		}()
		resolve(fn())
	}()
	return f
}

// Completed returns a future that already ran to completion with v.
func Completed[T any](v T) *Future[T] {
	f, _ := New[T]()
	f.resolve(RanToCompletion, v, nil)
	return f
}

// Failed returns an already completed future classified from err.
// A nil err yields a Faulted future with a generic error.
func Failed[T any](err error) *Future[T] {
	if err == nil {
		err = errors.New("future failed without error")
	}
	f, resolve := New[T]()
	var zero T
	resolve(zero, err)
	return f
}

func (f *Future[T]) resolveClassified(v T, err error) bool {
	return f.resolve(Classify(err), v, err)
}

func (f *Future[T]) resolve(status Status, v T, err error) bool {
	resolved := false
	f.once.Do(func() {
		f.status = status
		if status == RanToCompletion {
			f.value = v
		} else {
			f.err = err
		}
		resolved = true
		close(f.done)
	})
	return resolved
}

// Done returns a channel closed when the future completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsCompleted reports whether the future reached a terminal status.
func (f *Future[T]) IsCompleted() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Status returns Running until the future completes, then its terminal status.
func (f *Future[T]) Status() Status {
	if !f.IsCompleted() {
		return Running
	}
	return f.status
}

// Result returns the value when the future ran to completion, the zero value otherwise.
func (f *Future[T]) Result() T {
	var zero T
	if !f.IsCompleted() {
		return zero
	}
	return f.value
}

// Err returns the error of a faulted or canceled future, nil otherwise.
func (f *Future[T]) Err() error {
	if !f.IsCompleted() {
		return nil
	}
	return f.err
}

// Wait blocks until the future completes or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Stop asks the work behind the future to stop. It is a no-op for futures without
// stoppable work and does not complete the future itself.
func (f *Future[T]) Stop() {
	if f.stop != nil {
		f.stop()
	}
}

// WhenAll completes once every input is terminal. The result is Faulted, joining the
// faults, if any input faulted; otherwise Canceled if any input was canceled; otherwise
// RanToCompletion. An empty input completes immediately.
func WhenAll[T any](futures ...*Future[T]) *Future[struct{}] {
	all, _ := New[struct{}]()
	pending := make([]*Future[T], len(futures))
	copy(pending, futures)

	go func() {
		var faults []error
		var canceled error
		for _, f := range pending {
			<-f.Done()
			switch f.Status() {
			case Faulted:
				faults = append(faults, f.Err())
			case Canceled:
				if canceled == nil {
					canceled = f.Err()
				}
			}
		}

		switch {
		case len(faults) > 0:
			all.resolve(Faulted, struct{}{}, errors.Join(faults...))
		case canceled != nil:
			all.resolve(Canceled, struct{}{}, canceled)
		default:
			all.resolve(RanToCompletion, struct{}{}, nil)
		}
	}()

	return all
}

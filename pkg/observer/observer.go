package observer

import (
	"errors"

	"go.uber.org/zap"

	"github.com/khimalex/shoedryer/pkg/future"
	"github.com/khimalex/shoedryer/pkg/notify"
)

const (
	PropStatus                  = "Status"
	PropIsCompleted             = "IsCompleted"
	PropIsNotCompleted          = "IsNotCompleted"
	PropIsCanceled              = "IsCanceled"
	PropIsFaulted               = "IsFaulted"
	PropException               = "Exception"
	PropInnerException          = "InnerException"
	PropErrorMessage            = "ErrorMessage"
	PropIsSuccessfullyCompleted = "IsSuccessfullyCompleted"
	PropResult                  = "Result"
)

// Outcome is the terminal record of an observed future.
type Outcome[T any] struct {
	Status future.Status
	Result T
	Err    error
}

type options struct {
	name        string
	subscribers []notify.Handler
}

type Option func(*options)

// WithName sets the name used in log lines.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithSubscriber registers h before observation starts, so it cannot miss the
// completion notifications of an already finished future.
func WithSubscriber(h notify.Handler) Option {
	return func(o *options) {
		o.subscribers = append(o.subscribers, h)
	}
}

type Observer[T any] struct {
	f          *future.Future[T]
	name       string
	changed    *notify.Notifier
	completion chan struct{}
}

func New[T any](f *future.Future[T], opts ...Option) *Observer[T] {
	o := options{name: "observer"}
	for _, opt := range opts {
		opt(&o)
	}

	obs := &Observer[T]{
		f:          f,
		name:       o.name,
		changed:    notify.New(o.name),
		completion: make(chan struct{}),
	}
	for _, h := range o.subscribers {
		obs.changed.Subscribe(h)
	}

	go obs.watch()

	return obs
}

func (o *Observer[T]) watch() {
	defer close(o.completion)
	defer func() {
		if rec := recover(); rec != nil {
			zap.S().Named("observer").Errorw("observation failed", "name", o.name, "panic", rec)
		}
	}()

	<-o.f.Done()

	names := []string{PropStatus, PropIsCompleted, PropIsNotCompleted}
	switch o.f.Status() {
	case future.Canceled:
		names = append(names, PropIsCanceled)
	case future.Faulted:
		names = append(names, PropIsFaulted, PropException, PropInnerException, PropErrorMessage)
	default:
		names = append(names, PropIsSuccessfullyCompleted, PropResult)
	}

	o.changed.Notify(names...)
}

// PropertyChanged returns the notifier raising the property names listed in the
// package documentation.
func (o *Observer[T]) PropertyChanged() *notify.Notifier {
	return o.changed
}

// Completion is closed after the completion notifications have been published.
func (o *Observer[T]) Completion() <-chan struct{} {
	return o.completion
}

func (o *Observer[T]) Future() *future.Future[T] {
	return o.f
}

func (o *Observer[T]) Status() future.Status {
	return o.f.Status()
}

func (o *Observer[T]) IsCompleted() bool {
	return o.f.IsCompleted()
}

func (o *Observer[T]) IsNotCompleted() bool {
	return !o.f.IsCompleted()
}

func (o *Observer[T]) IsSuccessfullyCompleted() bool {
	return o.f.Status() == future.RanToCompletion
}

func (o *Observer[T]) IsCanceled() bool {
	return o.f.Status() == future.Canceled
}

func (o *Observer[T]) IsFaulted() bool {
	return o.f.Status() == future.Faulted
}

// Exception returns the fault of a faulted future, nil otherwise.
func (o *Observer[T]) Exception() error {
	if !o.IsFaulted() {
		return nil
	}
	return o.f.Err()
}

// InnerException returns the first error wrapped by Exception, or Exception itself
// when it wraps nothing.
func (o *Observer[T]) InnerException() error {
	err := o.Exception()
	if err == nil {
		return nil
	}
	switch x := err.(type) {
	case interface{ Unwrap() []error }:
		if errs := x.Unwrap(); len(errs) > 0 {
			return errs[0]
		}
	default:
		if inner := errors.Unwrap(err); inner != nil {
			return inner
		}
	}
	return err
}

// ErrorMessage returns the message of InnerException, or "" when not faulted.
func (o *Observer[T]) ErrorMessage() string {
	if err := o.InnerException(); err != nil {
		return err.Error()
	}
	return ""
}

// Result returns the value of a successfully completed future, the zero value otherwise.
func (o *Observer[T]) Result() T {
	return o.f.Result()
}

// Outcome returns the terminal record, or a Running outcome before completion.
func (o *Observer[T]) Outcome() Outcome[T] {
	if !o.f.IsCompleted() {
		return Outcome[T]{Status: future.Running}
	}
	return Outcome[T]{
		Status: o.f.Status(),
		Result: o.f.Result(),
		Err:    o.f.Err(),
	}
}

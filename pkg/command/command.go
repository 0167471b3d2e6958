package command

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"github.com/khimalex/shoedryer/pkg/cancel"
	srvErrors "github.com/khimalex/shoedryer/pkg/errors"
	"github.com/khimalex/shoedryer/pkg/future"
	"github.com/khimalex/shoedryer/pkg/notify"
	"github.com/khimalex/shoedryer/pkg/observer"
)

const (
	PropCanExecute = "CanExecute"
	PropExecution  = "Execution"
)

// Operation starts the work of a parameterless command and returns its future.
type Operation[T any] func(sig *cancel.Signal) *future.Future[T]

// ParamOperation starts the work of a command for param and returns its future.
type ParamOperation[P, T any] func(param P, sig *cancel.Signal) *future.Future[T]

// Gate is an additional predicate on the command parameter.
type Gate[P any] func(param P) bool

// Invoker is the capability an outer layer needs to drive a command.
type Invoker[P, T any] interface {
	CanExecute(param P) bool
	ExecuteAsync(param P) (*observer.Observer[T], error)
	CanExecuteChanged() *notify.Notifier
}

// FromFunc adapts a blocking body into an Operation running on its own goroutine.
// The context passed to fn is canceled when the signal is requested.
func FromFunc[T any](fn func(ctx context.Context, sig *cancel.Signal) (T, error)) Operation[T] {
	return func(sig *cancel.Signal) *future.Future[T] {
		return future.Go(func() (T, error) {
			return fn(sig.Context(), sig)
		})
	}
}

// FromParamFunc is FromFunc for commands taking a parameter.
func FromParamFunc[P, T any](fn func(ctx context.Context, param P, sig *cancel.Signal) (T, error)) ParamOperation[P, T] {
	return func(param P, sig *cancel.Signal) *future.Future[T] {
		return future.Go(func() (T, error) {
			return fn(sig.Context(), param, sig)
		})
	}
}

type settings struct {
	name string
	gate any
	ctrl *cancel.Controller
}

type Option func(*settings)

// WithGate adds a predicate on the parameter. Its parameter type must match the command's.
func WithGate[P any](gate Gate[P]) Option {
	return func(s *settings) {
		s.gate = gate
	}
}

// WithController makes the command use ctrl instead of a private controller.
func WithController(ctrl *cancel.Controller) Option {
	return func(s *settings) {
		s.ctrl = ctrl
	}
}

func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// Command is an asynchronous command taking a parameter of type P and producing T.
type Command[P, T any] struct {
	name              string
	op                ParamOperation[P, T]
	gate              Gate[P]
	cancelCmd         *CancelCommand
	canExecuteChanged *notify.Notifier
	propertyChanged   *notify.Notifier

	mu        sync.Mutex
	execution *observer.Observer[T]
	starting  bool
}

// New creates a parameterless command. Call it with struct{}{}.
func New[T any](op Operation[T], opts ...Option) *Command[struct{}, T] {
	return NewWithParam(func(_ struct{}, sig *cancel.Signal) *future.Future[T] {
		return op(sig)
	}, opts...)
}

// NewWithParam creates a command whose operation takes a parameter.
func NewWithParam[P, T any](op ParamOperation[P, T], opts ...Option) *Command[P, T] {
	s := settings{name: "command"}
	for _, opt := range opts {
		opt(&s)
	}
	if s.ctrl == nil {
		s.ctrl = cancel.NewController()
	}

	var gate Gate[P]
	if s.gate != nil {
		g, ok := s.gate.(Gate[P])
		if !ok {
			panic(fmt.Sprintf("command %q: gate of type %T does not match the command parameter", s.name, s.gate))
		}
		gate = g
	}

	return &Command[P, T]{
		name:              s.name,
		op:                op,
		gate:              gate,
		cancelCmd:         newCancelCommand(s.name, s.ctrl),
		canExecuteChanged: notify.New(s.name),
		propertyChanged:   notify.New(s.name),
	}
}

func (c *Command[P, T]) Name() string {
	return c.name
}

// CanExecute reports whether no execution is in flight and the gate accepts param.
func (c *Command[P, T]) CanExecute(param P) bool {
	if c.busy() {
		return false
	}
	return c.gate == nil || c.gate(param)
}

func (c *Command[P, T]) busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.starting || (c.execution != nil && !c.execution.IsCompleted())
}

// IsExecuting reports whether an execution is starting or has not completed yet.
func (c *Command[P, T]) IsExecuting() bool {
	return c.busy()
}

// ExecuteAsync starts the operation and returns the observer of its future. It returns
// a GateViolationError, leaving the command untouched, when CanExecute is false.
// Faults of the operation are reported through the observer, never as an error here.
func (c *Command[P, T]) ExecuteAsync(param P) (*observer.Observer[T], error) {
	c.mu.Lock()
	if c.starting || (c.execution != nil && !c.execution.IsCompleted()) {
		c.mu.Unlock()
		return nil, srvErrors.NewGateViolationError(c.name)
	}
	c.starting = true
	c.mu.Unlock()

	if c.gate != nil && !c.gate(param) {
		c.mu.Lock()
		c.starting = false
		c.mu.Unlock()
		return nil, srvErrors.NewGateViolationError(c.name)
	}

	token := c.cancelCmd.notifyStarting()
	sig := c.cancelCmd.ctrl.Current()

	obs := observer.New(c.invoke(param, sig), observer.WithName(c.name))

	c.mu.Lock()
	c.execution = obs
	c.starting = false
	c.mu.Unlock()

	zap.S().Named("command").Debugw("execution started", "command", c.name)

	c.propertyChanged.Notify(PropExecution)
	c.canExecuteChanged.Notify(PropCanExecute)

	go func() {
		<-obs.Completion()
		zap.S().Named("command").Debugw("execution finished", "command", c.name, "status", obs.Status().String())
		c.propertyChanged.Notify(PropExecution)
		c.cancelCmd.notifyFinished(token)
		c.canExecuteChanged.Notify(PropCanExecute)
	}()

	return obs, nil
}

func (c *Command[P, T]) invoke(param P, sig *cancel.Signal) (f *future.Future[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			f = future.Failed[T](&future.PanicError{Value: rec, Stack: debug.Stack()})
		}
	}()

	f = c.op(param, sig)
	if f == nil {
		f = future.Failed[T](fmt.Errorf("command %q: operation returned no future", c.name))
	}
	return f
}

// Execute is the fire-and-forget form of ExecuteAsync. Gate violations are logged.
func (c *Command[P, T]) Execute(param P) {
	if _, err := c.ExecuteAsync(param); err != nil {
		zap.S().Named("command").Warnw("command not executed", "command", c.name, "error", err)
	}
}

// Execution returns the observer of the latest execution, nil before the first one.
func (c *Command[P, T]) Execution() *observer.Observer[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.execution
}

func (c *Command[P, T]) CanExecuteChanged() *notify.Notifier {
	return c.canExecuteChanged
}

func (c *Command[P, T]) PropertyChanged() *notify.Notifier {
	return c.propertyChanged
}

func (c *Command[P, T]) CancelCommand() *CancelCommand {
	return c.cancelCmd
}

// RaiseCanExecuteChanged notifies subscribers that the gate inputs changed.
func (c *Command[P, T]) RaiseCanExecuteChanged() {
	c.canExecuteChanged.Notify(PropCanExecute)
}

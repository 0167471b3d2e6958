package errors

import (
	"errors"
	"fmt"
)

type ResourceNotFoundError struct {
	kind string
	id   string
}

func NewResourceNotFoundError(kind, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{kind: kind, id: id}
}

func NewRunNotFoundError(id string) *ResourceNotFoundError {
	return NewResourceNotFoundError("run", id)
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.kind, e.id)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// GateViolationError is returned when a command is executed while it cannot execute.
type GateViolationError struct {
	command string
}

func NewGateViolationError(command string) *GateViolationError {
	return &GateViolationError{command: command}
}

func (e *GateViolationError) Error() string {
	return fmt.Sprintf("command %q cannot execute in the current state", e.command)
}

func (e *GateViolationError) Command() string {
	return e.command
}

func IsGateViolationError(err error) bool {
	var e *GateViolationError
	return errors.As(err, &e)
}

type InvalidWorkerCountError struct {
	count int
	max   int
}

func NewInvalidWorkerCountError(count, max int) *InvalidWorkerCountError {
	return &InvalidWorkerCountError{count: count, max: max}
}

func (e *InvalidWorkerCountError) Error() string {
	return fmt.Sprintf("invalid worker count %d: must be between 0 and %d", e.count, e.max)
}

func IsInvalidWorkerCountError(err error) bool {
	var e *InvalidWorkerCountError
	return errors.As(err, &e)
}

type PoolClosedError struct{}

func NewPoolClosedError() *PoolClosedError {
	return &PoolClosedError{}
}

func (e *PoolClosedError) Error() string {
	return "pool is closed"
}

func IsPoolClosedError(err error) bool {
	var e *PoolClosedError
	return errors.As(err, &e)
}

func NewSettingsNotFoundError() *ResourceNotFoundError {
	return NewResourceNotFoundError("settings", "pool")
}

type UnauthorizedError struct{}

func NewUnauthorizedError() *UnauthorizedError {
	return &UnauthorizedError{}
}

func (e *UnauthorizedError) Error() string {
	return "unauthorized"
}

func IsUnauthorizedError(err error) bool {
	var e *UnauthorizedError
	return errors.As(err, &e)
}

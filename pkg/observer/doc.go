// Package observer wraps an already started future in an object that publishes
// change notifications when the future completes.
//
// An Observer never starts work. Building one does not block: a goroutine waits for
// the future and, once it is terminal, publishes in order
//
//	Status, IsCompleted, IsNotCompleted
//
// followed by exactly one group:
//
//	canceled: IsCanceled
//	faulted:  IsFaulted, Exception, InnerException, ErrorMessage
//	success:  IsSuccessfullyCompleted, Result
//
// Failures never escape the observation goroutine. Completion is closed once the
// notifications have been published, whatever happened while publishing them.
package observer

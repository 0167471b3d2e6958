// Package future provides single-assignment results with explicit terminal states.
//
// A Future is Running until it is resolved, then settles into exactly one of
// RanToCompletion, Faulted or Canceled. Errors wrapping context.Canceled classify as
// Canceled; any other error is a fault.
//
//	f, resolve := future.New[int]()
//	go func() { resolve(compute(ctx)) }()
//
//	v, err := f.Wait(ctx)
//
// Go runs a function on its own goroutine and converts panics into faults carrying a
// *PanicError. WhenAll combines many futures into one that completes when the last of
// them does.
package future

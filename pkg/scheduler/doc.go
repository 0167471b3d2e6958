// Package scheduler implements a fixed-size worker pool executing work with futures.
//
// Work is submitted via AddWork and returns a *future.Future. The scheduler runs at most
// N work items at once; the rest wait in a FIFO queue.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                           Scheduler                                 │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 1   │      │   Worker 2   │      │   Worker N   │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲                     ▲                     ▲               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                        ┌──────┴──────┐                              │
//	│                        │  dispatch() │                              │
//	│                        └──────┬──────┘                              │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │                      Work Queue                         │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲                                     │
//	│                          AddWork(fn)                                │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Event Loop
//
//	for {
//	    select {
//	    case w := <-s.work:       // new work submitted
//	        s.workQueue.Push(w)
//	        s.dispatch()
//	    case <-s.finished:        // a worker returned
//	        s.workers.Push(newWorker(...))
//	        s.dispatch()
//	    case <-s.close:           // shutdown requested
//	        s.shutdown()
//	        return
//	    }
//	}
//
// Worker completions travel on their own channel; the done channel is only closed
// when the loop exits.
//
// # Futures and cancellation
//
// Each work item gets a context derived from the scheduler's main context. The future's
// Stop cancels that context; Close cancels all of them. The future completes with the
// classification of the returned error, so work returning ctx.Err() after a Stop ends
// Canceled. A panic in a work function completes the future as Faulted with a
// *future.PanicError and the worker returns to the pool.
//
// # Graceful Shutdown
//
// Close cancels the main context, resolves queued work as canceled, waits for
// in-flight work and returns. It is idempotent. AddWork after Close returns an already
// canceled future.
//
//	sched := scheduler.NewScheduler(4)
//	defer sched.Close()
//
//	f := sched.AddWork(func(ctx context.Context) (any, error) {
//	    return "done", nil
//	})
//	v, err := f.Wait(ctx)
package scheduler

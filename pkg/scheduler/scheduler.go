package scheduler

import (
	"context"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"github.com/khimalex/shoedryer/pkg/future"
)

type queue[T any] []T

func (wq *queue[T]) Len() int { return len(*wq) }

func (wq *queue[T]) Pop() T {
	old := *wq
	x := old[0]
	*wq = old[1:]
	return x
}

func (wq *queue[T]) Push(t T) {
	*wq = append(*wq, t)
}

type workRequest struct {
	fn      Work[any]
	resolve future.Resolver[any]
	ctx     context.Context
	cancel  context.CancelFunc
}

type worker struct {
	finished chan struct{}
	wg       *sync.WaitGroup
}

func (w worker) Work(r workRequest) {
	defer func() {
		if rec := recover(); rec != nil {
			zap.S().Named("scheduler").Errorw("work panicked", "panic", rec)
			r.resolve(nil, &future.PanicError{Value: rec, Stack: debug.Stack()})
		}
		r.cancel()
		w.finished <- struct{}{}
		w.wg.Done()
	}()

	v, err := r.fn(r.ctx)
	r.resolve(v, err)
}

func newWorker(finished chan struct{}, wg *sync.WaitGroup) worker {
	return worker{finished: finished, wg: wg}
}

type Scheduler struct {
	size       int
	workers    *queue[worker]
	workQueue  *queue[workRequest]
	close      chan struct{}
	done       chan struct{}
	finished   chan struct{}
	work       chan workRequest
	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	once       sync.Once
}

func NewScheduler(nbWorkers int) *Scheduler {
	finished := make(chan struct{}, nbWorkers)
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		size:       nbWorkers,
		workers:    &queue[worker]{},
		workQueue:  &queue[workRequest]{},
		close:      make(chan struct{}),
		done:       make(chan struct{}),
		finished:   finished,
		work:       make(chan workRequest),
		mainCtx:    ctx,
		mainCancel: cancel,
	}
	for range nbWorkers {
		s.workers.Push(newWorker(finished, &s.wg))
	}
	go s.run()
	return s
}

// Size returns the number of work items the scheduler runs concurrently.
func (s *Scheduler) Size() int {
	return s.size
}

// AddWork queues w and returns its future. Stopping the future cancels the context of w.
// Work added after Close completes as canceled without running.
func (s *Scheduler) AddWork(w Work[any]) *future.Future[any] {
	ctx, cancel := context.WithCancel(s.mainCtx)
	f, resolve := future.NewWithStop[any](cancel)

	select {
	case <-s.mainCtx.Done():
		// we're closing here so resolve with an error
		cancel()
		resolve(nil, context.Canceled)
	case s.work <- workRequest{fn: w, resolve: resolve, ctx: ctx, cancel: cancel}:
	}

	return f
}

// Close cancels all work, waits for in-flight work to return and resolves queued work
// as canceled. Close is idempotent.
func (s *Scheduler) Close() {
	s.once.Do(func() {
		s.mainCancel()
		s.close <- struct{}{}
		<-s.done
	})
}

func (s *Scheduler) run() {
	defer close(s.done)
	for {
		select {
		case w := <-s.work:
			s.workQueue.Push(w)
			s.dispatch()
		case <-s.finished:
			s.workers.Push(newWorker(s.finished, &s.wg))
			s.dispatch()
		case <-s.close:
			s.shutdown()
			return
		}
	}
}

func (s *Scheduler) shutdown() {
	for s.workQueue.Len() > 0 {
		r := s.workQueue.Pop()
		r.cancel()
		r.resolve(nil, context.Canceled)
	}

	// drain completions so in-flight workers never block on a full channel
	waited := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(waited)
	}()
	for {
		select {
		case <-s.finished:
		case <-waited:
			return
		}
	}
}

// dispatch drains the workQueue as much as possible
// based on available workers
func (s *Scheduler) dispatch() {
	for s.workers.Len() > 0 && s.workQueue.Len() > 0 {
		r := s.workQueue.Pop()
		worker := s.workers.Pop()
		s.wg.Add(1)
		go worker.Work(r)
	}
}

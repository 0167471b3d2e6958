package scheduler_test

import (
	"context"
	"runtime"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/khimalex/shoedryer/pkg/future"
	"github.com/khimalex/shoedryer/pkg/scheduler"
)

func TestScheduler(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Scheduler Suite")
}

func blockUntilDone(ctx context.Context) (any, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

var _ = Describe("Scheduler", func() {
	var s *scheduler.Scheduler

	AfterEach(func() {
		if s != nil {
			s.Close()
		}
	})

	Describe("AddWork", func() {
		It("should add work and return a future", func() {
			s = scheduler.NewScheduler(1)

			f := s.AddWork(func(ctx context.Context) (any, error) {
				return "done", nil
			})
			Expect(f).NotTo(BeNil())

			Eventually(f.Done(), 2*time.Second).Should(BeClosed())
			Expect(f.Status()).To(Equal(future.RanToCompletion))
			Expect(f.Result()).To(Equal("done"))
		})

		It("should fault the future when work panics", func() {
			s = scheduler.NewScheduler(1)

			f := s.AddWork(func(ctx context.Context) (any, error) {
				panic("overload")
			})

			Eventually(f.Done(), 2*time.Second).Should(BeClosed())
			Expect(f.Status()).To(Equal(future.Faulted))

			// the worker went back to the pool
			next := s.AddWork(func(ctx context.Context) (any, error) { return 1, nil })
			Eventually(next.Done(), 2*time.Second).Should(BeClosed())
			Expect(next.Result()).To(Equal(1))
		})
	})

	Describe("Run work", func() {
		It("should execute multiple work items", func() {
			s = scheduler.NewScheduler(2)

			results := make(chan int, 3)
			for i := range 3 {
				idx := i
				s.AddWork(func(ctx context.Context) (any, error) {
					results <- idx
					return idx, nil
				})
			}

			Eventually(func() int {
				return len(results)
			}, 2*time.Second, 100*time.Millisecond).Should(Equal(3))
		})

		It("should run no more work items than its size at once", func() {
			s = scheduler.NewScheduler(2)

			var futures []*future.Future[any]
			for range 3 {
				futures = append(futures, s.AddWork(blockUntilDone))
			}

			Consistently(futures[2].Done(), 100*time.Millisecond).ShouldNot(BeClosed())
			futures[0].Stop()
			Eventually(futures[0].Done(), time.Second).Should(BeClosed())

			// the queued item took the free slot
			futures[2].Stop()
			Eventually(futures[2].Done(), time.Second).Should(BeClosed())
			Expect(futures[2].Status()).To(Equal(future.Canceled))
		})
	})

	Describe("Cancel work", func() {
		It("should cancel work via future.Stop()", func() {
			s = scheduler.NewScheduler(1)

			f := s.AddWork(blockUntilDone)
			time.Sleep(100 * time.Millisecond)
			f.Stop()

			Eventually(f.Done(), 2*time.Second).Should(BeClosed())
			Expect(f.Status()).To(Equal(future.Canceled))
		})

		It("should cancel work when scheduler is closed", func() {
			s = scheduler.NewScheduler(1)

			f := s.AddWork(blockUntilDone)
			time.Sleep(100 * time.Millisecond)
			s.Close()
			s = nil // prevent AfterEach from closing again

			Eventually(f.Done(), 2*time.Second).Should(BeClosed())
			Expect(f.Status()).To(Equal(future.Canceled))
		})

		It("should resolve queued work as canceled when closed", func() {
			s = scheduler.NewScheduler(1)

			running := s.AddWork(blockUntilDone)
			queued := s.AddWork(func(ctx context.Context) (any, error) {
				return "never", nil
			})

			s.Close()
			s = nil // prevent AfterEach from closing again

			Expect(running.Status()).To(Equal(future.Canceled))
			Expect(queued.Status()).To(Equal(future.Canceled))
		})
	})

	Describe("Goroutine cleanup", func() {
		It("should not leak goroutines after Close under load", func() {
			base := runtime.NumGoroutine()
			s = scheduler.NewScheduler(4)

			for i := 0; i < 200; i++ {
				s.AddWork(blockUntilDone)
			}

			time.Sleep(100 * time.Millisecond)
			s.Close()
			s = nil // prevent AfterEach from closing again

			Eventually(func() int {
				return runtime.NumGoroutine()
			}, 5*time.Second, 100*time.Millisecond).Should(BeNumerically("<=", base+10))
		})
	})

	Describe("Close behavior", func() {
		It("should return canceled when AddWork is called after Close", func() {
			s = scheduler.NewScheduler(1)
			s.Close()

			f := s.AddWork(func(ctx context.Context) (any, error) {
				return "done", nil
			})

			Eventually(f.Done(), 1*time.Second).Should(BeClosed())
			Expect(f.Err()).To(MatchError(context.Canceled))
		})

		It("should wait for in-flight work to finish on Close", func() {
			s = scheduler.NewScheduler(1)

			started := make(chan struct{})
			unblock := make(chan struct{})
			s.AddWork(func(ctx context.Context) (any, error) {
				close(started)
				<-unblock
				return "done", nil
			})
			Eventually(started, 1*time.Second).Should(BeClosed())

			closeDone := make(chan struct{})
			go func() {
				s.Close()
				close(closeDone)
			}()

			Consistently(closeDone, 200*time.Millisecond).ShouldNot(BeClosed())
			close(unblock)
			Eventually(closeDone, 1*time.Second).Should(BeClosed())
			s = nil // prevent AfterEach from closing again
		})
	})
})

package e2e_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/khimalex/shoedryer/api/v1"
	"github.com/khimalex/shoedryer/internal/models"
	"github.com/khimalex/shoedryer/pkg/client"
	serviceErrs "github.com/khimalex/shoedryer/pkg/errors"
	"github.com/khimalex/shoedryer/test/e2e/infra"
)

const waitTimeout = 10 * time.Second

var _ = Describe("Pool end-to-end", func() {
	var (
		ctx   context.Context
		stack *infra.Stack
		api   *client.Client
	)

	startStack := func(sc infra.StackConfig) {
		var err error
		stack, err = infra.StartStack(ctx, sc)
		Expect(err).NotTo(HaveOccurred())
		api, err = stack.Client()
		Expect(err).NotTo(HaveOccurred())
	}

	stopStack := func() {
		if stack == nil {
			return
		}
		stopCtx, cancel := context.WithTimeout(ctx, waitTimeout)
		defer cancel()
		Expect(stack.Stop(stopCtx)).To(Succeed())
		stack = nil
	}

	BeforeEach(func() {
		ctx = context.Background()
	})

	AfterEach(stopStack)

	Context("authentication", func() {
		BeforeEach(func() {
			startStack(infra.StackConfig{Workers: 1, MaxWorkers: 2})
		})

		It("should reject a client without a token", func() {
			anonymous, err := client.NewClient(stack.URL())
			Expect(err).NotTo(HaveOccurred())

			_, err = anonymous.Status(ctx)

			Expect(serviceErrs.IsUnauthorizedError(err)).To(BeTrue())
		})
	})

	Context("lifecycle", func() {
		BeforeEach(func() {
			startStack(infra.StackConfig{Workers: 2, MaxWorkers: 2})
		})

		// Given an idle pool
		// When an operator starts and then stops it
		// Then the workers run, drain, and the run is journaled as canceled
		It("should start, stop and journal a run", func() {
			// Act
			st, err := api.Start(ctx, nil, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.State).To(Equal(v1.PoolStatusStateRunning))
			Expect(st.LiveWorkers).To(Equal(2))

			_, err = api.Stop(ctx)
			Expect(err).NotTo(HaveOccurred())

			st, err = api.WaitForState(ctx, v1.PoolStatusStateIdle, waitTimeout)
			Expect(err).NotTo(HaveOccurred())

			// Assert
			Expect(st.LiveWorkers).To(BeZero())
			Expect(st.Commands.Start).To(BeTrue())
			Expect(st.Commands.Stop).To(BeFalse())

			var list *v1.RunListResponse
			Eventually(func() (int, error) {
				var err error
				list, err = api.Runs(ctx, 0, 0)
				if err != nil {
					return 0, err
				}
				return list.Total, nil
			}, waitTimeout).Should(Equal(1))

			run, err := api.Run(ctx, list.Runs[0].Id)
			Expect(err).NotTo(HaveOccurred())
			Expect(run.Outcome).To(Equal(v1.Canceled))
			Expect(run.DrainedAt).NotTo(BeNil())
			Expect(run.WorkerRuns).To(HaveValue(HaveLen(2)))
			Expect(run.Iterations).To(BeNumerically(">", 0))
		})

		It("should refuse a second start while running", func() {
			_, err := api.Start(ctx, nil, false)
			Expect(err).NotTo(HaveOccurred())

			_, err = api.Start(ctx, nil, false)

			Expect(serviceErrs.IsGateViolationError(err)).To(BeTrue())
		})

		// Given a running cohort
		// When an operator restarts the pool
		// Then the old cohort drains before a new one runs
		It("should replace the cohort on restart", func() {
			// Arrange
			first, err := api.Start(ctx, nil, false)
			Expect(err).NotTo(HaveOccurred())

			// Act
			second, err := api.Start(ctx, nil, true)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(*second.CohortId).NotTo(Equal(*first.CohortId))
			Expect(second.State).To(Equal(v1.PoolStatusStateRunning))
			Expect(second.LiveWorkers).To(Equal(2))
		})

		It("should stop the cohort when the start command is canceled", func() {
			_, err := api.Start(ctx, nil, false)
			Expect(err).NotTo(HaveOccurred())

			_, err = api.Cancel(ctx)
			Expect(err).NotTo(HaveOccurred())

			st, err := api.WaitForState(ctx, v1.PoolStatusStateIdle, waitTimeout)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Commands.Cancel).To(BeFalse())
		})

		It("should reject a worker count above the maximum", func() {
			_, err := api.SetWorkers(ctx, 3)

			Expect(client.IsAPIError(err, 400)).To(BeTrue())
		})
	})

	Context("faulting workload", func() {
		BeforeEach(func() {
			var calls atomic.Int64
			startStack(infra.StackConfig{
				Workers:    1,
				MaxWorkers: 1,
				Workload: models.WorkloadFunc(func(int) models.Unit {
					return func() error {
						if calls.Add(1) > 100 {
							return errors.New("sensor failure")
						}
						return nil
					}
				}),
			})
		})

		// Given a workload that fails
		// When the pool runs it
		// Then the run is journaled as faulted and Stop returns the pool to idle
		It("should journal a faulted run", func() {
			_, err := api.Start(ctx, nil, false)
			Expect(err).NotTo(HaveOccurred())

			Eventually(func() (v1.RunOutcome, error) {
				st, err := api.Status(ctx)
				if err != nil || st.LastRun == nil {
					return "", err
				}
				return st.LastRun.Outcome, nil
			}, waitTimeout).Should(Equal(v1.Faulted))

			st, err := api.Stop(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.State).To(Equal(v1.PoolStatusStateIdle))

			var list *v1.RunListResponse
			Eventually(func() (int, error) {
				var err error
				list, err = api.Runs(ctx, 0, 0, string(v1.Faulted))
				if err != nil {
					return 0, err
				}
				return list.Total, nil
			}, waitTimeout).Should(Equal(1))
			Expect(list.Runs[0].Error).To(HaveValue(ContainSubstring("sensor failure")))
		})
	})

	Context("restart of the process", func() {
		// Given a stack whose worker count was changed and which journaled a run
		// When a new stack starts on the same data folder
		// Then it keeps the worker count and the journal
		It("should keep settings and runs across restarts", func() {
			// Arrange
			folder := GinkgoT().TempDir()
			startStack(infra.StackConfig{Workers: 2, MaxWorkers: 2, DataFolder: folder})

			_, err := api.SetWorkers(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			_, err = api.Start(ctx, nil, false)
			Expect(err).NotTo(HaveOccurred())
			_, err = api.Stop(ctx)
			Expect(err).NotTo(HaveOccurred())
			stopStack()

			// Act
			startStack(infra.StackConfig{Workers: 2, MaxWorkers: 2, DataFolder: folder})

			// Assert
			st, err := api.Status(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.Workers).To(Equal(1))

			list, err := api.Runs(ctx, 0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(list.Total).To(Equal(1))
			Expect(list.Runs[0].Workers).To(Equal(1))
		})
	})
})

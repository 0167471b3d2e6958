package store_test

import (
	"context"
	"database/sql"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/khimalex/shoedryer/internal/models"
	"github.com/khimalex/shoedryer/internal/store"
	"github.com/khimalex/shoedryer/internal/store/migrations"
	srvErrors "github.com/khimalex/shoedryer/pkg/errors"
)

func newRun(id string, started time.Time, outcome models.RunOutcome) models.Run {
	stopped := started.Add(time.Second)
	drained := stopped.Add(10 * time.Millisecond)
	return models.Run{
		ID:         id,
		Workers:    2,
		StartedAt:  started,
		StoppedAt:  &stopped,
		DrainedAt:  &drained,
		Outcome:    outcome,
		Iterations: 300,
		WorkerRuns: []models.WorkerRun{
			{RunID: id, Worker: 0, Outcome: models.RunOutcomeCanceled, Iterations: 100},
			{RunID: id, Worker: 1, Outcome: outcome, Iterations: 200},
		},
	}
}

var _ = Describe("RunStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
		now time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Now().UTC().Truncate(time.Millisecond)

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Get", func() {
		It("should return RunNotFound for an unknown id", func() {
			_, err := s.Run().Get(ctx, "missing")

			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		// Given a saved run
		// When we get it by id
		// Then it should come back with its worker outcomes in order
		It("should return a saved run with its workers", func() {
			// Arrange
			run := newRun("run-1", now, models.RunOutcomeCanceled)
			Expect(s.Run().Save(ctx, run)).To(Succeed())

			// Act
			got, err := s.Run().Get(ctx, "run-1")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Workers).To(Equal(2))
			Expect(got.Outcome).To(Equal(models.RunOutcomeCanceled))
			Expect(got.Iterations).To(Equal(int64(300)))
			Expect(got.StartedAt).To(BeTemporally("~", now, time.Millisecond))
			Expect(got.StoppedAt).NotTo(BeNil())
			Expect(got.DrainedAt).NotTo(BeNil())
			Expect(got.WorkerRuns).To(HaveLen(2))
			Expect(got.WorkerRuns[1].Iterations).To(Equal(int64(200)))
		})
	})

	Context("Save", func() {
		It("should replace worker outcomes when saved again", func() {
			run := newRun("run-1", now, models.RunOutcomeCanceled)
			Expect(s.Run().Save(ctx, run)).To(Succeed())

			run.Outcome = models.RunOutcomeFaulted
			run.Error = "worker 1: boom"
			run.WorkerRuns = run.WorkerRuns[:1]
			Expect(s.Run().Save(ctx, run)).To(Succeed())

			got, err := s.Run().Get(ctx, "run-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Outcome).To(Equal(models.RunOutcomeFaulted))
			Expect(got.Error).To(Equal("worker 1: boom"))
			Expect(got.WorkerRuns).To(HaveLen(1))
		})

		It("should save a run without workers", func() {
			run := models.Run{ID: "empty", StartedAt: now, Outcome: models.RunOutcomeCanceled}

			Expect(s.Run().Save(ctx, run)).To(Succeed())

			got, err := s.Run().Get(ctx, "empty")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.StoppedAt).To(BeNil())
			Expect(got.WorkerRuns).To(BeEmpty())
		})
	})

	Context("List", func() {
		BeforeEach(func() {
			Expect(s.Run().Save(ctx, newRun("a", now.Add(-2*time.Hour), models.RunOutcomeCanceled))).To(Succeed())
			Expect(s.Run().Save(ctx, newRun("b", now.Add(-1*time.Hour), models.RunOutcomeFaulted))).To(Succeed())
			Expect(s.Run().Save(ctx, newRun("c", now, models.RunOutcomeCanceled))).To(Succeed())
		})

		It("should list newest runs first", func() {
			runs, err := s.Run().List(ctx, store.WithDefaultSort())

			Expect(err).NotTo(HaveOccurred())
			Expect(runs).To(HaveLen(3))
			Expect(runs[0].ID).To(Equal("c"))
			Expect(runs[2].ID).To(Equal("a"))
		})

		It("should filter by outcome", func() {
			runs, err := s.Run().List(ctx, store.ByOutcomes(string(models.RunOutcomeFaulted)))

			Expect(err).NotTo(HaveOccurred())
			Expect(runs).To(HaveLen(1))
			Expect(runs[0].ID).To(Equal("b"))
		})

		It("should filter by start time", func() {
			count, err := s.Run().Count(ctx, store.StartedAfter(now.Add(-90*time.Minute)))

			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(2))
		})

		It("should paginate", func() {
			runs, err := s.Run().List(ctx, store.WithDefaultSort(), store.WithLimit(1), store.WithOffset(1))

			Expect(err).NotTo(HaveOccurred())
			Expect(runs).To(HaveLen(1))
			Expect(runs[0].ID).To(Equal("b"))
		})

		It("should count all runs", func() {
			count, err := s.Run().Count(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(3))
		})
	})
})

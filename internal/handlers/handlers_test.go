package handlers_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/khimalex/shoedryer/api/v1"
	"github.com/khimalex/shoedryer/internal/handlers"
	"github.com/khimalex/shoedryer/internal/models"
	"github.com/khimalex/shoedryer/internal/services"
	"github.com/khimalex/shoedryer/internal/store"
	"github.com/khimalex/shoedryer/internal/store/migrations"
	"github.com/khimalex/shoedryer/pkg/scheduler"
)

func TestHandlers(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Handlers Suite")
}

var idleWorkload = models.WorkloadFunc(func(int) models.Unit {
	return func() error {
		time.Sleep(time.Millisecond)
		return nil
	}
})

var _ = Describe("Handler", func() {
	var (
		ctx      context.Context
		db       *sql.DB
		pool     *services.Pool
		settings *services.SettingsService
		router   *gin.Engine
	)

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var reader *bytes.Reader
		if body != nil {
			data, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = bytes.NewReader(data)
		} else {
			reader = bytes.NewReader(nil)
		}
		req := httptest.NewRequest(method, path, reader)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	poolStatus := func(w *httptest.ResponseRecorder) v1.PoolStatus {
		var st v1.PoolStatus
		Expect(json.Unmarshal(w.Body.Bytes(), &st)).To(Succeed())
		return st
	}

	currentState := func() v1.PoolStatusState {
		return poolStatus(do(http.MethodGet, "/api/v1/pool", nil)).State
	}

	BeforeEach(func() {
		ctx = context.Background()
		gin.SetMode(gin.TestMode)

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		Expect(migrations.Run(ctx, db)).To(Succeed())
		st := store.NewStore(db)

		pool = services.NewPool(scheduler.NewScheduler(4), idleWorkload,
			services.WithWorkers(2),
			services.WithJournal(st.Run()),
		)
		settings = services.NewSettingsService(st)

		router = gin.New()
		v1.RegisterHandlers(router.Group("/api/v1"), handlers.New(pool, services.NewRunService(st), settings))
	})

	AfterEach(func() {
		closeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		Expect(pool.Close(closeCtx)).To(Succeed())
		db.Close()
	})

	Context("GetPool", func() {
		// Given a fresh pool
		// When we get its status
		// Then it is idle and only the Start command can execute
		It("should report an idle pool", func() {
			w := do(http.MethodGet, "/api/v1/pool", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			st := poolStatus(w)
			Expect(st.State).To(Equal(v1.PoolStatusStateIdle))
			Expect(st.Workers).To(Equal(2))
			Expect(st.MaxWorkers).To(Equal(4))
			Expect(st.Commands).To(Equal(v1.CommandGates{Start: true}))
			Expect(st.CohortId).To(BeNil())
		})
	})

	Context("StartPool and StopPool", func() {
		// Given an idle pool
		// When we start it
		// Then the cohort runs and a second start violates the gate
		It("should start once and reject a second start", func() {
			// Act
			w := do(http.MethodPost, "/api/v1/pool", nil)

			// Assert
			Expect(w.Code).To(Equal(http.StatusAccepted))
			st := poolStatus(w)
			Expect(st.State).To(Equal(v1.PoolStatusStateRunning))
			Expect(st.CohortId).NotTo(BeNil())
			Expect(st.Commands.Start).To(BeFalse())
			Expect(st.Commands.Stop).To(BeTrue())

			w = do(http.MethodPost, "/api/v1/pool", nil)
			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		// Given a running pool
		// When we stop it twice
		// Then the first stop succeeds and the second violates the gate
		It("should stop a running pool", func() {
			// Arrange
			Expect(do(http.MethodPost, "/api/v1/pool", nil).Code).To(Equal(http.StatusAccepted))

			// Act
			w := do(http.MethodDelete, "/api/v1/pool", nil)

			// Assert
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(poolStatus(w).CohortId).To(BeNil())
			Eventually(currentState).Should(Equal(v1.PoolStatusStateIdle))

			Expect(do(http.MethodDelete, "/api/v1/pool", nil).Code).To(Equal(http.StatusConflict))
		})

		// Given a start request with a worker count
		// When we start the pool
		// Then the cohort uses that count and the count is persisted
		It("should apply the requested worker count", func() {
			w := do(http.MethodPost, "/api/v1/pool", v1.StartPoolRequest{Workers: ptr(3)})

			Expect(w.Code).To(Equal(http.StatusAccepted))
			Expect(poolStatus(w).Workers).To(Equal(3))
			Expect(pool.Cohort().Size()).To(Equal(3))

			persisted, err := settings.Workers(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(persisted).To(Equal(3))
		})

		// Given a running pool
		// When another start carries a worker count
		// Then the start is rejected and the count is neither applied nor persisted
		It("should leave the worker count untouched when the start is rejected", func() {
			// Arrange
			Expect(do(http.MethodPost, "/api/v1/pool", nil).Code).To(Equal(http.StatusAccepted))

			// Act
			w := do(http.MethodPost, "/api/v1/pool", v1.StartPoolRequest{Workers: ptr(3)})

			// Assert
			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(pool.Workers()).To(Equal(2))
			Expect(pool.Cohort().Size()).To(Equal(2))
			persisted, err := settings.Workers(ctx, -1)
			Expect(err).NotTo(HaveOccurred())
			Expect(persisted).To(Equal(-1))
		})

		// Given a pool whose Start gate is closed by a zero worker count
		// When a start carries a positive worker count
		// Then the count opens the gate and the cohort starts
		It("should start with a worker count that opens the gate", func() {
			// Arrange
			Expect(do(http.MethodPut, "/api/v1/pool/workers", v1.SetWorkersRequest{Workers: 0}).Code).To(Equal(http.StatusOK))

			// Act
			w := do(http.MethodPost, "/api/v1/pool", v1.StartPoolRequest{Workers: ptr(1)})

			// Assert
			Expect(w.Code).To(Equal(http.StatusAccepted))
			Expect(pool.Cohort().Size()).To(Equal(1))
		})

		// Given a running pool
		// When we start it with restart set
		// Then a new cohort replaces the old one
		It("should restart a running pool", func() {
			// Arrange
			first := poolStatus(do(http.MethodPost, "/api/v1/pool", nil))
			Expect(first.CohortId).NotTo(BeNil())

			// Act
			w := do(http.MethodPost, "/api/v1/pool?restart=true", nil)

			// Assert
			Expect(w.Code).To(Equal(http.StatusAccepted))
			second := poolStatus(w)
			Expect(second.CohortId).NotTo(BeNil())
			Expect(*second.CohortId).NotTo(Equal(*first.CohortId))
			Expect(second.State).To(Equal(v1.PoolStatusStateRunning))
		})

		// Given a malformed restart flag
		// When we start the pool
		// Then the request is rejected before reaching the handler
		It("should reject an invalid restart flag", func() {
			w := do(http.MethodPost, "/api/v1/pool?restart=maybe", nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(currentState()).To(Equal(v1.PoolStatusStateIdle))
		})
	})

	Context("CancelPoolStart", func() {
		// Given an idle pool
		// When we cancel the Start command
		// Then there is nothing to cancel
		It("should return conflict when nothing runs", func() {
			Expect(do(http.MethodPost, "/api/v1/pool/cancel", nil).Code).To(Equal(http.StatusConflict))
		})

		// Given a running Start command
		// When we cancel it
		// Then the cohort stops and drains
		It("should cancel a running start", func() {
			// Arrange
			Expect(do(http.MethodPost, "/api/v1/pool", nil).Code).To(Equal(http.StatusAccepted))

			// Act
			w := do(http.MethodPost, "/api/v1/pool/cancel", nil)

			// Assert
			Expect(w.Code).To(Equal(http.StatusAccepted))
			Expect(poolStatus(w).Commands.Cancel).To(BeFalse())
			Eventually(currentState).Should(Equal(v1.PoolStatusStateIdle))
		})
	})

	Context("SetPoolWorkers", func() {
		// Given a worker count above the maximum
		// When we set it
		// Then the request is rejected
		It("should reject an out of range count", func() {
			w := do(http.MethodPut, "/api/v1/pool/workers", v1.SetWorkersRequest{Workers: 99})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(pool.Workers()).To(Equal(2))
		})

		// Given a zero worker count
		// When we set it
		// Then the Start gate closes
		It("should close the start gate on zero", func() {
			w := do(http.MethodPut, "/api/v1/pool/workers", v1.SetWorkersRequest{Workers: 0})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(poolStatus(w).Commands.Start).To(BeFalse())
			Expect(do(http.MethodPost, "/api/v1/pool", nil).Code).To(Equal(http.StatusConflict))
		})

		// Given a database that can no longer be written
		// When we set the worker count
		// Then the request fails and the pool keeps its count
		It("should keep the pool count when the count cannot be persisted", func() {
			// Arrange
			Expect(db.Close()).To(Succeed())

			// Act
			w := do(http.MethodPut, "/api/v1/pool/workers", v1.SetWorkersRequest{Workers: 3})

			// Assert
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(pool.Workers()).To(Equal(2))
		})

		It("should reject a malformed body", func() {
			req := httptest.NewRequest(http.MethodPut, "/api/v1/pool/workers", bytes.NewBufferString("{"))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("Runs", func() {
		// Given a run that was started and stopped
		// When we list the runs
		// Then the drained run is journaled as canceled with its workers
		It("should list and get journaled runs", func() {
			// Arrange
			started := poolStatus(do(http.MethodPost, "/api/v1/pool", nil))
			Expect(do(http.MethodDelete, "/api/v1/pool", nil).Code).To(Equal(http.StatusOK))

			// Act
			var list v1.RunListResponse
			Eventually(func() int {
				w := do(http.MethodGet, "/api/v1/runs", nil)
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(json.Unmarshal(w.Body.Bytes(), &list)).To(Succeed())
				return list.Total
			}).Should(Equal(1))

			// Assert
			Expect(list.Limit).To(Equal(20))
			Expect(list.Runs).To(HaveLen(1))
			Expect(list.Runs[0].Id).To(Equal(*started.CohortId))
			Expect(list.Runs[0].Outcome).To(Equal(v1.Canceled))

			w := do(http.MethodGet, "/api/v1/runs/"+list.Runs[0].Id, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			var run v1.Run
			Expect(json.Unmarshal(w.Body.Bytes(), &run)).To(Succeed())
			Expect(run.WorkerRuns).NotTo(BeNil())
			Expect(*run.WorkerRuns).To(HaveLen(2))
		})

		It("should filter runs by outcome", func() {
			w := do(http.MethodGet, "/api/v1/runs?outcome=completed&outcome=faulted", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var list v1.RunListResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &list)).To(Succeed())
			Expect(list.Total).To(BeZero())
			Expect(list.Runs).To(BeEmpty())
		})

		It("should reject an unknown outcome", func() {
			Expect(do(http.MethodGet, "/api/v1/runs?outcome=bogus", nil).Code).To(Equal(http.StatusBadRequest))
		})

		It("should cap the page size", func() {
			w := do(http.MethodGet, "/api/v1/runs?limit=1000", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var list v1.RunListResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &list)).To(Succeed())
			Expect(list.Limit).To(Equal(100))
		})

		It("should return not found for an unknown run", func() {
			Expect(do(http.MethodGet, "/api/v1/runs/unknown", nil).Code).To(Equal(http.StatusNotFound))
		})
	})
})

func ptr[T any](v T) *T {
	return &v
}

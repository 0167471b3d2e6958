package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/khimalex/shoedryer/api/v1"
	"github.com/khimalex/shoedryer/pkg/client"
	serviceErrs "github.com/khimalex/shoedryer/pkg/errors"
)

func TestClient(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Client Suite")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var _ = Describe("Client", func() {
	var (
		ctx context.Context
		mux *http.ServeMux
		srv *httptest.Server
	)

	BeforeEach(func() {
		ctx = context.Background()
		mux = http.NewServeMux()
		srv = httptest.NewServer(mux)
	})

	AfterEach(func() {
		srv.Close()
	})

	It("should reject an invalid base url", func() {
		_, err := client.NewClient("not a url")
		Expect(err).To(HaveOccurred())
	})

	// Given a server answering the status endpoint
	// When we request the status with a token
	// Then the bearer token is sent and the status decoded
	It("should get the pool status with a bearer token", func() {
		// Arrange
		var auth string
		mux.HandleFunc("GET /api/v1/pool", func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, v1.PoolStatus{State: v1.PoolStatusStateIdle, Workers: 2})
		})
		c, err := client.NewClient(srv.URL, client.WithToken("abc"))
		Expect(err).NotTo(HaveOccurred())

		// Act
		st, err := c.Status(ctx)

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(auth).To(Equal("Bearer abc"))
		Expect(st.State).To(Equal(v1.PoolStatusStateIdle))
		Expect(st.Workers).To(Equal(2))
	})

	It("should send the worker count and restart flag on start", func() {
		var (
			req     v1.StartPoolRequest
			restart string
		)
		mux.HandleFunc("POST /api/v1/pool", func(w http.ResponseWriter, r *http.Request) {
			restart = r.URL.Query().Get("restart")
			Expect(json.NewDecoder(r.Body).Decode(&req)).To(Succeed())
			writeJSON(w, http.StatusAccepted, v1.PoolStatus{State: v1.PoolStatusStateRunning})
		})
		c, err := client.NewClient(srv.URL)
		Expect(err).NotTo(HaveOccurred())

		workers := 3
		st, err := c.Start(ctx, &workers, true)

		Expect(err).NotTo(HaveOccurred())
		Expect(st.State).To(Equal(v1.PoolStatusStateRunning))
		Expect(restart).To(Equal("true"))
		Expect(req.Workers).To(HaveValue(Equal(3)))
	})

	It("should map a conflict to a gate violation", func() {
		mux.HandleFunc("DELETE /api/v1/pool", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusConflict, v1.Error{Error: "command \"stop\" cannot execute"})
		})
		c, err := client.NewClient(srv.URL)
		Expect(err).NotTo(HaveOccurred())

		_, err = c.Stop(ctx)

		Expect(serviceErrs.IsGateViolationError(err)).To(BeTrue())
	})

	It("should map a missing run to a not found error", func() {
		c, err := client.NewClient(srv.URL)
		Expect(err).NotTo(HaveOccurred())

		_, err = c.Run(ctx, "missing")

		Expect(serviceErrs.IsResourceNotFoundError(err)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("missing"))
	})

	It("should surface the server error message", func() {
		mux.HandleFunc("PUT /api/v1/pool/workers", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, v1.Error{Error: "invalid worker count 99"})
		})
		c, err := client.NewClient(srv.URL)
		Expect(err).NotTo(HaveOccurred())

		_, err = c.SetWorkers(ctx, 99)

		Expect(client.IsAPIError(err, http.StatusBadRequest)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("invalid worker count 99"))
	})

	It("should surface a plain text failure", func() {
		mux.HandleFunc("POST /api/v1/pool/cancel", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "scheduler unavailable", http.StatusServiceUnavailable)
		})
		c, err := client.NewClient(srv.URL)
		Expect(err).NotTo(HaveOccurred())

		_, err = c.Cancel(ctx)

		Expect(client.IsAPIError(err, http.StatusServiceUnavailable)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("scheduler unavailable"))
	})

	// Given a base url with a trailing slash
	// When we get a run
	// Then the request path is joined under the api prefix exactly once
	It("should join the api prefix to a base url with a trailing slash", func() {
		// Arrange
		var path string
		mux.HandleFunc("GET /api/v1/runs/{id}", func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			writeJSON(w, http.StatusOK, v1.Run{Id: r.PathValue("id"), Outcome: v1.Completed})
		})
		c, err := client.NewClient(srv.URL + "/")
		Expect(err).NotTo(HaveOccurred())

		// Act
		run, err := c.Run(ctx, "run-1")

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal("/api/v1/runs/run-1"))
		Expect(run.Id).To(Equal("run-1"))
		Expect(run.Outcome).To(Equal(v1.Completed))
	})

	It("should pass paging and outcome filters when listing runs", func() {
		var query map[string][]string
		mux.HandleFunc("GET /api/v1/runs", func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query()
			writeJSON(w, http.StatusOK, v1.RunListResponse{Runs: []v1.Run{}, Limit: 5, Offset: 10})
		})
		c, err := client.NewClient(srv.URL)
		Expect(err).NotTo(HaveOccurred())

		list, err := c.Runs(ctx, 5, 10, "canceled", "faulted")

		Expect(err).NotTo(HaveOccurred())
		Expect(list.Limit).To(Equal(5))
		Expect(query).To(HaveKeyWithValue("limit", []string{"5"}))
		Expect(query).To(HaveKeyWithValue("offset", []string{"10"}))
		Expect(query).To(HaveKeyWithValue("outcome", []string{"canceled", "faulted"}))
	})

	Context("WaitForState", func() {
		// Given a pool that becomes idle after a few polls
		// When we wait for idle
		// Then the idle status is returned
		It("should poll until the state is reached", func() {
			// Arrange
			var polls atomic.Int32
			mux.HandleFunc("GET /api/v1/pool", func(w http.ResponseWriter, r *http.Request) {
				state := v1.PoolStatusStateStopping
				if polls.Add(1) >= 3 {
					state = v1.PoolStatusStateIdle
				}
				writeJSON(w, http.StatusOK, v1.PoolStatus{State: state})
			})
			c, err := client.NewClient(srv.URL)
			Expect(err).NotTo(HaveOccurred())

			// Act
			st, err := c.WaitForState(ctx, v1.PoolStatusStateIdle, 5*time.Second)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(st.State).To(Equal(v1.PoolStatusStateIdle))
			Expect(polls.Load()).To(BeNumerically(">=", 3))
		})

		It("should stop polling on unauthorized", func() {
			var polls atomic.Int32
			mux.HandleFunc("GET /api/v1/pool", func(w http.ResponseWriter, r *http.Request) {
				polls.Add(1)
				writeJSON(w, http.StatusUnauthorized, v1.Error{Error: "invalid token"})
			})
			c, err := client.NewClient(srv.URL)
			Expect(err).NotTo(HaveOccurred())

			_, err = c.WaitForState(ctx, v1.PoolStatusStateIdle, 5*time.Second)

			Expect(serviceErrs.IsUnauthorizedError(err)).To(BeTrue())
			Expect(polls.Load()).To(Equal(int32(1)))
		})

		It("should give up after the maximum wait", func() {
			mux.HandleFunc("GET /api/v1/pool", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, v1.PoolStatus{State: v1.PoolStatusStateRunning})
			})
			c, err := client.NewClient(srv.URL)
			Expect(err).NotTo(HaveOccurred())

			_, err = c.WaitForState(ctx, v1.PoolStatusStateIdle, 200*time.Millisecond)

			Expect(err).To(HaveOccurred())
		})
	})
})

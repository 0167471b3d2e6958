package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/khimalex/shoedryer/api/v1"
	srvErrors "github.com/khimalex/shoedryer/pkg/errors"
)

// GetPool returns the pool status
// (GET /pool)
func (h *Handler) GetPool(c *gin.Context) {
	c.JSON(http.StatusOK, v1.NewPoolStatus(h.pool.Snapshot()))
}

// StartPool starts a cohort through the Start command. With restart set, a running
// cohort is stopped and drained first instead of failing the gate. A request rejected
// by the gate leaves the worker count untouched.
// (POST /pool)
func (h *Handler) StartPool(c *gin.Context, params v1.StartPoolParams) {
	var body v1.StartPoolJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	restart := params.Restart != nil && *params.Restart
	restore := func() {}

	if body.Workers != nil {
		if err := h.pool.ValidateWorkers(*body.Workers); err != nil {
			abortWithError(c, err)
			return
		}
		if !restart && !h.pool.CanStartWith(*body.Workers) {
			abortWithError(c, srvErrors.NewGateViolationError(h.pool.StartCommand().Name()))
			return
		}
		r, err := h.applyWorkers(c.Request.Context(), *body.Workers)
		if err != nil {
			abortWithError(c, err)
			return
		}
		restore = r
	}

	if restart {
		cohort, err := h.pool.Start(c.Request.Context())
		if err != nil {
			zap.S().Named("pool_handler").Errorw("failed to restart pool", "error", err)
			restore()
			abortWithError(c, err)
			return
		}
		zap.S().Named("pool_handler").Infow("pool restarted", "cohort", cohort.ID())
		c.JSON(http.StatusAccepted, v1.NewPoolStatus(h.pool.Snapshot()))
		return
	}

	execution, err := h.pool.StartCommand().ExecuteAsync(struct{}{})
	if err != nil {
		restore()
		abortWithError(c, err)
		return
	}
	if execution.IsFaulted() {
		zap.S().Named("pool_handler").Errorw("failed to start pool", "error", execution.Exception())
		abortWithError(c, execution.Exception())
		return
	}

	c.JSON(http.StatusAccepted, v1.NewPoolStatus(h.pool.Snapshot()))
}

// StopPool stops the running cohort. Its workers drain in the background.
// (DELETE /pool)
func (h *Handler) StopPool(c *gin.Context) {
	if _, err := h.pool.StopCommand().ExecuteAsync(struct{}{}); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewPoolStatus(h.pool.Snapshot()))
}

// CancelPoolStart cancels the running Start command.
// (POST /pool/cancel)
func (h *Handler) CancelPoolStart(c *gin.Context) {
	cancelCmd := h.pool.StartCommand().CancelCommand()
	if !cancelCmd.CanExecute() {
		c.JSON(http.StatusConflict, gin.H{"error": "no start command to cancel"})
		return
	}
	cancelCmd.Execute()
	c.JSON(http.StatusAccepted, v1.NewPoolStatus(h.pool.Snapshot()))
}

// SetPoolWorkers sets and persists the worker count of the next cohort.
// (PUT /pool/workers)
func (h *Handler) SetPoolWorkers(c *gin.Context) {
	var body v1.SetPoolWorkersJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := h.applyWorkers(c.Request.Context(), body.Workers); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1.NewPoolStatus(h.pool.Snapshot()))
}

// applyWorkers persists n and only then sets it on the pool, so a failed save leaves
// the pool unchanged. The returned func puts the previous count back.
func (h *Handler) applyWorkers(ctx context.Context, n int) (func(), error) {
	if err := h.pool.ValidateWorkers(n); err != nil {
		return nil, err
	}
	previous := h.pool.Workers()

	if err := h.settings.SaveWorkers(ctx, n); err != nil {
		zap.S().Named("pool_handler").Errorw("failed to persist worker count", "workers", n, "error", err)
		return nil, err
	}
	if err := h.pool.SetWorkers(n); err != nil {
		return nil, err
	}

	return func() {
		if err := h.settings.SaveWorkers(ctx, previous); err != nil {
			zap.S().Named("pool_handler").Errorw("failed to restore worker count", "workers", previous, "error", err)
		}
		_ = h.pool.SetWorkers(previous)
	}, nil
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/khimalex/shoedryer/api/v1"
	"github.com/khimalex/shoedryer/internal/services"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListRuns returns the journaled runs with filtering and pagination
// (GET /runs)
func (h *Handler) ListRuns(c *gin.Context, params v1.ListRunsParams) {
	limit := defaultPageSize
	if params.Limit != nil && *params.Limit > 0 {
		limit = min(*params.Limit, maxPageSize)
	}
	offset := 0
	if params.Offset != nil && *params.Offset > 0 {
		offset = *params.Offset
	}

	if params.Outcome != nil {
		for _, o := range *params.Outcome {
			if !o.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid outcome %q", o)})
				return
			}
		}
	}

	result, err := h.runs.List(c.Request.Context(), services.RunListParams{
		Outcomes: v1.OutcomeFilter(params.Outcome),
		Limit:    uint64(limit),
		Offset:   uint64(offset),
	})
	if err != nil {
		zap.S().Named("run_handler").Errorw("failed to list runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
		return
	}

	apiRuns := make([]v1.Run, 0, len(result.Runs))
	for _, run := range result.Runs {
		apiRuns = append(apiRuns, v1.NewRunFromModel(run))
	}

	c.JSON(http.StatusOK, v1.RunListResponse{
		Runs:   apiRuns,
		Total:  result.Total,
		Limit:  limit,
		Offset: offset,
	})
}

// GetRun returns a run with its worker outcomes
// (GET /runs/{id})
func (h *Handler) GetRun(c *gin.Context, id string) {
	run, err := h.runs.Get(c.Request.Context(), id)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			zap.S().Named("run_handler").Errorw("failed to get run", "id", id, "error", err)
		}
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1.NewRunFromModel(*run))
}

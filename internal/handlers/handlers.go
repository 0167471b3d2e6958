package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khimalex/shoedryer/internal/services"
	srvErrors "github.com/khimalex/shoedryer/pkg/errors"
)

type Handler struct {
	pool     *services.Pool
	runs     *services.RunService
	settings *services.SettingsService
}

func New(pool *services.Pool, runs *services.RunService, settings *services.SettingsService) *Handler {
	return &Handler{
		pool:     pool,
		runs:     runs,
		settings: settings,
	}
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case srvErrors.IsInvalidWorkerCountError(err):
		return http.StatusBadRequest
	case srvErrors.IsResourceNotFoundError(err):
		return http.StatusNotFound
	case srvErrors.IsGateViolationError(err), srvErrors.IsPoolClosedError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khimalex/shoedryer/internal/config"
)

const (
	apiPrefix         = "/api/v1"
	readHeaderTimeout = 10 * time.Second
)

type Server struct {
	srv    *http.Server
	engine *gin.Engine
}

func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	if cfg.Auth.Enabled && cfg.Auth.Secret == "" {
		return nil, errors.New("authentication enabled without a secret")
	}

	if cfg.Server.ServerMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router := engine.Group(apiPrefix)
	router.Use(
		ginzap.Ginzap(zap.L().Named("http"), time.RFC3339, true),
		ginzap.RecoveryWithZap(zap.L().Named("http"), true),
	)
	if cfg.Auth.Enabled {
		router.Use(JWTAuth(cfg.Auth.Secret, cfg.Auth.Issuer))
	}

	registerHandlerFn(router)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("route %s %s not found", c.Request.Method, c.Request.URL.Path)})
	})

	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:           engine,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Handler returns the router. Used by tests to serve requests without a listener.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the server is stopped or fails. A graceful stop returns nil.
func (s *Server) Start(ctx context.Context) error {
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }
	zap.S().Named("server").Infow("server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) {
	doneCh := make(chan any)
	go func() {
		if err := s.srv.Shutdown(ctx); err != nil {
			zap.S().Named("server").Errorw("server shutdown", "error", err)
		}
		close(doneCh)
	}()

	select {
	case <-doneCh:
		zap.S().Named("server").Info("server stopped")
	case <-ctx.Done():
		zap.S().Named("server").Warn("server shutdown timed out")
	}
}

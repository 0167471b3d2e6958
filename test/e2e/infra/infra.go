package infra

import (
	"context"
	"database/sql"
	"fmt"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/khimalex/shoedryer/api/v1"
	"github.com/khimalex/shoedryer/internal/config"
	"github.com/khimalex/shoedryer/internal/handlers"
	"github.com/khimalex/shoedryer/internal/models"
	"github.com/khimalex/shoedryer/internal/server"
	"github.com/khimalex/shoedryer/internal/services"
	"github.com/khimalex/shoedryer/internal/store"
	"github.com/khimalex/shoedryer/internal/store/migrations"
	"github.com/khimalex/shoedryer/internal/util"
	"github.com/khimalex/shoedryer/pkg/client"
	"github.com/khimalex/shoedryer/pkg/scheduler"
)

const (
	Secret = "e2e-secret"
	Issuer = "shoedryer-e2e"
)

// StackConfig configures a stack started by StartStack.
type StackConfig struct {
	Workers    int
	MaxWorkers int
	Workload   models.WorkloadBuilder
	// DataFolder keeps the journal on disk, so a stack restarted on the same folder
	// sees the runs and settings of the previous one.
	DataFolder string
}

// Stack is a complete shoedryer wired the way the run command wires it, served by an
// in-process HTTP server with authentication enabled.
type Stack struct {
	db   *sql.DB
	pool *services.Pool
	http *httptest.Server
}

func StartStack(ctx context.Context, sc StackConfig) (*Stack, error) {
	cfg := config.NewConfigurationWithOptionsAndDefaults(
		config.WithAuth(config.Authentication{Enabled: true, Secret: Secret, Issuer: Issuer, TokenTTL: time.Hour}),
	)

	db, err := store.NewDB(util.DatabasePath(sc.DataFolder))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := migrations.Run(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	st := store.NewStore(db)

	settingsSrv := services.NewSettingsService(st)
	workers, err := settingsSrv.Workers(ctx, sc.Workers)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	workload := sc.Workload
	if workload == nil {
		workload = models.RandomWorkload{Seed: 1}
	}

	pool := services.NewPool(
		scheduler.NewScheduler(sc.MaxWorkers),
		workload,
		services.WithWorkers(workers),
		services.WithJournal(st.Run()),
	)

	h := handlers.New(pool, services.NewRunService(st), settingsSrv)
	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, h)
	})
	if err != nil {
		_ = pool.Close(ctx)
		db.Close()
		return nil, err
	}

	s := &Stack{
		db:   db,
		pool: pool,
		http: httptest.NewServer(srv.Handler()),
	}
	zap.S().Named("e2e").Infow("stack started", "url", s.http.URL, "workers", workers, "max_workers", sc.MaxWorkers)
	return s, nil
}

func (s *Stack) URL() string {
	return s.http.URL
}

// GenerateToken signs a token accepted by the stack.
func (s *Stack) GenerateToken(subject string) (string, error) {
	return server.SignToken(Secret, Issuer, subject, time.Hour)
}

// Client returns an authenticated API client.
func (s *Stack) Client() (*client.Client, error) {
	token, err := s.GenerateToken("e2e")
	if err != nil {
		return nil, err
	}
	return client.NewClient(s.URL(), client.WithToken(token))
}

// Stop shuts the HTTP server, drains the pool and closes the database.
func (s *Stack) Stop(ctx context.Context) error {
	s.http.Close()
	err := s.pool.Close(ctx)
	if closeErr := s.db.Close(); err == nil {
		err = closeErr
	}
	return err
}

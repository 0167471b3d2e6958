package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/khimalex/shoedryer/api/v1"
	"github.com/khimalex/shoedryer/internal/handlers"
	"github.com/khimalex/shoedryer/internal/models"
	"github.com/khimalex/shoedryer/internal/server"
	"github.com/khimalex/shoedryer/internal/services"
	"github.com/khimalex/shoedryer/internal/store"
	"github.com/khimalex/shoedryer/internal/store/migrations"
	"github.com/khimalex/shoedryer/internal/util"
	"github.com/khimalex/shoedryer/pkg/scheduler"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the worker pool and its control API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		zap.S().Named("run").Infow("starting shoedryer", "version", version, "config", cfg.DebugMap())

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return run(ctx)
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "server mode: dev or prod")
	f.IntVar(&cfg.Server.HTTPPort, "http-port", cfg.Server.HTTPPort, "port of the control API")
	f.IntVar(&cfg.Pool.Workers, "workers", cfg.Pool.Workers, "initial worker count, 0 means max-workers")
	f.IntVar(&cfg.Pool.MaxWorkers, "max-workers", cfg.Pool.MaxWorkers, "upper bound of the worker count, 0 means the hardware parallelism")
	f.Uint64Var(&cfg.Pool.Seed, "seed", cfg.Pool.Seed, "seed of the random workload")
	f.DurationVar(&cfg.Pool.DrainTimeout, "drain-timeout", cfg.Pool.DrainTimeout, "how long to wait for workers to drain at shutdown")
	f.StringVar(&cfg.Store.DataFolder, "data-folder", cfg.Store.DataFolder, "folder of the run journal, empty keeps it in memory")
	f.BoolVar(&cfg.Auth.Enabled, "auth-enabled", cfg.Auth.Enabled, "require a bearer token on the control API")
	f.StringVar(&cfg.Auth.Secret, "auth-secret", cfg.Auth.Secret, "HS256 secret of bearer tokens")
	f.StringVar(&cfg.Auth.Issuer, "auth-issuer", cfg.Auth.Issuer, "issuer of bearer tokens")

	rootCmd.AddCommand(runCmd)
}

func run(ctx context.Context) error {
	if cfg.Store.DataFolder != "" {
		if err := os.MkdirAll(cfg.Store.DataFolder, 0o750); err != nil {
			return fmt.Errorf("failed to create data folder: %w", err)
		}
	}

	db, err := store.NewDB(util.DatabasePath(cfg.Store.DataFolder))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	st := store.NewStore(db)
	defer func() {
		if err := st.Close(); err != nil {
			zap.S().Named("run").Errorw("failed to close store", "error", err)
		}
	}()

	maxWorkers := cfg.Pool.EffectiveMaxWorkers()
	settingsSrv := services.NewSettingsService(st)
	workers, err := settingsSrv.Workers(ctx, cfg.Pool.EffectiveWorkers())
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if workers > maxWorkers {
		zap.S().Named("run").Warnw("persisted worker count exceeds max workers", "workers", workers, "max", maxWorkers)
		workers = maxWorkers
	}

	pool := services.NewPool(
		scheduler.NewScheduler(maxWorkers),
		models.RandomWorkload{Seed: cfg.Pool.Seed},
		services.WithWorkers(workers),
		services.WithJournal(st.Run()),
	)

	h := handlers.New(pool, services.NewRunService(st), settingsSrv)
	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, h)
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case <-ctx.Done():
		zap.S().Named("run").Info("shutdown requested")
	case err = <-errCh:
		if err != nil {
			zap.S().Named("run").Errorw("server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Pool.DrainTimeout)
	defer cancel()

	srv.Stop(shutdownCtx)
	if closeErr := pool.Close(shutdownCtx); closeErr != nil {
		zap.S().Named("run").Warnw("workers did not drain before the timeout", "error", closeErr)
	}

	return err
}

package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/khimalex/shoedryer/internal/models"
	"github.com/khimalex/shoedryer/internal/store"
	srvErrors "github.com/khimalex/shoedryer/pkg/errors"
)

// SettingsService persists the pool worker count across restarts.
type SettingsService struct {
	store *store.Store
}

func NewSettingsService(st *store.Store) *SettingsService {
	return &SettingsService{store: st}
}

// Workers returns the persisted worker count, or fallback when nothing was saved yet.
func (s *SettingsService) Workers(ctx context.Context, fallback int) (int, error) {
	settings, err := s.store.Settings().Get(ctx)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			return fallback, nil
		}
		return 0, err
	}
	return settings.Workers, nil
}

func (s *SettingsService) SaveWorkers(ctx context.Context, workers int) error {
	if err := s.store.Settings().Save(ctx, &models.PoolSettings{Workers: workers}); err != nil {
		return err
	}
	zap.S().Named("settings").Debugw("worker count persisted", "workers", workers)
	return nil
}

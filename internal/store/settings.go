package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/khimalex/shoedryer/internal/models"
	srvErrors "github.com/khimalex/shoedryer/pkg/errors"
)

// SettingsStore persists the pool settings in a single-row table.
type SettingsStore struct {
	db QueryInterceptor
}

func NewSettingsStore(db QueryInterceptor) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get retrieves the stored settings.
func (s *SettingsStore) Get(ctx context.Context) (*models.PoolSettings, error) {
	row := s.db.QueryRowContext(ctx, queryGetSettings)

	var settings models.PoolSettings
	err := row.Scan(&settings.Workers, &settings.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewSettingsNotFoundError()
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save stores or updates the settings.
func (s *SettingsStore) Save(ctx context.Context, settings *models.PoolSettings) error {
	_, err := s.db.ExecContext(ctx, queryUpsertSettings, settings.Workers)
	return err
}

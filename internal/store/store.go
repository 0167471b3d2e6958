package store

import "database/sql"

// Store provides access to all storage repositories.
type Store struct {
	db       *sql.DB
	settings *SettingsStore
	run      *RunStore
}

func NewStore(db *sql.DB) *Store {
	qi := NewQueryInterceptor(db)
	return &Store{
		db:       db,
		settings: NewSettingsStore(qi),
		run:      NewRunStore(qi),
	}
}

func (s *Store) Settings() *SettingsStore {
	return s.settings
}

func (s *Store) Run() *RunStore {
	return s.run
}

func (s *Store) Close() error {
	return s.db.Close()
}

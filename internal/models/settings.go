package models

import "time"

// PoolSettings are the pool settings persisted across restarts.
type PoolSettings struct {
	Workers   int
	UpdatedAt time.Time
}

package util

import (
	"path/filepath"
)

const (
	// InMemoryDatabase is the DuckDB path of a database that lives only in memory.
	InMemoryDatabase = ":memory:"
	databaseFile     = "shoedryer.duckdb"
)

// IntPtr returns a pointer to the given int
func IntPtr(i int) *int {
	return &i
}

// DatabasePath returns the DuckDB file inside folder, or an in-memory database when
// folder is empty.
func DatabasePath(folder string) string {
	if folder == "" {
		return InMemoryDatabase
	}
	return filepath.Join(folder, databaseFile)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

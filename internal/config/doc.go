// Package config defines the configuration structure of shoedryer.
//
// Configuration is organized into logical sections (Server, Pool, Store, Authentication)
// and uses code generation via optgen to create functional option helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Pool           - Worker pool sizing
//	├── Store          - Run journal storage
//	├── Auth           - Authentication settings
//	├── LogFormat      - Logging format ("console" or "json")
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Pool Configuration
//
//	┌──────────────┬─────────┬──────────────────────────────────────────────┐
//	│ Field        │ Default │ Description                                  │
//	├──────────────┼─────────┼──────────────────────────────────────────────┤
//	│ Workers      │ 0       │ Initial worker count (0: MaxWorkers)         │
//	│ MaxWorkers   │ 0       │ Upper bound (0: hardware parallelism)        │
//	│ Seed         │ 0       │ Seed of the random-number workload           │
//	│ DrainTimeout │ 10s     │ How long shutdown waits for workers to drain │
//	└──────────────┴─────────┴──────────────────────────────────────────────┘
//
// A worker count persisted in the store overrides Workers at startup.
//
// # Store Configuration
//
//	┌────────────┬─────────┬────────────────────────────────────────────────┐
//	│ Field      │ Default │ Description                                    │
//	├────────────┼─────────┼────────────────────────────────────────────────┤
//	│ DataFolder │ ""      │ Folder of shoedryer.duckdb (empty: in-memory)  │
//	└────────────┴─────────┴────────────────────────────────────────────────┘
//
// # Authentication Configuration
//
//	┌──────────┬─────────────┬────────────────────────────────────────────┐
//	│ Field    │ Default     │ Description                                │
//	├──────────┼─────────────┼────────────────────────────────────────────┤
//	│ Enabled  │ false       │ Require HS256 bearer tokens on the API     │
//	│ Secret   │ ""          │ Shared signing secret (sensitive)          │
//	│ Issuer   │ "shoedryer" │ Expected token issuer                      │
//	│ TokenTTL │ 1h          │ Lifetime of tokens signed by the CLI       │
//	└──────────┴─────────────┴────────────────────────────────────────────┘
//
// # Code Generation
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Pool Store Authentication
//
// Generated helpers include:
//
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption) - Create with defaults + options
//   - WithServer(Server), WithPool(Pool), etc. - Set nested structs
//   - DebugMap() - Returns map for debug logging (respects debugmap tags)
//
// # Debug Logging
//
// Secret is tagged `debugmap:"sensitive"` so DebugMap never exposes it:
//
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config

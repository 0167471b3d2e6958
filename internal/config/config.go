package config

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Pool Store Authentication

type Configuration struct {
	Server    Server         `debugmap:"visible"`
	Pool      Pool           `debugmap:"visible"`
	Store     Store          `debugmap:"visible"`
	Auth      Authentication `debugmap:"visible"`
	LogFormat string         `debugmap:"visible" default:"console"`
	LogLevel  string         `debugmap:"visible" default:"debug"`
}

type Server struct {
	ServerMode string `debugmap:"visible" default:"dev"`
	HTTPPort   int    `debugmap:"visible" default:"8000"`
}

type Pool struct {
	// Workers is the initial worker count. Zero means MaxWorkers.
	Workers int `debugmap:"visible" default:"0"`
	// MaxWorkers bounds the worker count. Zero means the hardware parallelism.
	MaxWorkers   int           `debugmap:"visible" default:"0"`
	Seed         uint64        `debugmap:"visible" default:"0"`
	DrainTimeout time.Duration `debugmap:"visible" default:"10s"`
}

type Store struct {
	// DataFolder holds the DuckDB file. Empty means an in-memory database.
	DataFolder string `debugmap:"visible" default:""`
}

type Authentication struct {
	Enabled  bool          `debugmap:"visible" default:"false"`
	Secret   string        `debugmap:"sensitive" default:""`
	Issuer   string        `debugmap:"visible" default:"shoedryer"`
	TokenTTL time.Duration `debugmap:"visible" default:"1h"`
}

// EffectiveMaxWorkers resolves MaxWorkers against the hardware parallelism.
func (p Pool) EffectiveMaxWorkers() int {
	if p.MaxWorkers > 0 {
		return p.MaxWorkers
	}
	return runtime.NumCPU()
}

// EffectiveWorkers resolves the initial worker count.
func (p Pool) EffectiveWorkers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return p.EffectiveMaxWorkers()
}

func (c Configuration) Validate() error {
	var errs []error

	switch c.LogFormat {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q: must be 'console' or 'json'", c.LogFormat))
	}

	switch c.Server.ServerMode {
	case "dev", "prod":
	default:
		errs = append(errs, fmt.Errorf("invalid server mode %q: must be 'dev' or 'prod'", c.Server.ServerMode))
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid http port %d", c.Server.HTTPPort))
	}

	if c.Pool.Workers < 0 || c.Pool.MaxWorkers < 0 {
		errs = append(errs, errors.New("worker counts must not be negative"))
	} else if c.Pool.Workers > c.Pool.EffectiveMaxWorkers() {
		errs = append(errs, fmt.Errorf("workers %d exceeds max workers %d", c.Pool.Workers, c.Pool.EffectiveMaxWorkers()))
	}

	if c.Auth.Enabled && c.Auth.Secret == "" {
		errs = append(errs, errors.New("authentication is enabled but no secret is set"))
	}

	return errors.Join(errs...)
}

package models

import (
	"math/rand/v2"
)

// Unit is one iteration of a worker's loop.
type Unit func() error

// WorkloadBuilder builds the unit run by each worker of a cohort.
type WorkloadBuilder interface {
	Build(worker int) Unit
}

// WorkloadFunc adapts a function to a WorkloadBuilder.
type WorkloadFunc func(worker int) Unit

func (f WorkloadFunc) Build(worker int) Unit {
	return f(worker)
}

// RandomWorkload keeps a core busy drawing random numbers. Each worker owns its source.
type RandomWorkload struct {
	Seed uint64
}

func (r RandomWorkload) Build(worker int) Unit {
	rng := rand.New(rand.NewPCG(r.Seed, uint64(worker)))
	return func() error {
		_ = rng.Uint64()
		return nil
	}
}

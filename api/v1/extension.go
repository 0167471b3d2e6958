package v1

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=types.cfg.yaml openapi.yaml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=server.cfg.yaml openapi.yaml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=client.cfg.yaml openapi.yaml

import (
	"github.com/khimalex/shoedryer/internal/models"
)

// NewPoolStatus converts a models.PoolStatus to an API PoolStatus.
func NewPoolStatus(m models.PoolStatus) PoolStatus {
	st := PoolStatus{
		State:       PoolStatusState(m.State),
		Workers:     m.Workers,
		MaxWorkers:  m.MaxWorkers,
		LiveWorkers: m.LiveWorkers,
		Draining:    m.Draining,
		Commands: CommandGates{
			Start:  m.CanStart,
			Stop:   m.CanStop,
			Cancel: m.CanCancel,
		},
	}

	if m.CohortID != "" {
		id := m.CohortID
		st.CohortId = &id
	}

	if m.LastRun != nil {
		run := NewRunFromModel(*m.LastRun)
		st.LastRun = &run
	}

	return st
}

// NewRunFromModel converts a models.Run to an API Run. Worker outcomes are included
// only when the model carries them.
func NewRunFromModel(m models.Run) Run {
	run := Run{
		Id:         m.ID,
		Workers:    m.Workers,
		Outcome:    RunOutcome(m.Outcome),
		Iterations: m.Iterations,
		StartedAt:  m.StartedAt,
		StoppedAt:  m.StoppedAt,
		DrainedAt:  m.DrainedAt,
	}

	if m.Error != "" {
		errMsg := m.Error
		run.Error = &errMsg
	}

	if len(m.WorkerRuns) > 0 {
		workers := make([]WorkerRun, 0, len(m.WorkerRuns))
		for _, w := range m.WorkerRuns {
			workers = append(workers, NewWorkerRunFromModel(w))
		}
		run.WorkerRuns = &workers
	}

	return run
}

func NewWorkerRunFromModel(m models.WorkerRun) WorkerRun {
	w := WorkerRun{
		Worker:     m.Worker,
		Outcome:    RunOutcome(m.Outcome),
		Iterations: m.Iterations,
	}
	if m.Error != "" {
		errMsg := m.Error
		w.Error = &errMsg
	}
	return w
}

// OutcomeFilter converts the outcome query parameter to store filter values.
func OutcomeFilter(outcomes *[]RunOutcome) []string {
	if outcomes == nil {
		return nil
	}
	result := make([]string, 0, len(*outcomes))
	for _, o := range *outcomes {
		result = append(result, string(o))
	}
	return result
}

// Valid reports whether o is a known outcome.
func (o RunOutcome) Valid() bool {
	switch o {
	case Running, Completed, Canceled, Faulted:
		return true
	default:
		return false
	}
}

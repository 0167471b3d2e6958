package services

import (
	"context"

	"github.com/khimalex/shoedryer/internal/models"
	"github.com/khimalex/shoedryer/internal/store"
)

type RunService struct {
	store *store.Store
}

func NewRunService(st *store.Store) *RunService {
	return &RunService{store: st}
}

type RunListParams struct {
	Outcomes []string
	Limit    uint64
	Offset   uint64
}

type RunListResult struct {
	Runs  []models.Run
	Total int
}

func (s *RunService) List(ctx context.Context, params RunListParams) (*RunListResult, error) {
	var filters []store.ListOption
	if len(params.Outcomes) > 0 {
		filters = append(filters, store.ByOutcomes(params.Outcomes...))
	}

	opts := append([]store.ListOption{}, filters...)
	opts = append(opts, store.WithDefaultSort())
	if params.Limit > 0 {
		opts = append(opts, store.WithLimit(params.Limit))
	}
	if params.Offset > 0 {
		opts = append(opts, store.WithOffset(params.Offset))
	}

	runs, err := s.store.Run().List(ctx, opts...)
	if err != nil {
		return nil, err
	}

	// Get total count without pagination
	total, err := s.store.Run().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	return &RunListResult{
		Runs:  runs,
		Total: total,
	}, nil
}

// Get returns a run with its worker outcomes.
func (s *RunService) Get(ctx context.Context, id string) (*models.Run, error) {
	return s.store.Run().Get(ctx, id)
}

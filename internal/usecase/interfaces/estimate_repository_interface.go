package interfaces

import (
	"context"
	"paving_estimates/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The service must be able to:
//   - insert a fully validated estimate atomically (all-or-nothing)
//   - fetch a stored estimate by id (no recomputation on read)
//   - list all estimates projected to the summary view

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListSummaries(ctx context.Context) ([]entities.EstimateSummary, error)
}

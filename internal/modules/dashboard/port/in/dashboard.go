package in

import (
	"context"

	"ghostwrite/internal/modules/dashboard/dto"
)

type Usecase interface {
	// Load fetches stats, recent activity, skills, and insights
	// concurrently, then derives achievement state from the stats. Any
	// fetch failure fails the whole load.
	Load(ctx context.Context) (dto.AggregateOutput, error)
}

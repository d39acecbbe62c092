package in

import (
	"context"

	"ghostwrite/internal/modules/activity/dto"
)

type Usecase interface {
	// Recent returns up to days entries ordered by date ascending.
	Recent(ctx context.Context, days int) ([]dto.DatumOutput, error)
	Log(ctx context.Context, input dto.LogInput) error
}

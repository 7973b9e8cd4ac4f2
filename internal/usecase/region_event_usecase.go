package usecase

import (
	"context"

	"venuealert/internal/domain/entity"
)

// RegionEventUsecase handles region crossings in the geo worker using persisted state only
type RegionEventUsecase interface {
	// HandleRegionEvent notifies on ENTER subject to resolution and cooldown.
	// It never fails and never panics; every problem is logged.
	HandleRegionEvent(ctx context.Context, event *entity.RegionEvent)
}

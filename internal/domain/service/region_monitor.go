package service

import (
	"context"

	"venuealert/internal/domain/entity"
)

// RegionMonitor is the boundary to the capability that watches geographic regions.
// It holds no state callers may rely on; every Start replaces the whole watch list.
type RegionMonitor interface {
	// Start stops any existing watch, then watches exactly the given regions.
	Start(ctx context.Context, regions []entity.Region) error

	// Stop stops watching. Stopping an idle monitor succeeds.
	Stop(ctx context.Context) error
}

// LocationObserver accepts device position samples for region crossing detection.
type LocationObserver interface {
	Observe(ctx context.Context, fix entity.LocationFix) error
}

package repository

import (
	"context"
	"time"
)

// CooldownRepository tracks when each geofence last produced a notification.
type CooldownRepository interface {
	// ShouldNotify reports whether more than the cooldown window has passed since the last notification.
	// A geofence that never fired is always notifiable.
	ShouldNotify(ctx context.Context, geofenceID string, now time.Time) (bool, error)

	// RecordFired stores now as the last notification time for the geofence.
	RecordFired(ctx context.Context, geofenceID string, now time.Time) error

	// ClearAll forgets every cooldown record.
	ClearAll(ctx context.Context) error
}

package repository

import (
	"context"

	"venuealert/internal/domain/entity"
)

// GeofenceRepository is the durable record of monitored geofences.
// Every mutating call has persisted its result when it returns nil.
type GeofenceRepository interface {
	// Upsert validates and stores a geofence, replacing any geofence with the same ID.
	// It returns the full set as written. Returns domain errors.ErrInvalidGeofence when the ID or name is blank.
	Upsert(ctx context.Context, geofence *entity.Geofence) ([]*entity.Geofence, error)

	// Remove deletes the geofence with the given ID and returns the full set as written.
	// Removing an unknown ID still rewrites the current set.
	Remove(ctx context.Context, id string) ([]*entity.Geofence, error)

	// ClearAll persists an empty geofence set. Cooldown records are purged by the caller.
	ClearAll(ctx context.Context) error

	// SaveAll replaces the persisted set with the given geofences.
	SaveAll(ctx context.Context, geofences []*entity.Geofence) error

	// LoadAll reads the persisted set. Corrupt data yields an empty set, not an error.
	LoadAll(ctx context.Context) ([]*entity.Geofence, error)

	// Get returns the geofence with the given ID or domain errors.ErrGeofenceNotFound.
	Get(ctx context.Context, id string) (*entity.Geofence, error)

	// FindByVenueID returns the first geofence backed by the venue or domain errors.ErrGeofenceNotFound.
	FindByVenueID(ctx context.Context, venueID string) (*entity.Geofence, error)

	// FindByName returns the first geofence with the display name or domain errors.ErrGeofenceNotFound.
	FindByName(ctx context.Context, name string) (*entity.Geofence, error)
}

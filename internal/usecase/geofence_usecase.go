package usecase

import (
	"context"

	"venuealert/internal/domain/entity"
)

// RebuildResult reports the outcome of RebuildFromSavedItems
type RebuildResult struct {
	// Registered is the number of geofences in the rebuilt set
	Registered int `json:"registered"`

	// Skipped lists saved item IDs left out for disabled alerts or missing coordinates
	Skipped []string `json:"skipped"`

	// InFlight is true when another rebuild was running and this call did nothing
	InFlight bool `json:"inFlight"`
}

// GeofenceUsecase is the geofencing coordinator: it owns the active geofence set and keeps the
// region monitor programmed with it
type GeofenceUsecase interface {
	// Initialize reconciles memory with storage and restarts monitoring. It never fails; problems are logged
	Initialize(ctx context.Context)

	// AddGeofence upserts the geofence, persists it, then re-registers the full set with the region monitor
	AddGeofence(ctx context.Context, geofence *entity.Geofence) error

	// RemoveGeofence removes the geofence if present, persists, then re-registers the full set
	RemoveGeofence(ctx context.Context, id string) error

	// RebuildFromSavedItems replaces the set with one geofence per enabled saved item with valid coordinates
	RebuildFromSavedItems(ctx context.Context, items []*entity.SavedItem, radiusMiles float64) (*RebuildResult, error)

	// ClearAllGeofences empties the set, stops monitoring and purges cooldown records
	ClearAllGeofences(ctx context.Context) error

	// SyncMonitoring re-applies the permission gate to the current set, stopping monitoring when revoked
	SyncMonitoring(ctx context.Context) error

	// GetActiveGeofences returns copies of the active geofences
	GetActiveGeofences(ctx context.Context) []*entity.Geofence

	// HasGeofence reports whether the id is in the active set
	HasGeofence(ctx context.Context, id string) bool
}

// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"strings"
)

const (
	// MinRegionRadiusMeters is the smallest radius the region monitor accepts.
	MinRegionRadiusMeters = 100.0

	// MetersPerMile converts the user-facing alert radius into meters.
	MetersPerMile = 1609.34
)

// Geofence is a monitored circular region around a saved venue.
// ID is the owning saved item's ID, not the venue ID.
type Geofence struct {
	ID        string  `json:"id"`                // The saved item ID that owns this geofence.
	Name      string  `json:"name"`              // Display name used in notification text.
	Latitude  float64 `json:"latitude"`          // Center latitude (venue coordinates).
	Longitude float64 `json:"longitude"`         // Center longitude (venue coordinates).
	Radius    float64 `json:"radius"`            // Requested radius in meters, stored unclamped.
	VenueID   string  `json:"venueId,omitempty"` // Optional backing venue, used for deep links and lookup fallback.
}

// Validate reports whether the geofence carries the fields required for storage.
func (g *Geofence) Validate() bool {
	return g != nil && strings.TrimSpace(g.ID) != "" && strings.TrimSpace(g.Name) != ""
}

// RegistrationRadius returns the radius handed to the region monitor.
func (g *Geofence) RegistrationRadius(minRadius float64) float64 {
	if minRadius <= 0 {
		minRadius = MinRegionRadiusMeters
	}

	return math.Max(g.Radius, minRadius)
}

// ToRegion converts the geofence into the clamped region registration.
func (g *Geofence) ToRegion(minRadius float64) Region {
	return Region{
		ID:           g.ID,
		Latitude:     g.Latitude,
		Longitude:    g.Longitude,
		RadiusMeters: g.RegistrationRadius(minRadius),
	}
}

// Clone returns an independent copy.
func (g *Geofence) Clone() *Geofence {
	if g == nil {
		return nil
	}
	cloned := *g

	return &cloned
}

// MilesToMeters converts an alert radius in miles to meters.
func MilesToMeters(miles float64) float64 {
	return miles * MetersPerMile
}

// UpsertGeofence replaces the geofence with the same ID or appends it.
func UpsertGeofence(geofences []*Geofence, geofence *Geofence) []*Geofence {
	for idx, existing := range geofences {
		if existing.ID == geofence.ID {
			geofences[idx] = geofence

			return geofences
		}
	}

	return append(geofences, geofence)
}

// RemoveGeofence drops the geofence with the given ID, if any.
func RemoveGeofence(geofences []*Geofence, id string) []*Geofence {
	filtered := make([]*Geofence, 0, len(geofences))
	for _, existing := range geofences {
		if existing.ID != id {
			filtered = append(filtered, existing)
		}
	}

	return filtered
}

// CloneGeofences deep-copies a geofence list.
func CloneGeofences(geofences []*Geofence) []*Geofence {
	cloned := make([]*Geofence, 0, len(geofences))
	for _, geofence := range geofences {
		cloned = append(cloned, geofence.Clone())
	}

	return cloned
}

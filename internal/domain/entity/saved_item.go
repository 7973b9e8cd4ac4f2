package entity

import "math"

// Venue is the restaurant backing a saved item.
type Venue struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SavedItem is a bucket-list entry as delivered by the backend sync layer.
type SavedItem struct {
	ID                   string `json:"id"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	Venue                Venue  `json:"venue"`
}

// HasValidCoordinates reports whether the venue can be monitored.
// (0, 0) is what the backend sends for venues it never geocoded.
func (i *SavedItem) HasValidCoordinates() bool {
	lat, lng := i.Venue.Latitude, i.Venue.Longitude
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return false
	}

	return lat != 0 || lng != 0
}

// ToGeofence builds the geofence for this item at the given radius in meters.
func (i *SavedItem) ToGeofence(radiusMeters float64) *Geofence {
	return &Geofence{
		ID:        i.ID,
		Name:      i.Venue.Name,
		Latitude:  i.Venue.Latitude,
		Longitude: i.Venue.Longitude,
		Radius:    radiusMeters,
		VenueID:   i.Venue.ID,
	}
}

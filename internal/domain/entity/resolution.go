package entity

// MatchKind records which key resolved a region identifier.
type MatchKind string

const (
	MatchNone    MatchKind = ""
	MatchByID    MatchKind = "id"
	MatchByVenue MatchKind = "venueId"
	MatchByName  MatchKind = "name"
)

// FindGeofenceByID returns the geofence with the given ID, or nil.
func FindGeofenceByID(geofences []*Geofence, id string) *Geofence {
	if id == "" {
		return nil
	}
	for _, geofence := range geofences {
		if geofence.ID == id {
			return geofence
		}
	}

	return nil
}

// FindGeofenceByVenueID returns the first geofence backed by the given venue, or nil.
func FindGeofenceByVenueID(geofences []*Geofence, venueID string) *Geofence {
	if venueID == "" {
		return nil
	}
	for _, geofence := range geofences {
		if geofence.VenueID == venueID {
			return geofence
		}
	}

	return nil
}

// FindGeofenceByName returns the first geofence with the given display name, or nil.
func FindGeofenceByName(geofences []*Geofence, name string) *Geofence {
	if name == "" {
		return nil
	}
	for _, geofence := range geofences {
		if geofence.Name == name {
			return geofence
		}
	}

	return nil
}

// ResolveGeofence maps a region identifier back to a stored geofence by ID,
// then venue ID, then name.
//
// Region identifiers have been seen to drift away from stored IDs across
// reinstalls; keep the fallbacks until that drift is root-caused.
func ResolveGeofence(geofences []*Geofence, regionID string) (*Geofence, MatchKind) {
	if geofence := FindGeofenceByID(geofences, regionID); geofence != nil {
		return geofence, MatchByID
	}
	if geofence := FindGeofenceByVenueID(geofences, regionID); geofence != nil {
		return geofence, MatchByVenue
	}
	if geofence := FindGeofenceByName(geofences, regionID); geofence != nil {
		return geofence, MatchByName
	}

	return nil, MatchNone
}

package entity

import "time"

// Region is a circular area registered with the region monitor.
type Region struct {
	ID           string  `json:"id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"` // Always the clamped registration radius.
}

// RegionEventType is the boundary crossing direction.
type RegionEventType string

const (
	RegionEventEnter RegionEventType = "enter"
	RegionEventExit  RegionEventType = "exit"
)

// RegionEvent is delivered to the geo worker when the device crosses a region boundary.
type RegionEvent struct {
	EventID    string          `json:"event_id"`
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	Type       RegionEventType `json:"type"`
	RegionID   string          `json:"region_id"`
	Latitude   float64         `json:"latitude"`  // Device latitude at the crossing.
	Longitude  float64         `json:"longitude"` // Device longitude at the crossing.
	OccurredAt time.Time       `json:"occurred_at"`
}

// LocationFix is a single position sample reported by the device.
type LocationFix struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy"` // Horizontal accuracy in meters, 0 when unknown.
	RecordedAt time.Time `json:"recorded_at"`
}

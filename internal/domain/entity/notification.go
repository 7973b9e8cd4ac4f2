package entity

import "fmt"

// NotificationTrigger controls when a local notification fires.
type NotificationTrigger string

// TriggerImmediate fires the notification as soon as it is scheduled.
const TriggerImmediate NotificationTrigger = "immediate"

// NotificationData is attached to the notification for navigation on tap.
type NotificationData struct {
	GeofenceID string `json:"geofenceId"`
	Name       string `json:"name"`
	VenueID    string `json:"venueId,omitempty"`
}

// LocalNotification is the payload handed to the notification delivery layer.
type LocalNotification struct {
	Title   string              `json:"title"`
	Body    string              `json:"body"`
	Data    NotificationData    `json:"data"`
	Trigger NotificationTrigger `json:"trigger"`
}

// NewArrivalNotification composes the "you have arrived" notification for a geofence.
func NewArrivalNotification(geofence *Geofence) *LocalNotification {
	return &LocalNotification{
		Title: "You're near a bucket list spot!",
		Body:  fmt.Sprintf("%s is nearby. Time to check it off your list?", geofence.Name),
		Data: NotificationData{
			GeofenceID: geofence.ID,
			Name:       geofence.Name,
			VenueID:    geofence.VenueID,
		},
		Trigger: TriggerImmediate,
	}
}

// DataMap flattens the notification data for transports that only carry strings.
func (d NotificationData) DataMap() map[string]string {
	data := map[string]string{
		"geofenceId": d.GeofenceID,
		"name":       d.Name,
	}
	if d.VenueID != "" {
		data["venueId"] = d.VenueID
	}

	return data
}

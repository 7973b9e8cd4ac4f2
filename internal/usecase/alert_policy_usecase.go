package usecase

import (
	"context"

	"venuealert/internal/domain/entity"
)

// AlertStatus is what the alert settings screen needs to render and self-diagnose
type AlertStatus struct {
	Settings        *entity.AlertSettings    `json:"settings"`
	Permissions     *entity.PermissionStatus `json:"permissions"`
	ActiveGeofences int                      `json:"activeGeofences"`
}

// AlertPolicyUsecase turns the user's alert preferences into coordinator calls
type AlertPolicyUsecase interface {
	GetSettings(ctx context.Context) (*entity.AlertSettings, error)
	GetStatus(ctx context.Context) (*AlertStatus, error)

	// SetMasterSwitch persists the switch; off clears every geofence, on rebuilds from items
	SetMasterSwitch(ctx context.Context, enabled bool, items []*entity.SavedItem) (*RebuildResult, error)

	// SetItemAlert adds or removes a single item's geofence while the master switch is on
	SetItemAlert(ctx context.Context, item *entity.SavedItem, enabled bool) error

	// SetRadius persists the radius and rebuilds every geofence with it while the master switch is on
	SetRadius(ctx context.Context, radiusMiles float64, items []*entity.SavedItem) (*RebuildResult, error)

	// ReportPermissions stores the device's permission state and re-applies the monitoring gate
	ReportPermissions(ctx context.Context, status *entity.PermissionStatus) error
}

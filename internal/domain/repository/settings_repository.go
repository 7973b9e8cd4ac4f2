package repository

import (
	"context"

	"venuealert/internal/domain/entity"
)

// AlertSettingsRepository persists the user's alert preferences.
type AlertSettingsRepository interface {
	// GetSettings returns the stored settings, or ErrKeyNotFound when none were saved.
	GetSettings(ctx context.Context) (*entity.AlertSettings, error)
	SaveSettings(ctx context.Context, settings *entity.AlertSettings) error
}

// PermissionRepository persists the location permission state reported by the device.
type PermissionRepository interface {
	GetPermissions(ctx context.Context) (*entity.PermissionStatus, error)
	SavePermissions(ctx context.Context, status *entity.PermissionStatus) error
}

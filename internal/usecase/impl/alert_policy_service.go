package impl

import (
	"context"
	"log/slog"
	"math"

	"venuealert/config"
	"venuealert/internal/domain/entity"
	domainerrors "venuealert/internal/domain/errors"
	"venuealert/internal/domain/repository"
	"venuealert/internal/errors"
	"venuealert/internal/usecase"
)

type alertPolicyService struct {
	logger        *slog.Logger
	settings      repository.AlertSettingsRepository
	permissions   repository.PermissionRepository
	geofences     usecase.GeofenceUsecase
	defaultRadius float64
}

// NewAlertPolicyService creates the alert policy usecase
func NewAlertPolicyService(
	cfg *config.Config,
	logger *slog.Logger,
	settings repository.AlertSettingsRepository,
	permissions repository.PermissionRepository,
	geofences usecase.GeofenceUsecase,
) usecase.AlertPolicyUsecase {
	defaultRadius := 1.0
	if cfg != nil && cfg.Geofencing != nil && cfg.Geofencing.DefaultRadiusMiles > 0 {
		defaultRadius = cfg.Geofencing.DefaultRadiusMiles
	}

	return &alertPolicyService{
		logger:        logger,
		settings:      settings,
		permissions:   permissions,
		geofences:     geofences,
		defaultRadius: defaultRadius,
	}
}

func (s *alertPolicyService) GetSettings(ctx context.Context) (*entity.AlertSettings, error) {
	settings, err := s.settings.GetSettings(ctx)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return &entity.AlertSettings{MasterEnabled: false, RadiusMiles: s.defaultRadius}, nil
	}
	if err != nil {
		return nil, err
	}
	if settings.RadiusMiles <= 0 {
		settings.RadiusMiles = s.defaultRadius
	}

	return settings, nil
}

func (s *alertPolicyService) GetStatus(ctx context.Context) (*usecase.AlertStatus, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	permissions, err := s.permissions.GetPermissions(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.AlertStatus{
		Settings:        settings,
		Permissions:     permissions,
		ActiveGeofences: len(s.geofences.GetActiveGeofences(ctx)),
	}, nil
}

func (s *alertPolicyService) SetMasterSwitch(ctx context.Context, enabled bool, items []*entity.SavedItem) (*usecase.RebuildResult, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.MasterEnabled = enabled
	if err := s.settings.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}

	if !enabled {
		s.logger.InfoContext(ctx, "[AlertPolicy] Location alerts disabled")

		return &usecase.RebuildResult{}, s.geofences.ClearAllGeofences(ctx)
	}

	s.logger.InfoContext(ctx, "[AlertPolicy] Location alerts enabled", slog.Int("items", len(items)))

	return s.geofences.RebuildFromSavedItems(ctx, items, settings.RadiusMiles)
}

func (s *alertPolicyService) SetItemAlert(ctx context.Context, item *entity.SavedItem, enabled bool) error {
	if item == nil || item.ID == "" {
		return domainerrors.ErrInvalidGeofence
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return err
	}

	// Nothing is monitored while the master switch is off; the rebuild on enable picks the item up.
	if !settings.MasterEnabled {
		return nil
	}

	if !enabled {
		return s.geofences.RemoveGeofence(ctx, item.ID)
	}

	if !item.HasValidCoordinates() {
		return domainerrors.ErrInvalidGeofence.WithDetails("venue has no usable coordinates")
	}

	return s.geofences.AddGeofence(ctx, item.ToGeofence(entity.MilesToMeters(settings.RadiusMiles)))
}

func (s *alertPolicyService) SetRadius(ctx context.Context, radiusMiles float64, items []*entity.SavedItem) (*usecase.RebuildResult, error) {
	if radiusMiles <= 0 || math.IsNaN(radiusMiles) || math.IsInf(radiusMiles, 0) {
		return nil, domainerrors.ErrInvalidRadius
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.RadiusMiles = radiusMiles
	if err := s.settings.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}

	if !settings.MasterEnabled {
		return &usecase.RebuildResult{}, nil
	}

	// The monitor cannot change a region's radius in place, so every geofence is re-registered.
	return s.geofences.RebuildFromSavedItems(ctx, items, radiusMiles)
}

func (s *alertPolicyService) ReportPermissions(ctx context.Context, status *entity.PermissionStatus) error {
	if status == nil {
		return domainerrors.ErrValidationFailed.WithDetails("permission status is required")
	}

	if err := s.permissions.SavePermissions(ctx, status); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "[AlertPolicy] Location permission reported",
		slog.Bool("foreground", status.Foreground),
		slog.Bool("background", status.Background),
	)

	return s.geofences.SyncMonitoring(ctx)
}

package impl

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"venuealert/config"
	"venuealert/internal/domain/entity"
	domainerrors "venuealert/internal/domain/errors"
	"venuealert/internal/domain/repository"
	"venuealert/internal/domain/service"
	"venuealert/internal/errors"
	"venuealert/internal/usecase"

	"golang.org/x/sync/semaphore"
)

type geofenceService struct {
	logger      *slog.Logger
	geofences   repository.GeofenceRepository
	cooldowns   repository.CooldownRepository
	monitor     service.RegionMonitor
	permissions service.PermissionProvider
	minRadius   float64

	// mutation admits one persist+reprogram sequence at a time.
	mutation *semaphore.Weighted
	// rebuilding is held for the whole of a rebuild, including the wait for mutation.
	rebuilding *semaphore.Weighted

	mu     sync.RWMutex
	active []*entity.Geofence
}

// NewGeofenceService creates the geofencing coordinator
func NewGeofenceService(
	cfg *config.Config,
	logger *slog.Logger,
	geofences repository.GeofenceRepository,
	cooldowns repository.CooldownRepository,
	monitor service.RegionMonitor,
	permissions service.PermissionProvider,
) usecase.GeofenceUsecase {
	minRadius := entity.MinRegionRadiusMeters
	if cfg != nil && cfg.Geofencing != nil && cfg.Geofencing.MinRadiusMeters > 0 {
		minRadius = cfg.Geofencing.MinRadiusMeters
	}

	return &geofenceService{
		logger:      logger,
		geofences:   geofences,
		cooldowns:   cooldowns,
		monitor:     monitor,
		permissions: permissions,
		minRadius:   minRadius,
		mutation:    semaphore.NewWeighted(1),
		rebuilding:  semaphore.NewWeighted(1),
		active:      []*entity.Geofence{},
	}
}

// Initialize runs on every process start and must not fail.
func (s *geofenceService) Initialize(ctx context.Context) {
	if err := s.mutation.Acquire(ctx, 1); err != nil {
		s.logger.WarnContext(ctx, "[Geofencing] Initialize canceled", slog.Any("error", err))

		return
	}
	defer s.mutation.Release(1)

	stored, err := s.geofences.LoadAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "[Geofencing] Failed to load persisted geofences", slog.Any("error", err))
	}

	inMemory := s.snapshot()

	switch {
	case err != nil:
		// Storage unreadable; keep whatever is in memory.
	case len(inMemory) == 0 && len(stored) > 0:
		s.setActive(stored)
	case len(inMemory) > 0 && len(stored) == 0:
		// A previous run changed memory but died before persisting it.
		if saveErr := s.geofences.SaveAll(ctx, inMemory); saveErr != nil {
			s.logger.ErrorContext(ctx, "[Geofencing] Failed to persist in-memory geofences", slog.Any("error", saveErr))
		} else {
			s.logger.WarnContext(ctx, "[Geofencing] Restored empty storage from memory", slog.Int("count", len(inMemory)))
		}
	case len(stored) > 0:
		s.setActive(stored)
	}

	active := s.snapshot()
	s.logger.InfoContext(ctx, "[Geofencing] Initialized", slog.Int("geofences", len(active)))

	if len(active) == 0 {
		return
	}

	if err := s.program(ctx, active); err != nil {
		s.logger.ErrorContext(ctx, "[Geofencing] Failed to start monitoring", slog.Any("error", err))
	}
}

func (s *geofenceService) AddGeofence(ctx context.Context, geofence *entity.Geofence) error {
	if !geofence.Validate() {
		return domainerrors.ErrInvalidGeofence
	}

	if err := s.mutation.Acquire(ctx, 1); err != nil {
		return errors.Wrap(err, "wait for geofence mutation")
	}
	defer s.mutation.Release(1)

	written, err := s.geofences.Upsert(ctx, geofence)
	if err != nil {
		return err
	}

	s.setActive(written)

	return s.program(ctx, s.snapshot())
}

func (s *geofenceService) RemoveGeofence(ctx context.Context, id string) error {
	if err := s.mutation.Acquire(ctx, 1); err != nil {
		return errors.Wrap(err, "wait for geofence mutation")
	}
	defer s.mutation.Release(1)

	written, err := s.geofences.Remove(ctx, id)
	if err != nil {
		return err
	}

	s.setActive(written)

	return s.program(ctx, s.snapshot())
}

func (s *geofenceService) RebuildFromSavedItems(ctx context.Context, items []*entity.SavedItem, radiusMiles float64) (*usecase.RebuildResult, error) {
	if radiusMiles <= 0 || math.IsNaN(radiusMiles) || math.IsInf(radiusMiles, 0) {
		return nil, domainerrors.ErrInvalidRadius
	}

	// Only a concurrent rebuild makes this one a no-op; other mutations are waited for.
	if !s.rebuilding.TryAcquire(1) {
		s.logger.InfoContext(ctx, "[Geofencing] Rebuild already in flight, skipping")

		return &usecase.RebuildResult{InFlight: true}, nil
	}
	defer s.rebuilding.Release(1)

	if err := s.mutation.Acquire(ctx, 1); err != nil {
		return nil, errors.Wrap(err, "wait for geofence mutation")
	}
	defer s.mutation.Release(1)

	radiusMeters := entity.MilesToMeters(radiusMiles)
	rebuilt := make([]*entity.Geofence, 0, len(items))
	skipped := make([]string, 0)
	for _, item := range items {
		if item == nil {
			continue
		}
		if !item.NotificationsEnabled || !item.HasValidCoordinates() {
			skipped = append(skipped, item.ID)

			continue
		}

		geofence := item.ToGeofence(radiusMeters)
		if !geofence.Validate() {
			skipped = append(skipped, item.ID)

			continue
		}
		rebuilt = entity.UpsertGeofence(rebuilt, geofence)
	}

	if err := s.geofences.SaveAll(ctx, rebuilt); err != nil {
		return nil, err
	}
	if err := s.cooldowns.ClearAll(ctx); err != nil {
		return nil, err
	}

	s.setActive(rebuilt)

	s.logger.InfoContext(ctx, "[Geofencing] Rebuilt geofences from saved items",
		slog.Int("registered", len(rebuilt)),
		slog.Int("skipped", len(skipped)),
		slog.Float64("radius_meters", radiusMeters),
	)

	if err := s.program(ctx, s.snapshot()); err != nil {
		return nil, err
	}

	return &usecase.RebuildResult{Registered: len(rebuilt), Skipped: skipped}, nil
}

func (s *geofenceService) ClearAllGeofences(ctx context.Context) error {
	if err := s.mutation.Acquire(ctx, 1); err != nil {
		return errors.Wrap(err, "wait for geofence mutation")
	}
	defer s.mutation.Release(1)

	if err := s.geofences.ClearAll(ctx); err != nil {
		return err
	}

	s.setActive(nil)

	// The cooldown purge does not depend on the monitor stopping.
	purgeErr := s.cooldowns.ClearAll(ctx)
	stopErr := errors.Wrap(s.monitor.Stop(ctx), "stop region monitor")

	return errors.Join(purgeErr, stopErr)
}

func (s *geofenceService) SyncMonitoring(ctx context.Context) error {
	if err := s.mutation.Acquire(ctx, 1); err != nil {
		return errors.Wrap(err, "wait for geofence mutation")
	}
	defer s.mutation.Release(1)

	active := s.snapshot()
	if len(active) > 0 && !s.locationGranted(ctx) {
		s.logger.WarnContext(ctx, "[Geofencing] Location permission revoked, stopping monitoring")

		return errors.Wrap(s.monitor.Stop(ctx), "stop region monitor")
	}

	return s.program(ctx, active)
}

func (s *geofenceService) GetActiveGeofences(_ context.Context) []*entity.Geofence {
	return s.snapshot()
}

func (s *geofenceService) HasGeofence(_ context.Context, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return entity.FindGeofenceByID(s.active, id) != nil
}

// program replaces the monitor's watch list with geofences. Callers hold the mutation semaphore.
func (s *geofenceService) program(ctx context.Context, geofences []*entity.Geofence) error {
	if len(geofences) == 0 {
		return errors.Wrap(s.monitor.Stop(ctx), "stop region monitor")
	}

	if !s.locationGranted(ctx) {
		s.logger.WarnContext(ctx, "[Geofencing] Location permission missing, alerts will not fire",
			slog.Int("geofences", len(geofences)),
		)

		return nil
	}

	regions := make([]entity.Region, 0, len(geofences))
	for _, geofence := range geofences {
		regions = append(regions, geofence.ToRegion(s.minRadius))
	}

	if err := s.monitor.Start(ctx, regions); err != nil {
		return errors.Wrap(err, "start region monitor")
	}

	s.logger.DebugContext(ctx, "[Geofencing] Region monitor programmed", slog.Int("regions", len(regions)))

	return nil
}

// locationGranted requires both permissions; a failed query counts as not granted.
func (s *geofenceService) locationGranted(ctx context.Context) bool {
	foreground, err := s.permissions.ForegroundLocationGranted(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "[Geofencing] Foreground permission query failed", slog.Any("error", err))

		return false
	}

	background, err := s.permissions.BackgroundLocationGranted(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "[Geofencing] Background permission query failed", slog.Any("error", err))

		return false
	}

	return foreground && background
}

func (s *geofenceService) snapshot() []*entity.Geofence {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return entity.CloneGeofences(s.active)
}

func (s *geofenceService) setActive(geofences []*entity.Geofence) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = entity.CloneGeofences(geofences)
}

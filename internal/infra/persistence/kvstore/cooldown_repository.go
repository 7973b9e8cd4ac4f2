package kvstore

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"venuealert/config"
	"venuealert/internal/domain/constants"
	"venuealert/internal/domain/repository"
	"venuealert/internal/errors"
)

type cooldownRepository struct {
	store  repository.KeyValueStore
	window time.Duration
	logger *slog.Logger
}

// NewCooldownRepository creates the cooldown tracker with the configured window.
func NewCooldownRepository(store repository.KeyValueStore, cfg *config.Config, logger *slog.Logger) repository.CooldownRepository {
	window := time.Duration(0)
	if cfg != nil && cfg.Geofencing != nil {
		window = cfg.Geofencing.CooldownWindow
	}

	return &cooldownRepository{
		store:  store,
		window: window,
		logger: logger,
	}
}

func (repo *cooldownRepository) ShouldNotify(ctx context.Context, geofenceID string, now time.Time) (bool, error) {
	raw, err := repo.store.Get(ctx, cooldownKey(geofenceID))
	if errors.Is(err, repository.ErrKeyNotFound) {
		return true, nil
	}
	if err != nil {
		return false, asPersistenceError(err, "load cooldown "+geofenceID)
	}

	lastFiredMillis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		repo.logger.WarnContext(ctx, "[Cooldown] Unparsable timestamp, treating as never fired",
			slog.String("geofence_id", geofenceID),
			slog.String("value", raw),
		)

		return true, nil
	}

	return now.Sub(time.UnixMilli(lastFiredMillis)) > repo.window, nil
}

func (repo *cooldownRepository) RecordFired(ctx context.Context, geofenceID string, now time.Time) error {
	value := strconv.FormatInt(now.UnixMilli(), 10)
	if err := repo.store.Set(ctx, cooldownKey(geofenceID), value); err != nil {
		return asPersistenceError(err, "record cooldown "+geofenceID)
	}

	return nil
}

func (repo *cooldownRepository) ClearAll(ctx context.Context) error {
	if err := repo.store.DeletePrefix(ctx, constants.KeyCooldownPrefix); err != nil {
		return asPersistenceError(err, "purge cooldowns")
	}

	return nil
}

func cooldownKey(geofenceID string) string {
	return constants.KeyCooldownPrefix + geofenceID
}

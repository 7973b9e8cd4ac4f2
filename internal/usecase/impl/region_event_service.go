package impl

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"venuealert/config"
	deliverycontext "venuealert/internal/delivery/context"
	"venuealert/internal/domain/entity"
	domainerrors "venuealert/internal/domain/errors"
	"venuealert/internal/domain/repository"
	"venuealert/internal/domain/service"
	"venuealert/internal/errors"
	"venuealert/internal/usecase"

	"github.com/sethvargo/go-retry"
)

const (
	defaultEventRetryInterval = 500 * time.Millisecond
	defaultEventRetryTimeout  = 3 * time.Second
)

var errNoPersistedGeofences = errors.New("no persisted geofences")

type regionEventService struct {
	logger        *slog.Logger
	geofences     repository.GeofenceRepository
	cooldowns     repository.CooldownRepository
	notifier      service.LocalNotifier
	retryInterval time.Duration
	retryTimeout  time.Duration
	now           func() time.Time
}

// NewRegionEventService creates the background region event handler
func NewRegionEventService(
	cfg *config.Config,
	logger *slog.Logger,
	geofences repository.GeofenceRepository,
	cooldowns repository.CooldownRepository,
	notifier service.LocalNotifier,
) usecase.RegionEventUsecase {
	retryInterval, retryTimeout := defaultEventRetryInterval, defaultEventRetryTimeout
	if cfg != nil && cfg.Geofencing != nil {
		if cfg.Geofencing.EventRetryInterval > 0 {
			retryInterval = cfg.Geofencing.EventRetryInterval
		}
		if cfg.Geofencing.EventRetryTimeout > 0 {
			retryTimeout = cfg.Geofencing.EventRetryTimeout
		}
	}

	return &regionEventService{
		logger:        logger,
		geofences:     geofences,
		cooldowns:     cooldowns,
		notifier:      notifier,
		retryInterval: retryInterval,
		retryTimeout:  retryTimeout,
		now:           time.Now,
	}
}

func (s *regionEventService) HandleRegionEvent(ctx context.Context, event *entity.RegionEvent) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	defer func() {
		if recovered := recover(); recovered != nil {
			logger.ErrorContext(ctx, "[RegionEvent] Recovered from panic",
				slog.String("panic", fmt.Sprint(recovered)),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	if event == nil {
		logger.WarnContext(ctx, "[RegionEvent] Ignoring empty event")

		return
	}

	logger = logger.With(
		slog.String("event_id", event.EventID),
		slog.String("region_id", event.RegionID),
		slog.String("type", string(event.Type)),
	)

	switch event.Type {
	case entity.RegionEventExit:
		logger.InfoContext(ctx, "[RegionEvent] Left region")

		return
	case entity.RegionEventEnter:
	default:
		logger.WarnContext(ctx, "[RegionEvent] Unknown event type")

		return
	}

	geofences, err := s.loadWithRetry(ctx)
	if err != nil {
		if errors.Is(err, errNoPersistedGeofences) {
			logger.WarnContext(ctx, "[RegionEvent] No geofences persisted after retrying, dropping event",
				slog.Duration("waited", s.retryTimeout),
			)
		} else {
			logger.ErrorContext(ctx, "[RegionEvent] Failed to load geofences", slog.Any("error", err))
		}

		return
	}

	geofence, match := entity.ResolveGeofence(geofences, event.RegionID)
	if geofence == nil {
		resolutionErr := &domainerrors.ResolutionError{RegionID: event.RegionID, GeofenceCount: len(geofences)}
		logger.ErrorContext(ctx, "[RegionEvent] Region does not match any stored geofence",
			slog.Int("geofence_count", resolutionErr.GeofenceCount),
			slog.Any("error", resolutionErr),
		)

		return
	}
	if match != entity.MatchByID {
		logger.WarnContext(ctx, "[RegionEvent] Region resolved through fallback key",
			slog.String("matched_by", string(match)),
			slog.String("geofence_id", geofence.ID),
		)
	}

	now := s.now()
	shouldNotify, err := s.cooldowns.ShouldNotify(ctx, geofence.ID, now)
	if err != nil {
		logger.ErrorContext(ctx, "[RegionEvent] Failed to read cooldown", slog.Any("error", err))

		return
	}
	if !shouldNotify {
		logger.InfoContext(ctx, "[RegionEvent] Suppressed by cooldown", slog.String("geofence_id", geofence.ID))

		return
	}

	notification := entity.NewArrivalNotification(geofence)
	if err := s.notifier.ScheduleLocalNotification(ctx, notification); err != nil {
		logger.ErrorContext(ctx, "[RegionEvent] Failed to schedule notification",
			slog.String("geofence_id", geofence.ID),
			slog.Any("error", err),
		)

		return
	}

	if err := s.cooldowns.RecordFired(ctx, geofence.ID, now); err != nil {
		logger.ErrorContext(ctx, "[RegionEvent] Failed to record cooldown", slog.Any("error", err))

		return
	}

	logger.InfoContext(ctx, "[RegionEvent] Arrival notification scheduled",
		slog.String("geofence_id", geofence.ID),
		slog.String("venue_id", geofence.VenueID),
	)
}

// loadWithRetry polls storage until it yields geofences, since the foreground may still be writing.
func (s *regionEventService) loadWithRetry(ctx context.Context) ([]*entity.Geofence, error) {
	var geofences []*entity.Geofence

	backoff := retry.WithMaxDuration(s.retryTimeout, retry.NewConstant(s.retryInterval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		loaded, err := s.geofences.LoadAll(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		if len(loaded) == 0 {
			return retry.RetryableError(errNoPersistedGeofences)
		}
		geofences = loaded

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return geofences, nil
}

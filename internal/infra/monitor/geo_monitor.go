// Package monitor watches registered regions against reported device positions.
package monitor

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	deliverycontext "venuealert/internal/delivery/context"
	"venuealert/internal/domain/entity"
	domainerrors "venuealert/internal/domain/errors"
	"venuealert/internal/domain/service"
	"venuealert/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

var (
	_ service.RegionMonitor    = (*GeoMonitor)(nil)
	_ service.LocationObserver = (*GeoMonitor)(nil)
)

type watchedRegion struct {
	region entity.Region
	center orb.Point
	bound  orb.Bound
	// wraps is set when the bound spills past the antimeridian or a pole.
	wraps bool
}

// GeoMonitor is a server-side region monitor fed by location fixes.
// A region seen for the first time with the device inside it produces an ENTER.
type GeoMonitor struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time

	mu      sync.Mutex
	active  bool
	regions []watchedRegion
	inside  map[string]bool
}

// NewGeoMonitor creates an idle monitor that publishes crossings through publisher
func NewGeoMonitor(publisher service.EventPublisher, logger *slog.Logger) *GeoMonitor {
	return &GeoMonitor{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		inside:    make(map[string]bool),
	}
}

// Start replaces the watch list. Inside/outside state is reset.
func (m *GeoMonitor) Start(ctx context.Context, regions []entity.Region) error {
	watched := make([]watchedRegion, 0, len(regions))
	for _, region := range regions {
		if region.ID == "" || region.RadiusMeters <= 0 {
			return errors.Errorf("invalid region %q with radius %.1f", region.ID, region.RadiusMeters)
		}

		center := orb.Point{region.Longitude, region.Latitude}
		bound := geo.NewBoundAroundPoint(center, region.RadiusMeters)
		watched = append(watched, watchedRegion{
			region: region,
			center: center,
			bound:  bound,
			wraps:  crossesEdge(bound),
		})
	}

	m.mu.Lock()
	m.active = true
	m.regions = watched
	m.inside = make(map[string]bool, len(watched))
	m.mu.Unlock()

	m.logger.InfoContext(ctx, "[Monitor] Watching regions", slog.Int("count", len(watched)))

	return nil
}

// Stop clears the watch list.
func (m *GeoMonitor) Stop(ctx context.Context) error {
	m.mu.Lock()
	wasActive := m.active
	m.active = false
	m.regions = nil
	m.inside = make(map[string]bool)
	m.mu.Unlock()

	if wasActive {
		m.logger.InfoContext(ctx, "[Monitor] Stopped watching regions")
	}

	return nil
}

// Active reports whether a watch list is registered.
func (m *GeoMonitor) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.active
}

// Observe compares a position fix with every watched region and publishes the boundary crossings.
func (m *GeoMonitor) Observe(ctx context.Context, fix entity.LocationFix) error {
	if !validCoordinates(fix.Latitude, fix.Longitude) {
		return domainerrors.ErrValidationFailed.WithDetails("location fix has invalid coordinates")
	}

	occurredAt := fix.RecordedAt
	if occurredAt.IsZero() {
		occurredAt = m.now()
	}

	events := m.transitions(fix, occurredAt.UTC(), deliverycontext.GetRequestIDFromContext(ctx))

	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	var publishErr error
	for _, event := range events {
		logger.InfoContext(ctx, "[Monitor] Region boundary crossed",
			slog.String("region_id", event.RegionID),
			slog.String("type", string(event.Type)),
			slog.String("event_id", event.EventID),
		)

		if err := m.publisher.PublishRegionEvent(ctx, event); err != nil {
			logger.ErrorContext(ctx, "[Monitor] Failed to publish region event",
				slog.String("region_id", event.RegionID),
				slog.Any("error", err),
			)
			if publishErr == nil {
				publishErr = errors.Wrapf(err, "publish %s event for region %s", event.Type, event.RegionID)
			}
		}
	}

	return publishErr
}

// crossesEdge reports a bound that wrapped past ±180° longitude or reached a pole.
func crossesEdge(bound orb.Bound) bool {
	return bound.Min[0] > bound.Max[0] ||
		bound.Min[0] < -180 || bound.Max[0] > 180 ||
		bound.Min[1] <= -90 || bound.Max[1] >= 90
}

func (w watchedRegion) contains(point orb.Point) bool {
	if !w.wraps && !w.bound.Contains(point) {
		return false
	}

	return geo.Distance(w.center, point) <= w.region.RadiusMeters
}

func (m *GeoMonitor) transitions(fix entity.LocationFix, occurredAt time.Time, requestID string) []*entity.RegionEvent {
	point := orb.Point{fix.Longitude, fix.Latitude}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return nil
	}

	var events []*entity.RegionEvent
	for _, watched := range m.regions {
		nowInside := watched.contains(point)
		wasInside := m.inside[watched.region.ID]
		if nowInside == wasInside {
			continue
		}

		m.inside[watched.region.ID] = nowInside

		eventType := entity.RegionEventExit
		if nowInside {
			eventType = entity.RegionEventEnter
		}

		events = append(events, &entity.RegionEvent{
			EventID:    uuid.NewString(),
			RequestID:  requestID,
			Type:       eventType,
			RegionID:   watched.region.ID,
			Latitude:   fix.Latitude,
			Longitude:  fix.Longitude,
			OccurredAt: occurredAt,
		})
	}

	return events
}

func validCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

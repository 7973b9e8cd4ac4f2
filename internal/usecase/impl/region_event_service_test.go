package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"venuealert/internal/domain/constants"
	"venuealert/internal/domain/entity"
	"venuealert/internal/domain/repository"
	"venuealert/internal/infra/persistence/kvstore"
	"venuealert/internal/infra/persistence/memory"
	mockSvc "venuealert/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type regionEventFixture struct {
	store     *memory.Store
	geofences repository.GeofenceRepository
	cooldowns repository.CooldownRepository
	notifier  *mockSvc.MockLocalNotifier
	logs      *syncBuffer
	service   *regionEventService
	clock     time.Time
}

func newRegionEventFixture(t *testing.T) *regionEventFixture {
	t.Helper()

	cfg := testConfig()
	logger, logs := bufferedLogger()
	store := memory.NewStore()
	geofences := kvstore.NewGeofenceRepository(store, logger)
	cooldowns := kvstore.NewCooldownRepository(store, cfg, logger)
	notifier := mockSvc.NewMockLocalNotifier(t)

	f := &regionEventFixture{
		store:     store,
		geofences: geofences,
		cooldowns: cooldowns,
		notifier:  notifier,
		logs:      logs,
		clock:     time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
	}
	f.service = NewRegionEventService(cfg, logger, geofences, cooldowns, notifier).(*regionEventService)
	f.service.now = func() time.Time { return f.clock }

	return f
}

func enterEvent(regionID string) *entity.RegionEvent {
	return &entity.RegionEvent{EventID: "evt-1", Type: entity.RegionEventEnter, RegionID: regionID}
}

func TestRegionEventService_CooldownSuppression(t *testing.T) {
	ctx := context.Background()
	f := newRegionEventFixture(t)
	seedGeofence(t, f.geofences, cafeGeofence())
	window := 5 * time.Minute
	start := f.clock

	var sent atomic.Int32
	f.notifier.EXPECT().ScheduleLocalNotification(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.LocalNotification) error {
			sent.Add(1)

			return nil
		})

	f.service.HandleRegionEvent(ctx, enterEvent("g1"))
	assert.Equal(t, int32(1), sent.Load())

	f.clock = start.Add(window / 2)
	f.service.HandleRegionEvent(ctx, enterEvent("g1"))
	assert.Equal(t, int32(1), sent.Load(), "inside the window")
	assert.Contains(t, f.logs.String(), "Suppressed by cooldown")

	f.clock = start.Add(window * 3 / 2)
	f.service.HandleRegionEvent(ctx, enterEvent("g1"))
	assert.Equal(t, int32(2), sent.Load())
}

func TestRegionEventService_ResolvesThroughVenueFallback(t *testing.T) {
	ctx := context.Background()
	f := newRegionEventFixture(t)
	seedGeofence(t, f.geofences, cafeGeofence())

	f.notifier.EXPECT().ScheduleLocalNotification(mock.Anything, mock.MatchedBy(func(n *entity.LocalNotification) bool {
		return n.Data.GeofenceID == "g1" &&
			n.Data.Name == "Cafe" &&
			n.Data.VenueID == "v1" &&
			n.Trigger == entity.TriggerImmediate
	})).Return(nil).Once()

	f.service.HandleRegionEvent(ctx, enterEvent("v1"))

	assert.Contains(t, f.logs.String(), "matched_by=venueId")

	// The cooldown is keyed by the resolved geofence, not the raw region id.
	shouldNotify, err := f.cooldowns.ShouldNotify(ctx, "g1", f.clock)
	require.NoError(t, err)
	assert.False(t, shouldNotify)
}

func TestRegionEventService_ResolvesThroughNameFallback(t *testing.T) {
	ctx := context.Background()
	f := newRegionEventFixture(t)
	seedGeofence(t, f.geofences, cafeGeofence())

	f.notifier.EXPECT().ScheduleLocalNotification(mock.Anything, mock.MatchedBy(func(n *entity.LocalNotification) bool {
		return n.Data.GeofenceID == "g1"
	})).Return(nil).Once()

	f.service.HandleRegionEvent(ctx, enterEvent("Cafe"))
}

func TestRegionEventService_UnresolvableEventDoesNotNotify(t *testing.T) {
	ctx := context.Background()
	f := newRegionEventFixture(t)
	seedGeofence(t, f.geofences, cafeGeofence())

	assert.NotPanics(t, func() {
		f.service.HandleRegionEvent(ctx, enterEvent("unknown-region"))
	})

	f.notifier.AssertNotCalled(t, "ScheduleLocalNotification", mock.Anything, mock.Anything)
	assert.Contains(t, f.logs.String(), "level=ERROR")
	assert.Contains(t, f.logs.String(), "does not match any stored geofence")
}

func TestRegionEventService_ExitIsLoggedOnly(t *testing.T) {
	ctx := context.Background()
	f := newRegionEventFixture(t)
	seedGeofence(t, f.geofences, cafeGeofence())

	f.service.HandleRegionEvent(ctx, &entity.RegionEvent{Type: entity.RegionEventExit, RegionID: "g1"})
	f.service.HandleRegionEvent(ctx, &entity.RegionEvent{Type: "dwell", RegionID: "g1"})
	f.service.HandleRegionEvent(ctx, nil)

	f.notifier.AssertNotCalled(t, "ScheduleLocalNotification", mock.Anything, mock.Anything)
	assert.Contains(t, f.logs.String(), "Left region")
}

func TestRegionEventService_EmptyStoreGivesUpAfterTimeout(t *testing.T) {
	ctx := context.Background()
	f := newRegionEventFixture(t)

	started := time.Now()
	f.service.HandleRegionEvent(ctx, enterEvent("g1"))
	elapsed := time.Since(started)

	assert.GreaterOrEqual(t, elapsed, f.service.retryTimeout-f.service.retryInterval)
	assert.Less(t, elapsed, 2*time.Second)
	f.notifier.AssertNotCalled(t, "ScheduleLocalNotification", mock.Anything, mock.Anything)
	assert.Contains(t, f.logs.String(), "No geofences persisted")
}

func TestRegionEventService_WaitsForInFlightWrite(t *testing.T) {
	ctx := context.Background()
	f := newRegionEventFixture(t)
	f.service.retryTimeout = time.Second

	f.notifier.EXPECT().ScheduleLocalNotification(mock.Anything, mock.Anything).Return(nil).Once()

	go func() {
		time.Sleep(30 * time.Millisecond)
		_, _ = f.geofences.Upsert(context.Background(), cafeGeofence())
	}()

	f.service.HandleRegionEvent(ctx, enterEvent("g1"))
}

func TestRegionEventService_CorruptStoreIsTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	f := newRegionEventFixture(t)
	require.NoError(t, f.store.Set(ctx, constants.KeyGeofences, "[{"))

	assert.NotPanics(t, func() {
		f.service.HandleRegionEvent(ctx, enterEvent("g1"))
	})
	f.notifier.AssertNotCalled(t, "ScheduleLocalNotification", mock.Anything, mock.Anything)
}

func TestRegionEventService_NotifierFailureSkipsCooldown(t *testing.T) {
	ctx := context.Background()
	f := newRegionEventFixture(t)
	seedGeofence(t, f.geofences, cafeGeofence())

	f.notifier.EXPECT().ScheduleLocalNotification(mock.Anything, mock.Anything).Return(assert.AnError).Once()

	f.service.HandleRegionEvent(ctx, enterEvent("g1"))

	shouldNotify, err := f.cooldowns.ShouldNotify(ctx, "g1", f.clock)
	require.NoError(t, err)
	assert.True(t, shouldNotify, "a failed delivery must not start the cooldown")
}

func TestRegionEventService_RecoversFromPanic(t *testing.T) {
	ctx := context.Background()
	f := newRegionEventFixture(t)
	seedGeofence(t, f.geofences, cafeGeofence())

	f.notifier.EXPECT().ScheduleLocalNotification(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.LocalNotification) error {
			panic("notification backend exploded")
		}).Once()

	assert.NotPanics(t, func() {
		f.service.HandleRegionEvent(ctx, enterEvent("g1"))
	})
	assert.Contains(t, f.logs.String(), "Recovered from panic")
}

package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"venuealert/internal/domain/constants"
	"venuealert/internal/domain/entity"
	domainerrors "venuealert/internal/domain/errors"
	"venuealert/internal/domain/repository"
	"venuealert/internal/infra/persistence/kvstore"
	"venuealert/internal/infra/persistence/memory"
	mockSvc "venuealert/internal/mocks/service"
	"venuealert/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type coordinatorFixture struct {
	store       *memory.Store
	cooldowns   repository.CooldownRepository
	monitor     *mockSvc.MockRegionMonitor
	permissions *mockSvc.MockPermissionProvider
	service     usecase.GeofenceUsecase
}

func newCoordinatorFixture(t *testing.T, store repository.KeyValueStore) *coordinatorFixture {
	t.Helper()

	cfg := testConfig()
	logger := discardLogger()
	monitor := mockSvc.NewMockRegionMonitor(t)
	permissions := mockSvc.NewMockPermissionProvider(t)
	cooldowns := kvstore.NewCooldownRepository(store, cfg, logger)

	fixture := &coordinatorFixture{
		cooldowns:   cooldowns,
		monitor:     monitor,
		permissions: permissions,
		service: NewGeofenceService(
			cfg,
			logger,
			kvstore.NewGeofenceRepository(store, logger),
			cooldowns,
			monitor,
			permissions,
		),
	}
	if memStore, ok := store.(*memory.Store); ok {
		fixture.store = memStore
	}

	return fixture
}

func (f *coordinatorFixture) grantPermissions(foreground, background bool) {
	f.permissions.EXPECT().ForegroundLocationGranted(mock.Anything).Return(foreground, nil).Maybe()
	f.permissions.EXPECT().BackgroundLocationGranted(mock.Anything).Return(background, nil).Maybe()
}

// recordStarts captures every region list handed to Start.
func (f *coordinatorFixture) recordStarts() func() [][]entity.Region {
	var (
		mu     sync.Mutex
		starts [][]entity.Region
	)
	f.monitor.EXPECT().Start(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, regions []entity.Region) error {
			mu.Lock()
			defer mu.Unlock()
			starts = append(starts, regions)

			return nil
		}).Maybe()

	return func() [][]entity.Region {
		mu.Lock()
		defer mu.Unlock()

		return starts
	}
}

func TestGeofenceService_AddGeofence_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())
	f.grantPermissions(true, true)
	starts := f.recordStarts()

	require.NoError(t, f.service.AddGeofence(ctx, cafeGeofence()))
	require.NoError(t, f.service.AddGeofence(ctx, cafeGeofence()))

	active := f.service.GetActiveGeofences(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, cafeGeofence(), active[0])

	// Every mutation re-registers the complete set.
	require.Len(t, starts(), 2)
	assert.Len(t, starts()[1], 1)
}

func TestGeofenceService_AddGeofence_ReplacesByID(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())
	f.grantPermissions(true, true)
	f.recordStarts()

	first := cafeGeofence()
	first.Radius = 100
	second := cafeGeofence()
	second.Radius = 500

	require.NoError(t, f.service.AddGeofence(ctx, first))
	require.NoError(t, f.service.AddGeofence(ctx, second))

	active := f.service.GetActiveGeofences(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, 500.0, active[0].Radius)
}

func TestGeofenceService_AddGeofence_ClampsRegistrationRadiusOnly(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())
	f.grantPermissions(true, true)
	starts := f.recordStarts()

	small := cafeGeofence()
	small.Radius = 50
	require.NoError(t, f.service.AddGeofence(ctx, small))

	require.Len(t, starts(), 1)
	require.Len(t, starts()[0], 1)
	assert.Equal(t, 100.0, starts()[0][0].RadiusMeters)
	assert.Equal(t, "g1", starts()[0][0].ID)

	assert.Equal(t, 50.0, f.service.GetActiveGeofences(ctx)[0].Radius)
}

func TestGeofenceService_AddGeofence_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())

	err := f.service.AddGeofence(ctx, &entity.Geofence{ID: "g1"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGeofence)
	assert.Empty(t, f.service.GetActiveGeofences(ctx))
	assert.Empty(t, f.store.Keys())
}

func TestGeofenceService_AddGeofence_PersistenceFailurePropagates(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, brokenStore{memory.NewStore()})

	err := f.service.AddGeofence(ctx, cafeGeofence())
	require.Error(t, err)
	assert.True(t, domainerrors.IsPersistenceError(err))
	assert.Empty(t, f.service.GetActiveGeofences(ctx), "memory must not diverge from storage")
}

func TestGeofenceService_AddGeofence_MonitorFailurePropagates(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())
	f.grantPermissions(true, true)
	f.monitor.EXPECT().Start(mock.Anything, mock.Anything).Return(assert.AnError)

	err := f.service.AddGeofence(ctx, cafeGeofence())
	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, f.service.HasGeofence(ctx, "g1"), "the geofence is persisted even when the monitor fails")
}

func TestGeofenceService_MissingPermissionSkipsMonitoring(t *testing.T) {
	tests := []struct {
		name       string
		foreground bool
		background bool
	}{
		{name: "no background", foreground: true, background: false},
		{name: "no foreground", foreground: false, background: true},
		{name: "none", foreground: false, background: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newCoordinatorFixture(t, memory.NewStore())
			f.grantPermissions(tt.foreground, tt.background)

			require.NoError(t, f.service.AddGeofence(ctx, cafeGeofence()))
			assert.True(t, f.service.HasGeofence(ctx, "g1"))
			f.monitor.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
		})
	}
}

func TestGeofenceService_PermissionQueryErrorCountsAsDenied(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())
	f.permissions.EXPECT().ForegroundLocationGranted(mock.Anything).Return(false, assert.AnError)

	require.NoError(t, f.service.AddGeofence(ctx, cafeGeofence()))
	f.monitor.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestGeofenceService_RemoveGeofence(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())
	f.grantPermissions(true, true)
	starts := f.recordStarts()

	require.NoError(t, f.service.AddGeofence(ctx, cafeGeofence()))
	require.NoError(t, f.service.AddGeofence(ctx, bakeryGeofence()))
	require.NoError(t, f.service.RemoveGeofence(ctx, "g1"))

	assert.False(t, f.service.HasGeofence(ctx, "g1"))
	assert.True(t, f.service.HasGeofence(ctx, "g2"))
	last := starts()[len(starts())-1]
	require.Len(t, last, 1)
	assert.Equal(t, "g2", last[0].ID)

	// Removing the last geofence stops the monitor instead of starting it with nothing.
	f.monitor.EXPECT().Stop(mock.Anything).Return(nil).Once()
	require.NoError(t, f.service.RemoveGeofence(ctx, "g2"))
	require.NoError(t, f.service.RemoveGeofence(ctx, "missing"))
	assert.Empty(t, f.service.GetActiveGeofences(ctx))
}

func TestGeofenceService_Initialize_RestoresFromStorage(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	first := newCoordinatorFixture(t, store)
	first.grantPermissions(true, true)
	first.recordStarts()
	require.NoError(t, first.service.AddGeofence(ctx, cafeGeofence()))
	require.NoError(t, first.service.AddGeofence(ctx, bakeryGeofence()))

	// Fresh process.
	restarted := newCoordinatorFixture(t, store)
	restarted.grantPermissions(true, true)
	starts := restarted.recordStarts()
	assert.Empty(t, restarted.service.GetActiveGeofences(ctx))

	restarted.service.Initialize(ctx)

	assert.ElementsMatch(t, []*entity.Geofence{cafeGeofence(), bakeryGeofence()}, restarted.service.GetActiveGeofences(ctx))
	require.Len(t, starts(), 1)
	assert.Len(t, starts()[0], 2)
}

func TestGeofenceService_Initialize_PersistsMemoryWhenStorageEmpty(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())
	f.grantPermissions(true, true)
	f.recordStarts()
	require.NoError(t, f.service.AddGeofence(ctx, cafeGeofence()))

	// Simulate a write lost before the previous run finished.
	require.NoError(t, f.store.Delete(ctx, constants.KeyGeofences))

	f.service.Initialize(ctx)

	raw, err := f.store.Get(ctx, constants.KeyGeofences)
	require.NoError(t, err)
	assert.Contains(t, raw, `"id":"g1"`)
	assert.True(t, f.service.HasGeofence(ctx, "g1"))
}

func TestGeofenceService_Initialize_NeverFails(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt storage", func(t *testing.T) {
		store := memory.NewStore()
		require.NoError(t, store.Set(ctx, constants.KeyGeofences, "not json"))
		f := newCoordinatorFixture(t, store)

		assert.NotPanics(t, func() { f.service.Initialize(ctx) })
		assert.Empty(t, f.service.GetActiveGeofences(ctx))
	})

	t.Run("monitor failure", func(t *testing.T) {
		store := memory.NewStore()
		require.NoError(t, store.Set(ctx, constants.KeyGeofences, `[{"id":"g1","name":"Cafe","latitude":1,"longitude":1,"radius":200}]`))
		f := newCoordinatorFixture(t, store)
		f.grantPermissions(true, true)
		f.monitor.EXPECT().Start(mock.Anything, mock.Anything).Return(assert.AnError)

		assert.NotPanics(t, func() { f.service.Initialize(ctx) })
		assert.True(t, f.service.HasGeofence(ctx, "g1"))
	})

	t.Run("canceled context", func(t *testing.T) {
		f := newCoordinatorFixture(t, memory.NewStore())
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		assert.NotPanics(t, func() { f.service.Initialize(canceled) })
	})
}

func TestGeofenceService_MutationsAfterUnreadableInitialize(t *testing.T) {
	ctx := context.Background()
	store := &unreadableOnceStore{Store: memory.NewStore()}
	persisted := kvstore.NewGeofenceRepository(store.Store, discardLogger())
	seedGeofence(t, persisted, cafeGeofence())
	seedGeofence(t, persisted, bakeryGeofence())

	f := newCoordinatorFixture(t, store)
	f.grantPermissions(true, true)
	starts := f.recordStarts()

	f.service.Initialize(ctx)
	assert.Empty(t, f.service.GetActiveGeofences(ctx))
	assert.Empty(t, starts())

	// Memory follows what was written, not what the failed startup read left behind.
	require.NoError(t, f.service.AddGeofence(ctx, museumGeofence()))

	active := f.service.GetActiveGeofences(ctx)
	assert.ElementsMatch(t, []string{"g1", "g2", "g3"}, geofenceIDs(active))
	require.Len(t, starts(), 1)
	assert.Len(t, starts()[0], 3)

	require.NoError(t, f.service.RemoveGeofence(ctx, "g1"))

	active = f.service.GetActiveGeofences(ctx)
	assert.ElementsMatch(t, []string{"g2", "g3"}, geofenceIDs(active))
	require.Len(t, starts(), 2)
	assert.Len(t, starts()[1], 2)
	assert.False(t, f.service.HasGeofence(ctx, "g1"))
	assert.True(t, f.service.HasGeofence(ctx, "g2"))
}

func geofenceIDs(geofences []*entity.Geofence) []string {
	ids := make([]string, 0, len(geofences))
	for _, geofence := range geofences {
		ids = append(ids, geofence.ID)
	}

	return ids
}

func TestGeofenceService_ClearAllGeofences_PurgesCooldowns(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())
	f.grantPermissions(true, true)
	f.recordStarts()
	f.monitor.EXPECT().Stop(mock.Anything).Return(nil).Once()

	now := time.Now()
	require.NoError(t, f.service.AddGeofence(ctx, cafeGeofence()))
	require.NoError(t, f.cooldowns.RecordFired(ctx, "g1", now))

	require.NoError(t, f.service.ClearAllGeofences(ctx))

	assert.Empty(t, f.service.GetActiveGeofences(ctx))
	shouldNotify, err := f.cooldowns.ShouldNotify(ctx, "g1", now)
	require.NoError(t, err)
	assert.True(t, shouldNotify, "cooldown must be treated as never fired")

	raw, err := f.store.Get(ctx, constants.KeyGeofences)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestGeofenceService_ClearAllGeofences_StopFailureStillPurgesCooldowns(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())
	f.grantPermissions(true, true)
	f.recordStarts()
	f.monitor.EXPECT().Stop(mock.Anything).Return(assert.AnError).Once()

	now := time.Now()
	require.NoError(t, f.service.AddGeofence(ctx, cafeGeofence()))
	require.NoError(t, f.cooldowns.RecordFired(ctx, "g1", now))

	err := f.service.ClearAllGeofences(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)

	assert.Empty(t, f.service.GetActiveGeofences(ctx))
	shouldNotify, err := f.cooldowns.ShouldNotify(ctx, "g1", now)
	require.NoError(t, err)
	assert.True(t, shouldNotify, "cooldowns are purged even when the monitor fails to stop")

	raw, err := f.store.Get(ctx, constants.KeyGeofences)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func savedItems() []*entity.SavedItem {
	return []*entity.SavedItem{
		{ID: "item-1", NotificationsEnabled: true, Venue: entity.Venue{ID: "v1", Name: "Cafe", Latitude: 40.7128, Longitude: -74.0060}},
		{ID: "item-2", NotificationsEnabled: true, Venue: entity.Venue{ID: "v2", Name: "Bakery", Latitude: 40.7306, Longitude: -73.9866}},
		{ID: "item-3", NotificationsEnabled: false, Venue: entity.Venue{ID: "v3", Name: "Diner", Latitude: 40.7580, Longitude: -73.9855}},
	}
}

func TestGeofenceService_RebuildFromSavedItems(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())
	f.grantPermissions(true, true)
	starts := f.recordStarts()

	require.NoError(t, f.service.AddGeofence(ctx, &entity.Geofence{ID: "stale", Name: "Gone", Radius: 100}))
	require.NoError(t, f.cooldowns.RecordFired(ctx, "item-1", time.Now()))

	result, err := f.service.RebuildFromSavedItems(ctx, savedItems(), 1.25)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Registered)
	assert.Equal(t, []string{"item-3"}, result.Skipped)
	assert.False(t, result.InFlight)

	active := f.service.GetActiveGeofences(ctx)
	require.Len(t, active, 2)
	for _, geofence := range active {
		assert.InDelta(t, 2011.675, geofence.Radius, 0.001)
		assert.Contains(t, []string{"item-1", "item-2"}, geofence.ID)
	}
	assert.False(t, f.service.HasGeofence(ctx, "stale"))

	// Reprogrammed once with the complete rebuilt set.
	last := starts()[len(starts())-1]
	assert.Len(t, last, 2)

	shouldNotify, err := f.cooldowns.ShouldNotify(ctx, "item-1", time.Now())
	require.NoError(t, err)
	assert.True(t, shouldNotify)
}

func TestGeofenceService_RebuildFromSavedItems_SkipsInvalidCoordinates(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())
	f.grantPermissions(true, true)
	f.recordStarts()

	items := []*entity.SavedItem{
		{ID: "ok", NotificationsEnabled: true, Venue: entity.Venue{Name: "Cafe", Latitude: 1, Longitude: 1}},
		{ID: "null-island", NotificationsEnabled: true, Venue: entity.Venue{Name: "Nowhere"}},
		{ID: "out-of-range", NotificationsEnabled: true, Venue: entity.Venue{Name: "Far", Latitude: 91, Longitude: 1}},
		nil,
	}

	result, err := f.service.RebuildFromSavedItems(ctx, items, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Registered)
	assert.ElementsMatch(t, []string{"null-island", "out-of-range"}, result.Skipped)
}

func TestGeofenceService_RebuildFromSavedItems_InvalidRadius(t *testing.T) {
	f := newCoordinatorFixture(t, memory.NewStore())

	_, err := f.service.RebuildFromSavedItems(context.Background(), savedItems(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
}

func TestGeofenceService_RebuildFromSavedItems_InFlightIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())
	f.grantPermissions(true, true)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.monitor.EXPECT().Start(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, []entity.Region) error {
			close(entered)
			<-release

			return nil
		}).Once()

	done := make(chan *usecase.RebuildResult)
	go func() {
		result, err := f.service.RebuildFromSavedItems(ctx, savedItems(), 1)
		assert.NoError(t, err)
		done <- result
	}()

	<-entered
	before, err := f.store.Get(ctx, constants.KeyGeofences)
	require.NoError(t, err)

	second, err := f.service.RebuildFromSavedItems(ctx, savedItems()[:1], 3)
	require.NoError(t, err)
	assert.True(t, second.InFlight)

	after, err := f.store.Get(ctx, constants.KeyGeofences)
	require.NoError(t, err)
	assert.Equal(t, before, after, "an in-flight rebuild must not be disturbed")

	close(release)
	first := <-done
	assert.Equal(t, 2, first.Registered)
	assert.Len(t, f.service.GetActiveGeofences(ctx), 2)
}

func TestGeofenceService_RebuildWaitsForConcurrentAdd(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())
	f.grantPermissions(true, true)

	var (
		mu     sync.Mutex
		calls  int
		starts [][]entity.Region
	)
	entered := make(chan struct{})
	release := make(chan struct{})
	f.monitor.EXPECT().Start(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, regions []entity.Region) error {
			mu.Lock()
			calls++
			first := calls == 1
			starts = append(starts, regions)
			mu.Unlock()

			if first {
				close(entered)
				<-release
			}

			return nil
		}).Times(2)

	addDone := make(chan error, 1)
	go func() {
		addDone <- f.service.AddGeofence(ctx, museumGeofence())
	}()
	<-entered

	rebuildDone := make(chan *usecase.RebuildResult, 1)
	go func() {
		result, err := f.service.RebuildFromSavedItems(ctx, savedItems(), 1)
		assert.NoError(t, err)
		rebuildDone <- result
	}()

	select {
	case <-rebuildDone:
		t.Fatal("rebuild must wait for the add to finish")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-addDone)

	result := <-rebuildDone
	require.NotNil(t, result)
	assert.False(t, result.InFlight)
	assert.Equal(t, 2, result.Registered)

	active := f.service.GetActiveGeofences(ctx)
	assert.ElementsMatch(t, []string{"item-1", "item-2"}, geofenceIDs(active))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, starts, 2)
	assert.Len(t, starts[0], 1)
	assert.Len(t, starts[1], 2)
}

func TestGeofenceService_SyncMonitoring(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture(t, memory.NewStore())

	granted := true
	f.permissions.EXPECT().ForegroundLocationGranted(mock.Anything).
		RunAndReturn(func(context.Context) (bool, error) { return granted, nil }).Maybe()
	f.permissions.EXPECT().BackgroundLocationGranted(mock.Anything).Return(true, nil).Maybe()
	starts := f.recordStarts()

	require.NoError(t, f.service.AddGeofence(ctx, cafeGeofence()))
	require.Len(t, starts(), 1)

	granted = false
	f.monitor.EXPECT().Stop(mock.Anything).Return(nil).Once()
	require.NoError(t, f.service.SyncMonitoring(ctx))
	assert.True(t, f.service.HasGeofence(ctx, "g1"), "revocation keeps the geofences")

	granted = true
	require.NoError(t, f.service.SyncMonitoring(ctx))
	assert.Len(t, starts(), 2)
}

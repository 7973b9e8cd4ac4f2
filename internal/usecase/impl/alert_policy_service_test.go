package impl

import (
	"context"
	"testing"

	"venuealert/internal/domain/entity"
	domainerrors "venuealert/internal/domain/errors"
	"venuealert/internal/domain/repository"
	"venuealert/internal/infra/persistence/kvstore"
	"venuealert/internal/infra/persistence/memory"
	mockUsecase "venuealert/internal/mocks/usecase"
	"venuealert/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAlertPolicyService(t *testing.T) (
	usecase.AlertPolicyUsecase,
	repository.AlertSettingsRepository,
	*mockUsecase.MockGeofenceUsecase,
) {
	store := memory.NewStore()
	settings := kvstore.NewAlertSettingsRepository(store)
	geofences := mockUsecase.NewMockGeofenceUsecase(t)

	service := NewAlertPolicyService(
		testConfig(),
		discardLogger(),
		settings,
		kvstore.NewPermissionStore(store),
		geofences,
	)

	return service, settings, geofences
}

func TestAlertPolicyService_GetSettings_Defaults(t *testing.T) {
	service, _, _ := createTestAlertPolicyService(t)

	settings, err := service.GetSettings(context.Background())
	require.NoError(t, err)
	assert.False(t, settings.MasterEnabled)
	assert.Equal(t, 1.0, settings.RadiusMiles)
}

func TestAlertPolicyService_SetMasterSwitch(t *testing.T) {
	ctx := context.Background()
	service, settingsRepo, geofences := createTestAlertPolicyService(t)
	items := savedItems()

	geofences.EXPECT().RebuildFromSavedItems(ctx, items, 1.0).
		Return(&usecase.RebuildResult{Registered: 2}, nil).Once()

	result, err := service.SetMasterSwitch(ctx, true, items)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Registered)

	stored, err := settingsRepo.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, stored.MasterEnabled)

	geofences.EXPECT().ClearAllGeofences(ctx).Return(nil).Once()

	_, err = service.SetMasterSwitch(ctx, false, items)
	require.NoError(t, err)

	stored, err = settingsRepo.GetSettings(ctx)
	require.NoError(t, err)
	assert.False(t, stored.MasterEnabled)
}

func TestAlertPolicyService_SetItemAlert(t *testing.T) {
	ctx := context.Background()
	service, settingsRepo, geofences := createTestAlertPolicyService(t)
	item := savedItems()[0]

	// Master switch off: nothing is registered.
	require.NoError(t, service.SetItemAlert(ctx, item, true))

	require.NoError(t, settingsRepo.SaveSettings(ctx, &entity.AlertSettings{MasterEnabled: true, RadiusMiles: 2}))

	geofences.EXPECT().AddGeofence(ctx, mock.MatchedBy(func(g *entity.Geofence) bool {
		return g.ID == item.ID && g.VenueID == "v1" && g.Radius == entity.MilesToMeters(2)
	})).Return(nil).Once()
	require.NoError(t, service.SetItemAlert(ctx, item, true))

	geofences.EXPECT().RemoveGeofence(ctx, item.ID).Return(nil).Once()
	require.NoError(t, service.SetItemAlert(ctx, item, false))

	noCoordinates := &entity.SavedItem{ID: "item-9", Venue: entity.Venue{Name: "Pop-up"}}
	err := service.SetItemAlert(ctx, noCoordinates, true)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGeofence)
}

func TestAlertPolicyService_SetRadius(t *testing.T) {
	ctx := context.Background()
	service, settingsRepo, geofences := createTestAlertPolicyService(t)
	items := savedItems()

	_, err := service.SetRadius(ctx, -1, items)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)

	// Master off: persisted, no rebuild.
	result, err := service.SetRadius(ctx, 0.5, items)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Registered)

	require.NoError(t, settingsRepo.SaveSettings(ctx, &entity.AlertSettings{MasterEnabled: true, RadiusMiles: 0.5}))
	geofences.EXPECT().RebuildFromSavedItems(ctx, items, 1.25).
		Return(&usecase.RebuildResult{InFlight: true}, nil).Once()

	result, err = service.SetRadius(ctx, 1.25, items)
	require.NoError(t, err)
	assert.True(t, result.InFlight)

	stored, err := settingsRepo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.25, stored.RadiusMiles)
}

func TestAlertPolicyService_ReportPermissionsAndStatus(t *testing.T) {
	ctx := context.Background()
	service, _, geofences := createTestAlertPolicyService(t)

	geofences.EXPECT().SyncMonitoring(ctx).Return(nil).Once()
	require.NoError(t, service.ReportPermissions(ctx, &entity.PermissionStatus{Foreground: true, Background: true}))

	geofences.EXPECT().GetActiveGeofences(ctx).Return([]*entity.Geofence{cafeGeofence()}).Once()
	status, err := service.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Permissions.Granted())
	assert.Equal(t, 1, status.ActiveGeofences)

	err = service.ReportPermissions(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

package kvstore

import (
	"context"
	"encoding/json"

	"venuealert/internal/domain/constants"
	"venuealert/internal/domain/entity"
	"venuealert/internal/domain/repository"
	"venuealert/internal/errors"
)

type alertSettingsRepository struct {
	store repository.KeyValueStore
}

// NewAlertSettingsRepository creates the alert preference store.
func NewAlertSettingsRepository(store repository.KeyValueStore) repository.AlertSettingsRepository {
	return &alertSettingsRepository{store: store}
}

func (repo *alertSettingsRepository) GetSettings(ctx context.Context) (*entity.AlertSettings, error) {
	settings := &entity.AlertSettings{}
	if err := getJSON(ctx, repo.store, constants.KeyAlertSettings, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func (repo *alertSettingsRepository) SaveSettings(ctx context.Context, settings *entity.AlertSettings) error {
	return setJSON(ctx, repo.store, constants.KeyAlertSettings, settings)
}

// PermissionStore persists the device-reported permission state and answers the
// capability queries from it.
type PermissionStore struct {
	store repository.KeyValueStore
}

// NewPermissionStore creates the permission store.
func NewPermissionStore(store repository.KeyValueStore) *PermissionStore {
	return &PermissionStore{store: store}
}

// GetPermissions returns the last reported status; nothing reported means nothing granted.
func (s *PermissionStore) GetPermissions(ctx context.Context) (*entity.PermissionStatus, error) {
	status := &entity.PermissionStatus{}
	err := getJSON(ctx, s.store, constants.KeyLocationPermission, status)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return &entity.PermissionStatus{}, nil
	}
	if err != nil {
		return nil, err
	}

	return status, nil
}

func (s *PermissionStore) SavePermissions(ctx context.Context, status *entity.PermissionStatus) error {
	return setJSON(ctx, s.store, constants.KeyLocationPermission, status)
}

func (s *PermissionStore) ForegroundLocationGranted(ctx context.Context) (bool, error) {
	status, err := s.GetPermissions(ctx)
	if err != nil {
		return false, err
	}

	return status.Foreground, nil
}

func (s *PermissionStore) BackgroundLocationGranted(ctx context.Context) (bool, error) {
	status, err := s.GetPermissions(ctx)
	if err != nil {
		return false, err
	}

	return status.Background, nil
}

func getJSON(ctx context.Context, store repository.KeyValueStore, key string, out any) error {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return repository.ErrKeyNotFound
	}
	if err != nil {
		return asPersistenceError(err, "load "+key)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return errors.Wrapf(err, "decode %s", key)
	}

	return nil
}

func setJSON(ctx context.Context, store repository.KeyValueStore, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	if err := store.Set(ctx, key, string(payload)); err != nil {
		return asPersistenceError(err, "save "+key)
	}

	return nil
}

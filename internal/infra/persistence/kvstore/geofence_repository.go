// Package kvstore implements the domain repositories on top of repository.KeyValueStore.
// Both processes read and write the same keys, so nothing here caches state between calls.
package kvstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"venuealert/internal/domain/constants"
	"venuealert/internal/domain/entity"
	domainerrors "venuealert/internal/domain/errors"
	"venuealert/internal/domain/repository"
	"venuealert/internal/errors"
)

// geofenceRepository implements the repository.GeofenceRepository interface.
type geofenceRepository struct {
	store  repository.KeyValueStore
	logger *slog.Logger

	// mu serializes read-modify-write cycles inside this process.
	mu sync.Mutex
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(store repository.KeyValueStore, logger *slog.Logger) repository.GeofenceRepository {
	return &geofenceRepository{
		store:  store,
		logger: logger,
	}
}

func (repo *geofenceRepository) Upsert(ctx context.Context, geofence *entity.Geofence) ([]*entity.Geofence, error) {
	if !geofence.Validate() {
		return nil, domainerrors.ErrInvalidGeofence
	}

	return repo.update(ctx, func(geofences []*entity.Geofence) []*entity.Geofence {
		return entity.UpsertGeofence(geofences, geofence.Clone())
	})
}

func (repo *geofenceRepository) Remove(ctx context.Context, id string) ([]*entity.Geofence, error) {
	return repo.update(ctx, func(geofences []*entity.Geofence) []*entity.Geofence {
		return entity.RemoveGeofence(geofences, id)
	})
}

// update runs one read-modify-write cycle and returns a copy of what was written.
func (repo *geofenceRepository) update(ctx context.Context, modify func([]*entity.Geofence) []*entity.Geofence) ([]*entity.Geofence, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	geofences, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	written := modify(geofences)
	if written == nil {
		written = []*entity.Geofence{}
	}
	if err := repo.save(ctx, written); err != nil {
		return nil, err
	}

	return entity.CloneGeofences(written), nil
}

func (repo *geofenceRepository) ClearAll(ctx context.Context) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return repo.save(ctx, nil)
}

func (repo *geofenceRepository) SaveAll(ctx context.Context, geofences []*entity.Geofence) error {
	deduped := make([]*entity.Geofence, 0, len(geofences))
	for _, geofence := range geofences {
		if !geofence.Validate() {
			return domainerrors.ErrInvalidGeofence.WithDetails("id=" + geofenceID(geofence))
		}
		deduped = entity.UpsertGeofence(deduped, geofence.Clone())
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	return repo.save(ctx, deduped)
}

func (repo *geofenceRepository) LoadAll(ctx context.Context) ([]*entity.Geofence, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return repo.load(ctx)
}

func (repo *geofenceRepository) Get(ctx context.Context, id string) (*entity.Geofence, error) {
	return repo.find(ctx, func(geofences []*entity.Geofence) *entity.Geofence {
		return entity.FindGeofenceByID(geofences, id)
	})
}

func (repo *geofenceRepository) FindByVenueID(ctx context.Context, venueID string) (*entity.Geofence, error) {
	return repo.find(ctx, func(geofences []*entity.Geofence) *entity.Geofence {
		return entity.FindGeofenceByVenueID(geofences, venueID)
	})
}

func (repo *geofenceRepository) FindByName(ctx context.Context, name string) (*entity.Geofence, error) {
	return repo.find(ctx, func(geofences []*entity.Geofence) *entity.Geofence {
		return entity.FindGeofenceByName(geofences, name)
	})
}

func (repo *geofenceRepository) find(ctx context.Context, match func([]*entity.Geofence) *entity.Geofence) (*entity.Geofence, error) {
	geofences, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	found := match(geofences)
	if found == nil {
		return nil, domainerrors.ErrGeofenceNotFound
	}

	return found, nil
}

// load must be called with mu held.
func (repo *geofenceRepository) load(ctx context.Context) ([]*entity.Geofence, error) {
	raw, err := repo.store.Get(ctx, constants.KeyGeofences)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return []*entity.Geofence{}, nil
	}
	if err != nil {
		return nil, asPersistenceError(err, "load geofences")
	}

	var geofences []*entity.Geofence
	if err := json.Unmarshal([]byte(raw), &geofences); err != nil {
		// The stored value is left as is; the next successful write replaces it.
		repo.logger.ErrorContext(ctx, "[GeofenceStore] Persisted geofences are corrupt, treating as empty",
			slog.Int("bytes", len(raw)),
			slog.Any("error", err),
		)

		return []*entity.Geofence{}, nil
	}

	valid := make([]*entity.Geofence, 0, len(geofences))
	for _, geofence := range geofences {
		if !geofence.Validate() {
			repo.logger.WarnContext(ctx, "[GeofenceStore] Dropping invalid persisted geofence",
				slog.String("geofence_id", geofenceID(geofence)),
			)

			continue
		}
		valid = append(valid, geofence)
	}

	return valid, nil
}

// save must be called with mu held.
func (repo *geofenceRepository) save(ctx context.Context, geofences []*entity.Geofence) error {
	if geofences == nil {
		geofences = []*entity.Geofence{}
	}

	payload, err := json.Marshal(geofences)
	if err != nil {
		return errors.Wrap(err, "marshal geofences")
	}

	if err := repo.store.Set(ctx, constants.KeyGeofences, string(payload)); err != nil {
		return asPersistenceError(err, "save geofences")
	}

	return nil
}

func geofenceID(geofence *entity.Geofence) string {
	if geofence == nil {
		return ""
	}

	return geofence.ID
}

// asPersistenceError keeps an existing PersistenceError and wraps anything else.
func asPersistenceError(err error, details string) error {
	if domainerrors.IsPersistenceError(err) {
		return err
	}

	return domainerrors.NewPersistenceError(errors.WithStack(err), details)
}

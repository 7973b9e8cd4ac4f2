package postgres

import (
	"context"
	"strings"
	"time"

	domainerrors "venuealert/internal/domain/errors"
	"venuealert/internal/domain/repository"
	"venuealert/internal/errors"
	"venuealert/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvStore implements the repository.KeyValueStore interface.
type kvStore struct {
	db *gorm.DB
}

// NewKeyValueStore migrates the kv_records table and returns the store.
func NewKeyValueStore(db *gorm.DB) (repository.KeyValueStore, error) {
	if err := db.AutoMigrate(&model.KVRecordModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate kv_records")
	}

	return &kvStore{db: db}, nil
}

// Get retrieves the value stored under key.
func (repo *kvStore) Get(ctx context.Context, key string) (string, error) {
	var record model.KVRecordModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrKeyNotFound
		}

		return "", domainerrors.NewPersistenceError(errors.WithStack(err), "get "+key)
	}

	return record.Value, nil
}

// Set upserts the value stored under key.
func (repo *kvStore) Set(ctx context.Context, key, value string) error {
	record := &model.KVRecordModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(record).Error; err != nil {
		return domainerrors.NewPersistenceError(errors.WithStack(err), "set "+key)
	}

	return nil
}

// Delete removes key.
func (repo *kvStore) Delete(ctx context.Context, key string) error {
	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.KVRecordModel{}).Error; err != nil {
		return domainerrors.NewPersistenceError(errors.WithStack(err), "delete "+key)
	}

	return nil
}

// DeletePrefix removes every key starting with prefix.
func (repo *kvStore) DeletePrefix(ctx context.Context, prefix string) error {
	if err := repo.db.WithContext(ctx).
		Where("key LIKE ?", escapeLike(prefix)+"%").
		Delete(&model.KVRecordModel{}).Error; err != nil {
		return domainerrors.NewPersistenceError(errors.WithStack(err), "delete prefix "+prefix)
	}

	return nil
}

// Close releases the connection pool.
func (repo *kvStore) Close() error {
	sqlDB, err := repo.db.DB()
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(sqlDB.Close())
}

// escapeLike escapes LIKE wildcards; backslash is PostgreSQL's default escape character.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(s)
}

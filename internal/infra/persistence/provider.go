// Package persistence selects the durable key-value backend shared by the API process and the geo worker.
package persistence

import (
	"context"
	"log/slog"

	"venuealert/config"
	"venuealert/internal/domain/constants"
	"venuealert/internal/domain/repository"
	"venuealert/internal/errors"
	"venuealert/internal/infra/persistence/memory"
	"venuealert/internal/infra/persistence/postgres"
	"venuealert/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
)

// StoreParams defines the dependencies of the key-value store
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore opens the configured backend and closes it when the application stops.
func NewKeyValueStore(params StoreParams) (repository.KeyValueStore, error) {
	store, err := openStore(params)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

func openStore(params StoreParams) (repository.KeyValueStore, error) {
	storageCfg := params.Config.Storage
	if storageCfg == nil {
		return nil, errors.New("storage is not configured")
	}

	switch storageCfg.Driver {
	case constants.StorageDriverSQLite:
		db, err := sqlite.Open(storageCfg.SQLitePath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open sqlite key-value store")
		}
		params.Logger.Info("Key-value store ready", slog.String("driver", storageCfg.Driver), slog.String("path", storageCfg.SQLitePath))

		return sqlite.NewKeyValueStore(db), nil

	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Key-value store ready", slog.String("driver", storageCfg.Driver))

		return postgres.NewKeyValueStore(db)

	case constants.StorageDriverMemory:
		// Not shared across processes; only useful when the worker runs in-process or in tests.
		params.Logger.Warn("Key-value store is in memory, state is lost on restart")

		return memory.NewStore(), nil

	default:
		return nil, errors.Errorf("unsupported storage driver: %s", storageCfg.Driver)
	}
}

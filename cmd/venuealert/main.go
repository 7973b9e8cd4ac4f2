package main

import (
	"context"
	"log/slog"
	"os"

	"venuealert/config"
	"venuealert/internal/delivery"
	"venuealert/internal/delivery/http"
	"venuealert/internal/delivery/http/middleware"
	"venuealert/internal/delivery/http/router/handler"
	"venuealert/internal/domain/lifecycle"
	"venuealert/internal/domain/repository"
	"venuealert/internal/domain/service"
	logs "venuealert/internal/infra/log"
	"venuealert/internal/infra/monitor"
	"venuealert/internal/infra/persistence"
	"venuealert/internal/infra/persistence/kvstore"
	"venuealert/internal/infra/pubsub"
	"venuealert/internal/usecase"
	"venuealert/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			initializeGeofencing,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.NewKeyValueStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			kvstore.NewGeofenceRepository,
			kvstore.NewCooldownRepository,
			kvstore.NewAlertSettingsRepository,
			kvstore.NewPermissionStore,
			func(store *kvstore.PermissionStore) repository.PermissionRepository { return store },
			func(store *kvstore.PermissionStore) service.PermissionProvider { return store },
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			pubsub.NewEventPublisher,
			monitor.NewGeoMonitor,
			func(m *monitor.GeoMonitor) service.RegionMonitor { return m },
			func(m *monitor.GeoMonitor) service.LocationObserver { return m },
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGeofenceService,
			impl.NewAlertPolicyService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGeofenceHandler,
			handler.NewAlertHandler,
			handler.NewLocationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// initializeGeofencing restores the persisted geofences and re-programs the monitor before serving
func initializeGeofencing(lc fx.Lifecycle, geofenceUC usecase.GeofenceUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			initCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			geofenceUC.Initialize(initCtx)

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

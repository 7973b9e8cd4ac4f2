// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"venuealert/config"
	"venuealert/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	GeofenceHandler *handler.GeofenceHandler
	AlertHandler    *handler.AlertHandler
	LocationHandler *handler.LocationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	geofenceHandler *handler.GeofenceHandler
	alertHandler    *handler.AlertHandler
	locationHandler *handler.LocationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Config,
		geofenceHandler: params.GeofenceHandler,
		alertHandler:    params.AlertHandler,
		locationHandler: params.LocationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	geofenceGroup := e.Group("/geofences")
	{
		geofenceGroup.GET("", r.geofenceHandler.ListGeofences)
		geofenceGroup.DELETE("", r.geofenceHandler.ClearGeofences)
		geofenceGroup.POST("/rebuild", r.geofenceHandler.RebuildGeofences)
		geofenceGroup.GET("/:id", r.geofenceHandler.GetGeofence)
		geofenceGroup.PUT("/:id", r.geofenceHandler.UpsertGeofence)
		geofenceGroup.DELETE("/:id", r.geofenceHandler.DeleteGeofence)
	}

	alertGroup := e.Group("/alerts")
	{
		alertGroup.GET("/settings", r.alertHandler.GetSettings)
		alertGroup.GET("/status", r.alertHandler.GetStatus)
		alertGroup.PUT("/master", r.alertHandler.SetMasterSwitch)
		alertGroup.PUT("/radius", r.alertHandler.SetRadius)
		alertGroup.PUT("/items/:id", r.alertHandler.SetItemAlert)
	}

	e.PUT("/permissions", r.alertHandler.ReportPermissions)

	// Fixes are rate limited per client IP
	locationLimiter := middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(r.cfg.HTTP.LocationRateLimit),
			Burst: r.cfg.HTTP.LocationRateBurst,
		},
	))
	e.POST("/locations", r.locationHandler.ReportLocation, locationLimiter)
}

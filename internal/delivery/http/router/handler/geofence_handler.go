package handler

import (
	"log/slog"
	"net/http"

	"venuealert/internal/delivery/http/response"
	"venuealert/internal/domain/entity"
	domainerrors "venuealert/internal/domain/errors"
	"venuealert/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeofenceHandlerParams holds dependencies for GeofenceHandler, injected by Fx.
type GeofenceHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	Logger     *slog.Logger
}

// GeofenceHandler exposes the geofencing coordinator
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
	logger     *slog.Logger
}

// NewGeofenceHandler is the constructor for GeofenceHandler
func NewGeofenceHandler(params GeofenceHandlerParams) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: params.GeofenceUC,
		logger:     params.Logger,
	}
}

// UpsertGeofenceRequest is the body of PUT /geofences/:id
type UpsertGeofenceRequest struct {
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Radius    float64 `json:"radius" validate:"gt=0"`
	VenueID   string  `json:"venueId"`
}

// RebuildRequest is the body of POST /geofences/rebuild
type RebuildRequest struct {
	Items       []*entity.SavedItem `json:"items" validate:"dive,required"`
	RadiusMiles float64             `json:"radiusMiles" validate:"gt=0"`
}

// ListGeofences returns the active geofence set
func (h *GeofenceHandler) ListGeofences(c echo.Context) error {
	geofences := h.geofenceUC.GetActiveGeofences(c.Request().Context())

	return response.Success(c, http.StatusOK, geofences, "")
}

// GetGeofence returns one active geofence
func (h *GeofenceHandler) GetGeofence(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	if !h.geofenceUC.HasGeofence(ctx, id) {
		return response.AppError(c, domainerrors.ErrGeofenceNotFound.WithDetails(id))
	}

	geofence := entity.FindGeofenceByID(h.geofenceUC.GetActiveGeofences(ctx), id)
	if geofence == nil {
		// Removed between the two calls
		return response.AppError(c, domainerrors.ErrGeofenceNotFound.WithDetails(id))
	}

	return response.Success(c, http.StatusOK, geofence, "")
}

// UpsertGeofence adds or replaces the geofence with the path id
func (h *GeofenceHandler) UpsertGeofence(c echo.Context) error {
	var req UpsertGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid geofence input")
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, err)
	}

	geofence := &entity.Geofence{
		ID:        c.Param("id"),
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Radius:    req.Radius,
		VenueID:   req.VenueID,
	}

	if err := h.geofenceUC.AddGeofence(c.Request().Context(), geofence); err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, geofence, "Geofence saved")
}

// DeleteGeofence removes the geofence with the path id; removing an unknown id succeeds
func (h *GeofenceHandler) DeleteGeofence(c echo.Context) error {
	if err := h.geofenceUC.RemoveGeofence(c.Request().Context(), c.Param("id")); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearGeofences removes every geofence and purges cooldowns
func (h *GeofenceHandler) ClearGeofences(c echo.Context) error {
	if err := h.geofenceUC.ClearAllGeofences(c.Request().Context()); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RebuildGeofences replaces the set from saved items.
// A rebuild already in flight answers 202 without doing anything.
func (h *GeofenceHandler) RebuildGeofences(c echo.Context) error {
	var req RebuildRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid rebuild input")
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, err)
	}

	result, err := h.geofenceUC.RebuildFromSavedItems(c.Request().Context(), req.Items, req.RadiusMiles)
	if err != nil {
		return response.AppError(c, err)
	}

	if result.InFlight {
		return response.Success(c, http.StatusAccepted, result, "Rebuild already in progress")
	}

	return response.Success(c, http.StatusOK, result, "Geofences rebuilt")
}

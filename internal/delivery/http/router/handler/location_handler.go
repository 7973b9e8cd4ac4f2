package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "venuealert/internal/delivery/context"
	"venuealert/internal/delivery/http/response"
	"venuealert/internal/domain/entity"
	"venuealert/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	Observer service.LocationObserver
	Logger   *slog.Logger
}

// LocationHandler feeds device position fixes to the region monitor
type LocationHandler struct {
	observer service.LocationObserver
	logger   *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		observer: params.Observer,
		logger:   params.Logger,
	}
}

// LocationFixRequest is the body of POST /locations
type LocationFixRequest struct {
	Latitude   float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64   `json:"longitude" validate:"min=-180,max=180"`
	Accuracy   float64   `json:"accuracy" validate:"min=0"`
	RecordedAt time.Time `json:"recordedAt"`
}

// ReportLocation hands one fix to the region monitor
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	var req LocationFixRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, err)
	}

	ctx := c.Request().Context()
	fix := entity.LocationFix{
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Accuracy:   req.Accuracy,
		RecordedAt: req.RecordedAt,
	}

	if err := h.observer.Observe(ctx, fix); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).WarnContext(ctx, "[Location] Failed to process location fix",
			slog.Any("error", err),
		)

		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

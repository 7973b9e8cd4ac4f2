package handler

import (
	"log/slog"
	"net/http"

	"venuealert/internal/delivery/http/response"
	"venuealert/internal/domain/entity"
	"venuealert/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertPolicyUC usecase.AlertPolicyUsecase
	Logger        *slog.Logger
}

// AlertHandler exposes the alert settings and permission reporting
type AlertHandler struct {
	alertPolicyUC usecase.AlertPolicyUsecase
	logger        *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertPolicyUC: params.AlertPolicyUC,
		logger:        params.Logger,
	}
}

// MasterSwitchRequest is the body of PUT /alerts/master
type MasterSwitchRequest struct {
	Enabled *bool               `json:"enabled" validate:"required"`
	Items   []*entity.SavedItem `json:"items" validate:"dive,required"`
}

// RadiusRequest is the body of PUT /alerts/radius
type RadiusRequest struct {
	RadiusMiles float64             `json:"radiusMiles" validate:"gt=0"`
	Items       []*entity.SavedItem `json:"items" validate:"dive,required"`
}

// ItemAlertRequest is the body of PUT /alerts/items/:id
type ItemAlertRequest struct {
	Enabled *bool        `json:"enabled" validate:"required"`
	Venue   entity.Venue `json:"venue"`
}

// PermissionRequest is the body of PUT /permissions
type PermissionRequest struct {
	Foreground *bool `json:"foreground" validate:"required"`
	Background *bool `json:"background" validate:"required"`
}

// GetSettings returns the stored alert settings
func (h *AlertHandler) GetSettings(c echo.Context) error {
	settings, err := h.alertPolicyUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "")
}

// GetStatus returns settings, permissions and the active geofence count
func (h *AlertHandler) GetStatus(c echo.Context) error {
	status, err := h.alertPolicyUC.GetStatus(c.Request().Context())
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// SetMasterSwitch turns location alerts on or off
func (h *AlertHandler) SetMasterSwitch(c echo.Context) error {
	var req MasterSwitchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid master switch input")
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, err)
	}

	result, err := h.alertPolicyUC.SetMasterSwitch(c.Request().Context(), *req.Enabled, req.Items)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Location alerts updated")
}

// SetRadius changes the alert radius
func (h *AlertHandler) SetRadius(c echo.Context) error {
	var req RadiusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid radius input")
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, err)
	}

	result, err := h.alertPolicyUC.SetRadius(c.Request().Context(), req.RadiusMiles, req.Items)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Alert radius updated")
}

// SetItemAlert toggles the alert for one saved item
func (h *AlertHandler) SetItemAlert(c echo.Context) error {
	var req ItemAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid item alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, err)
	}

	item := &entity.SavedItem{
		ID:                   c.Param("id"),
		NotificationsEnabled: *req.Enabled,
		Venue:                req.Venue,
	}

	if err := h.alertPolicyUC.SetItemAlert(c.Request().Context(), item, *req.Enabled); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ReportPermissions records the device's location permission state
func (h *AlertHandler) ReportPermissions(c echo.Context) error {
	var req PermissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid permission input")
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, err)
	}

	status := &entity.PermissionStatus{
		Foreground: *req.Foreground,
		Background: *req.Background,
	}

	if err := h.alertPolicyUC.ReportPermissions(c.Request().Context(), status); err != nil {
		return response.AppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

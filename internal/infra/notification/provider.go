package notification

import (
	"context"
	"log/slog"

	"venuealert/config"
	"venuealert/internal/domain/constants"
	"venuealert/internal/domain/service"
	"venuealert/internal/errors"

	"go.uber.org/fx"
)

// NotifierParams holds dependencies for LocalNotifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewLocalNotifier creates the configured notification provider
func NewLocalNotifier(params NotifierParams) (service.LocalNotifier, error) {
	provider := constants.NotificationProviderLog
	if params.Config.Notification != nil && params.Config.Notification.Provider != "" {
		provider = params.Config.Notification.Provider
	}

	switch provider {
	case constants.NotificationProviderLog:
		return NewLogNotifier(params.Logger), nil

	case constants.NotificationProviderFirebase:
		firebaseCfg := params.Config.Firebase
		if firebaseCfg == nil {
			return nil, errors.New("firebase notification provider selected but firebase is not configured")
		}

		return NewFirebaseNotifier(params.Ctx, firebaseCfg.ProjectID, firebaseCfg.CredentialsPath, firebaseCfg.DeviceToken, params.Logger)

	default:
		return nil, errors.Errorf("unknown notification provider: %s", provider)
	}
}

package notification

import (
	"context"
	"log/slog"

	"venuealert/internal/domain/entity"
	"venuealert/internal/domain/service"
)

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that only writes notifications to the log, for development
func NewLogNotifier(logger *slog.Logger) service.LocalNotifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) ScheduleLocalNotification(ctx context.Context, notification *entity.LocalNotification) error {
	n.logger.InfoContext(ctx, "[Notification] "+notification.Title,
		slog.String("body", notification.Body),
		slog.String("geofence_id", notification.Data.GeofenceID),
		slog.String("venue_id", notification.Data.VenueID),
		slog.String("trigger", string(notification.Trigger)),
	)

	return nil
}

// Package notification delivers arrival notifications to the device.
package notification

import (
	"context"
	"log/slog"

	"venuealert/internal/domain/entity"
	"venuealert/internal/domain/service"
	"venuealert/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messageSender is the part of the FCM client the notifier uses
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseNotifier struct {
	client      messageSender
	deviceToken string
	logger      *slog.Logger
}

// NewFirebaseNotifier creates a notifier that delivers through Firebase Cloud Messaging to one device
func NewFirebaseNotifier(ctx context.Context, projectID, credentialsPath, deviceToken string, logger *slog.Logger) (service.LocalNotifier, error) {
	if deviceToken == "" {
		return nil, errors.New("firebase device token is required")
	}

	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseNotifier(client, deviceToken, logger), nil
}

func newFirebaseNotifier(client messageSender, deviceToken string, logger *slog.Logger) *firebaseNotifier {
	return &firebaseNotifier{
		client:      client,
		deviceToken: deviceToken,
		logger:      logger,
	}
}

// ScheduleLocalNotification sends the notification immediately; FCM has no delayed trigger.
func (n *firebaseNotifier) ScheduleLocalNotification(ctx context.Context, notification *entity.LocalNotification) error {
	if notification.Trigger != entity.TriggerImmediate {
		return errors.Errorf("unsupported notification trigger: %s", notification.Trigger)
	}

	message := &messaging.Message{
		Token: n.deviceToken,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: notification.Data.DataMap(),
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	messageID, err := n.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			n.logger.ErrorContext(ctx, "[Firebase] Device token rejected, alerts cannot be delivered", slog.Any("error", err))
		}

		return errors.Wrap(err, "failed to send notification")
	}

	n.logger.DebugContext(ctx, "[Firebase] Notification sent",
		slog.String("message_id", messageID),
		slog.String("geofence_id", notification.Data.GeofenceID),
	)

	return nil
}

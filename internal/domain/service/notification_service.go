package service

import (
	"context"

	"venuealert/internal/domain/entity"
)

// LocalNotifier defines the interface for the notification delivery layer
type LocalNotifier interface {
	// ScheduleLocalNotification delivers the notification according to its trigger
	ScheduleLocalNotification(ctx context.Context, notification *entity.LocalNotification) error
}

package notification

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"venuealert/config"
	"venuealert/internal/domain/entity"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	messages []*messaging.Message
	err      error
}

func (s *recordingSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	s.messages = append(s.messages, message)

	return "projects/test/messages/1", s.err
}

func arrival() *entity.LocalNotification {
	return entity.NewArrivalNotification(&entity.Geofence{ID: "g1", Name: "Cafe", VenueID: "v1"})
}

func TestFirebaseNotifier_SendsToDeviceToken(t *testing.T) {
	sender := &recordingSender{}
	notifier := newFirebaseNotifier(sender, "device-token", slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, notifier.ScheduleLocalNotification(context.Background(), arrival()))

	require.Len(t, sender.messages, 1)
	message := sender.messages[0]
	assert.Equal(t, "device-token", message.Token)
	assert.Equal(t, "You're near a bucket list spot!", message.Notification.Title)
	assert.Equal(t, map[string]string{"geofenceId": "g1", "name": "Cafe", "venueId": "v1"}, message.Data)
}

func TestFirebaseNotifier_PropagatesSendFailure(t *testing.T) {
	sender := &recordingSender{err: assert.AnError}
	notifier := newFirebaseNotifier(sender, "device-token", slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := notifier.ScheduleLocalNotification(context.Background(), arrival())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLogNotifier(t *testing.T) {
	buf := &bytes.Buffer{}
	notifier := NewLogNotifier(slog.New(slog.NewTextHandler(buf, nil)))

	require.NoError(t, notifier.ScheduleLocalNotification(context.Background(), arrival()))
	assert.Contains(t, buf.String(), "Cafe is nearby")
	assert.Contains(t, buf.String(), "geofence_id=g1")
}

func TestNewLocalNotifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	notifier, err := NewLocalNotifier(NotifierParams{Ctx: context.Background(), Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &logNotifier{}, notifier)

	_, err = NewLocalNotifier(NotifierParams{
		Ctx:    context.Background(),
		Config: &config.Config{Notification: &config.NotificationConfig{Provider: "firebase"}},
		Logger: logger,
	})
	assert.Error(t, err)

	_, err = NewLocalNotifier(NotifierParams{
		Ctx:    context.Background(),
		Config: &config.Config{Notification: &config.NotificationConfig{Provider: "sms"}},
		Logger: logger,
	})
	assert.Error(t, err)
}

package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"venuealert/internal/domain/entity"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/region-events-push"

// PushEnvelope is the body Pub/Sub POSTs to a push subscription endpoint
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes are copied onto every message for filtering and tracing
func eventAttributes(event *entity.RegionEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"region_id":  event.RegionID,
		"event_type": string(event.Type),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// NewPushEnvelope wraps a region event the way a push subscription delivers it
func NewPushEnvelope(event *entity.RegionEvent, publishedAt time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := &PushEnvelope{Subscription: localSubscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = eventAttributes(event)
	envelope.Message.MessageID = event.EventID
	envelope.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return envelope, nil
}

// DecodeRegionEvent extracts the region event carried by the envelope
func (e *PushEnvelope) DecodeRegionEvent() (*entity.RegionEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event entity.RegionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse region event")
	}
	if event.RegionID == "" {
		return nil, errors.New("region event without region id")
	}
	if event.EventID == "" {
		event.EventID = e.Message.MessageID
	}

	return &event, nil
}

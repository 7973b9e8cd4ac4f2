package service

import (
	"context"

	"venuealert/internal/domain/entity"
)

// EventPublisher defines the interface for handing region events to the geo worker
type EventPublisher interface {
	// PublishRegionEvent publishes a region crossing for asynchronous handling
	PublishRegionEvent(ctx context.Context, event *entity.RegionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

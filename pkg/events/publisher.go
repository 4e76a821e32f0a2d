package events

import (
	"context"

	"go.uber.org/zap"
)

// Publisher defines the interface for publishing domain events
type Publisher interface {
	// Publish publishes an event to the message broker
	Publish(ctx context.Context, exchange string, event *Event, headers Headers) error

	// Close closes the publisher connection
	Close() error
}

// Emit publishes a v1 event. Failures are logged, not returned. A nil
// publisher disables publishing. Emit waits for the publisher; wrap it in an
// AsyncPublisher to keep broker latency off the request path.
func Emit(ctx context.Context, publisher Publisher, exchange, eventName string, payload interface{}) {
	if publisher == nil {
		return
	}

	headers := NewHeaders(ctx)
	event := NewEvent(eventName, EventVersionV1, payload, headers)

	if err := publisher.Publish(ctx, exchange, event, headers); err != nil {
		zap.L().Error("Failed to publish event",
			zap.String("event", eventName),
			zap.String("exchange", exchange),
			zap.String("correlationId", headers.CorrelationID),
			zap.Error(err),
		)
	}
}

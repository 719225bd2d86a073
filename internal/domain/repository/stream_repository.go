package repository

import (
	"context"

	"github.com/findhelp-service/internal/domain"
)

// StreamRepository publishes and consumes Redis stream messages.
type StreamRepository interface {
	// CreateConsumerGroup ensures a consumer group exists for the stream.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to count pending messages for the consumer.
	// Returns an empty slice when the stream has nothing new.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// AckMessages acknowledges processed messages.
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error

	// PublishToStream JSON-serializes data and appends it to the stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}

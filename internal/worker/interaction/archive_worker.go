package interaction

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/findhelp-service/internal/domain"
	"github.com/findhelp-service/internal/domain/repository"
	"github.com/findhelp-service/internal/worker"
)

// ArchiveWorker drains click events from the interaction stream into the
// PostgreSQL archive. Messages that cannot be parsed are acknowledged and
// dropped so they do not wedge the consumer group.
type ArchiveWorker struct {
	*worker.BaseWorker

	streams   repository.StreamRepository
	archive   repository.ArchiveRepository
	consumer  string
	batchSize int
}

func NewArchiveWorker(
	streams repository.StreamRepository,
	archive repository.ArchiveRepository,
	consumerGroup string,
	consumer string,
	batchSize int,
	logger *zap.Logger,
) *ArchiveWorker {
	if batchSize <= 0 {
		batchSize = 20
	}
	return &ArchiveWorker{
		BaseWorker: worker.NewBaseWorker("interaction-archive", consumerGroup, logger),
		streams:    streams,
		archive:    archive,
		consumer:   consumer,
		batchSize:  batchSize,
	}
}

// Start runs the consume loop until the context is canceled or Stop is
// called.
func (w *ArchiveWorker) Start(ctx context.Context) error {
	logger := w.Logger()

	if err := w.archive.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure archive schema: %w", err)
	}

	if err := w.streams.CreateConsumerGroup(ctx, domain.StreamInteractionClick, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("create consumer group: %w", err)
	}

	logger.Info("Archive worker started",
		zap.String("stream", domain.StreamInteractionClick),
		zap.String("group", w.ConsumerGroup()),
		zap.String("consumer", w.consumer))

	for {
		select {
		case <-ctx.Done():
			logger.Info("Archive worker context canceled")
			return nil
		case <-w.StopChan():
			logger.Info("Archive worker stop requested")
			return nil
		default:
		}

		messages, err := w.streams.ConsumeBatch(
			ctx,
			domain.StreamInteractionClick,
			w.ConsumerGroup(),
			w.consumer,
			w.batchSize,
		)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Error("Failed to consume batch", zap.Error(err))
			continue
		}
		if len(messages) == 0 {
			continue
		}

		w.processBatch(ctx, messages)
	}
}

func (w *ArchiveWorker) processBatch(ctx context.Context, messages []domain.StreamMessage) {
	logger := w.Logger()

	events := make([]domain.ClickEvent, 0, len(messages))
	ids := make([]string, 0, len(messages))
	for _, msg := range messages {
		var event domain.ClickEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Dropping unparseable click event",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			ids = append(ids, msg.ID)
			continue
		}
		events = append(events, event)
		ids = append(ids, msg.ID)
	}

	if len(events) > 0 {
		if err := w.archive.InsertClickEvents(ctx, events); err != nil {
			// Leave the batch unacked; the group redelivers it.
			logger.Error("Failed to archive click events",
				zap.Int("count", len(events)),
				zap.Error(err))
			return
		}
	}

	if err := w.streams.AckMessages(ctx, domain.StreamInteractionClick, w.ConsumerGroup(), ids); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
		return
	}

	logger.Debug("Batch archived",
		zap.Int("events", len(events)),
		zap.Int("acked", len(ids)))
}

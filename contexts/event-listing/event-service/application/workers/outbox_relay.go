package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "eventy/contexts/event-listing/event-service/application"
	"eventy/contexts/event-listing/event-service/ports"
	sharedevents "eventy/internal/shared/events"
)

// OutboxRelay publishes persisted outbox records to the event bus.
type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

// RunOnce publishes a bounded batch of pending outbox rows and marks each row
// published only after the bus accepted it. It stops on the first failure so
// the retry loop can reprocess remaining rows safely.
func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("event outbox list failed",
			"event", "event_outbox_list_failed",
			"module", "event-listing/event-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if len(pending) == 0 {
		logger.Debug("event outbox relay found no pending rows",
			"event", "event_outbox_relay_noop",
			"module", "event-listing/event-service",
			"layer", "worker",
			"batch_size", limit,
		)
		return nil
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, row := range pending {
		var envelope sharedevents.Envelope
		if err := json.Unmarshal(row.Payload, &envelope); err != nil {
			logger.Error("event outbox decode failed",
				"event", "event_outbox_decode_failed",
				"module", "event-listing/event-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
		topic := envelope.EventType
		if topic == "" {
			topic = row.EventType
		}
		if err := r.Publisher.Publish(ctx, topic, envelope); err != nil {
			logger.Error("event outbox publish failed",
				"event", "event_outbox_publish_failed",
				"module", "event-listing/event-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"topic", topic,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Outbox.MarkOutboxPublished(ctx, row.OutboxID, now); err != nil {
			logger.Error("event outbox mark published failed",
				"event", "event_outbox_mark_failed",
				"module", "event-listing/event-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
	}

	logger.Info("event outbox relay cycle completed",
		"event", "event_outbox_relay_completed",
		"module", "event-listing/event-service",
		"layer", "worker",
		"published", len(pending),
	)
	return nil
}

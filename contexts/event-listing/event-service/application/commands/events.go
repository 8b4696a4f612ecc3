package commands

import (
	"context"
	"strconv"
	"time"

	"eventy/contexts/event-listing/event-service/ports"
	sharedevents "eventy/internal/shared/events"
)

const sourceService = "event-listing/event-service"

func appendEventEnvelope(
	ctx context.Context,
	outbox ports.OutboxWriter,
	idgen ports.IDGenerator,
	eventType string,
	eventID int64,
	occurredAt time.Time,
	payload map[string]any,
) error {
	// Outbox is optional for pure read/test wiring, so nil is treated as no-op.
	if outbox == nil {
		return nil
	}
	envelopeID, err := idgen.NewID(ctx)
	if err != nil {
		return err
	}
	return outbox.AppendOutbox(ctx, sharedevents.Envelope{
		EventID:       envelopeID,
		EventType:     eventType,
		SourceService: sourceService,
		OccurredAtUTC: occurredAt.UTC(),
		EntityType:    "event",
		EntityID:      strconv.FormatInt(eventID, 10),
		Payload:       payload,
	})
}

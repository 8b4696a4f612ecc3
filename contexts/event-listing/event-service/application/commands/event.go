package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "eventy/contexts/event-listing/event-service/application"
	"eventy/contexts/event-listing/event-service/domain/entities"
	domainerrors "eventy/contexts/event-listing/event-service/domain/errors"
	"eventy/contexts/event-listing/event-service/ports"
)

// EventUseCase owns event lifecycle commands: create, full and partial
// updates, deletion, and ticket registration.
type EventUseCase struct {
	Events  ports.EventRepository
	Tickets ports.TicketRepository
	Outbox  ports.OutboxWriter
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger
}

// CreateEvent stores a new event with zeroed counters and a stamped upload
// time. The author owns the event from creation on.
func (uc EventUseCase) CreateEvent(ctx context.Context, event entities.Event) (entities.Event, error) {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(event.Name) == "" || event.AuthorID <= 0 {
		logger.Warn("event create validation failed",
			"event", "event_create_validation_failed",
			"module", "event-listing/event-service",
			"layer", "application",
			"name", strings.TrimSpace(event.Name),
			"author_id", event.AuthorID,
		)
		return entities.Event{}, domainerrors.ErrInvalidEventInput
	}

	event.ID = 0
	event.PlusVotes = 0
	event.MinusVotes = 0
	event.ReportCount = 0
	event.DateOfUpload = uc.now()
	if event.LocationKind == "" {
		event.LocationKind = entities.LocationOnSite
	}
	if event.EventType == "" {
		event.EventType = entities.EventTypeOther
	}
	if event.StatusKind == "" {
		event.StatusKind = entities.StatusPlanned
	}

	created, err := uc.Events.CreateEvent(ctx, event)
	if err != nil {
		return entities.Event{}, err
	}
	if err := appendEventEnvelope(ctx, uc.Outbox, uc.IDGen, "event.created", created.ID, uc.now(), map[string]any{
		"event_id":  created.ID,
		"name":      created.Name,
		"author_id": created.AuthorID,
	}); err != nil {
		return entities.Event{}, err
	}

	logger.Info("event created",
		"event", "event_created",
		"module", "event-listing/event-service",
		"layer", "application",
		"event_id", created.ID,
		"name", created.Name,
		"author_id", created.AuthorID,
	)
	return created, nil
}

// UpdateEvent replaces all mutable fields. The path id must match the body id.
func (uc EventUseCase) UpdateEvent(ctx context.Context, eventID int64, event entities.Event) (entities.Event, error) {
	if eventID != event.ID {
		return entities.Event{}, domainerrors.ErrEventIDMismatch
	}
	if _, err := uc.Events.GetEvent(ctx, eventID); err != nil {
		return entities.Event{}, err
	}
	return uc.Events.UpdateEvent(ctx, event)
}

// UpdateLocation changes only the location classification.
func (uc EventUseCase) UpdateLocation(ctx context.Context, eventID int64, raw string) (entities.Event, error) {
	kind, ok := entities.ParseLocationKind(raw)
	if !ok {
		return entities.Event{}, domainerrors.ErrUnknownLocation
	}
	event, err := uc.Events.GetEvent(ctx, eventID)
	if err != nil {
		return entities.Event{}, err
	}
	event.LocationKind = kind
	return uc.Events.UpdateEvent(ctx, event)
}

// UpdateType changes only the event type classification.
func (uc EventUseCase) UpdateType(ctx context.Context, eventID int64, raw string) (entities.Event, error) {
	kind, ok := entities.ParseEventType(raw)
	if !ok {
		return entities.Event{}, domainerrors.ErrUnknownEventType
	}
	event, err := uc.Events.GetEvent(ctx, eventID)
	if err != nil {
		return entities.Event{}, err
	}
	event.EventType = kind
	return uc.Events.UpdateEvent(ctx, event)
}

// UpdateStatus changes only the status classification.
func (uc EventUseCase) UpdateStatus(ctx context.Context, eventID int64, raw string) (entities.Event, error) {
	kind, ok := entities.ParseStatusKind(raw)
	if !ok {
		return entities.Event{}, domainerrors.ErrUnknownStatus
	}
	event, err := uc.Events.GetEvent(ctx, eventID)
	if err != nil {
		return entities.Event{}, err
	}
	event.StatusKind = kind
	return uc.Events.UpdateEvent(ctx, event)
}

// DeleteEvent removes the event; the store cascades votes, reports, and
// tickets for it.
func (uc EventUseCase) DeleteEvent(ctx context.Context, eventID int64) error {
	logger := application.ResolveLogger(uc.Logger)
	if _, err := uc.Events.GetEvent(ctx, eventID); err != nil {
		return err
	}
	if err := uc.Events.DeleteEvent(ctx, eventID); err != nil {
		return err
	}
	if err := appendEventEnvelope(ctx, uc.Outbox, uc.IDGen, "event.deleted", eventID, uc.now(), map[string]any{
		"event_id": eventID,
	}); err != nil {
		return err
	}
	logger.Info("event deleted",
		"event", "event_deleted",
		"module", "event-listing/event-service",
		"layer", "application",
		"event_id", eventID,
	)
	return nil
}

// AddTicket registers a ticket for an existing event.
func (uc EventUseCase) AddTicket(ctx context.Context, ticket entities.Ticket) (entities.Ticket, error) {
	if ticket.EventID <= 0 || strings.TrimSpace(ticket.Name) == "" || ticket.Price < 0 {
		return entities.Ticket{}, domainerrors.ErrInvalidTicketInput
	}
	if _, err := uc.Events.GetEvent(ctx, ticket.EventID); err != nil {
		return entities.Ticket{}, err
	}
	return uc.Tickets.CreateTicket(ctx, ticket)
}

func (uc EventUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

package ports

import (
	"context"
	"time"

	"eventy/contexts/event-listing/event-service/domain/entities"
	sharedevents "eventy/internal/shared/events"
)

// EventRepository owns event rows and the list/search reads of the aggregate.
type EventRepository interface {
	CreateEvent(ctx context.Context, event entities.Event) (entities.Event, error)
	GetEvent(ctx context.Context, eventID int64) (entities.Event, error)
	GetEventByName(ctx context.Context, name string) (entities.Event, error)
	ListEvents(ctx context.Context) ([]entities.Event, error)
	ListValidEvents(ctx context.Context) ([]entities.Event, error)
	SearchEventsByName(ctx context.Context, term string) ([]entities.Event, error)
	UpdateEvent(ctx context.Context, event entities.Event) (entities.Event, error)
	DeleteEvent(ctx context.Context, eventID int64) error
	ListReportedEvents(ctx context.Context) ([]entities.Event, error)
	ListEventsReportedBy(ctx context.Context, accountID int64) ([]entities.Event, error)
}

// VoteRepository applies vote and report mutations. Each Apply/Withdraw call
// performs the row change and the matching counter update atomically and
// returns the refreshed event plus a changed marker.
type VoteRepository interface {
	ApplyVote(ctx context.Context, eventID int64, userID int64, isPlus bool) (entities.Event, bool, error)
	ApplyReport(ctx context.Context, eventID int64, accountID int64, description string) (entities.Event, bool, error)
	WithdrawReport(ctx context.Context, eventID int64, accountID int64) (entities.Event, bool, error)
	GetVote(ctx context.Context, eventID int64, userID int64) (entities.Vote, bool, error)
	CountVotes(ctx context.Context, eventID int64) (plus int, minus int, err error)
}

// TicketRepository owns ticket rows; price bounds are derived per event.
type TicketRepository interface {
	CreateTicket(ctx context.Context, ticket entities.Ticket) (entities.Ticket, error)
	ListTicketsByEvent(ctx context.Context, eventID int64) ([]entities.Ticket, error)
	TicketPriceRange(ctx context.Context, eventID int64) (entities.PriceRange, int, error)
}

// AccountProjection is the slice of account state the aggregate needs for
// author lookups. The identity-access context owns the full record.
type AccountProjection struct {
	AccountID   int64
	Email       string
	Name        string
	AccountType string
	Active      bool
}

// AccountDirectory resolves event authors.
type AccountDirectory interface {
	GetAccount(ctx context.Context, accountID int64) (AccountProjection, bool, error)
}

// OutboxMessage is one persisted outbox row awaiting publication.
type OutboxMessage struct {
	OutboxID   string
	EventType  string
	Payload    []byte
	Status     string // pending, published
	RetryCount int
}

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope sharedevents.Envelope) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event sharedevents.Envelope) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

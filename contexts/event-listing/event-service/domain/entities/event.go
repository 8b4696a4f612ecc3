package entities

import "time"

type LocationKind string

const (
	LocationOnSite LocationKind = "on_site"
	LocationOnline LocationKind = "online"
	LocationHybrid LocationKind = "hybrid"
)

func ParseLocationKind(raw string) (LocationKind, bool) {
	switch LocationKind(raw) {
	case LocationOnSite, LocationOnline, LocationHybrid:
		return LocationKind(raw), true
	default:
		return "", false
	}
}

type EventType string

const (
	EventTypeConcert    EventType = "concert"
	EventTypeFestival   EventType = "festival"
	EventTypeSport      EventType = "sport"
	EventTypeTheatre    EventType = "theatre"
	EventTypeConference EventType = "conference"
	EventTypeOther      EventType = "other"
)

func ParseEventType(raw string) (EventType, bool) {
	switch EventType(raw) {
	case EventTypeConcert, EventTypeFestival, EventTypeSport,
		EventTypeTheatre, EventTypeConference, EventTypeOther:
		return EventType(raw), true
	default:
		return "", false
	}
}

type StatusKind string

const (
	StatusPlanned   StatusKind = "planned"
	StatusOngoing   StatusKind = "ongoing"
	StatusFinished  StatusKind = "finished"
	StatusCancelled StatusKind = "cancelled"
)

func ParseStatusKind(raw string) (StatusKind, bool) {
	switch StatusKind(raw) {
	case StatusPlanned, StatusOngoing, StatusFinished, StatusCancelled:
		return StatusKind(raw), true
	default:
		return "", false
	}
}

// Event is the listed happening accounts vote on, report, and buy tickets for.
// PlusVotes/MinusVotes/ReportCount are authoritative counters and must equal the
// count of matching Vote/Report rows at all times.
type Event struct {
	ID                int64
	Name              string
	Description       string
	Address           string
	Image             string
	DateOfUpload      time.Time
	DateOfStart       time.Time
	DateOfEnd         time.Time
	LocationKind      LocationKind
	EventType         EventType
	StatusKind        StatusKind
	PlusVotes         int
	MinusVotes        int
	ReportCount       int
	IsConfirmed       bool
	IsExpired         bool
	IsSoldOut         bool
	AmountOfAllTickets int
	AmountOfBatches    int
	AuthorID          int64
	DistributorID     int64
}

// Valid reports whether the event is listed by default views.
// Validity is defined by the expiry flag alone; confirmation state is a
// separate concern and intentionally not part of this predicate.
func (e Event) Valid() bool {
	return !e.IsExpired
}

// Ticket belongs to exactly one event and carries the price used to derive the
// event's price bounds.
type Ticket struct {
	ID          int64
	EventID     int64
	Name        string
	Type        string
	Price       float64
	Date        time.Time
	Description string
}

// PriceRange is the min/max ticket price for one event.
type PriceRange struct {
	Lowest  float64
	Highest float64
}

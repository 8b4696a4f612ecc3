package events

import "time"

// Envelope is the canonical event shape exchanged between the API process,
// the transactional outbox, and the worker relay.
type Envelope struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	SourceService string    `json:"source_service"`
	OccurredAtUTC time.Time `json:"occurred_at_utc"`
	CorrelationID string    `json:"correlation_id"`
	EntityType    string    `json:"entity_type"`
	EntityID      string    `json:"entity_id"`
	Payload       any       `json:"payload"`
}

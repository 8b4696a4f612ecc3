package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"eventy/contexts/event-listing/event-service/domain/entities"
	domainerrors "eventy/contexts/event-listing/event-service/domain/errors"
	"eventy/contexts/event-listing/event-service/domain/services"
	"eventy/contexts/event-listing/event-service/ports"
	sharedevents "eventy/internal/shared/events"

	"github.com/google/uuid"
)

type voteKey struct {
	eventID int64
	userID  int64
}

type reportKey struct {
	eventID   int64
	accountID int64
}

type outboxRecord struct {
	message   ports.OutboxMessage
	appended  time.Time
	published bool
}

// Store is the in-memory implementation of the event-service ports used by
// tests and local wiring. All mutations hold the write lock for the whole
// read-modify-write, which is the memory equivalent of the postgres
// transaction: counters and rows always change together.
type Store struct {
	mu sync.RWMutex

	events   map[int64]entities.Event
	votes    map[voteKey]entities.Vote
	reports  map[reportKey]entities.Report
	tickets  map[int64]entities.Ticket
	accounts map[int64]ports.AccountProjection
	outbox   map[string]outboxRecord

	nextEventID  int64
	nextVoteID   int64
	nextReportID int64
	nextTicketID int64

	fixedNow time.Time
}

func NewStore(seed []entities.Event) *Store {
	store := &Store{
		events:   make(map[int64]entities.Event, len(seed)),
		votes:    make(map[voteKey]entities.Vote),
		reports:  make(map[reportKey]entities.Report),
		tickets:  make(map[int64]entities.Ticket),
		accounts: make(map[int64]ports.AccountProjection),
		outbox:   make(map[string]outboxRecord),
	}
	for _, event := range seed {
		store.events[event.ID] = event
		if event.ID > store.nextEventID {
			store.nextEventID = event.ID
		}
	}
	return store
}

// SetNow pins the store clock for deterministic closest-date sorting.
func (s *Store) SetNow(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fixedNow = now
}

func (s *Store) SetAccount(account ports.AccountProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.AccountID] = account
}

func (s *Store) SetTicket(ticket entities.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket.ID == 0 {
		s.nextTicketID++
		ticket.ID = s.nextTicketID
	} else if ticket.ID > s.nextTicketID {
		s.nextTicketID = ticket.ID
	}
	s.tickets[ticket.ID] = ticket
}

// GetReport exposes the stored report row for inspection in tests.
func (s *Store) GetReport(eventID int64, accountID int64) (entities.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[reportKey{eventID: eventID, accountID: accountID}]
	return report, ok
}

func (s *Store) CreateEvent(_ context.Context, event entities.Event) (entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextEventID++
	event.ID = s.nextEventID
	s.events[event.ID] = event
	return event, nil
}

func (s *Store) GetEvent(_ context.Context, eventID int64) (entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	event, ok := s.events[eventID]
	if !ok {
		return entities.Event{}, domainerrors.ErrEventNotFound
	}
	return event, nil
}

func (s *Store) GetEventByName(_ context.Context, name string) (entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, event := range s.events {
		if strings.EqualFold(event.Name, name) {
			return event, nil
		}
	}
	return entities.Event{}, domainerrors.ErrEventNotFound
}

func (s *Store) ListEvents(_ context.Context) ([]entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Event, 0, len(s.events))
	for _, event := range s.events {
		items = append(items, event)
	}
	sortEventsByID(items)
	return items, nil
}

func (s *Store) ListValidEvents(_ context.Context) ([]entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Event, 0, len(s.events))
	for _, event := range s.events {
		if event.Valid() {
			items = append(items, event)
		}
	}
	sortEventsByID(items)
	return items, nil
}

func (s *Store) SearchEventsByName(_ context.Context, term string) ([]entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(term)
	items := make([]entities.Event, 0)
	for _, event := range s.events {
		if strings.Contains(strings.ToLower(event.Name), needle) {
			items = append(items, event)
		}
	}
	sortEventsByID(items)
	return items, nil
}

func (s *Store) UpdateEvent(_ context.Context, event entities.Event) (entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[event.ID]; !ok {
		return entities.Event{}, domainerrors.ErrEventNotFound
	}
	s.events[event.ID] = event
	return event, nil
}

func (s *Store) DeleteEvent(_ context.Context, eventID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		return domainerrors.ErrEventNotFound
	}
	delete(s.events, eventID)
	for key := range s.votes {
		if key.eventID == eventID {
			delete(s.votes, key)
		}
	}
	for key := range s.reports {
		if key.eventID == eventID {
			delete(s.reports, key)
		}
	}
	for id, ticket := range s.tickets {
		if ticket.EventID == eventID {
			delete(s.tickets, id)
		}
	}
	return nil
}

func (s *Store) ListReportedEvents(_ context.Context) ([]entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Event, 0)
	for _, event := range s.events {
		if event.ReportCount > 0 {
			items = append(items, event)
		}
	}
	sortEventsByID(items)
	return items, nil
}

func (s *Store) ListEventsReportedBy(_ context.Context, accountID int64) ([]entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Event, 0)
	for key := range s.reports {
		if key.accountID != accountID {
			continue
		}
		if event, ok := s.events[key.eventID]; ok {
			items = append(items, event)
		}
	}
	sortEventsByID(items)
	return items, nil
}

func (s *Store) ApplyVote(_ context.Context, eventID int64, userID int64, isPlus bool) (entities.Event, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return entities.Event{}, false, domainerrors.ErrEventNotFound
	}

	key := voteKey{eventID: eventID, userID: userID}
	var existing *entities.Vote
	if vote, ok := s.votes[key]; ok {
		existing = &vote
	}

	decision := services.DecideVote(existing, isPlus)
	switch decision.Action {
	case services.VoteActionInsert:
		s.nextVoteID++
		s.votes[key] = entities.Vote{ID: s.nextVoteID, EventID: eventID, UserID: userID, IsPlus: isPlus}
	case services.VoteActionFlip:
		vote := s.votes[key]
		vote.IsPlus = isPlus
		s.votes[key] = vote
	}
	services.ApplyVoteCounters(&event, decision)
	s.events[eventID] = event
	return event, decision.Changed(), nil
}

func (s *Store) ApplyReport(_ context.Context, eventID int64, accountID int64, description string) (entities.Event, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return entities.Event{}, false, domainerrors.ErrEventNotFound
	}

	key := reportKey{eventID: eventID, accountID: accountID}
	_, alreadyReported := s.reports[key]
	insert, delta := services.DecideReport(alreadyReported)
	if insert {
		s.nextReportID++
		s.reports[key] = entities.Report{ID: s.nextReportID, EventID: eventID, AccountID: accountID, Description: description}
	}
	services.ApplyReportCounter(&event, delta)
	s.events[eventID] = event
	return event, insert, nil
}

func (s *Store) WithdrawReport(_ context.Context, eventID int64, accountID int64) (entities.Event, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return entities.Event{}, false, domainerrors.ErrEventNotFound
	}

	key := reportKey{eventID: eventID, accountID: accountID}
	_, hasReport := s.reports[key]
	remove, delta := services.DecideUnreport(hasReport)
	if remove {
		delete(s.reports, key)
	}
	services.ApplyReportCounter(&event, delta)
	s.events[eventID] = event
	return event, remove, nil
}

func (s *Store) GetVote(_ context.Context, eventID int64, userID int64) (entities.Vote, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vote, ok := s.votes[voteKey{eventID: eventID, userID: userID}]
	return vote, ok, nil
}

func (s *Store) CountVotes(_ context.Context, eventID int64) (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var plus, minus int
	for key, vote := range s.votes {
		if key.eventID != eventID {
			continue
		}
		if vote.IsPlus {
			plus++
		} else {
			minus++
		}
	}
	return plus, minus, nil
}

func (s *Store) CreateTicket(_ context.Context, ticket entities.Ticket) (entities.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTicketID++
	ticket.ID = s.nextTicketID
	s.tickets[ticket.ID] = ticket
	return ticket, nil
}

func (s *Store) ListTicketsByEvent(_ context.Context, eventID int64) ([]entities.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Ticket, 0)
	for _, ticket := range s.tickets {
		if ticket.EventID == eventID {
			items = append(items, ticket)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) TicketPriceRange(_ context.Context, eventID int64) (entities.PriceRange, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var bounds entities.PriceRange
	count := 0
	for _, ticket := range s.tickets {
		if ticket.EventID != eventID {
			continue
		}
		if count == 0 {
			bounds.Lowest = ticket.Price
			bounds.Highest = ticket.Price
		} else {
			if ticket.Price < bounds.Lowest {
				bounds.Lowest = ticket.Price
			}
			if ticket.Price > bounds.Highest {
				bounds.Highest = ticket.Price
			}
		}
		count++
	}
	return bounds, count, nil
}

func (s *Store) GetAccount(_ context.Context, accountID int64) (ports.AccountProjection, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[accountID]
	return account, ok, nil
}

func (s *Store) AppendOutbox(_ context.Context, envelope sharedevents.Envelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbox[envelope.EventID] = outboxRecord{
		message: ports.OutboxMessage{
			OutboxID:  envelope.EventID,
			EventType: envelope.EventType,
			Payload:   payload,
			Status:    "pending",
		},
		appended: s.nowLocked(),
	}
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]ports.OutboxMessage, 0)
	for _, record := range s.outbox {
		if record.published {
			continue
		}
		items = append(items, record.message)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].OutboxID < items[j].OutboxID })
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.outbox[outboxID]
	if !ok {
		return nil
	}
	record.published = true
	record.message.Status = "published"
	s.outbox[outboxID] = record
	return nil
}

func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nowLocked()
}

func (s *Store) nowLocked() time.Time {
	if !s.fixedNow.IsZero() {
		return s.fixedNow
	}
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func sortEventsByID(items []entities.Event) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}

package queries

import (
	"context"
	"sort"
	"strings"
	"time"

	"eventy/contexts/event-listing/event-service/domain/entities"
	domainerrors "eventy/contexts/event-listing/event-service/domain/errors"
	"eventy/contexts/event-listing/event-service/ports"
)

// SortKind selects the list ordering. Unknown kinds fall back to votes.
type SortKind string

const (
	SortByDate    SortKind = "date"
	SortByVotes   SortKind = "votes"
	SortByClosest SortKind = "closest"
)

// CatalogUseCase answers the read side of the aggregate: single lookups,
// filtered and sorted lists, price bounds, and author resolution.
type CatalogUseCase struct {
	Events   ports.EventRepository
	Tickets  ports.TicketRepository
	Accounts ports.AccountDirectory
	Clock    ports.Clock
}

func (uc CatalogUseCase) GetEvent(ctx context.Context, eventID int64) (entities.Event, error) {
	return uc.Events.GetEvent(ctx, eventID)
}

func (uc CatalogUseCase) GetEventByName(ctx context.Context, name string) (entities.Event, error) {
	return uc.Events.GetEventByName(ctx, strings.TrimSpace(name))
}

func (uc CatalogUseCase) ListEvents(ctx context.Context) ([]entities.Event, error) {
	return uc.Events.ListEvents(ctx)
}

// ListValidEvents returns events that are not expired. Confirmation state is
// intentionally not part of the filter.
func (uc CatalogUseCase) ListValidEvents(ctx context.Context) ([]entities.Event, error) {
	return uc.Events.ListValidEvents(ctx)
}

// Search matches event names case-insensitively by substring. An empty term
// matches every event, expired or not.
func (uc CatalogUseCase) Search(ctx context.Context, term string) ([]entities.Event, error) {
	return uc.Events.SearchEventsByName(ctx, strings.TrimSpace(term))
}

// SearchAndSort starts from the valid list when the term is empty, from the
// search result otherwise, then orders by the requested kind.
func (uc CatalogUseCase) SearchAndSort(ctx context.Context, term string, kind SortKind) ([]entities.Event, error) {
	var (
		items []entities.Event
		err   error
	)
	if strings.TrimSpace(term) == "" {
		items, err = uc.Events.ListValidEvents(ctx)
	} else {
		items, err = uc.Events.SearchEventsByName(ctx, strings.TrimSpace(term))
	}
	if err != nil {
		return nil, err
	}
	uc.sortEvents(items, kind)
	return items, nil
}

// SortAll orders the valid list without a search filter.
func (uc CatalogUseCase) SortAll(ctx context.Context, kind SortKind) ([]entities.Event, error) {
	return uc.SearchAndSort(ctx, "", kind)
}

func (uc CatalogUseCase) sortEvents(items []entities.Event, kind SortKind) {
	switch kind {
	case SortByDate:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].DateOfStart.Before(items[j].DateOfStart)
		})
	case SortByClosest:
		now := uc.now()
		sort.SliceStable(items, func(i, j int) bool {
			return absDuration(items[i].DateOfStart.Sub(now)) < absDuration(items[j].DateOfStart.Sub(now))
		})
	default:
		// votes is both the named kind and the fallback for unknown kinds:
		// descending plus votes, ties broken by descending minus votes.
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].PlusVotes != items[j].PlusVotes {
				return items[i].PlusVotes > items[j].PlusVotes
			}
			return items[i].MinusVotes > items[j].MinusVotes
		})
	}
}

// PriceRange scans the event's tickets for min/max price. An event without
// tickets has undefined bounds and fails rather than returning a sentinel.
func (uc CatalogUseCase) PriceRange(ctx context.Context, eventID int64) (entities.PriceRange, error) {
	if _, err := uc.Events.GetEvent(ctx, eventID); err != nil {
		return entities.PriceRange{}, err
	}
	bounds, count, err := uc.Tickets.TicketPriceRange(ctx, eventID)
	if err != nil {
		return entities.PriceRange{}, err
	}
	if count == 0 {
		return entities.PriceRange{}, domainerrors.ErrNoTickets
	}
	return bounds, nil
}

func (uc CatalogUseCase) ListTickets(ctx context.Context, eventID int64) ([]entities.Ticket, error) {
	if _, err := uc.Events.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return uc.Tickets.ListTicketsByEvent(ctx, eventID)
}

func (uc CatalogUseCase) ListReportedEvents(ctx context.Context) ([]entities.Event, error) {
	return uc.Events.ListReportedEvents(ctx)
}

func (uc CatalogUseCase) ListEventsReportedBy(ctx context.Context, accountID int64) ([]entities.Event, error) {
	return uc.Events.ListEventsReportedBy(ctx, accountID)
}

// EventAuthor resolves the account that created the event.
func (uc CatalogUseCase) EventAuthor(ctx context.Context, eventID int64) (ports.AccountProjection, error) {
	event, err := uc.Events.GetEvent(ctx, eventID)
	if err != nil {
		return ports.AccountProjection{}, err
	}
	author, found, err := uc.Accounts.GetAccount(ctx, event.AuthorID)
	if err != nil {
		return ports.AccountProjection{}, err
	}
	if !found {
		return ports.AccountProjection{}, domainerrors.ErrAuthorNotFound
	}
	return author, nil
}

func (uc CatalogUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now()
	}
	return time.Now()
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

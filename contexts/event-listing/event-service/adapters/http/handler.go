package httpadapter

import (
	"context"
	"log/slog"

	"eventy/contexts/event-listing/event-service/application/commands"
	"eventy/contexts/event-listing/event-service/application/queries"
	"eventy/contexts/event-listing/event-service/domain/entities"
	httptransport "eventy/contexts/event-listing/event-service/transport/http"
)

// Handler is the transport-facing facade over the event use cases. The
// platform server owns routing, decoding, and credential checks; this layer
// maps DTOs to commands/queries and back.
type Handler struct {
	Events  commands.EventUseCase
	Votes   commands.VoteUseCase
	Reports commands.ReportUseCase
	Catalog queries.CatalogUseCase
	Logger  *slog.Logger
}

func (h Handler) ListEventsHandler(ctx context.Context) (httptransport.EventListResponse, error) {
	items, err := h.Catalog.ListEvents(ctx)
	if err != nil {
		return httptransport.EventListResponse{}, err
	}
	return httptransport.EventListResponse{Items: mapEvents(items)}, nil
}

func (h Handler) ListValidEventsHandler(ctx context.Context) (httptransport.EventListResponse, error) {
	items, err := h.Catalog.ListValidEvents(ctx)
	if err != nil {
		return httptransport.EventListResponse{}, err
	}
	return httptransport.EventListResponse{Items: mapEvents(items)}, nil
}

func (h Handler) GetEventHandler(ctx context.Context, eventID int64) (httptransport.EventResponse, error) {
	event, err := h.Catalog.GetEvent(ctx, eventID)
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return mapEvent(event), nil
}

func (h Handler) GetEventByNameHandler(ctx context.Context, name string) (httptransport.EventResponse, error) {
	event, err := h.Catalog.GetEventByName(ctx, name)
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return mapEvent(event), nil
}

func (h Handler) SearchEventsHandler(ctx context.Context, term string) (httptransport.EventListResponse, error) {
	items, err := h.Catalog.Search(ctx, term)
	if err != nil {
		return httptransport.EventListResponse{}, err
	}
	return httptransport.EventListResponse{Items: mapEvents(items)}, nil
}

func (h Handler) SearchAndSortHandler(ctx context.Context, term string, sortType string) (httptransport.EventListResponse, error) {
	items, err := h.Catalog.SearchAndSort(ctx, term, queries.SortKind(sortType))
	if err != nil {
		return httptransport.EventListResponse{}, err
	}
	return httptransport.EventListResponse{Items: mapEvents(items)}, nil
}

func (h Handler) SortEventsHandler(ctx context.Context, sortType string) (httptransport.EventListResponse, error) {
	items, err := h.Catalog.SortAll(ctx, queries.SortKind(sortType))
	if err != nil {
		return httptransport.EventListResponse{}, err
	}
	return httptransport.EventListResponse{Items: mapEvents(items)}, nil
}

func (h Handler) CreateEventHandler(ctx context.Context, req httptransport.CreateEventRequest) (httptransport.EventResponse, error) {
	created, err := h.Events.CreateEvent(ctx, entities.Event{
		Name:               req.Name,
		Description:        req.Description,
		Address:            req.Address,
		Image:              req.Image,
		DateOfStart:        req.DateOfStart,
		DateOfEnd:          req.DateOfEnd,
		LocationKind:       entities.LocationKind(req.Location),
		EventType:          entities.EventType(req.EventType),
		StatusKind:         entities.StatusKind(req.EventStatus),
		AmountOfAllTickets: req.AmountOfAllTickets,
		AmountOfBatches:    req.AmountOfBatches,
		AuthorID:           req.AuthorID,
		DistributorID:      req.DistributorID,
	})
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return mapEvent(created), nil
}

func (h Handler) UpdateEventHandler(ctx context.Context, eventID int64, req httptransport.UpdateEventRequest) (httptransport.EventResponse, error) {
	updated, err := h.Events.UpdateEvent(ctx, eventID, entities.Event{
		ID:                 req.ID,
		Name:               req.Name,
		Description:        req.Description,
		Address:            req.Address,
		Image:              req.Image,
		DateOfStart:        req.DateOfStart,
		DateOfEnd:          req.DateOfEnd,
		LocationKind:       entities.LocationKind(req.Location),
		EventType:          entities.EventType(req.EventType),
		StatusKind:         entities.StatusKind(req.EventStatus),
		IsConfirmed:        req.IsConfirmed,
		IsExpired:          req.IsExpired,
		IsSoldOut:          req.IsSoldOut,
		AmountOfAllTickets: req.AmountOfAllTickets,
		AmountOfBatches:    req.AmountOfBatches,
		DistributorID:      req.DistributorID,
	})
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return mapEvent(updated), nil
}

func (h Handler) UpdateLocationHandler(ctx context.Context, eventID int64, location string) (httptransport.EventResponse, error) {
	updated, err := h.Events.UpdateLocation(ctx, eventID, location)
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return mapEvent(updated), nil
}

func (h Handler) UpdateTypeHandler(ctx context.Context, eventID int64, eventType string) (httptransport.EventResponse, error) {
	updated, err := h.Events.UpdateType(ctx, eventID, eventType)
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return mapEvent(updated), nil
}

func (h Handler) UpdateStatusHandler(ctx context.Context, eventID int64, status string) (httptransport.EventResponse, error) {
	updated, err := h.Events.UpdateStatus(ctx, eventID, status)
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return mapEvent(updated), nil
}

func (h Handler) DeleteEventHandler(ctx context.Context, eventID int64) error {
	return h.Events.DeleteEvent(ctx, eventID)
}

// CastVoteHandler serves both the plus and minus endpoints; the platform
// server has already resolved and verified the user id.
func (h Handler) CastVoteHandler(ctx context.Context, eventID int64, userID int64, isPlus bool) (httptransport.EventResponse, error) {
	result, err := h.Votes.CastVote(ctx, commands.CastVoteCommand{
		EventID: eventID,
		UserID:  userID,
		IsPlus:  isPlus,
	})
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return mapEvent(result.Event), nil
}

func (h Handler) ReportEventHandler(ctx context.Context, eventID int64, accountID int64, description string) (httptransport.EventResponse, error) {
	result, err := h.Reports.FileReport(ctx, commands.FileReportCommand{
		EventID:     eventID,
		AccountID:   accountID,
		Description: description,
	})
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return mapEvent(result.Event), nil
}

func (h Handler) UnreportEventHandler(ctx context.Context, eventID int64, accountID int64) (httptransport.EventResponse, error) {
	result, err := h.Reports.WithdrawReport(ctx, commands.WithdrawReportCommand{
		EventID:   eventID,
		AccountID: accountID,
	})
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return mapEvent(result.Event), nil
}

func (h Handler) ReportedEventsHandler(ctx context.Context) (httptransport.EventListResponse, error) {
	items, err := h.Catalog.ListReportedEvents(ctx)
	if err != nil {
		return httptransport.EventListResponse{}, err
	}
	return httptransport.EventListResponse{Items: mapEvents(items)}, nil
}

func (h Handler) ReportedByAccountHandler(ctx context.Context, accountID int64) (httptransport.EventListResponse, error) {
	items, err := h.Catalog.ListEventsReportedBy(ctx, accountID)
	if err != nil {
		return httptransport.EventListResponse{}, err
	}
	return httptransport.EventListResponse{Items: mapEvents(items)}, nil
}

func (h Handler) LowestTicketPriceHandler(ctx context.Context, eventID int64) (float64, error) {
	bounds, err := h.Catalog.PriceRange(ctx, eventID)
	if err != nil {
		return 0, err
	}
	return bounds.Lowest, nil
}

func (h Handler) HighestTicketPriceHandler(ctx context.Context, eventID int64) (float64, error) {
	bounds, err := h.Catalog.PriceRange(ctx, eventID)
	if err != nil {
		return 0, err
	}
	return bounds.Highest, nil
}

func (h Handler) ListTicketsHandler(ctx context.Context, eventID int64) (httptransport.TicketListResponse, error) {
	items, err := h.Catalog.ListTickets(ctx, eventID)
	if err != nil {
		return httptransport.TicketListResponse{}, err
	}
	mapped := make([]httptransport.TicketResponse, 0, len(items))
	for _, ticket := range items {
		mapped = append(mapped, mapTicket(ticket))
	}
	return httptransport.TicketListResponse{Items: mapped}, nil
}

func (h Handler) AddTicketHandler(ctx context.Context, eventID int64, req httptransport.CreateTicketRequest) (httptransport.TicketResponse, error) {
	created, err := h.Events.AddTicket(ctx, entities.Ticket{
		EventID:     eventID,
		Name:        req.Name,
		Type:        req.Type,
		Price:       req.Price,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		return httptransport.TicketResponse{}, err
	}
	return mapTicket(created), nil
}

func (h Handler) EventAuthorHandler(ctx context.Context, eventID int64) (httptransport.AuthorResponse, error) {
	author, err := h.Catalog.EventAuthor(ctx, eventID)
	if err != nil {
		return httptransport.AuthorResponse{}, err
	}
	return httptransport.AuthorResponse{
		ID:          author.AccountID,
		Email:       author.Email,
		Name:        author.Name,
		AccountType: author.AccountType,
		Active:      author.Active,
	}, nil
}

func mapEvent(event entities.Event) httptransport.EventResponse {
	return httptransport.EventResponse{
		ID:                 event.ID,
		Name:               event.Name,
		Description:        event.Description,
		Address:            event.Address,
		Image:              event.Image,
		DateOfUpload:       event.DateOfUpload,
		DateOfStart:        event.DateOfStart,
		DateOfEnd:          event.DateOfEnd,
		Location:           string(event.LocationKind),
		EventType:          string(event.EventType),
		EventStatus:        string(event.StatusKind),
		Pluses:             event.PlusVotes,
		Minuses:            event.MinusVotes,
		NumberOfReports:    event.ReportCount,
		IsConfirmed:        event.IsConfirmed,
		IsExpired:          event.IsExpired,
		IsSoldOut:          event.IsSoldOut,
		AmountOfAllTickets: event.AmountOfAllTickets,
		AmountOfBatches:    event.AmountOfBatches,
		AuthorID:           event.AuthorID,
		DistributorID:      event.DistributorID,
	}
}

func mapEvents(items []entities.Event) []httptransport.EventResponse {
	mapped := make([]httptransport.EventResponse, 0, len(items))
	for _, event := range items {
		mapped = append(mapped, mapEvent(event))
	}
	return mapped
}

func mapTicket(ticket entities.Ticket) httptransport.TicketResponse {
	return httptransport.TicketResponse{
		ID:          ticket.ID,
		EventID:     ticket.EventID,
		Name:        ticket.Name,
		Type:        ticket.Type,
		Price:       ticket.Price,
		Date:        ticket.Date,
		Description: ticket.Description,
	}
}

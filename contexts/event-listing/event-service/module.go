package eventservice

import (
	"log/slog"

	httpadapter "eventy/contexts/event-listing/event-service/adapters/http"
	"eventy/contexts/event-listing/event-service/adapters/memory"
	"eventy/contexts/event-listing/event-service/application/commands"
	"eventy/contexts/event-listing/event-service/application/queries"
	"eventy/contexts/event-listing/event-service/domain/entities"
	"eventy/contexts/event-listing/event-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Events   ports.EventRepository
	Votes    ports.VoteRepository
	Tickets  ports.TicketRepository
	Accounts ports.AccountDirectory
	Outbox   ports.OutboxWriter
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	eventUseCase := commands.EventUseCase{
		Events:  deps.Events,
		Tickets: deps.Tickets,
		Outbox:  deps.Outbox,
		Clock:   deps.Clock,
		IDGen:   deps.IDGen,
		Logger:  deps.Logger,
	}
	voteUseCase := commands.VoteUseCase{
		Votes:  deps.Votes,
		Outbox: deps.Outbox,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	reportUseCase := commands.ReportUseCase{
		Votes:  deps.Votes,
		Outbox: deps.Outbox,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	catalogUseCase := queries.CatalogUseCase{
		Events:   deps.Events,
		Tickets:  deps.Tickets,
		Accounts: deps.Accounts,
		Clock:    deps.Clock,
	}
	return Module{
		Handler: httpadapter.Handler{
			Events:  eventUseCase,
			Votes:   voteUseCase,
			Reports: reportUseCase,
			Catalog: catalogUseCase,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Event, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Events:   store,
		Votes:    store,
		Tickets:  store,
		Accounts: store,
		Outbox:   store,
		Clock:    store,
		IDGen:    store,
		Logger:   logger,
	})
	module.Store = store
	return module
}

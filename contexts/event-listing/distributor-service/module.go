package distributorservice

import (
	"log/slog"

	httpadapter "eventy/contexts/event-listing/distributor-service/adapters/http"
	"eventy/contexts/event-listing/distributor-service/adapters/memory"
	"eventy/contexts/event-listing/distributor-service/application/commands"
	"eventy/contexts/event-listing/distributor-service/application/queries"
	"eventy/contexts/event-listing/distributor-service/domain/entities"
	"eventy/contexts/event-listing/distributor-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Distributors ports.DistributorRepository
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Distributors: commands.DistributorUseCase{
				Distributors: deps.Distributors,
				Logger:       deps.Logger,
			},
			Purchase: queries.PurchaseUseCase{
				Distributors: deps.Distributors,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Distributor, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Distributors: store,
		Logger:       logger,
	})
	module.Store = store
	return module
}

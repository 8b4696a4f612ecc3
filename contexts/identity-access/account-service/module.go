package accountservice

import (
	"log/slog"
	"time"

	httpadapter "eventy/contexts/identity-access/account-service/adapters/http"
	"eventy/contexts/identity-access/account-service/adapters/memory"
	"eventy/contexts/identity-access/account-service/application"
	"eventy/contexts/identity-access/account-service/application/commands"
	"eventy/contexts/identity-access/account-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Tokens  application.TokenService
	Store   *memory.Store
}

type Dependencies struct {
	Accounts  ports.AccountRepository
	JWTSecret []byte
	TokenTTL  time.Duration
	Clock     ports.Clock
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	tokens := application.TokenService{
		Secret: deps.JWTSecret,
		TTL:    deps.TokenTTL,
		Clock:  deps.Clock,
	}
	return Module{
		Handler: httpadapter.Handler{
			Auth: commands.AuthUseCase{
				Accounts: deps.Accounts,
				Tokens:   tokens,
				Logger:   deps.Logger,
			},
			Logger: deps.Logger,
		},
		Tokens: tokens,
	}
}

func NewInMemoryModule(secret []byte, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Accounts:  store,
		JWTSecret: secret,
		Logger:    logger,
	})
	module.Store = store
	return module
}

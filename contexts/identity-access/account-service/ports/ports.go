package ports

import (
	"context"
	"time"

	"eventy/contexts/identity-access/account-service/domain/entities"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, account entities.Account) (entities.Account, error)
	GetAccount(ctx context.Context, accountID int64) (entities.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (entities.Account, error)
	SaveAccount(ctx context.Context, account entities.Account) (entities.Account, error)
}

type Clock interface {
	Now() time.Time
}

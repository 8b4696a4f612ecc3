package httpadapter

import (
	"context"
	"log/slog"

	"eventy/contexts/identity-access/account-service/application/commands"
	"eventy/contexts/identity-access/account-service/domain/entities"
	httptransport "eventy/contexts/identity-access/account-service/transport/http"
)

// Handler maps account DTOs to use case calls. Routing and status codes live
// in the platform server.
type Handler struct {
	Auth   commands.AuthUseCase
	Logger *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.AccountResponse, error) {
	created, err := h.Auth.Register(ctx, commands.RegisterCommand{
		Email:       req.Email,
		Name:        req.Name,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		AccountType: entities.AccountType(req.AccountType),
	})
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return mapAccount(created), nil
}

func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.LoginResponse, error) {
	result, err := h.Auth.Login(ctx, commands.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Account:   mapAccount(result.Account),
	}, nil
}

func (h Handler) GetAccountHandler(ctx context.Context, accountID int64) (httptransport.AccountResponse, error) {
	account, err := h.Auth.Accounts.GetAccount(ctx, accountID)
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return mapAccount(account), nil
}

func (h Handler) ActivateAccountHandler(ctx context.Context, accountID int64) (httptransport.AccountResponse, error) {
	account, err := h.Auth.Activate(ctx, accountID)
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return mapAccount(account), nil
}

func mapAccount(account entities.Account) httptransport.AccountResponse {
	return httptransport.AccountResponse{
		ID:            account.ID,
		Email:         account.Email,
		Name:          account.Name,
		PhoneNumber:   account.PhoneNumber,
		ProfileImage:  account.ProfileImage,
		AccountType:   string(account.AccountType),
		ActiveAccount: account.ActiveAccount,
	}
}

package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "eventy/contexts/identity-access/account-service/application"
	"eventy/contexts/identity-access/account-service/domain/entities"
	domainerrors "eventy/contexts/identity-access/account-service/domain/errors"
	"eventy/contexts/identity-access/account-service/ports"

	"golang.org/x/crypto/bcrypt"
)

// RegisterCommand creates a new account with a bcrypt-hashed credential.
type RegisterCommand struct {
	Email       string
	Name        string
	Password    string
	PhoneNumber string
	AccountType entities.AccountType
}

// LoginCommand exchanges credentials for a signed token.
type LoginCommand struct {
	Email    string
	Password string
}

// LoginResult carries the signed token the client sends back with vote and
// report calls.
type LoginResult struct {
	Account   entities.Account
	Token     string
	ExpiresAt time.Time
}

type AuthUseCase struct {
	Accounts ports.AccountRepository
	Tokens   application.TokenService
	Logger   *slog.Logger
}

func (uc AuthUseCase) Register(ctx context.Context, cmd RegisterCommand) (entities.Account, error) {
	logger := application.ResolveLogger(uc.Logger)
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || !strings.Contains(email, "@") || strings.TrimSpace(cmd.Name) == "" || len(cmd.Password) < 8 {
		logger.Warn("account register validation failed",
			"event", "account_register_validation_failed",
			"module", "identity-access/account-service",
			"layer", "application",
			"email", email,
		)
		return entities.Account{}, domainerrors.ErrInvalidAccountInput
	}

	if _, err := uc.Accounts.GetAccountByEmail(ctx, email); err == nil {
		return entities.Account{}, domainerrors.ErrEmailTaken
	} else if !errors.Is(err, domainerrors.ErrAccountNotFound) {
		return entities.Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.Account{}, err
	}

	accountType := cmd.AccountType
	if accountType == "" {
		accountType = entities.AccountTypeUser
	}
	created, err := uc.Accounts.CreateAccount(ctx, entities.Account{
		Email:         email,
		Name:          strings.TrimSpace(cmd.Name),
		PasswordHash:  string(hash),
		PhoneNumber:   strings.TrimSpace(cmd.PhoneNumber),
		AccountType:   accountType,
		ActiveAccount: true,
	})
	if err != nil {
		return entities.Account{}, err
	}

	logger.Info("account registered",
		"event", "account_registered",
		"module", "identity-access/account-service",
		"layer", "application",
		"account_id", created.ID,
		"email", created.Email,
	)
	return created, nil
}

// Login compares the credential and issues a signed token on success. Both
// unknown email and wrong password map to the same error to avoid account
// probing.
func (uc AuthUseCase) Login(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return LoginResult{}, domainerrors.ErrInvalidCredentials
	}

	account, err := uc.Accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			return LoginResult{}, domainerrors.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(cmd.Password)); err != nil {
		logger.Warn("account login rejected",
			"event", "account_login_rejected",
			"module", "identity-access/account-service",
			"layer", "application",
			"account_id", account.ID,
		)
		return LoginResult{}, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.Tokens.Issue(account.ID)
	if err != nil {
		return LoginResult{}, err
	}

	logger.Info("account logged in",
		"event", "account_logged_in",
		"module", "identity-access/account-service",
		"layer", "application",
		"account_id", account.ID,
	)
	return LoginResult{Account: account, Token: token, ExpiresAt: expiresAt}, nil
}

// Activate flips the activation flag; it is idempotent.
func (uc AuthUseCase) Activate(ctx context.Context, accountID int64) (entities.Account, error) {
	account, err := uc.Accounts.GetAccount(ctx, accountID)
	if err != nil {
		return entities.Account{}, err
	}
	if account.ActiveAccount {
		return account, nil
	}
	account.ActiveAccount = true
	return uc.Accounts.SaveAccount(ctx, account)
}

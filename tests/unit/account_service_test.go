package unit

import (
	"context"
	"errors"
	"testing"

	accountservice "eventy/contexts/identity-access/account-service"
	"eventy/contexts/identity-access/account-service/application/commands"
	domainerrors "eventy/contexts/identity-access/account-service/domain/errors"
	accounthttp "eventy/contexts/identity-access/account-service/transport/http"
)

func newAccountModule() accountservice.Module {
	return accountservice.NewInMemoryModule([]byte("unit-secret"), nil)
}

func TestRegisterHashesAndLoginVerifies(t *testing.T) {
	module := newAccountModule()
	ctx := context.Background()

	created, err := module.Handler.RegisterHandler(ctx, accounthttp.RegisterRequest{
		Email:    "mira@example.com",
		Name:     "Mira",
		Password: "long-enough-secret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if created.ID == 0 || !created.ActiveAccount {
		t.Fatalf("unexpected account %+v", created)
	}

	stored, err := module.Store.GetAccountByEmail(ctx, "mira@example.com")
	if err != nil {
		t.Fatalf("stored account lookup failed: %v", err)
	}
	if stored.PasswordHash == "long-enough-secret" || stored.PasswordHash == "" {
		t.Fatalf("password must be stored as a hash")
	}

	login, err := module.Handler.LoginHandler(ctx, accounthttp.LoginRequest{
		Email:    "mira@example.com",
		Password: "long-enough-secret",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if login.Token == "" {
		t.Fatalf("expected a token from login")
	}

	if err := module.Tokens.VerifyFor(login.Token, created.ID); err != nil {
		t.Fatalf("issued token must verify for its subject: %v", err)
	}
	if err := module.Tokens.VerifyFor(login.Token, created.ID+1); !errors.Is(err, domainerrors.ErrTokenSubjectMismatch) {
		t.Fatalf("expected subject mismatch, got %v", err)
	}
}

func TestLoginUnknownEmailAndWrongPassword(t *testing.T) {
	module := newAccountModule()
	ctx := context.Background()

	if _, err := module.Handler.LoginHandler(ctx, accounthttp.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever-password",
	}); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}

	if _, err := module.Handler.RegisterHandler(ctx, accounthttp.RegisterRequest{
		Email:    "known@example.com",
		Name:     "Known",
		Password: "right-password",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := module.Handler.LoginHandler(ctx, accounthttp.LoginRequest{
		Email:    "known@example.com",
		Password: "wrong-password",
	}); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for wrong password, got %v", err)
	}
}

func TestRegisterNormalizesEmailAndDetectsDuplicates(t *testing.T) {
	module := newAccountModule()
	ctx := context.Background()

	if _, err := module.Handler.Auth.Register(ctx, commands.RegisterCommand{
		Email:    "  Case@Example.com ",
		Name:     "Case",
		Password: "some-password",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := module.Handler.Auth.Register(ctx, commands.RegisterCommand{
		Email:    "case@example.com",
		Name:     "Other",
		Password: "other-password",
	})
	if !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestVerifyRejectsGarbageToken(t *testing.T) {
	module := newAccountModule()

	if _, err := module.Tokens.Verify("definitely.not.ajwt"); !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestActivateIsIdempotent(t *testing.T) {
	module := newAccountModule()
	ctx := context.Background()

	created, err := module.Handler.RegisterHandler(ctx, accounthttp.RegisterRequest{
		Email:    "act@example.com",
		Name:     "Act",
		Password: "activation-pass",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	first, err := module.Handler.ActivateAccountHandler(ctx, created.ID)
	if err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	second, err := module.Handler.ActivateAccountHandler(ctx, created.ID)
	if err != nil {
		t.Fatalf("second activate failed: %v", err)
	}
	if !first.ActiveAccount || !second.ActiveAccount {
		t.Fatalf("account should stay active: %+v %+v", first, second)
	}
}

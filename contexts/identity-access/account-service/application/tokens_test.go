package application

import (
	"errors"
	"testing"
	"time"

	domainerrors "eventy/contexts/identity-access/account-service/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	service := TokenService{Secret: []byte("s3cret"), TTL: time.Hour}

	token, expiresAt, err := service.Issue(42)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expiry must be in the future, got %v", expiresAt)
	}

	subject, err := service.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != 42 {
		t.Fatalf("expected subject 42, got %d", subject)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := TokenService{Secret: []byte("issuer-secret"), TTL: time.Hour}
	verifier := TokenService{Secret: []byte("other-secret"), TTL: time.Hour}

	token, _, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issued := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	issuer := TokenService{Secret: []byte("s3cret"), TTL: time.Hour, Clock: fixedClock{now: issued}}
	verifier := TokenService{Secret: []byte("s3cret"), Clock: fixedClock{now: issued.Add(2 * time.Hour)}}

	token, _, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyForRequiresSubjectMatch(t *testing.T) {
	service := TokenService{Secret: []byte("s3cret"), TTL: time.Hour}

	token, _, err := service.Issue(42)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if err := service.VerifyFor(token, 42); err != nil {
		t.Fatalf("matching subject must verify: %v", err)
	}
	if err := service.VerifyFor(token, 7); !errors.Is(err, domainerrors.ErrTokenSubjectMismatch) {
		t.Fatalf("expected subject mismatch, got %v", err)
	}
}

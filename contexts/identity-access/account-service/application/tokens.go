package application

import (
	"strconv"
	"time"

	domainerrors "eventy/contexts/identity-access/account-service/domain/errors"
	"eventy/contexts/identity-access/account-service/ports"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "eventy"

// TokenService issues and verifies HMAC-signed bearer tokens. The original
// system decoded tokens without checking the signature; verification is now
// mandatory on every mutating call.
type TokenService struct {
	Secret []byte
	TTL    time.Duration
	Clock  ports.Clock
}

// Issue signs a token whose subject is the account id.
func (s TokenService) Issue(accountID int64) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl())
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   strconv.FormatInt(accountID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify checks signature and expiry and returns the subject account id.
// Any parse or signature failure maps to ErrInvalidToken.
func (s TokenService) Verify(raw string) (int64, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainerrors.ErrInvalidToken
		}
		return s.Secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return 0, domainerrors.ErrInvalidToken
	}
	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return 0, domainerrors.ErrInvalidToken
	}
	return accountID, nil
}

// VerifyFor additionally requires the token subject to match the
// caller-supplied account id.
func (s TokenService) VerifyFor(raw string, accountID int64) error {
	subject, err := s.Verify(raw)
	if err != nil {
		return err
	}
	if subject != accountID {
		return domainerrors.ErrTokenSubjectMismatch
	}
	return nil
}

func (s TokenService) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

func (s TokenService) ttl() time.Duration {
	if s.TTL <= 0 {
		return 24 * time.Hour
	}
	return s.TTL
}

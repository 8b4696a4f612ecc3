package postgresadapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SystemClock is the production clock wiring.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// UUIDGenerator issues envelope/outbox identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

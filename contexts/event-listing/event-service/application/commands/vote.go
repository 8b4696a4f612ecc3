package commands

import (
	"context"
	"log/slog"
	"time"

	application "eventy/contexts/event-listing/event-service/application"
	"eventy/contexts/event-listing/event-service/domain/entities"
	domainerrors "eventy/contexts/event-listing/event-service/domain/errors"
	"eventy/contexts/event-listing/event-service/ports"
)

// CastVoteCommand is the write-model input for plus/minus votes.
type CastVoteCommand struct {
	EventID int64
	UserID  int64
	IsPlus  bool
}

// CastVoteResult returns the refreshed event and whether the row set changed.
// An unchanged result means the caller already held a matching vote.
type CastVoteResult struct {
	Event   entities.Event
	Changed bool
}

// VoteUseCase orchestrates vote casting. The counter/row atomicity contract is
// enforced by the repository; this layer validates input, logs, and emits the
// outbox event when state actually changed.
type VoteUseCase struct {
	Votes  ports.VoteRepository
	Outbox ports.OutboxWriter
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// CastVote inserts a first vote, flips an opposing one, and is a no-op for a
// matching one. Repeated calls with the same sign are idempotent.
func (uc VoteUseCase) CastVote(ctx context.Context, cmd CastVoteCommand) (CastVoteResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if cmd.EventID <= 0 || cmd.UserID <= 0 {
		logger.Warn("vote cast validation failed",
			"event", "event_vote_cast_validation_failed",
			"module", "event-listing/event-service",
			"layer", "application",
			"event_id", cmd.EventID,
			"user_id", cmd.UserID,
		)
		return CastVoteResult{}, domainerrors.ErrInvalidVoteInput
	}

	updated, changed, err := uc.Votes.ApplyVote(ctx, cmd.EventID, cmd.UserID, cmd.IsPlus)
	if err != nil {
		return CastVoteResult{}, err
	}
	if changed {
		if err := appendEventEnvelope(ctx, uc.Outbox, uc.IDGen, "event.vote_cast", updated.ID, uc.now(), map[string]any{
			"event_id":    updated.ID,
			"user_id":     cmd.UserID,
			"is_plus":     cmd.IsPlus,
			"plus_votes":  updated.PlusVotes,
			"minus_votes": updated.MinusVotes,
		}); err != nil {
			return CastVoteResult{}, err
		}
	}

	logger.Info("vote cast applied",
		"event", "event_vote_cast_applied",
		"module", "event-listing/event-service",
		"layer", "application",
		"event_id", updated.ID,
		"user_id", cmd.UserID,
		"is_plus", cmd.IsPlus,
		"changed", changed,
		"plus_votes", updated.PlusVotes,
		"minus_votes", updated.MinusVotes,
	)
	return CastVoteResult{Event: updated, Changed: changed}, nil
}

func (uc VoteUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

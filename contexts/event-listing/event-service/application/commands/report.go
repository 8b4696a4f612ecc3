package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "eventy/contexts/event-listing/event-service/application"
	"eventy/contexts/event-listing/event-service/domain/entities"
	domainerrors "eventy/contexts/event-listing/event-service/domain/errors"
	"eventy/contexts/event-listing/event-service/ports"
)

// FileReportCommand flags an event on behalf of an account.
type FileReportCommand struct {
	EventID     int64
	AccountID   int64
	Description string
}

// WithdrawReportCommand removes a previously filed report.
type WithdrawReportCommand struct {
	EventID   int64
	AccountID int64
}

// ReportResult returns the refreshed event and whether the row set changed.
type ReportResult struct {
	Event   entities.Event
	Changed bool
}

type ReportUseCase struct {
	Votes  ports.VoteRepository
	Outbox ports.OutboxWriter
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// FileReport inserts a report row and increments the counter. A duplicate
// report from the same account is a benign no-op.
func (uc ReportUseCase) FileReport(ctx context.Context, cmd FileReportCommand) (ReportResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if cmd.EventID <= 0 || cmd.AccountID <= 0 {
		logger.Warn("report file validation failed",
			"event", "event_report_validation_failed",
			"module", "event-listing/event-service",
			"layer", "application",
			"event_id", cmd.EventID,
			"account_id", cmd.AccountID,
		)
		return ReportResult{}, domainerrors.ErrInvalidReportInput
	}

	updated, changed, err := uc.Votes.ApplyReport(ctx, cmd.EventID, cmd.AccountID, strings.TrimSpace(cmd.Description))
	if err != nil {
		return ReportResult{}, err
	}
	if changed {
		if err := appendEventEnvelope(ctx, uc.Outbox, uc.IDGen, "event.reported", updated.ID, uc.now(), map[string]any{
			"event_id":     updated.ID,
			"account_id":   cmd.AccountID,
			"report_count": updated.ReportCount,
		}); err != nil {
			return ReportResult{}, err
		}
	}

	logger.Info("report filed",
		"event", "event_report_filed",
		"module", "event-listing/event-service",
		"layer", "application",
		"event_id", updated.ID,
		"account_id", cmd.AccountID,
		"changed", changed,
		"report_count", updated.ReportCount,
	)
	return ReportResult{Event: updated, Changed: changed}, nil
}

// WithdrawReport removes the account's report if one exists; otherwise the
// event is returned unchanged.
func (uc ReportUseCase) WithdrawReport(ctx context.Context, cmd WithdrawReportCommand) (ReportResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if cmd.EventID <= 0 || cmd.AccountID <= 0 {
		logger.Warn("report withdraw validation failed",
			"event", "event_unreport_validation_failed",
			"module", "event-listing/event-service",
			"layer", "application",
			"event_id", cmd.EventID,
			"account_id", cmd.AccountID,
		)
		return ReportResult{}, domainerrors.ErrInvalidReportInput
	}

	updated, changed, err := uc.Votes.WithdrawReport(ctx, cmd.EventID, cmd.AccountID)
	if err != nil {
		return ReportResult{}, err
	}
	if changed {
		if err := appendEventEnvelope(ctx, uc.Outbox, uc.IDGen, "event.unreported", updated.ID, uc.now(), map[string]any{
			"event_id":     updated.ID,
			"account_id":   cmd.AccountID,
			"report_count": updated.ReportCount,
		}); err != nil {
			return ReportResult{}, err
		}
	}

	logger.Info("report withdrawn",
		"event", "event_report_withdrawn",
		"module", "event-listing/event-service",
		"layer", "application",
		"event_id", updated.ID,
		"account_id", cmd.AccountID,
		"changed", changed,
		"report_count", updated.ReportCount,
	)
	return ReportResult{Event: updated, Changed: changed}, nil
}

func (uc ReportUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"eventy/contexts/event-listing/event-service/domain/entities"
	domainerrors "eventy/contexts/event-listing/event-service/domain/errors"
	"eventy/contexts/event-listing/event-service/domain/services"
	"eventy/contexts/event-listing/event-service/ports"
	sharedevents "eventy/internal/shared/events"

	"encoding/json"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

// Repository is the gorm-backed implementation of the event-service ports.
// Vote and report mutations run inside one transaction with the event row
// locked, so the counters can never drift from the row set.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreateEvent(ctx context.Context, event entities.Event) (entities.Event, error) {
	row := eventModelFromEntity(event)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Event{}, r.logError("event_repo_create_failed", err, "name", event.Name)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetEvent(ctx context.Context, eventID int64) (entities.Event, error) {
	var row eventModel
	err := r.db.WithContext(ctx).Where("id = ?", eventID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Event{}, domainerrors.ErrEventNotFound
		}
		return entities.Event{}, r.logError("event_repo_get_failed", err, "event_id", eventID)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetEventByName(ctx context.Context, name string) (entities.Event, error) {
	var row eventModel
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Event{}, domainerrors.ErrEventNotFound
		}
		return entities.Event{}, r.logError("event_repo_get_by_name_failed", err, "name", name)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListEvents(ctx context.Context) ([]entities.Event, error) {
	var rows []eventModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("event_repo_list_failed", err)
	}
	return toEventEntities(rows), nil
}

func (r *Repository) ListValidEvents(ctx context.Context) ([]entities.Event, error) {
	var rows []eventModel
	if err := r.db.WithContext(ctx).
		Where("is_expired = ?", false).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("event_repo_list_valid_failed", err)
	}
	return toEventEntities(rows), nil
}

func (r *Repository) SearchEventsByName(ctx context.Context, term string) ([]entities.Event, error) {
	var rows []eventModel
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("event_repo_search_failed", err, "term", term)
	}
	return toEventEntities(rows), nil
}

func (r *Repository) UpdateEvent(ctx context.Context, event entities.Event) (entities.Event, error) {
	row := eventModelFromEntity(event)
	result := r.db.WithContext(ctx).Model(&eventModel{}).Where("id = ?", row.ID).Updates(map[string]any{
		"name":                  row.Name,
		"description":           row.Description,
		"address":               row.Address,
		"image":                 row.Image,
		"date_of_start":         row.DateOfStart,
		"date_of_end":           row.DateOfEnd,
		"location_kind":         row.LocationKind,
		"event_type":            row.EventType,
		"status_kind":           row.StatusKind,
		"is_confirmed":          row.IsConfirmed,
		"is_expired":            row.IsExpired,
		"is_sold_out":           row.IsSoldOut,
		"amount_of_all_tickets": row.AmountOfAllTickets,
		"amount_of_batches":     row.AmountOfBatches,
		"distributor_id":        row.DistributorID,
	})
	if result.Error != nil {
		return entities.Event{}, r.logError("event_repo_update_failed", result.Error, "event_id", row.ID)
	}
	if result.RowsAffected == 0 {
		return entities.Event{}, domainerrors.ErrEventNotFound
	}
	return r.GetEvent(ctx, row.ID)
}

func (r *Repository) DeleteEvent(ctx context.Context, eventID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&voteModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", eventID).Delete(&reportModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", eventID).Delete(&ticketModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", eventID).Delete(&eventModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrEventNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEventNotFound) {
			return err
		}
		return r.logError("event_repo_delete_failed", err, "event_id", eventID)
	}
	return nil
}

func (r *Repository) ListReportedEvents(ctx context.Context) ([]entities.Event, error) {
	var rows []eventModel
	if err := r.db.WithContext(ctx).
		Where("report_count > 0").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("event_repo_list_reported_failed", err)
	}
	return toEventEntities(rows), nil
}

func (r *Repository) ListEventsReportedBy(ctx context.Context, accountID int64) ([]entities.Event, error) {
	var rows []eventModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN report ON report.event_id = event.id").
		Where("report.account_id = ?", accountID).
		Order("event.id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("event_repo_list_reported_by_failed", err, "account_id", accountID)
	}
	return toEventEntities(rows), nil
}

// ApplyVote runs the vote decision inside one transaction. The event row is
// locked first, so concurrent casts for the same event serialize and the
// unique (event_id, user_id) index never fires under normal operation.
func (r *Repository) ApplyVote(ctx context.Context, eventID int64, userID int64, isPlus bool) (entities.Event, bool, error) {
	var (
		updated entities.Event
		changed bool
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eventRow eventModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", eventID).
			First(&eventRow).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrEventNotFound
			}
			return err
		}

		var existing *entities.Vote
		var voteRow voteModel
		err := tx.Where("event_id = ? AND user_id = ?", eventID, userID).First(&voteRow).Error
		switch {
		case err == nil:
			vote := voteRow.toEntity()
			existing = &vote
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}

		decision := services.DecideVote(existing, isPlus)
		switch decision.Action {
		case services.VoteActionInsert:
			if err := tx.Create(&voteModel{EventID: eventID, UserID: userID, IsPlus: isPlus}).Error; err != nil {
				if isUniqueViolation(err) {
					// Lost a race outside the event-row lock; the other writer's
					// vote stands and this cast becomes a no-op.
					return nil
				}
				return err
			}
		case services.VoteActionFlip:
			if err := tx.Model(&voteModel{}).
				Where("id = ?", voteRow.ID).
				Update("is_plus", isPlus).Error; err != nil {
				return err
			}
		}

		event := eventRow.toEntity()
		services.ApplyVoteCounters(&event, decision)
		if decision.Changed() {
			if err := tx.Model(&eventModel{}).Where("id = ?", eventID).Updates(map[string]any{
				"plus_votes":  event.PlusVotes,
				"minus_votes": event.MinusVotes,
			}).Error; err != nil {
				return err
			}
		}
		updated = event
		changed = decision.Changed()
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEventNotFound) {
			return entities.Event{}, false, err
		}
		return entities.Event{}, false, r.logError("event_repo_apply_vote_failed", err,
			"event_id", eventID,
			"user_id", userID,
		)
	}
	if updated.ID == 0 {
		// Benign unique-violation path: re-read the current state.
		current, err := r.GetEvent(ctx, eventID)
		if err != nil {
			return entities.Event{}, false, err
		}
		return current, false, nil
	}
	return updated, changed, nil
}

func (r *Repository) ApplyReport(ctx context.Context, eventID int64, accountID int64, description string) (entities.Event, bool, error) {
	var (
		updated entities.Event
		changed bool
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eventRow eventModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", eventID).
			First(&eventRow).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrEventNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&reportModel{}).
			Where("event_id = ? AND account_id = ?", eventID, accountID).
			Count(&count).Error; err != nil {
			return err
		}

		insert, delta := services.DecideReport(count > 0)
		if insert {
			row := reportModel{EventID: eventID, AccountID: accountID, Description: description}
			if err := tx.Create(&row).Error; err != nil {
				if isUniqueViolation(err) {
					return nil
				}
				return err
			}
		}

		event := eventRow.toEntity()
		services.ApplyReportCounter(&event, delta)
		if insert {
			if err := tx.Model(&eventModel{}).Where("id = ?", eventID).
				Update("report_count", event.ReportCount).Error; err != nil {
				return err
			}
		}
		updated = event
		changed = insert
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEventNotFound) {
			return entities.Event{}, false, err
		}
		return entities.Event{}, false, r.logError("event_repo_apply_report_failed", err,
			"event_id", eventID,
			"account_id", accountID,
		)
	}
	if updated.ID == 0 {
		current, err := r.GetEvent(ctx, eventID)
		if err != nil {
			return entities.Event{}, false, err
		}
		return current, false, nil
	}
	return updated, changed, nil
}

func (r *Repository) WithdrawReport(ctx context.Context, eventID int64, accountID int64) (entities.Event, bool, error) {
	var (
		updated entities.Event
		changed bool
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eventRow eventModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", eventID).
			First(&eventRow).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrEventNotFound
			}
			return err
		}

		result := tx.Where("event_id = ? AND account_id = ?", eventID, accountID).Delete(&reportModel{})
		if result.Error != nil {
			return result.Error
		}

		remove, delta := services.DecideUnreport(result.RowsAffected > 0)
		event := eventRow.toEntity()
		services.ApplyReportCounter(&event, delta)
		if remove {
			if err := tx.Model(&eventModel{}).Where("id = ?", eventID).
				Update("report_count", event.ReportCount).Error; err != nil {
				return err
			}
		}
		updated = event
		changed = remove
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEventNotFound) {
			return entities.Event{}, false, err
		}
		return entities.Event{}, false, r.logError("event_repo_withdraw_report_failed", err,
			"event_id", eventID,
			"account_id", accountID,
		)
	}
	return updated, changed, nil
}

func (r *Repository) GetVote(ctx context.Context, eventID int64, userID int64) (entities.Vote, bool, error) {
	var row voteModel
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Vote{}, false, nil
		}
		return entities.Vote{}, false, r.logError("event_repo_get_vote_failed", err,
			"event_id", eventID,
			"user_id", userID,
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) CountVotes(ctx context.Context, eventID int64) (int, int, error) {
	var plus, minus int64
	if err := r.db.WithContext(ctx).Model(&voteModel{}).
		Where("event_id = ? AND is_plus = ?", eventID, true).
		Count(&plus).Error; err != nil {
		return 0, 0, r.logError("event_repo_count_votes_failed", err, "event_id", eventID)
	}
	if err := r.db.WithContext(ctx).Model(&voteModel{}).
		Where("event_id = ? AND is_plus = ?", eventID, false).
		Count(&minus).Error; err != nil {
		return 0, 0, r.logError("event_repo_count_votes_failed", err, "event_id", eventID)
	}
	return int(plus), int(minus), nil
}

func (r *Repository) CreateTicket(ctx context.Context, ticket entities.Ticket) (entities.Ticket, error) {
	row := ticketModel{
		EventID:     ticket.EventID,
		Name:        ticket.Name,
		Type:        ticket.Type,
		Price:       ticket.Price,
		Date:        ticket.Date,
		Description: ticket.Description,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Ticket{}, r.logError("event_repo_create_ticket_failed", err, "event_id", ticket.EventID)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListTicketsByEvent(ctx context.Context, eventID int64) ([]entities.Ticket, error) {
	var rows []ticketModel
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("event_repo_list_tickets_failed", err, "event_id", eventID)
	}
	items := make([]entities.Ticket, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) TicketPriceRange(ctx context.Context, eventID int64) (entities.PriceRange, int, error) {
	type bounds struct {
		Lowest  float64
		Highest float64
		Count   int
	}
	var row bounds
	if err := r.db.WithContext(ctx).Model(&ticketModel{}).
		Select("COALESCE(MIN(price), 0) AS lowest, COALESCE(MAX(price), 0) AS highest, COUNT(*) AS count").
		Where("event_id = ?", eventID).
		Scan(&row).Error; err != nil {
		return entities.PriceRange{}, 0, r.logError("event_repo_price_range_failed", err, "event_id", eventID)
	}
	return entities.PriceRange{Lowest: row.Lowest, Highest: row.Highest}, row.Count, nil
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope sharedevents.Envelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	row := outboxModel{
		ID:        envelope.EventID,
		EventType: envelope.EventType,
		Payload:   payload,
		Status:    outboxStatusPending,
		CreatedAt: envelope.OccurredAtUTC,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.logError("event_repo_append_outbox_failed", err, "outbox_id", envelope.EventID)
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, r.logError("event_repo_list_outbox_failed", err)
	}
	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:   row.ID,
			EventType:  row.EventType,
			Payload:    row.Payload,
			Status:     row.Status,
			RetryCount: row.RetryCount,
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	if err := r.db.WithContext(ctx).Model(&outboxModel{}).
		Where("id = ?", outboxID).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt,
		}).Error; err != nil {
		return r.logError("event_repo_mark_outbox_failed", err, "outbox_id", outboxID)
	}
	return nil
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "event-listing/event-service",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("event repository operation failed", fields...)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	distributorservice "eventy/contexts/event-listing/distributor-service"
	distributorpostgres "eventy/contexts/event-listing/distributor-service/adapters/postgres"
	eventservice "eventy/contexts/event-listing/event-service"
	eventpostgres "eventy/contexts/event-listing/event-service/adapters/postgres"
	eventworkers "eventy/contexts/event-listing/event-service/application/workers"
	eventports "eventy/contexts/event-listing/event-service/ports"
	accountservice "eventy/contexts/identity-access/account-service"
	accountpostgres "eventy/contexts/identity-access/account-service/adapters/postgres"
	accounterrors "eventy/contexts/identity-access/account-service/domain/errors"
	accountports "eventy/contexts/identity-access/account-service/ports"
	"eventy/internal/platform/config"
	"eventy/internal/platform/db"
	"eventy/internal/platform/httpserver"
	"eventy/internal/platform/messaging"
	sharedevents "eventy/internal/shared/events"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	bus          *messaging.Bus
	outboxRelay  eventworkers.OutboxRelay
	auditTopics  []string
	pollInterval time.Duration
	logger       *slog.Logger
}

// accountDirectory bridges the identity-access repository into the read-only
// projection the event context depends on.
type accountDirectory struct {
	accounts accountports.AccountRepository
}

func (d accountDirectory) GetAccount(ctx context.Context, accountID int64) (eventports.AccountProjection, bool, error) {
	account, err := d.accounts.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, accounterrors.ErrAccountNotFound) {
			return eventports.AccountProjection{}, false, nil
		}
		return eventports.AccountProjection{}, false, err
	}
	return eventports.AccountProjection{
		AccountID:   account.ID,
		Email:       account.Email,
		Name:        account.Name,
		AccountType: string(account.AccountType),
		Active:      account.ActiveAccount,
	}, true, nil
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := pg.Migrate(context.Background(), logger); err != nil {
		_ = pg.Close()
		return nil, err
	}

	accountRepo := accountpostgres.NewRepository(pg.DB, logger)
	accountModule := accountservice.NewModule(accountservice.Dependencies{
		Accounts:  accountRepo,
		JWTSecret: []byte(cfg.JWTSecret),
		TokenTTL:  cfg.TokenTTL,
		Clock:     eventpostgres.SystemClock{},
		Logger:    logger,
	})

	eventRepo := eventpostgres.NewRepository(pg.DB, logger)
	eventModule := eventservice.NewModule(eventservice.Dependencies{
		Events:   eventRepo,
		Votes:    eventRepo,
		Tickets:  eventRepo,
		Accounts: accountDirectory{accounts: accountRepo},
		Outbox:   eventRepo,
		Clock:    eventpostgres.SystemClock{},
		IDGen:    eventpostgres.UUIDGenerator{},
		Logger:   logger,
	})

	distributorRepo := distributorpostgres.NewRepository(pg.DB, logger)
	distributorModule := distributorservice.NewModule(distributorservice.Dependencies{
		Distributors: distributorRepo,
		Logger:       logger,
	})

	server := httpserver.New(
		eventModule,
		accountModule,
		distributorModule,
		accountModule.Tokens,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus := messaging.NewBus(logger)
	repo := eventpostgres.NewRepository(pg.DB, logger)

	var auditTopics []string
	if cfg.EnableVoteAuditConsumer {
		auditTopics = append(auditTopics, "event.vote_cast")
	}
	if cfg.EnableReportAuditConsumer {
		auditTopics = append(auditTopics, "event.reported", "event.unreported")
	}

	return &WorkerApp{
		postgres: pg,
		bus:      bus,
		outboxRelay: eventworkers.OutboxRelay{
			Outbox:    repo,
			Publisher: bus,
			Clock:     eventpostgres.SystemClock{},
			BatchSize: cfg.RelayBatchSize,
			Logger:    logger,
		},
		auditTopics:  auditTopics,
		pollInterval: cfg.RelayPollInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	for _, topic := range w.auditTopics {
		if err := w.bus.Subscribe(ctx, topic, "eventy-audit-cg", w.logAuditEvent); err != nil {
			return err
		}
	}

	if w.pollInterval <= 0 {
		w.pollInterval = 2 * time.Second
	}
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) logAuditEvent(_ context.Context, event sharedevents.Envelope) error {
	w.logger.Info("domain event observed",
		"event", "audit_event_observed",
		"module", "internal/app/bootstrap",
		"layer", "worker",
		"event_id", event.EventID,
		"event_type", event.EventType,
		"entity_type", event.EntityType,
		"entity_id", event.EntityID,
	)
	return nil
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}

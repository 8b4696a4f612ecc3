package db

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// migrationLockID serializes schema changes across processes sharing the
// database.
const migrationLockID = 740031

// Migrate applies the embedded SQL migrations in filename order. Applied
// versions are tracked in schema_migrations; the whole run holds a session
// advisory lock so concurrent process starts do not race.
func (p *Postgres) Migrate(ctx context.Context, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read embedded migrations: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	db := p.DB.WithContext(ctx)
	if err := db.Exec("SELECT pg_advisory_lock(?)", migrationLockID).Error; err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}
	defer db.Exec("SELECT pg_advisory_unlock(?)", migrationLockID)

	if err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL
	)`).Error; err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	for _, name := range names {
		var count int64
		if err := db.Table("schema_migrations").Where("version = ?", name).Count(&count).Error; err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if count > 0 {
			continue
		}

		script, err := migrationFiles.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(script)).Error; err != nil {
				return err
			}
			return tx.Exec(
				"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)",
				name, time.Now().UTC(),
			).Error
		}); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}

		logger.Info("migration applied",
			"event", "db_migration_applied",
			"module", "internal/platform/db",
			"layer", "platform",
			"version", name,
		)
	}
	return nil
}

package config

import (
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" env-default:"eventy"`
	HTTPPort    string `env:"HTTP_PORT" env-default:"8080"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	JWTSecret string        `env:"JWT_SECRET" env-default:"dev-only-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" env-default:"24h"`

	RelayPollInterval time.Duration `env:"RELAY_POLL_INTERVAL" env-default:"2s"`
	RelayBatchSize    int           `env:"RELAY_BATCH_SIZE" env-default:"100"`

	EnableVoteAuditConsumer   bool `env:"ENABLE_VOTE_AUDIT_CONSUMER" env-default:"true"`
	EnableReportAuditConsumer bool `env:"ENABLE_REPORT_AUDIT_CONSUMER" env-default:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.ServiceName = strings.TrimSpace(cfg.ServiceName)
	cfg.HTTPPort = strings.TrimSpace(cfg.HTTPPort)
	return cfg, nil
}

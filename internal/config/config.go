package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"player-data-api/internal/model"

	"github.com/caarlos0/env/v10"
)

// secretLength is the number of key and iv bytes the AES-128 cipher consumes.
const secretLength = 16

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Crypto   CryptoConfig
	Audit    AuditConfig
	Database DatabaseConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"5000"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"true"`
}

// CryptoConfig holds the transport cipher secrets. Key and IV come from the
// environment directly, or from files named by the *_FILE variables.
type CryptoConfig struct {
	Key     string `env:"CRYPTO_KEY"`
	KeyFile string `env:"CRYPTO_KEY_FILE,file"`
	IV      string `env:"CRYPTO_IV"`
	IVFile  string `env:"CRYPTO_IV_FILE,file"`
}
type AuditConfig struct {
	Enabled       bool          `env:"AUDIT_ENABLED" envDefault:"false"`
	BufferSize    int           `env:"AUDIT_BUFFER_SIZE" envDefault:"1024"`
	BatchSize     int           `env:"AUDIT_BATCH_SIZE" envDefault:"200"`
	FlushInterval time.Duration `env:"AUDIT_FLUSH_INTERVAL" envDefault:"5s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"player_data"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"2"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Crypto.Key == "" {
		cfg.Crypto.Key = strings.TrimRight(cfg.Crypto.KeyFile, "\r\n")
	}
	if cfg.Crypto.IV == "" {
		cfg.Crypto.IV = strings.TrimRight(cfg.Crypto.IVFile, "\r\n")
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Crypto.Key) < secretLength {
		return fmt.Errorf("%w: CRYPTO_KEY must be at least %d bytes, got %d", model.ErrInsufficientKeyMaterial, secretLength, len(c.Crypto.Key))
	}
	if len(c.Crypto.IV) < secretLength {
		return fmt.Errorf("%w: CRYPTO_IV must be at least %d bytes, got %d", model.ErrInsufficientKeyMaterial, secretLength, len(c.Crypto.IV))
	}

	if c.Audit.Enabled {
		if c.Audit.BufferSize <= 0 || c.Audit.BatchSize <= 0 {
			return errors.New("AUDIT_BUFFER_SIZE and AUDIT_BATCH_SIZE must be positive")
		}
		if c.Audit.FlushInterval <= 0 {
			return errors.New("AUDIT_FLUSH_INTERVAL must be positive")
		}
	}
	return nil
}

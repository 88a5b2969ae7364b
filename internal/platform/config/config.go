// Package config collects process configuration from environment variables
// so main stays lean.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures process-level configuration.
type Server struct {
	Addr        string        `env:"TRAILTAIL_ADDR" envDefault:":8080"`
	Environment string        `env:"TRAILTAIL_ENV" envDefault:"development"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string        `env:"LOG_FORMAT" envDefault:"text"`
	CORSOrigins []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	Redis       RedisConfig   `envPrefix:"REDIS_"`
	Audit       AuditConfig   `envPrefix:"AUDIT_"`
	Shutdown    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// RedisConfig configures the optional Redis backing for mutable stores.
// An empty URL selects the in-memory implementations.
type RedisConfig struct {
	URL          string        `env:"URL"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"3s"`
}

// AuditConfig sizes the in-process audit pipeline.
type AuditConfig struct {
	BufferSize int `env:"BUFFER_SIZE" envDefault:"256"`
}

// FromEnv builds a Server config from environment variables.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server ServerConfig
	JWT    JWTConfig
	Seed   SeedConfig
}

type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET" envDefault:"your-secret-key-keep-it-secret"`
	Expiration time.Duration `env:"JWT_EXPIRATION" envDefault:"30m"`
}

// SeedConfig controls the records installed at boot: the administrator
// account and, optionally, a small demo catalog.
type SeedConfig struct {
	AdminUsername string `env:"SEED_ADMIN_USERNAME" envDefault:"admin"`
	AdminEmail    string `env:"SEED_ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD" envDefault:"admin123"`
	Catalog       bool   `env:"SEED_CATALOG" envDefault:"true"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

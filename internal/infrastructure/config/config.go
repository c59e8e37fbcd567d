package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=3002"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET"`

	Auth AuthConfig
	DB   DBConfig
}

// AuthConfig holds the single static credential pair accepted by login.
type AuthConfig struct {
	User     string `env:"AUTH_USER"`
	Password string `env:"AUTH_PASSWORD"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME,     default=alumnos"`
	SSLMode  string `env:"DB_SSLMODE,  default=disable"`
}

// IsProduction reports whether internal error detail must be withheld from
// API responses.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

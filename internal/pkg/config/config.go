package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// DataDir is where the resource JSON files live.
	DataDir string `env:"DATA_DIR, default=./data"`
	// RelaxedWrites tolerates failed write-backs (read-only filesystems):
	// the error is logged but the request still succeeds.
	RelaxedWrites bool `env:"STORE_RELAXED_WRITES, default=true"`
	// AdminPassword seeds the default admin account when users.json does
	// not exist yet.
	AdminPassword string `env:"ADMIN_PASSWORD, default=changeme"`

	Redis RedisConfig
}

type RedisConfig struct {
	// Enabled wires the Redis-backed login rate limiter. Off by default so
	// the service runs standalone.
	Enabled bool   `env:"REDIS_ENABLED, default=false"`
	Addr    string `env:"REDIS_ADDR, default=localhost:6379"`
	DB      int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

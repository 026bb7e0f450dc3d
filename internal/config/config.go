package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexedwards/argon2id"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env      string `env:"ENV" env-required:"true"`
	HTTP     HTTPConfig
	Storage  StorageConfig
	Postgres PostgresConfig
	Argon2   Argon2Config
}

type HTTPConfig struct {
	Host              string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port              string        `env:"HTTP_PORT" env-default:"8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" env-default:"postgres"`
}

type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" env-default:"localhost"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DATABASE"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
	Migrate        bool          `env:"POSTGRES_MIGRATE" env-default:"true"`
}

type Argon2Config struct {
	Memory      uint32 `env:"ARGON2_MEMORY" env-default:"65536"`
	Iterations  uint32 `env:"ARGON2_ITERATIONS" env-default:"1"`
	Parallelism uint8  `env:"ARGON2_PARALLELISM" env-default:"2"`
	SaltLength  uint32 `env:"ARGON2_SALT_LENGTH" env-default:"16"`
	KeyLength   uint32 `env:"ARGON2_KEY_LENGTH" env-default:"32"`
}

func (c Argon2Config) Params() *argon2id.Params {
	return &argon2id.Params{
		Memory:      c.Memory,
		Iterations:  c.Iterations,
		Parallelism: c.Parallelism,
		SaltLength:  c.SaltLength,
		KeyLength:   c.KeyLength,
	}
}

// Validate checks the settings cleanenv cannot express with tags.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %q", c.Env)
	}

	switch c.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.Postgres.Username == "" || c.Postgres.Database == "" {
			return errors.New("POSTGRES_USERNAME and POSTGRES_DATABASE are required for the postgres storage driver")
		}
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}

	if c.Argon2.Iterations == 0 || c.Argon2.Parallelism == 0 || c.Argon2.SaltLength == 0 || c.Argon2.KeyLength == 0 {
		return errors.New("argon2 iterations, parallelism, salt length and key length must be positive")
	}
	return nil
}

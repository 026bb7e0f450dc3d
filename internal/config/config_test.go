package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvReader_Read(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		t.Setenv("ENV", EnvLocal)
		t.Setenv("STORAGE_DRIVER", StorageDriverMemory)

		cfg, err := NewEnvReader().Read()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTP.Port)
		assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
		assert.Equal(t, 5432, cfg.Postgres.Port)
		assert.True(t, cfg.Postgres.Migrate)
		assert.Equal(t, uint32(65536), cfg.Argon2.Params().Memory)
	})

	t.Run("Should read postgres settings", func(t *testing.T) {
		t.Setenv("ENV", EnvProd)
		t.Setenv("STORAGE_DRIVER", StorageDriverPostgres)
		t.Setenv("POSTGRES_USERNAME", "tasks")
		t.Setenv("POSTGRES_DATABASE", "tasks")
		t.Setenv("POSTGRES_PORT", "6543")
		t.Setenv("POSTGRES_MIGRATE", "false")

		cfg, err := NewEnvReader().Read()
		require.NoError(t, err)
		assert.Equal(t, 6543, cfg.Postgres.Port)
		assert.False(t, cfg.Postgres.Migrate)
	})

	t.Run("Should require ENV", func(t *testing.T) {
		t.Setenv("ENV", "")
		t.Setenv("STORAGE_DRIVER", StorageDriverMemory)

		_, err := NewEnvReader().Read()
		assert.Error(t, err)
	})

	t.Run("Should require postgres credentials for the postgres driver", func(t *testing.T) {
		t.Setenv("ENV", EnvDev)
		t.Setenv("STORAGE_DRIVER", StorageDriverPostgres)
		t.Setenv("POSTGRES_USERNAME", "")
		t.Setenv("POSTGRES_DATABASE", "")

		_, err := NewEnvReader().Read()
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Env:     EnvDev,
			Storage: StorageConfig{Driver: StorageDriverMemory},
			Argon2:  Argon2Config{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32},
		}
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Env = "staging"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Storage.Driver = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Argon2.Parallelism = 0
	assert.Error(t, cfg.Validate())
}

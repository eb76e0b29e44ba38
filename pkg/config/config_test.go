package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "SERVER_SHUTDOWN_TIMEOUT", "CORS_ALLOWED_ORIGINS", "STORAGE_DRIVER",
		"DATABASE_URL", "DB_MIGRATE", "REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB",
		"REDIS_KEY_PREFIX", "LOG_LEVEL", "LOG_ENCODING", "LOG_OUTPUTS",
	} {
		unsetForTest(t, key)
	}

	cfg := New()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Server.AllowedOrigins)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.True(t, cfg.Postgres.Migrate)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "branch", cfg.Redis.KeyPrefix)
	assert.Equal(t, []string{"stdout"}, cfg.Log.Outputs)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://example.com ,")
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("DB_MIGRATE", "false")
	t.Setenv("REDIS_DB", "4")
	t.Setenv("LOG_OUTPUTS", "stdout,./logs/app.log")

	cfg := New()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "https://example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, StorageDriverRedis, cfg.Storage.Driver)
	assert.False(t, cfg.Postgres.Migrate)
	assert.Equal(t, 4, cfg.Redis.DB)
	assert.Equal(t, []string{"stdout", "./logs/app.log"}, cfg.Log.Outputs)
}

func TestBadValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "four")
	t.Setenv("DB_MIGRATE", "maybe")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "soon")

	cfg := New()

	assert.Equal(t, 0, cfg.Redis.DB)
	assert.True(t, cfg.Postgres.Migrate)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

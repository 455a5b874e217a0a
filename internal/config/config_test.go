package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearEnv unsets every variable Load reads so the test sees the real
// defaults regardless of the host environment. t.Setenv registers the
// restore; Unsetenv removes the value for the test's duration.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HTTP_ADDR", "DB_ENABLED", "DB_HOST", "DB_PORT", "DB_USER",
		"DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_MAX_CONNS", "DB_MAX_IDLE",
		"REDIS_ADDR", "REDIS_PASSWORD", "LOG_LEVEL", "LOG_FORMAT",
		"SESSION_TTL_HOURS", "SEED_ADMIN", "ADMIN_PASSWORD",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.True(t, cfg.DBEnabled)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "facility", cfg.Database.Database)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 12, cfg.Session.TTLHours)
	assert.True(t, cfg.SeedAdmin)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_ENABLED", "false")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("SESSION_TTL_HOURS", "1")
	t.Setenv("SEED_ADMIN", "false")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.False(t, cfg.DBEnabled)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 1, cfg.Session.TTLHours)
	assert.False(t, cfg.SeedAdmin)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg := Load()
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestGetDSN(t *testing.T) {
	c := &DatabaseConfig{
		Host: "db", Port: 5432, User: "app", Password: "secret",
		Database: "facility", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=facility sslmode=disable",
		c.GetDSN())
}

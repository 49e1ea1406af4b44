package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("FANTRAX_PAYLOAD_DIR", "/tmp/payloads")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/payloads", cfg.Fantrax.PayloadDir)
	assert.Equal(t, "America/Chicago", cfg.Fantrax.Timezone)
	assert.Zero(t, cfg.Fantrax.WatchInterval)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("FANTRAX_PAYLOAD_DIR", "data")
	t.Setenv("FANTRAX_TIMEZONE", "UTC")
	t.Setenv("FANTRAX_WATCH_INTERVAL", "5m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.Fantrax.WatchInterval)
	loc, err := cfg.Fantrax.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestNewRequiresPayloadDir(t *testing.T) {
	t.Setenv("FANTRAX_PAYLOAD_DIR", "")
	require.NoError(t, os.Unsetenv("FANTRAX_PAYLOAD_DIR"))

	_, err := New()
	assert.Error(t, err)
}

func TestInvalidTimezoneAndLevel(t *testing.T) {
	_, err := Fantrax{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)

	_, err = Log{Level: "loud"}.SlogLevel()
	assert.Error(t, err)
}

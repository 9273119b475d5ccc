package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"ROSTER_ADDR", "LOG_LEVEL", "LOG_FORMAT", "SEED_COUNTRIES", "REQUEST_TIMEOUT", "AUDIT_KAFKA_BROKERS", "AUDIT_KAFKA_TOPIC"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.SeedCountries)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Empty(t, cfg.Audit.KafkaBrokers)
	assert.Equal(t, DefaultAuditTopic, cfg.Audit.KafkaTopic)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("ROSTER_ADDR", ":9090")
	t.Setenv("SEED_COUNTRIES", "false")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("AUDIT_KAFKA_BROKERS", " broker-1:9092, broker-2:9092 ,broker-1:9092,")

	cfg := FromEnv()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.False(t, cfg.SeedCountries)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Audit.KafkaBrokers)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))

	cfg := Load(path)
	assert.Equal(t, "debug", cfg.LogLevel)
}

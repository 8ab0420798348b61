package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, "PORT")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.False(t, cfg.Primary.Seed)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, "10M", cfg.Server.BodyLimit)
	assert.Equal(t, 1, cfg.Pagination.DefaultPage)
	assert.Equal(t, 5, cfg.Pagination.DefaultLimit)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	unsetEnv(t, "PORT")
	t.Setenv("CLASSIFIEDS_PRIMARY__ENV", "production")
	t.Setenv("CLASSIFIEDS_PRIMARY__SEED", "true")
	t.Setenv("CLASSIFIEDS_SERVER__PORT", "9090")
	t.Setenv("CLASSIFIEDS_PAGINATION__DEFAULT_LIMIT", "20")
	t.Setenv("CLASSIFIEDS_OBSERVABILITY__LOGGING__FORMAT", "console")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.True(t, cfg.Primary.Seed)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 20, cfg.Pagination.DefaultLimit)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.Equal(t, "console", cfg.Observability.Logging.Format)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_PortWins(t *testing.T) {
	t.Setenv("CLASSIFIEDS_SERVER__PORT", "9090")
	t.Setenv("PORT", "8081")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric port", key: "CLASSIFIEDS_SERVER__PORT", value: "http"},
		{name: "zero default limit", key: "CLASSIFIEDS_PAGINATION__DEFAULT_LIMIT", value: "0"},
		{name: "unknown log level", key: "CLASSIFIEDS_OBSERVABILITY__LOGGING__LEVEL", value: "trace"},
		{name: "unknown log format", key: "CLASSIFIEDS_OBSERVABILITY__LOGGING__FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, "PORT")
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.read_timeout", envKey("CLASSIFIEDS_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "observability.new_relic.license_key", envKey("CLASSIFIEDS_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}

func TestPortKey(t *testing.T) {
	assert.Equal(t, "server.port", portKey("PORT"))
	assert.Empty(t, portKey("PORTAL"))
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()

	cfg.Logging.Level = ""
	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

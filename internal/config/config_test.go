package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultTenant, cfg.Tenant)
	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
	assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
	assert.True(t, cfg.NotificationsEnabled)
	assert.Contains(t, cfg.DatabasePath, "chronosdeck")
	assert.False(t, cfg.InMemory())
}

func TestLoadFromBlob(t *testing.T) {
	t.Setenv("CHRONOSDECK_CONFIG", `{
		"tenant": "my-school",
		"geminiApiKey": "blob-key",
		"databasePath": ":memory:"
	}`)

	cfg := Load()
	assert.Equal(t, "my-school", cfg.Tenant)
	assert.Equal(t, "blob-key", cfg.GeminiAPIKey)
	assert.True(t, cfg.InMemory())
	// Fields absent from the blob keep their defaults.
	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
}

func TestLoadMalformedBlobIgnored(t *testing.T) {
	t.Setenv("CHRONOSDECK_CONFIG", `{not json`)

	cfg := Load()
	assert.Equal(t, DefaultTenant, cfg.Tenant)
}

func TestEnvOverridesBlob(t *testing.T) {
	t.Setenv("CHRONOSDECK_CONFIG", `{"tenant": "from-blob", "geminiApiKey": "blob-key"}`)
	t.Setenv("CHRONOSDECK_TENANT", "from-env")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := Load()
	assert.Equal(t, "from-env", cfg.Tenant)
	assert.Equal(t, "env-key", cfg.GeminiAPIKey)
}

func TestNotificationsToggle(t *testing.T) {
	for _, v := range []string{"0", "false", "off"} {
		t.Setenv("CHRONOSDECK_NOTIFICATIONS", v)
		cfg := Load()
		assert.False(t, cfg.NotificationsEnabled, "value %q", v)
	}

	t.Setenv("CHRONOSDECK_NOTIFICATIONS", "true")
	assert.True(t, Load().NotificationsEnabled)
}

func TestHTTPTimeoutOverride(t *testing.T) {
	t.Setenv("CHRONOSDECK_HTTP_TIMEOUT", "5s")
	cfg := Load()
	require.Equal(t, 5*time.Second, cfg.HTTPTimeout)

	// Malformed duration keeps the default.
	t.Setenv("CHRONOSDECK_HTTP_TIMEOUT", "soon")
	assert.Equal(t, DefaultHTTPTimeout, Load().HTTPTimeout)
}

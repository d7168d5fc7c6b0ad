// Package config provides runtime configuration for chronosdeck.
//
// Configuration is sourced from the CHRONOSDECK_CONFIG environment variable,
// a JSON blob carrying store parameters, the tenant identifier, generative
// endpoint settings, and an optional bootstrap credential. Every field has a
// hardcoded fallback, and individual environment variables override the blob.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// AppName is the application name used for data directories.
const AppName = "chronosdeck"

// Defaults.
const (
	DefaultTenant      = "default-app-id"
	DefaultGeminiModel = "gemini-2.5-flash-preview-09-2025"
	DefaultHTTPTimeout = 30 * time.Second
)

// Config holds all runtime configuration.
type Config struct {
	// Tenant is the top-level namespace isolating this deployment's data.
	Tenant string `json:"tenant"`

	// DatabasePath is the document store directory. ":memory:" selects the
	// in-memory store.
	DatabasePath string `json:"databasePath"`

	// GeminiAPIKey is the static credential for the generative endpoint.
	GeminiAPIKey string `json:"geminiApiKey"`

	// GeminiModel is the model identifier used for all generation requests.
	GeminiModel string `json:"geminiModel"`

	// BootstrapToken optionally signs the session in on first run. When
	// empty, the session bootstraps anonymously.
	BootstrapToken string `json:"bootstrapToken"`

	// NotifyWebhookURL optionally mirrors local notifications to a webhook.
	NotifyWebhookURL string `json:"notifyWebhookUrl"`

	// NotificationsEnabled gates the notification scheduler. Disabled means
	// scheduling silently no-ops.
	NotificationsEnabled bool `json:"notificationsEnabled"`

	// HTTPTimeout bounds calls to the generative endpoint and webhooks.
	HTTPTimeout time.Duration `json:"-"`
}

// DefaultDatabasePath returns the default store path following the XDG spec.
func DefaultDatabasePath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// Default returns the hardcoded fallback configuration.
func Default() *Config {
	return &Config{
		Tenant:               DefaultTenant,
		DatabasePath:         DefaultDatabasePath(),
		GeminiModel:          DefaultGeminiModel,
		NotificationsEnabled: true,
		HTTPTimeout:          DefaultHTTPTimeout,
	}
}

// Load builds the configuration from the environment: defaults, then the
// CHRONOSDECK_CONFIG JSON blob, then individual variable overrides. A
// malformed blob is ignored in favor of the fallbacks.
func Load() *Config {
	cfg := Default()

	if blob := os.Getenv("CHRONOSDECK_CONFIG"); blob != "" {
		var parsed Config
		if err := json.Unmarshal([]byte(blob), &parsed); err == nil {
			cfg.apply(&parsed)
		}
	}

	cfg.loadFromEnv()
	return cfg
}

// apply copies non-zero fields from src.
func (c *Config) apply(src *Config) {
	if src.Tenant != "" {
		c.Tenant = src.Tenant
	}
	if src.DatabasePath != "" {
		c.DatabasePath = src.DatabasePath
	}
	if src.GeminiAPIKey != "" {
		c.GeminiAPIKey = src.GeminiAPIKey
	}
	if src.GeminiModel != "" {
		c.GeminiModel = src.GeminiModel
	}
	if src.BootstrapToken != "" {
		c.BootstrapToken = src.BootstrapToken
	}
	if src.NotifyWebhookURL != "" {
		c.NotifyWebhookURL = src.NotifyWebhookURL
	}
}

// loadFromEnv loads individual overrides from environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("CHRONOSDECK_TENANT"); v != "" {
		c.Tenant = v
	}
	if v := os.Getenv("CHRONOSDECK_DATABASE"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("CHRONOSDECK_GEMINI_MODEL"); v != "" {
		c.GeminiModel = v
	}
	if v := os.Getenv("CHRONOSDECK_BOOTSTRAP_TOKEN"); v != "" {
		c.BootstrapToken = v
	}
	if v := os.Getenv("CHRONOSDECK_NOTIFY_WEBHOOK"); v != "" {
		c.NotifyWebhookURL = v
	}
	if v := os.Getenv("CHRONOSDECK_NOTIFICATIONS"); v != "" {
		c.NotificationsEnabled = v != "0" && v != "false" && v != "off"
	}
	if v := os.Getenv("CHRONOSDECK_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTPTimeout = d
		}
	}
}

// InMemory returns true if the store should run in memory.
func (c *Config) InMemory() bool {
	return c.DatabasePath == ":memory:"
}

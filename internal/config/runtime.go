// Package config provides centralized configuration for dockprompt runtime values.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDatabase            = "DOCKPROMPT_DATABASE"
	EnvFlagsFile           = "DOCKPROMPT_FLAGS_FILE"
	EnvDockPromptAvailable = "DOCKPROMPT_DOCK_PROMPT_AVAILABLE"
	EnvPixelEndpoint       = "DOCKPROMPT_PIXEL_ENDPOINT"
	EnvNotifyWebhook       = "DOCKPROMPT_NOTIFY_WEBHOOK"
	EnvHTTPTimeout         = "DOCKPROMPT_HTTP_TIMEOUT"
	EnvHTTPMaxRetries      = "DOCKPROMPT_HTTP_MAX_RETRIES"
	EnvWatchSchedule       = "DOCKPROMPT_WATCH_SCHEDULE"
	EnvSleepThreshold      = "DOCKPROMPT_SLEEP_THRESHOLD"
	EnvBrowserDesktopFile  = "DOCKPROMPT_BROWSER_DESKTOP_FILE"
)

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	Prompt    PromptConfig
	Telemetry TelemetryConfig
	Notify    NotifyConfig
	HTTP      HTTPConfig
	Watch     WatchConfig
	System    SystemConfig
}

// PromptConfig holds prompt-engine configuration that is not a feature flag.
type PromptConfig struct {
	// DockPromptAvailable is false on distribution channels that cannot
	// offer the dock prompt; the dock is then treated as already satisfied.
	// Default: true
	DockPromptAvailable bool

	// FlagsFile is an optional YAML file overriding the stored settings.
	// Default: $XDG_CONFIG_HOME/dockprompt/flags.yaml
	FlagsFile string
}

// TelemetryConfig holds pixel delivery configuration.
type TelemetryConfig struct {
	// PixelEndpoint receives a JSON POST per fired pixel. Empty disables
	// remote delivery; pixels are always stored locally.
	PixelEndpoint string
}

// NotifyConfig holds notification presenter configuration.
type NotifyConfig struct {
	// WebhookURL receives inactive-user feedback notifications.
	WebhookURL string
}

// HTTPConfig holds HTTP client configuration.
type HTTPConfig struct {
	// Timeout is the per-request timeout.
	// Default: 10s
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts.
	// Default: 2
	MaxRetries int

	// RetryDelays are the delays before each attempt.
	// Default: [0s, 2s, 10s]
	RetryDelays []time.Duration
}

// WatchConfig holds configuration for the periodic prompt check.
type WatchConfig struct {
	// Schedule is a cron spec (seconds field included).
	// Default: "0 0 * * * *" (hourly)
	Schedule string

	// SleepThreshold is the gap between ticks that indicates the machine
	// was asleep; the first tick after waking only records activity.
	// Default: 3h
	SleepThreshold time.Duration
}

// SystemConfig holds collaborator configuration.
type SystemConfig struct {
	// BrowserDesktopFile is the desktop entry passed to xdg-settings.
	// Default: "dockprompt-browser.desktop"
	BrowserDesktopFile string
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Prompt: PromptConfig{
			DockPromptAvailable: true,
			FlagsFile:           filepath.Join(xdg.ConfigHome, "dockprompt", "flags.yaml"),
		},
		HTTP: HTTPConfig{
			Timeout:    10 * time.Second,
			MaxRetries: 2,
			RetryDelays: []time.Duration{
				0,
				2 * time.Second,
				10 * time.Second,
			},
		},
		Watch: WatchConfig{
			Schedule:       "0 0 * * * *",
			SleepThreshold: 3 * time.Hour,
		},
		System: SystemConfig{
			BrowserDesktopFile: "dockprompt-browser.desktop",
		},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding variables already set, then reapplies the environment
// to Global. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return err
		}
	}
	Global.ReloadFromEnv()
	return nil
}

func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv(EnvFlagsFile); v != "" {
		c.Prompt.FlagsFile = v
	}
	if v := os.Getenv(EnvDockPromptAvailable); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Prompt.DockPromptAvailable = b
		}
	}

	if v := os.Getenv(EnvPixelEndpoint); v != "" {
		c.Telemetry.PixelEndpoint = v
	}
	if v := os.Getenv(EnvNotifyWebhook); v != "" {
		c.Notify.WebhookURL = v
	}

	if v := os.Getenv(EnvHTTPTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.HTTP.Timeout = d
		}
	}
	if v := os.Getenv(EnvHTTPMaxRetries); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.HTTP.MaxRetries = n
		}
	}

	if v := os.Getenv(EnvWatchSchedule); v != "" {
		c.Watch.Schedule = v
	}
	if v := os.Getenv(EnvSleepThreshold); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Watch.SleepThreshold = d
		}
	}

	if v := os.Getenv(EnvBrowserDesktopFile); v != "" {
		c.System.BrowserDesktopFile = v
	}
}

// ReloadFromEnv reloads configuration from environment variables.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults.
func (c *RuntimeConfig) Reset() {
	*c = *DefaultRuntimeConfig()
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	// Test prompt defaults
	if !cfg.Prompt.DockPromptAvailable {
		t.Error("expected Prompt.DockPromptAvailable = true")
	}
	if filepath.Base(cfg.Prompt.FlagsFile) != "flags.yaml" {
		t.Errorf("expected Prompt.FlagsFile to end in flags.yaml, got %q", cfg.Prompt.FlagsFile)
	}

	// Test HTTP defaults
	if cfg.HTTP.Timeout != 10*time.Second {
		t.Errorf("expected HTTP.Timeout = 10s, got %v", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.MaxRetries != 2 {
		t.Errorf("expected HTTP.MaxRetries = 2, got %d", cfg.HTTP.MaxRetries)
	}
	if len(cfg.HTTP.RetryDelays) != 3 {
		t.Errorf("expected HTTP.RetryDelays length = 3, got %d", len(cfg.HTTP.RetryDelays))
	}

	// Test watch defaults
	if cfg.Watch.Schedule != "0 0 * * * *" {
		t.Errorf("expected Watch.Schedule = hourly, got %q", cfg.Watch.Schedule)
	}
	if cfg.Watch.SleepThreshold != 3*time.Hour {
		t.Errorf("expected Watch.SleepThreshold = 3h, got %v", cfg.Watch.SleepThreshold)
	}

	// Test remote endpoints are off by default
	if cfg.Telemetry.PixelEndpoint != "" || cfg.Notify.WebhookURL != "" {
		t.Error("expected no remote endpoints by default")
	}

	if cfg.System.BrowserDesktopFile != "dockprompt-browser.desktop" {
		t.Errorf("unexpected System.BrowserDesktopFile %q", cfg.System.BrowserDesktopFile)
	}
}

func TestGlobalConfigExists(t *testing.T) {
	if Global == nil {
		t.Fatal("Global config should not be nil")
	}
}

func TestConfigReset(t *testing.T) {
	originalCfg := *Global
	defer func() {
		*Global = originalCfg
	}()

	Global.HTTP.Timeout = 1 * time.Second
	Global.Reset()

	if Global.HTTP.Timeout != 10*time.Second {
		t.Errorf("expected HTTP.Timeout = 10s after reset, got %v", Global.HTTP.Timeout)
	}
}

func TestConfigLoadFromEnv(t *testing.T) {
	t.Setenv(EnvHTTPTimeout, "60s")
	t.Setenv(EnvHTTPMaxRetries, "5")
	t.Setenv(EnvDockPromptAvailable, "false")
	t.Setenv(EnvWatchSchedule, "0 */15 * * * *")
	t.Setenv(EnvSleepThreshold, "90m")
	t.Setenv(EnvNotifyWebhook, "https://example.com/hook")
	t.Setenv(EnvPixelEndpoint, "https://example.com/pixel")
	t.Setenv(EnvFlagsFile, "/tmp/flags.yaml")
	t.Setenv(EnvBrowserDesktopFile, "other.desktop")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	if cfg.HTTP.Timeout != 60*time.Second {
		t.Errorf("expected HTTP.Timeout = 60s from env, got %v", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.MaxRetries != 5 {
		t.Errorf("expected HTTP.MaxRetries = 5 from env, got %d", cfg.HTTP.MaxRetries)
	}
	if cfg.Prompt.DockPromptAvailable {
		t.Error("expected Prompt.DockPromptAvailable = false from env")
	}
	if cfg.Watch.Schedule != "0 */15 * * * *" {
		t.Errorf("unexpected Watch.Schedule %q", cfg.Watch.Schedule)
	}
	if cfg.Watch.SleepThreshold != 90*time.Minute {
		t.Errorf("expected Watch.SleepThreshold = 90m, got %v", cfg.Watch.SleepThreshold)
	}
	if cfg.Notify.WebhookURL != "https://example.com/hook" {
		t.Errorf("unexpected Notify.WebhookURL %q", cfg.Notify.WebhookURL)
	}
	if cfg.Telemetry.PixelEndpoint != "https://example.com/pixel" {
		t.Errorf("unexpected Telemetry.PixelEndpoint %q", cfg.Telemetry.PixelEndpoint)
	}
	if cfg.Prompt.FlagsFile != "/tmp/flags.yaml" {
		t.Errorf("unexpected Prompt.FlagsFile %q", cfg.Prompt.FlagsFile)
	}
	if cfg.System.BrowserDesktopFile != "other.desktop" {
		t.Errorf("unexpected System.BrowserDesktopFile %q", cfg.System.BrowserDesktopFile)
	}
}

func TestConfigLoadFromEnvInvalidValues(t *testing.T) {
	t.Setenv(EnvHTTPTimeout, "invalid")
	t.Setenv(EnvHTTPMaxRetries, "not-a-number")
	t.Setenv(EnvDockPromptAvailable, "sometimes")
	t.Setenv(EnvSleepThreshold, "-1h")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	// Invalid values keep the defaults
	if cfg.HTTP.Timeout != 10*time.Second {
		t.Errorf("expected HTTP.Timeout = 10s (default), got %v", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.MaxRetries != 2 {
		t.Errorf("expected HTTP.MaxRetries = 2 (default), got %d", cfg.HTTP.MaxRetries)
	}
	if !cfg.Prompt.DockPromptAvailable {
		t.Error("expected Prompt.DockPromptAvailable = true (default)")
	}
	if cfg.Watch.SleepThreshold != 3*time.Hour {
		t.Errorf("expected Watch.SleepThreshold = 3h (default), got %v", cfg.Watch.SleepThreshold)
	}
}

func TestHTTPRetryDelayValues(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	expected := []time.Duration{
		0,
		2 * time.Second,
		10 * time.Second,
	}

	for i, expectedDuration := range expected {
		if cfg.HTTP.RetryDelays[i] != expectedDuration {
			t.Errorf("RetryDelays[%d]: expected %v, got %v",
				i, expectedDuration, cfg.HTTP.RetryDelays[i])
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	originalCfg := *Global
	defer func() {
		*Global = originalCfg
	}()

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte(EnvWatchSchedule+"=\"0 30 * * * *\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv sets the variable for the process; clear it afterwards.
	t.Setenv(EnvWatchSchedule, "")
	os.Unsetenv(EnvWatchSchedule)

	if err := LoadDotEnv(envFile); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if Global.Watch.Schedule != "0 30 * * * *" {
		t.Errorf("expected schedule from .env, got %q", Global.Watch.Schedule)
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing .env should not be an error, got %v", err)
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envConfigFile, "")
	for key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.WebhookPath != defaultWebhookPath {
		t.Fatalf("expected default webhook path %s, got %s", defaultWebhookPath, cfg.WebhookPath)
	}
	if cfg.Stats.Provider != defaultStatsProvider {
		t.Fatalf("expected default provider %s, got %s", defaultStatsProvider, cfg.Stats.Provider)
	}
	if cfg.Stats.BaseURL != defaultStatsBaseURL {
		t.Fatalf("expected default stats base url %s, got %s", defaultStatsBaseURL, cfg.Stats.BaseURL)
	}
	if cfg.Stats.Timeout != defaultStatsTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultStatsTimeout, cfg.Stats.Timeout)
	}
	if cfg.Stats.MaxAttempts != 1 {
		t.Fatalf("expected a single attempt by default, got %d", cfg.Stats.MaxAttempts)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.Line.ChannelSecret != "" || cfg.Line.ChannelAccessToken != "" {
		t.Fatalf("expected empty credentials by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(envPort, "5000")
	t.Setenv(envWebhookPath, "/hooks/line")
	t.Setenv(envLineToken, "token")
	t.Setenv(envLineSecret, "secret")
	t.Setenv(envStatsProvider, "fixture")
	t.Setenv(envStatsBaseURL, "http://example.com/stats")
	t.Setenv(envStatsTimeout, "3s")
	t.Setenv(envStatsSeason, "2024-25")
	t.Setenv(envStatsMaxAttempts, "3")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envOtelEndpoint, "collector:4318")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != "5000" || cfg.WebhookPath != "/hooks/line" {
		t.Fatalf("expected port/path overrides, got %s %s", cfg.Port, cfg.WebhookPath)
	}
	if cfg.Line.ChannelAccessToken != "token" || cfg.Line.ChannelSecret != "secret" {
		t.Fatalf("expected credentials from env, got %+v", cfg.Line)
	}
	if cfg.Stats.Provider != "fixture" || cfg.Stats.BaseURL != "http://example.com/stats" {
		t.Fatalf("expected stats overrides, got %+v", cfg.Stats)
	}
	if cfg.Stats.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.Stats.Timeout)
	}
	if cfg.Stats.Season != "2024-25" || cfg.Stats.MaxAttempts != 3 {
		t.Fatalf("expected season/attempt overrides, got %+v", cfg.Stats)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
	if cfg.Metrics.OtlpEndpoint != "collector:4318" {
		t.Fatalf("expected otlp endpoint override, got %s", cfg.Metrics.OtlpEndpoint)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestLoadFileThenEnvPrecedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bot.yaml")
	yaml := "port: \"7000\"\nline:\n  channel_secret: from-file\n  channel_access_token: file-token\nstats:\n  timezone: Asia/Taipei\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)
	t.Setenv(envLineSecret, "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Port != "7000" {
		t.Fatalf("expected port from file, got %s", cfg.Port)
	}
	if cfg.Stats.Timezone != "Asia/Taipei" {
		t.Fatalf("expected timezone from file, got %s", cfg.Stats.Timezone)
	}
	if cfg.Line.ChannelSecret != "from-env" {
		t.Fatalf("expected env to win over file, got %s", cfg.Line.ChannelSecret)
	}
	if cfg.Line.ChannelAccessToken != "file-token" {
		t.Fatalf("expected token from file, got %s", cfg.Line.ChannelAccessToken)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	clearEnv(t)
	t.Setenv(envConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); !errors.Is(err, ErrLoadConfig) {
		t.Fatalf("expected ErrLoadConfig, got %v", err)
	}
}

func TestLoadInvalidDurationFails(t *testing.T) {
	clearEnv(t)
	t.Setenv(envStatsTimeout, "not-a-duration")

	if _, err := Load(); !errors.Is(err, ErrLoadConfig) {
		t.Fatalf("expected ErrLoadConfig on invalid duration, got %v", err)
	}
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(envStatsTimeout, "0s")
	t.Setenv(envStatsMaxAttempts, "-2")
	t.Setenv(envWebhookPath, "callback")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Stats.Timeout != defaultStatsTimeout {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.Stats.Timeout)
	}
	if cfg.Stats.MaxAttempts != defaultStatsMaxAttempts {
		t.Fatalf("expected default attempts, got %d", cfg.Stats.MaxAttempts)
	}
	if cfg.WebhookPath != defaultWebhookPath {
		t.Fatalf("expected default webhook path for relative value, got %s", cfg.WebhookPath)
	}
}

func TestValidateReportsMissingCredentials(t *testing.T) {
	err := Defaults().Validate()
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}

	cfg := Defaults()
	cfg.Line.ChannelAccessToken = "token"
	err = cfg.Validate()
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected missing secret to fail, got %v", err)
	}
	if got := err.Error(); got != "missing LINE credentials: "+envLineSecret {
		t.Fatalf("expected only the secret to be named, got %q", got)
	}
}

package config

import "time"

// Config holds runtime configuration for the bot. It is loaded once at startup
// and passed by value afterwards.
type Config struct {
	Port        string        `koanf:"port"`
	WebhookPath string        `koanf:"webhook_path"`
	LogLevel    string        `koanf:"log_level"`
	LogFormat   string        `koanf:"log_format"`
	Line        LineConfig    `koanf:"line"`
	Stats       StatsConfig   `koanf:"stats"`
	Metrics     MetricsConfig `koanf:"metrics"`
}

// LineConfig carries the LINE Messaging API credentials.
type LineConfig struct {
	ChannelAccessToken string `koanf:"channel_access_token"`
	ChannelSecret      string `koanf:"channel_secret"`
	// APIEndpoint overrides the Messaging API base URL (tests, proxies).
	APIEndpoint string `koanf:"api_endpoint"`
}

// StatsConfig controls how we talk to the stats provider.
type StatsConfig struct {
	Provider    string        `koanf:"provider"`
	BaseURL     string        `koanf:"base_url"`
	Timeout     time.Duration `koanf:"timeout"`
	Timezone    string        `koanf:"timezone"`
	Season      string        `koanf:"season"`
	MaxAttempts int           `koanf:"max_attempts"`
	Backoff     time.Duration `koanf:"backoff"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Port:        defaultPort,
		WebhookPath: defaultWebhookPath,
		LogLevel:    defaultLogLevel,
		LogFormat:   defaultLogFormat,
		Stats: StatsConfig{
			Provider:    defaultStatsProvider,
			BaseURL:     defaultStatsBaseURL,
			Timeout:     defaultStatsTimeout,
			Timezone:    defaultStatsTimezone,
			MaxAttempts: defaultStatsMaxAttempts,
			Backoff:     defaultStatsBackoff,
		},
		Metrics: defaultMetrics(),
	}
}

// Validate reports missing settings the webhook server cannot run without.
func (c Config) Validate() error {
	var missing []string
	if c.Line.ChannelAccessToken == "" {
		missing = append(missing, envLineToken)
	}
	if c.Line.ChannelSecret == "" {
		missing = append(missing, envLineSecret)
	}
	if len(missing) > 0 {
		return missingCredentials(missing)
	}
	return nil
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	d := Defaults()
	if c.Port == "" {
		c.Port = d.Port
	}
	if c.WebhookPath == "" || c.WebhookPath[0] != '/' {
		c.WebhookPath = d.WebhookPath
	}
	if c.Stats.Timeout <= 0 {
		c.Stats.Timeout = d.Stats.Timeout
	}
	if c.Stats.MaxAttempts <= 0 {
		c.Stats.MaxAttempts = d.Stats.MaxAttempts
	}
	if c.Stats.Backoff <= 0 {
		c.Stats.Backoff = d.Stats.Backoff
	}
	if c.Metrics.Port == "" {
		c.Metrics.Port = d.Metrics.Port
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = d.Metrics.ServiceName
	}
}

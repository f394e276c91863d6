package config

import "time"

const (
	envConfigFile = "NBABOT_CONFIG"

	envPort             = "PORT"
	envWebhookPath      = "WEBHOOK_PATH"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envLineToken        = "LINE_CHANNEL_ACCESS_TOKEN"
	envLineSecret       = "LINE_CHANNEL_SECRET"
	envLineEndpoint     = "LINE_API_ENDPOINT"
	envStatsProvider    = "STATS_PROVIDER"
	envStatsBaseURL     = "STATS_BASE_URL"
	envStatsTimeout     = "STATS_TIMEOUT"
	envStatsTimezone    = "STATS_TIMEZONE"
	envStatsSeason      = "STATS_SEASON"
	envStatsMaxAttempts = "STATS_MAX_ATTEMPTS"
	envStatsBackoff     = "STATS_BACKOFF"
	envMetricsOn        = "METRICS_ENABLED"
	envMetricsPort      = "METRICS_PORT"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort          = "4000"
	defaultWebhookPath   = "/callback"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultStatsProvider = "nbastats"
	defaultStatsBaseURL  = "https://stats.nba.com/stats"
	defaultStatsTimeout  = 10 * time.Second
	defaultStatsTimezone = "America/New_York"
	// One attempt keeps replies prompt; LINE reply tokens expire quickly.
	defaultStatsMaxAttempts = 1
	defaultStatsBackoff     = 200 * time.Millisecond
	defaultMetricsPort      = "9090"
	defaultServiceName      = "nba-linebot"
)

// envKeys maps the supported environment variables onto koanf key paths.
var envKeys = map[string]string{
	envPort:             "port",
	envWebhookPath:      "webhook_path",
	envLogLevel:         "log_level",
	envLogFormat:        "log_format",
	envLineToken:        "line.channel_access_token",
	envLineSecret:       "line.channel_secret",
	envLineEndpoint:     "line.api_endpoint",
	envStatsProvider:    "stats.provider",
	envStatsBaseURL:     "stats.base_url",
	envStatsTimeout:     "stats.timeout",
	envStatsTimezone:    "stats.timezone",
	envStatsSeason:      "stats.season",
	envStatsMaxAttempts: "stats.max_attempts",
	envStatsBackoff:     "stats.backoff",
	envMetricsOn:        "metrics.enabled",
	envMetricsPort:      "metrics.port",
	envOtelEndpoint:     "metrics.otlp_endpoint",
	envOtelService:      "metrics.service_name",
	envOtelInsecure:     "metrics.otlp_insecure",
}

package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Port         string `koanf:"port"`
	OtlpEndpoint string `koanf:"otlp_endpoint"`
	ServiceName  string `koanf:"service_name"`
	OtlpInsecure bool   `koanf:"otlp_insecure"`
}

func defaultMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      true,
		Port:         defaultMetricsPort,
		ServiceName:  defaultServiceName,
		OtlpInsecure: true,
	}
}

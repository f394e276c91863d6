package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-linebot/internal/config"
	"github.com/preston-bernstein/nba-linebot/internal/metrics"
	"github.com/preston-bernstein/nba-linebot/internal/providers"
)

// providerFactory assembles the provider with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.StatsProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.StatsProvider) providers.StatsProvider {
	name := normalizeProviderName(cfg.Stats.Provider, base)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, name, cfg.Stats.MaxAttempts, cfg.Stats.Backoff)
}

package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nba-linebot/internal/config"
	"github.com/preston-bernstein/nba-linebot/internal/providers"
	"github.com/preston-bernstein/nba-linebot/internal/providers/fixture"
	"github.com/preston-bernstein/nba-linebot/internal/providers/nbastats"
)

const (
	providerNBAStats = "nbastats"
	providerFixture  = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.StatsProvider {
	switch strings.ToLower(strings.TrimSpace(cfg.Stats.Provider)) {
	case providerNBAStats, "":
		return nbastats.NewClient(nbastats.Config{
			BaseURL:  cfg.Stats.BaseURL,
			Timeout:  cfg.Stats.Timeout,
			Timezone: cfg.Stats.Timezone,
		})
	case providerFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Stats.Provider))
		}
		return fixture.New()
	}
}

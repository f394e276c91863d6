package server

import (
	"context"
	"testing"

	"github.com/preston-bernstein/nba-linebot/internal/metrics"
	"github.com/preston-bernstein/nba-linebot/internal/providers/fixture"
)

func TestProviderFactoryWrapsWithRetriesAndMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec)

	cfg := testConfig()
	prov := factory.build(cfg)
	if prov == nil {
		t.Fatalf("expected provider")
	}
	if _, ok := prov.(*fixture.Provider); ok {
		t.Fatalf("expected provider to be wrapped")
	}

	if _, err := prov.LeagueStandings(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ProviderCalls("fixture.leaguestandingsv3") != 1 {
		t.Fatalf("expected call recorded under the configured provider name")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName(" NBAStats ", nil); got != "nbastats" {
		t.Fatalf("expected nbastats, got %q", got)
	}
	if got := normalizeProviderName("", fixture.New()); got != "*fixture.provider" {
		t.Fatalf("expected derived type name, got %q", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected fallback name, got %q", got)
	}
}

package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-linebot/internal/domain/players"
	"github.com/preston-bernstein/nba-linebot/internal/domain/stats"
)

// ErrNotStubbed is returned by StubProvider methods without a configured func.
var ErrNotStubbed = errors.New("testutil: provider method not stubbed")

// StubProvider satisfies the stats provider interface with per-method funcs and
// records which endpoints were called.
type StubProvider struct {
	FindPlayersFn       func(ctx context.Context, name string) ([]players.Player, error)
	PlayerGameLogFn     func(ctx context.Context, playerID int, season string, seasonType stats.SeasonType) (*stats.Table, error)
	PlayerCareerStatsFn func(ctx context.Context, playerID int) (*stats.Table, error)
	LeagueStandingsFn   func(ctx context.Context, season string) (*stats.Table, error)
	LeagueGameFinderFn  func(ctx context.Context, teamID int, seasonType stats.SeasonType) (*stats.Table, error)
	BoxScoreTeamStatsFn func(ctx context.Context, gameID string) (*stats.Table, error)
	LeaguePlayerStatsFn func(ctx context.Context, season string, seasonType stats.SeasonType) (*stats.Table, error)
	ScoreboardFn        func(ctx context.Context, date time.Time) (stats.Scoreboard, error)

	mu    sync.Mutex
	calls []string
}

// Calls returns the endpoint names invoked so far, in order.
func (s *StubProvider) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// Called reports whether endpoint was invoked at least once.
func (s *StubProvider) Called(endpoint string) bool {
	for _, c := range s.Calls() {
		if c == endpoint {
			return true
		}
	}
	return false
}

func (s *StubProvider) record(endpoint string) {
	s.mu.Lock()
	s.calls = append(s.calls, endpoint)
	s.mu.Unlock()
}

func (s *StubProvider) FindPlayersByFullName(ctx context.Context, name string) ([]players.Player, error) {
	s.record("FindPlayersByFullName")
	if s.FindPlayersFn == nil {
		return nil, ErrNotStubbed
	}
	return s.FindPlayersFn(ctx, name)
}

func (s *StubProvider) PlayerGameLog(ctx context.Context, playerID int, season string, seasonType stats.SeasonType) (*stats.Table, error) {
	s.record("PlayerGameLog")
	if s.PlayerGameLogFn == nil {
		return nil, ErrNotStubbed
	}
	return s.PlayerGameLogFn(ctx, playerID, season, seasonType)
}

func (s *StubProvider) PlayerCareerStats(ctx context.Context, playerID int) (*stats.Table, error) {
	s.record("PlayerCareerStats")
	if s.PlayerCareerStatsFn == nil {
		return nil, ErrNotStubbed
	}
	return s.PlayerCareerStatsFn(ctx, playerID)
}

func (s *StubProvider) LeagueStandings(ctx context.Context, season string) (*stats.Table, error) {
	s.record("LeagueStandings")
	if s.LeagueStandingsFn == nil {
		return nil, ErrNotStubbed
	}
	return s.LeagueStandingsFn(ctx, season)
}

func (s *StubProvider) LeagueGameFinder(ctx context.Context, teamID int, seasonType stats.SeasonType) (*stats.Table, error) {
	s.record("LeagueGameFinder")
	if s.LeagueGameFinderFn == nil {
		return nil, ErrNotStubbed
	}
	return s.LeagueGameFinderFn(ctx, teamID, seasonType)
}

func (s *StubProvider) BoxScoreTeamStats(ctx context.Context, gameID string) (*stats.Table, error) {
	s.record("BoxScoreTeamStats")
	if s.BoxScoreTeamStatsFn == nil {
		return nil, ErrNotStubbed
	}
	return s.BoxScoreTeamStatsFn(ctx, gameID)
}

func (s *StubProvider) LeaguePlayerStats(ctx context.Context, season string, seasonType stats.SeasonType) (*stats.Table, error) {
	s.record("LeaguePlayerStats")
	if s.LeaguePlayerStatsFn == nil {
		return nil, ErrNotStubbed
	}
	return s.LeaguePlayerStatsFn(ctx, season, seasonType)
}

func (s *StubProvider) Scoreboard(ctx context.Context, date time.Time) (stats.Scoreboard, error) {
	s.record("Scoreboard")
	if s.ScoreboardFn == nil {
		return stats.Scoreboard{}, ErrNotStubbed
	}
	return s.ScoreboardFn(ctx, date)
}

// Table is shorthand for stats.NewTable in tests.
func Table(name string, headers []string, rows ...[]any) *stats.Table {
	return stats.NewTable(name, headers, rows)
}

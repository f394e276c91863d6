package providers

import (
	"context"
	"time"

	"github.com/preston-bernstein/nba-linebot/internal/domain/players"
	"github.com/preston-bernstein/nba-linebot/internal/domain/stats"
)

// StatsProvider exposes the upstream statistics queries the bot relies on.
// Every method is a blocking round-trip bounded by ctx.
type StatsProvider interface {
	// FindPlayersByFullName returns directory entries whose full name matches
	// name exactly (case and accent insensitive), in provider order.
	FindPlayersByFullName(ctx context.Context, name string) ([]players.Player, error)
	// PlayerGameLog returns one row per game, newest first.
	PlayerGameLog(ctx context.Context, playerID int, season string, seasonType stats.SeasonType) (*stats.Table, error)
	// PlayerCareerStats returns regular-season totals, one row per season.
	PlayerCareerStats(ctx context.Context, playerID int) (*stats.Table, error)
	// LeagueStandings returns one row per team with conference and playoff rank.
	LeagueStandings(ctx context.Context, season string) (*stats.Table, error)
	// LeagueGameFinder returns the game log of a team across seasons.
	LeagueGameFinder(ctx context.Context, teamID int, seasonType stats.SeasonType) (*stats.Table, error)
	// BoxScoreTeamStats returns the team-level box score rows of a game.
	BoxScoreTeamStats(ctx context.Context, gameID string) (*stats.Table, error)
	// LeaguePlayerStats returns season totals for every player in the league.
	LeaguePlayerStats(ctx context.Context, season string, seasonType stats.SeasonType) (*stats.Table, error)
	// Scoreboard returns the games and line scores for a calendar date.
	Scoreboard(ctx context.Context, date time.Time) (stats.Scoreboard, error)
}

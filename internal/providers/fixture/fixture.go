package fixture

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-linebot/internal/domain/players"
	"github.com/preston-bernstein/nba-linebot/internal/domain/stats"
	"github.com/preston-bernstein/nba-linebot/internal/domain/teams"
	"github.com/preston-bernstein/nba-linebot/internal/providers"
	"github.com/preston-bernstein/nba-linebot/internal/timeutil"
)

// Provider serves deterministic stats tables for local runs and demos.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

var _ providers.StatsProvider = (*Provider)(nil)

var (
	logHeaders = []string{
		"SEASON_ID", "Player_ID", stats.ColGameID, stats.ColGameDate, stats.ColMatchup, "WL",
		stats.ColMinutes, stats.ColFGM, stats.ColFGA, stats.ColFGPct, stats.ColFG3M, stats.ColFG3A, stats.ColFG3Pct,
		stats.ColFTM, stats.ColFTA, stats.ColFTPct, stats.ColRebounds, stats.ColAssists, stats.ColSteals,
		stats.ColBlocks, stats.ColTurnovers, stats.ColFouls, stats.ColPoints, stats.ColPlusMinus,
	}
	totalsHeaders = []string{
		"PLAYER_ID", stats.ColSeasonID, "LEAGUE_ID", stats.ColTeamAbbreviation, stats.ColGamesPlayed,
		stats.ColMinutes, stats.ColFGM, stats.ColFGA, stats.ColFGPct, stats.ColFG3M, stats.ColFG3A, stats.ColFG3Pct,
		stats.ColFTM, stats.ColFTA, stats.ColFTPct, stats.ColRebounds, stats.ColAssists, stats.ColSteals,
		stats.ColBlocks, stats.ColTurnovers, stats.ColFouls, stats.ColPoints,
	}
	dashHeaders = []string{
		"PLAYER_ID", stats.ColPlayerName, stats.ColTeamAbbreviation, stats.ColGamesPlayed,
		stats.ColMinutes, stats.ColPoints, stats.ColAssists, stats.ColRebounds,
	}
	finderHeaders = []string{
		"SEASON_ID", "TEAM_ID", stats.ColTeamAbbreviation, stats.ColGameID, stats.ColGameDate,
		stats.ColMatchup, "WL", stats.ColPoints,
	}
	teamStatsHeaders = []string{stats.ColGameID, "TEAM_ID", stats.ColTeamAbbreviation, stats.ColPoints}
	standingsHeaders = []string{
		"TeamID", "TeamCity", stats.ColTeamName, stats.ColConference, stats.ColPlayoffRank, stats.ColWins, stats.ColLosses,
	}
	gameHeaderHeaders = []string{stats.ColGameID, "GAME_DATE_EST", "GAME_STATUS_TEXT", "HOME_TEAM_ID", "VISITOR_TEAM_ID"}
	lineScoreHeaders  = []string{stats.ColGameID, "TEAM_ID", stats.ColTeamAbbreviation, stats.ColPoints}
)

// FindPlayersByFullName matches against the fixture roster.
func (p *Provider) FindPlayersByFullName(ctx context.Context, name string) ([]players.Player, error) {
	_ = ctx
	return players.MatchFullName(roster, name), nil
}

// PlayerGameLog returns the player's last three regular-season games; only
// LeBron James has a playoff log.
func (p *Provider) PlayerGameLog(ctx context.Context, playerID int, season string, seasonType stats.SeasonType) (*stats.Table, error) {
	_ = ctx
	line, ok := lines[playerID]
	if !ok || (seasonType == stats.SeasonTypePlayoffs && playerID != 2544) {
		return stats.NewTable("PlayerGameLog", logHeaders, nil), nil
	}
	if season == "" {
		season = timeutil.SeasonFor(p.now())
	}

	games := teamGames(line.team)
	rows := make([][]any, 0, 3)
	for i := len(games) - 1; i >= 0 && len(rows) < 3; i-- {
		g := games[i]
		date, _ := timeutil.ParseDate(g.date)
		varied := vary(line, len(rows))
		rows = append(rows, []any{
			seasonID(season), float64(playerID), g.id,
			strings.ToUpper(date.Format("Jan 02, 2006")), matchupLabel(line.team, g), result(line.team, g),
			varied.min, varied.fgm, varied.fga, pct(varied.fgm, varied.fga),
			varied.fg3m, varied.fg3a, pct(varied.fg3m, varied.fg3a),
			varied.ftm, varied.fta, pct(varied.ftm, varied.fta),
			varied.reb, varied.ast, varied.stl, varied.blk, varied.tov, varied.pf, varied.pts, varied.plusMinus,
		})
	}
	return stats.NewTable("PlayerGameLog", logHeaders, rows), nil
}

// PlayerCareerStats returns two seasons of totals, the latest last.
func (p *Provider) PlayerCareerStats(ctx context.Context, playerID int) (*stats.Table, error) {
	_ = ctx
	line, ok := lines[playerID]
	if !ok {
		return stats.NewTable("SeasonTotalsRegularSeason", totalsHeaders, nil), nil
	}
	current := timeutil.SeasonFor(p.now())
	start, _ := strconv.Atoi(current[:4])
	prior := fmt.Sprintf("%d-%02d", start-1, start%100)

	rows := [][]any{
		totalsRow(playerID, prior, line, 70),
		totalsRow(playerID, current, vary(line, 1), 58),
	}
	return stats.NewTable("SeasonTotalsRegularSeason", totalsHeaders, rows), nil
}

// LeagueStandings ranks every team by a fixed win total.
func (p *Provider) LeagueStandings(ctx context.Context, season string) (*stats.Table, error) {
	_ = ctx
	_ = season
	all := teams.All()
	rows := make([][]any, 0, len(all))
	rank := map[string]int{}
	for i, t := range all {
		rank[t.Conference]++
		wins := 64 - 3*rank[t.Conference] + i%2
		rows = append(rows, []any{
			float64(t.ID), t.City, t.Name, t.Conference, float64(rank[t.Conference]), float64(wins), float64(82 - wins),
		})
	}
	return stats.NewTable("Standings", standingsHeaders, rows), nil
}

// LeagueGameFinder returns the team's games from the fixture schedule, newest first.
func (p *Provider) LeagueGameFinder(ctx context.Context, teamID int, seasonType stats.SeasonType) (*stats.Table, error) {
	_ = ctx
	team, ok := teamByID(teamID)
	if !ok || seasonType != stats.SeasonTypeRegular {
		return stats.NewTable("LeagueGameFinderResults", finderHeaders, nil), nil
	}
	games := teamGames(team.Abbreviation)
	rows := make([][]any, 0, len(games))
	for i := len(games) - 1; i >= 0; i-- {
		g := games[i]
		pts := g.homePts
		if g.away == team.Abbreviation {
			pts = g.awayPts
		}
		rows = append(rows, []any{
			seasonID(timeutil.SeasonFor(p.now())), float64(team.ID), team.Abbreviation, g.id, g.date,
			matchupLabel(team.Abbreviation, g), result(team.Abbreviation, g), float64(pts),
		})
	}
	return stats.NewTable("LeagueGameFinderResults", finderHeaders, rows), nil
}

// BoxScoreTeamStats returns the team totals of a scheduled game, away side first.
func (p *Provider) BoxScoreTeamStats(ctx context.Context, gameID string) (*stats.Table, error) {
	_ = ctx
	for _, g := range schedule {
		if g.id != gameID {
			continue
		}
		away, _ := teams.ByAbbreviation(g.away)
		home, _ := teams.ByAbbreviation(g.home)
		return stats.NewTable("TeamStats", teamStatsHeaders, [][]any{
			{g.id, float64(away.ID), g.away, float64(g.awayPts)},
			{g.id, float64(home.ID), g.home, float64(g.homePts)},
		}), nil
	}
	return stats.NewTable("TeamStats", teamStatsHeaders, nil), nil
}

// LeaguePlayerStats returns season totals for the fixture roster.
func (p *Provider) LeaguePlayerStats(ctx context.Context, season string, seasonType stats.SeasonType) (*stats.Table, error) {
	_ = ctx
	_ = season
	_ = seasonType
	rows := make([][]any, 0, len(roster))
	for _, pl := range roster {
		line, ok := lines[pl.ID]
		gp := 58
		if !ok {
			line, gp = playerLine{team: "LAL"}, 0
		}
		rows = append(rows, []any{
			float64(pl.ID), pl.FullName, line.team, float64(gp),
			float64(line.min * gp), float64(line.pts * gp), float64(line.ast * gp), float64(line.reb * gp),
		})
	}
	return stats.NewTable("LeagueDashPlayerStats", dashHeaders, rows), nil
}

// Scoreboard returns two games for any date: one final, one not yet started.
func (p *Provider) Scoreboard(ctx context.Context, date time.Time) (stats.Scoreboard, error) {
	_ = ctx
	if date.IsZero() {
		date = p.now()
	}
	day := date.Format("20060102")
	est := date.Format("2006-01-02") + "T00:00:00"

	type pairing struct {
		home, away       string
		homePts, awayPts any
		status           string
	}
	pairings := []pairing{
		{home: "BOS", away: "LAL", homePts: float64(104), awayPts: float64(110), status: "Final"},
		{home: "GSW", away: "DEN", homePts: nil, awayPts: nil, status: "10:00 pm ET"},
	}

	var games, lineScores [][]any
	for i, pr := range pairings {
		id := fmt.Sprintf("00%s%02d", day[2:], i+1)
		home, _ := teams.ByAbbreviation(pr.home)
		away, _ := teams.ByAbbreviation(pr.away)
		games = append(games, []any{id, est, pr.status, float64(home.ID), float64(away.ID)})
		lineScores = append(lineScores,
			[]any{id, float64(away.ID), pr.away, pr.awayPts},
			[]any{id, float64(home.ID), pr.home, pr.homePts},
		)
	}
	return stats.Scoreboard{
		Games:      stats.NewTable("GameHeader", gameHeaderHeaders, games),
		LineScores: stats.NewTable("LineScore", lineScoreHeaders, lineScores),
	}, nil
}

func teamByID(id int) (teams.Team, bool) {
	for _, t := range teams.All() {
		if t.ID == id {
			return t, true
		}
	}
	return teams.Team{}, false
}

// teamGames returns the team's scheduled games in date order.
func teamGames(abbr string) []matchup {
	var out []matchup
	for _, g := range schedule {
		if g.home == abbr || g.away == abbr {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].date < out[j].date })
	return out
}

func matchupLabel(team string, g matchup) string {
	if g.home == team {
		return team + " vs. " + g.away
	}
	return team + " @ " + g.home
}

func result(team string, g matchup) string {
	own, other := g.homePts, g.awayPts
	if g.away == team {
		own, other = other, own
	}
	if own > other {
		return "W"
	}
	return "L"
}

// vary nudges a line so consecutive games differ.
func vary(l playerLine, n int) playerLine {
	l.pts += n * 2
	l.ast -= n % 2
	l.reb += n % 3
	l.min -= n
	l.fga += n
	l.plusMinus -= n * 4
	return l
}

func totalsRow(playerID int, season string, l playerLine, gp int) []any {
	return []any{
		float64(playerID), season, "00", l.team, float64(gp),
		float64(l.min * gp), float64(l.fgm * gp), float64(l.fga * gp), pct(l.fgm, l.fga),
		float64(l.fg3m * gp), float64(l.fg3a * gp), pct(l.fg3m, l.fg3a),
		float64(l.ftm * gp), float64(l.fta * gp), pct(l.ftm, l.fta),
		float64(l.reb * gp), float64(l.ast * gp), float64(l.stl * gp),
		float64(l.blk * gp), float64(l.tov * gp), float64(l.pf * gp), float64(l.pts * gp),
	}
}

// seasonID renders "2024-25" as the provider's "22024" regular-season id.
func seasonID(season string) string {
	if len(season) < 4 {
		return "2" + season
	}
	return "2" + season[:4]
}

func pct(made, attempted int) any {
	if attempted == 0 {
		return nil
	}
	return float64(made*1000/attempted) / 1000
}

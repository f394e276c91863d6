package nbastats

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/preston-bernstein/nba-linebot/internal/domain/players"
	"github.com/preston-bernstein/nba-linebot/internal/domain/stats"
	"github.com/preston-bernstein/nba-linebot/internal/timeutil"
)

// FindPlayersByFullName loads the all-time player directory and returns the
// entries whose full name matches, ignoring case and accents.
func (c *Client) FindPlayersByFullName(ctx context.Context, name string) ([]players.Player, error) {
	all, err := c.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}
	return players.MatchFullName(all, name), nil
}

func (c *Client) loadDirectory(ctx context.Context) ([]players.Player, error) {
	params := url.Values{}
	params.Set("LeagueID", leagueID)
	params.Set("Season", c.currentSeason())
	params.Set("IsOnlyCurrentSeason", "0")

	tables, err := c.fetch(ctx, endpointCommonAllPlayers, params)
	if err != nil {
		return nil, err
	}
	directory := pick(tables, setCommonAllPlayers, 0)

	all := make([]players.Player, 0, directory.Len())
	for _, r := range directory.Rows {
		all = append(all, players.Player{
			ID:       r.Int(colPersonID),
			FullName: r.String(colDisplayName),
			IsActive: r.Int(colRosterStatus) == 1,
		})
	}
	return all, nil
}

// PlayerGameLog returns a player's games for the season, most recent first.
func (c *Client) PlayerGameLog(ctx context.Context, playerID int, season string, seasonType stats.SeasonType) (*stats.Table, error) {
	if season == "" {
		season = c.currentSeason()
	}
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("Season", season)
	params.Set("SeasonType", string(seasonType))
	params.Set("LeagueID", leagueID)

	tables, err := c.fetch(ctx, endpointPlayerGameLog, params)
	if err != nil {
		return nil, err
	}
	return pick(tables, setPlayerGameLog, 0), nil
}

// PlayerCareerStats returns per-season regular-season totals for a player.
func (c *Client) PlayerCareerStats(ctx context.Context, playerID int) (*stats.Table, error) {
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("PerMode", "Totals")
	params.Set("LeagueID", leagueID)

	tables, err := c.fetch(ctx, endpointPlayerCareerStats, params)
	if err != nil {
		return nil, err
	}
	return pick(tables, setCareerRegular, 0), nil
}

// LeagueStandings returns the regular-season standings for both conferences.
func (c *Client) LeagueStandings(ctx context.Context, season string) (*stats.Table, error) {
	if season == "" {
		season = c.currentSeason()
	}
	params := url.Values{}
	params.Set("LeagueID", leagueID)
	params.Set("Season", season)
	params.Set("SeasonType", string(stats.SeasonTypeRegular))

	tables, err := c.fetch(ctx, endpointLeagueStandings, params)
	if err != nil {
		return nil, err
	}
	return pick(tables, setStandings, 0), nil
}

// LeagueGameFinder returns every game the team played for the season type.
func (c *Client) LeagueGameFinder(ctx context.Context, teamID int, seasonType stats.SeasonType) (*stats.Table, error) {
	params := url.Values{}
	params.Set("PlayerOrTeam", "T")
	params.Set("TeamID", strconv.Itoa(teamID))
	params.Set("SeasonType", string(seasonType))
	params.Set("LeagueID", leagueID)

	tables, err := c.fetch(ctx, endpointLeagueGameFinder, params)
	if err != nil {
		return nil, err
	}
	return pick(tables, setLeagueGameFinder, 0), nil
}

// BoxScoreTeamStats returns the two team-total rows of a game's box score.
func (c *Client) BoxScoreTeamStats(ctx context.Context, gameID string) (*stats.Table, error) {
	params := url.Values{}
	params.Set("GameID", gameID)
	params.Set("StartPeriod", "0")
	params.Set("EndPeriod", "10")
	params.Set("StartRange", "0")
	params.Set("EndRange", "28800")
	params.Set("RangeType", "0")

	tables, err := c.fetch(ctx, endpointBoxScore, params)
	if err != nil {
		return nil, err
	}
	return pick(tables, setTeamStats, 1), nil
}

// LeaguePlayerStats returns season totals for every player in the league.
func (c *Client) LeaguePlayerStats(ctx context.Context, season string, seasonType stats.SeasonType) (*stats.Table, error) {
	if season == "" {
		season = c.currentSeason()
	}
	params := leagueDashDefaults()
	params.Set("Season", season)
	params.Set("SeasonType", string(seasonType))

	tables, err := c.fetch(ctx, endpointLeaguePlayerStats, params)
	if err != nil {
		return nil, err
	}
	return pick(tables, setLeagueDash, 0), nil
}

// Scoreboard returns the games and line scores scheduled on date, read as a
// calendar day in the client's timezone.
func (c *Client) Scoreboard(ctx context.Context, date time.Time) (stats.Scoreboard, error) {
	if date.IsZero() {
		date = c.now()
	}
	params := url.Values{}
	params.Set("GameDate", date.In(c.loc).Format(timeutil.ScoreboardLayout))
	params.Set("LeagueID", leagueID)
	params.Set("DayOffset", "0")

	tables, err := c.fetch(ctx, endpointScoreboard, params)
	if err != nil {
		return stats.Scoreboard{}, err
	}
	return stats.Scoreboard{
		Games:      pick(tables, setGameHeader, 0),
		LineScores: pick(tables, setLineScore, 1),
	}, nil
}

func (c *Client) currentSeason() string {
	return timeutil.SeasonFor(c.now().In(c.loc))
}

// leagueDashDefaults fills the filters leaguedashplayerstats rejects when absent.
func leagueDashDefaults() url.Values {
	params := url.Values{}
	for k, v := range map[string]string{
		"LeagueID":         leagueID,
		"PerMode":          "Totals",
		"MeasureType":      "Base",
		"PlusMinus":        "N",
		"PaceAdjust":       "N",
		"Rank":             "N",
		"LastNGames":       "0",
		"Month":            "0",
		"OpponentTeamID":   "0",
		"Period":           "0",
		"PORound":          "0",
		"TeamID":           "0",
		"TwoWay":           "0",
		"College":          "",
		"Conference":       "",
		"Country":          "",
		"DateFrom":         "",
		"DateTo":           "",
		"Division":         "",
		"DraftPick":        "",
		"DraftYear":        "",
		"GameScope":        "",
		"GameSegment":      "",
		"Height":           "",
		"Location":         "",
		"Outcome":          "",
		"PlayerExperience": "",
		"PlayerPosition":   "",
		"SeasonSegment":    "",
		"ShotClockRange":   "",
		"StarterBench":     "",
		"VsConference":     "",
		"VsDivision":       "",
		"Weight":           "",
	} {
		params.Set(k, v)
	}
	return params
}

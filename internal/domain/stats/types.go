package stats

// SeasonType selects the category of games a query covers.
type SeasonType string

const (
	SeasonTypeRegular  SeasonType = "Regular Season"
	SeasonTypePlayoffs SeasonType = "Playoffs"
)

// Scoreboard holds the two result sets of a daily scoreboard: one row per game
// and one line-score row per team, joined by GAME_ID.
type Scoreboard struct {
	Games      *Table
	LineScores *Table
}

// Column labels read by the bot. They mirror the provider's schema.
const (
	ColGameID           = "GAME_ID"
	ColGameDate         = "GAME_DATE"
	ColMatchup          = "MATCHUP"
	ColTeamAbbreviation = "TEAM_ABBREVIATION"
	ColPlayerName       = "PLAYER_NAME"
	ColSeasonID         = "SEASON_ID"
	ColGamesPlayed      = "GP"
	ColMinutes          = "MIN"
	ColPoints           = "PTS"
	ColAssists          = "AST"
	ColRebounds         = "REB"
	ColSteals           = "STL"
	ColBlocks           = "BLK"
	ColTurnovers        = "TOV"
	ColFouls            = "PF"
	ColPlusMinus        = "PLUS_MINUS"
	ColFGM              = "FGM"
	ColFGA              = "FGA"
	ColFGPct            = "FG_PCT"
	ColFG3M             = "FG3M"
	ColFG3A             = "FG3A"
	ColFG3Pct           = "FG3_PCT"
	ColFTM              = "FTM"
	ColFTA              = "FTA"
	ColFTPct            = "FT_PCT"

	ColConference  = "Conference"
	ColTeamName    = "TeamName"
	ColPlayoffRank = "PlayoffRank"
	ColWins        = "WINS"
	ColLosses      = "LOSSES"
)

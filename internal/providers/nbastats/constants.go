package nbastats

import "time"

const (
	providerName       = "nbastats"
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 10 * time.Second
	defaultTimezone    = "America/New_York"
	leagueID           = "00"
	maxErrorBody       = 512

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	referer   = "https://www.nba.com/"
	origin    = "https://www.nba.com"
)

// Endpoint paths under the base URL.
const (
	endpointCommonAllPlayers  = "commonallplayers"
	endpointPlayerGameLog     = "playergamelog"
	endpointPlayerCareerStats = "playercareerstats"
	endpointLeagueStandings   = "leaguestandingsv3"
	endpointLeagueGameFinder  = "leaguegamefinder"
	endpointBoxScore          = "boxscoretraditionalv2"
	endpointLeaguePlayerStats = "leaguedashplayerstats"
	endpointScoreboard        = "scoreboardv2"
)

// Result set names looked up by the client.
const (
	setCommonAllPlayers = "CommonAllPlayers"
	setPlayerGameLog    = "PlayerGameLog"
	setCareerRegular    = "SeasonTotalsRegularSeason"
	setStandings        = "Standings"
	setLeagueGameFinder = "LeagueGameFinderResults"
	setTeamStats        = "TeamStats"
	setLeagueDash       = "LeagueDashPlayerStats"
	setGameHeader       = "GameHeader"
	setLineScore        = "LineScore"
)

// Player directory columns.
const (
	colPersonID     = "PERSON_ID"
	colDisplayName  = "DISPLAY_FIRST_LAST"
	colRosterStatus = "ROSTERSTATUS"
)

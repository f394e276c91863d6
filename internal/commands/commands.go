// Package commands maps inbound chat text to the bot's query commands.
package commands

// Kind identifies which query a message asks for.
type Kind int

const (
	Unrecognized Kind = iota
	TodayScores
	PlayerLastGame
	PlayerSeasonAverage
	TeamStandings
	TeamMatchup
	TopScorers
)

// String returns the label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case TodayScores:
		return "today_scores"
	case PlayerLastGame:
		return "player_last_game"
	case PlayerSeasonAverage:
		return "player_season_average"
	case TeamStandings:
		return "team_standings"
	case TeamMatchup:
		return "team_matchup"
	case TopScorers:
		return "top_scorers"
	default:
		return "unrecognized"
	}
}

// Command is the parsed form of one message. Only the fields relevant to Kind are set.
type Command struct {
	Kind       Kind
	PlayerName string
	Team1      string
	Team2      string
	// Hint is the reply for Unrecognized commands.
	Hint string
}

// Message keywords.
const (
	keywordToday        = "今日比賽"
	keywordStandings    = "球隊排名"
	keywordTopScorers   = "得分榜"
	suffixLastGame      = "上一場數據"
	suffixSeasonAverage = "本季數據"
	prefixMatchup       = "球隊 "
)

// UsageHint answers a matchup command without exactly two team abbreviations.
const UsageHint = "請輸入正確格式，例如：球隊 LAL BOS"

// HelpText answers any message that matches no command.
const HelpText = "請輸入以下指令之一來查詢資料：\n" +
	"今日比賽\n" +
	"[球員姓名] 上一場數據（例如：LeBron James 上一場數據）\n" +
	"[球員姓名] 本季數據（例如：Stephen Curry 本季數據）\n" +
	"球隊排名\n" +
	"得分榜\n" +
	"球隊 [縮寫1] [縮寫2]（查詢兩隊近期交手，例：球隊 LAL BOS）"

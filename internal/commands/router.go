package commands

import "strings"

// Parse classifies text. Surrounding whitespace is ignored and the first
// matching rule wins, so "球隊 LAL 本季數據" is a season-average query.
func Parse(text string) Command {
	text = strings.TrimSpace(text)

	switch {
	case text == keywordToday:
		return Command{Kind: TodayScores}
	case strings.HasSuffix(text, suffixLastGame):
		return Command{Kind: PlayerLastGame, PlayerName: playerName(text, suffixLastGame)}
	case text == keywordStandings:
		return Command{Kind: TeamStandings}
	case strings.HasSuffix(text, suffixSeasonAverage):
		return Command{Kind: PlayerSeasonAverage, PlayerName: playerName(text, suffixSeasonAverage)}
	case strings.HasPrefix(text, prefixMatchup):
		return parseMatchup(strings.TrimPrefix(text, prefixMatchup))
	case text == keywordTopScorers:
		return Command{Kind: TopScorers}
	default:
		return Command{Kind: Unrecognized, Hint: HelpText}
	}
}

func playerName(text, suffix string) string {
	return strings.TrimSpace(strings.TrimSuffix(text, suffix))
}

func parseMatchup(rest string) Command {
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		return Command{Kind: Unrecognized, Hint: UsageHint}
	}
	return Command{
		Kind:  TeamMatchup,
		Team1: strings.ToUpper(fields[0]),
		Team2: strings.ToUpper(fields[1]),
	}
}

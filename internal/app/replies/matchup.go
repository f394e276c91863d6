package replies

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/preston-bernstein/nba-linebot/internal/domain/stats"
	"github.com/preston-bernstein/nba-linebot/internal/domain/teams"
	"github.com/preston-bernstein/nba-linebot/internal/timeutil"
)

const recentMatchups = 3

// TeamMatchup summarises the last three regular-season meetings of two teams,
// seen from team1's game log.
func (s *Service) TeamMatchup(ctx context.Context, team1, team2 string) (string, error) {
	var missing []string
	first, ok := teams.ByAbbreviation(team1)
	if !ok {
		missing = append(missing, team1)
	}
	if _, ok := teams.ByAbbreviation(team2); !ok {
		missing = append(missing, team2)
	}
	if len(missing) > 0 {
		return "找不到隊伍：" + strings.Join(missing, "、"), nil
	}

	src, err := s.source()
	if err != nil {
		return "", err
	}
	log, err := src.LeagueGameFinder(ctx, first.ID, stats.SeasonTypeRegular)
	if err != nil {
		return "", err
	}
	games := log.Filter(func(r stats.Row) bool {
		return facesOpponent(r.String(stats.ColMatchup), team2)
	}).Rows
	if len(games) == 0 {
		return fmt.Sprintf("%s 與 %s 近期沒有交手紀錄。", team1, team2), nil
	}

	sort.SliceStable(games, func(i, j int) bool {
		return gameDateKey(games[i]) > gameDateKey(games[j])
	})
	if len(games) > recentMatchups {
		games = games[:recentMatchups]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s 近三次交手：\n\n", team1, team2)
	for _, g := range games {
		date := g.String(stats.ColGameDate)
		box, err := src.BoxScoreTeamStats(ctx, g.String(stats.ColGameID))
		if err != nil {
			return "", err
		}
		score1, ok1 := teamPoints(box, team1)
		score2, ok2 := teamPoints(box, team2)
		if !ok1 || !ok2 {
			fmt.Fprintf(&b, "%s - 比賽資料不完整\n", date)
			continue
		}
		fmt.Fprintf(&b, "%s\n%s %s : %s %s\n%s\n\n",
			date, team1, score1.String(stats.ColPoints), score2.String(stats.ColPoints), team2,
			winnerLine(team1, team2, score1.Float(stats.ColPoints), score2.Float(stats.ColPoints)))
	}
	return b.String(), nil
}

// facesOpponent matches the opponent as a whole token of a MATCHUP such as
// "LAL vs. BOS" or "LAL @ BOS".
func facesOpponent(matchup, opponent string) bool {
	fields := strings.Fields(matchup)
	for _, f := range fields[min(1, len(fields)):] {
		if f == opponent {
			return true
		}
	}
	return false
}

// gameDateKey orders rows chronologically whatever date format the provider used.
func gameDateKey(r stats.Row) string {
	raw := r.String(stats.ColGameDate)
	if t, err := timeutil.ParseGameDate(raw); err == nil {
		return timeutil.FormatDate(t)
	}
	return raw
}

func teamPoints(box *stats.Table, abbr string) (stats.Row, bool) {
	if box == nil {
		return stats.Row{}, false
	}
	for _, r := range box.Rows {
		if r.String(stats.ColTeamAbbreviation) == abbr && !r.IsNull(stats.ColPoints) {
			return r, true
		}
	}
	return stats.Row{}, false
}

func winnerLine(team1, team2 string, score1, score2 float64) string {
	switch {
	case score1 > score2:
		return "🏆" + team1 + " 勝"
	case score2 > score1:
		return "🏆" + team2 + " 勝"
	default:
		return "🤝 雙方平手"
	}
}

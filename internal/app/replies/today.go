package replies

import (
	"context"
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-linebot/internal/domain/stats"
)

const (
	todayHeader  = "【今日比賽比分】\n"
	todayNoGames = "今天沒有 NBA 比賽喔！"
)

// TodayScores lists the score of every game on today's scoreboard.
func (s *Service) TodayScores(ctx context.Context) (string, error) {
	src, err := s.source()
	if err != nil {
		return "", err
	}
	board, err := src.Scoreboard(ctx, s.today())
	if err != nil {
		return "", err
	}
	if board.Games.Empty() {
		return todayNoGames, nil
	}

	var b strings.Builder
	b.WriteString(todayHeader)
	seen := make(map[string]bool, board.Games.Len())
	for _, game := range board.Games.Rows {
		id := game.String(stats.ColGameID)
		if seen[id] {
			continue
		}
		seen[id] = true

		sides := board.LineScores.Filter(func(r stats.Row) bool {
			return r.String(stats.ColGameID) == id
		})
		if sides.Len() != 2 {
			continue
		}
		away, home := sides.Rows[0], sides.Rows[1]
		fmt.Fprintf(&b, "%s %s - %s %s\n",
			away.String(stats.ColTeamAbbreviation), points(away),
			points(home), home.String(stats.ColTeamAbbreviation))
	}
	return b.String(), nil
}

// points renders a line-score total; games that have not started have none.
func points(r stats.Row) string {
	if r.IsNull(stats.ColPoints) {
		return "-"
	}
	return r.String(stats.ColPoints)
}

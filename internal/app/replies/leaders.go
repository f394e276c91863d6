package replies

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/preston-bernstein/nba-linebot/internal/domain/stats"
)

const topScorersLimit = 20

type scorer struct {
	name string
	ppg  float64
}

// TopScorers ranks the season's players by points per game.
func (s *Service) TopScorers(ctx context.Context) (string, error) {
	src, err := s.source()
	if err != nil {
		return "", err
	}
	table, err := src.LeaguePlayerStats(ctx, s.currentSeason(), stats.SeasonTypeRegular)
	if err != nil {
		return "", err
	}

	scorers := make([]scorer, 0, table.Len())
	for _, r := range table.Rows {
		gp := r.Float(stats.ColGamesPlayed)
		if gp <= 0 {
			continue
		}
		scorers = append(scorers, scorer{
			name: r.String(stats.ColPlayerName),
			ppg:  r.Float(stats.ColPoints) / gp,
		})
	}
	sort.SliceStable(scorers, func(i, j int) bool {
		return scorers[i].ppg > scorers[j].ppg
	})
	if len(scorers) > topScorersLimit {
		scorers = scorers[:topScorersLimit]
	}

	var b strings.Builder
	b.WriteString("🏀 本季得分榜 Top 20\n\n")
	for i, sc := range scorers {
		fmt.Fprintf(&b, "%d. %s: 場均%.1f分\n", i+1, sc.name, sc.ppg)
	}
	return b.String(), nil
}

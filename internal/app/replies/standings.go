package replies

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/preston-bernstein/nba-linebot/internal/domain/stats"
	"github.com/preston-bernstein/nba-linebot/internal/domain/teams"
)

const (
	standingsTop     = 8
	standingsEast    = "🏀 東區排名 Top 8\n"
	standingsDivider = "\n====================\n\n🏀 西區排名 Top 8\n"
)

// TeamStandings lists the top eight teams of each conference.
func (s *Service) TeamStandings(ctx context.Context) (string, error) {
	src, err := s.source()
	if err != nil {
		return "", err
	}
	table, err := src.LeagueStandings(ctx, s.currentSeason())
	if err != nil {
		return "", err
	}

	// One width across the whole league keeps both blocks aligned.
	width := 0
	for _, r := range table.Rows {
		if n := utf8.RuneCountInString(r.String(stats.ColTeamName)); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString(standingsEast)
	writeConference(&b, table, teams.ConferenceEast, width)
	b.WriteString(standingsDivider)
	writeConference(&b, table, teams.ConferenceWest, width)
	return b.String(), nil
}

func writeConference(b *strings.Builder, table *stats.Table, conference string, width int) {
	rows := table.Filter(func(r stats.Row) bool {
		return r.String(stats.ColConference) == conference
	}).Rows
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Float(stats.ColPlayoffRank) < rows[j].Float(stats.ColPlayoffRank)
	})
	if len(rows) > standingsTop {
		rows = rows[:standingsTop]
	}
	for i, r := range rows {
		name := r.String(stats.ColTeamName)
		padded := name + strings.Repeat(" ", width-utf8.RuneCountInString(name))
		fmt.Fprintf(b, "%2d. %s  %2dW %2dL\n", i+1, padded, r.Int(stats.ColWins), r.Int(stats.ColLosses))
	}
}

package replies

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nba-linebot/internal/domain/stats"
	"github.com/preston-bernstein/nba-linebot/internal/testutil"
)

var standingsHeaders = []string{stats.ColTeamName, stats.ColConference, stats.ColPlayoffRank, stats.ColWins, stats.ColLosses}

func standingsStub(rows ...[]any) *testutil.StubProvider {
	return &testutil.StubProvider{
		LeagueStandingsFn: func(ctx context.Context, season string) (*stats.Table, error) {
			return testutil.Table("Standings", standingsHeaders, rows...), nil
		},
	}
}

func TestTeamStandingsFormatsBothConferences(t *testing.T) {
	svc := newService(standingsStub(
		[]any{"Heat", "East", float64(2), float64(50), float64(32)},
		[]any{"Celtics", "East", float64(1), float64(61), float64(21)},
		[]any{"Trail Blazers", "West", float64(1), float64(8), float64(74)},
	))

	got, err := svc.TeamStandings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "🏀 東區排名 Top 8\n"+
		" 1. Celtics        61W 21L\n"+
		" 2. Heat           50W 32L\n"+
		"\n====================\n\n🏀 西區排名 Top 8\n"+
		" 1. Trail Blazers   8W 74L\n", got)
}

func TestTeamStandingsCapsAndAlignsLines(t *testing.T) {
	var rows [][]any
	for i := 15; i >= 1; i-- {
		rows = append(rows, []any{fmt.Sprintf("East%d", i), "East", float64(i), float64(60 - i), float64(22 + i)})
		rows = append(rows, []any{strings.Repeat("W", i), "West", float64(i), float64(60 - i), float64(22 + i)})
	}
	svc := newService(standingsStub(rows...))

	got, err := svc.TeamStandings(context.Background())
	require.NoError(t, err)

	blocks := strings.Split(got, "====================")
	require.Len(t, blocks, 2)
	assert.Equal(t, 8, strings.Count(blocks[0], "W "))
	assert.Contains(t, blocks[0], " 1. East1 ")
	assert.NotContains(t, blocks[0], "East9 ")

	width := -1
	for _, line := range strings.Split(got, "\n") {
		if !strings.HasSuffix(line, "L") {
			continue
		}
		n := utf8.RuneCountInString(line)
		if width == -1 {
			width = n
		}
		assert.Equal(t, width, n, "line %q", line)
	}
	// Width comes from the longest name in the whole table, not just the printed rows.
	assert.Equal(t, len(" 1. ")+15+len("  45W 37L"), width)
}

func TestTeamStandingsStableForEqualRanks(t *testing.T) {
	svc := newService(standingsStub(
		[]any{"Knicks", "East", float64(3), float64(51), float64(31)},
		[]any{"Magic", "East", float64(3), float64(41), float64(41)},
	))

	got, err := svc.TeamStandings(context.Background())
	require.NoError(t, err)
	assert.Less(t, strings.Index(got, "Knicks"), strings.Index(got, "Magic"))
}

func TestTeamStandingsProviderError(t *testing.T) {
	stub := &testutil.StubProvider{
		LeagueStandingsFn: func(ctx context.Context, season string) (*stats.Table, error) {
			assert.Equal(t, "2024-25", season)
			return nil, errors.New("down")
		},
	}
	_, err := newService(stub).TeamStandings(context.Background())
	assert.EqualError(t, err, "down")
}

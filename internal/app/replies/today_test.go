package replies

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nba-linebot/internal/domain/stats"
	"github.com/preston-bernstein/nba-linebot/internal/testutil"
)

func scoreboardStub(board stats.Scoreboard) *testutil.StubProvider {
	return &testutil.StubProvider{
		ScoreboardFn: func(ctx context.Context, date time.Time) (stats.Scoreboard, error) {
			return board, nil
		},
	}
}

func TestTodayScoresNoGames(t *testing.T) {
	svc := newService(scoreboardStub(stats.Scoreboard{
		Games:      testutil.Table("GameHeader", []string{stats.ColGameID}),
		LineScores: testutil.Table("LineScore", []string{stats.ColGameID}),
	}))

	got, err := svc.TodayScores(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "今天沒有 NBA 比賽喔！", got)
}

func TestTodayScoresFormatsEachCompleteGame(t *testing.T) {
	lineHeaders := []string{stats.ColGameID, stats.ColTeamAbbreviation, stats.ColPoints}
	svc := newService(scoreboardStub(stats.Scoreboard{
		Games: testutil.Table("GameHeader", []string{stats.ColGameID},
			[]any{"001"}, []any{"002"}, []any{"003"}, []any{"001"}),
		LineScores: testutil.Table("LineScore", lineHeaders,
			[]any{"001", "LAL", float64(110)},
			[]any{"002", "GSW", nil},
			[]any{"001", "BOS", float64(104)},
			[]any{"002", "DEN", nil},
			[]any{"003", "MIA", float64(90)},
		),
	}))

	got, err := svc.TodayScores(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "【今日比賽比分】\nLAL 110 - 104 BOS\nGSW - - - DEN\n", got)
}

func TestTodayScoresAllGamesIncomplete(t *testing.T) {
	svc := newService(scoreboardStub(stats.Scoreboard{
		Games:      testutil.Table("GameHeader", []string{stats.ColGameID}, []any{"001"}),
		LineScores: testutil.Table("LineScore", []string{stats.ColGameID}),
	}))

	got, err := svc.TodayScores(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "【今日比賽比分】\n", got)
}

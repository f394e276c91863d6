// Package replies builds the text answer for each bot command from stats
// provider data.
package replies

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-linebot/internal/commands"
	"github.com/preston-bernstein/nba-linebot/internal/logging"
	"github.com/preston-bernstein/nba-linebot/internal/metrics"
	"github.com/preston-bernstein/nba-linebot/internal/providers"
	"github.com/preston-bernstein/nba-linebot/internal/timeutil"
)

// SeasonFilter reports whether a career-stats SEASON_ID belongs to the
// category shown by the season-average command.
type SeasonFilter func(seasonID string) bool

// RegularSeasonFilter keeps NBA season ids, which start with "2".
func RegularSeasonFilter(seasonID string) bool {
	return strings.HasPrefix(seasonID, "2")
}

// Service answers parsed commands.
type Service struct {
	provider     providers.StatsProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	now          func() time.Time
	loc          *time.Location
	season       string
	seasonFilter SeasonFilter
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithRecorder records per-command metrics.
func WithRecorder(recorder *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = recorder }
}

// WithClock overrides the time source used for "today" and the current season.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the timezone that defines the calendar day.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithSeason pins the season (e.g. "2024-25") instead of deriving it from the clock.
func WithSeason(season string) Option {
	return func(s *Service) { s.season = strings.TrimSpace(season) }
}

// WithSeasonFilter replaces RegularSeasonFilter.
func WithSeasonFilter(filter SeasonFilter) Option {
	return func(s *Service) {
		if filter != nil {
			s.seasonFilter = filter
		}
	}
}

// NewService constructs a Service backed by provider.
func NewService(provider providers.StatsProvider, opts ...Option) *Service {
	s := &Service{
		provider:     provider,
		now:          time.Now,
		loc:          time.UTC,
		seasonFilter: RegularSeasonFilter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var failurePrefixes = map[commands.Kind]string{
	commands.TodayScores:         "查詢今日比賽時發生錯誤：",
	commands.PlayerLastGame:      "查詢球員數據時發生錯誤：",
	commands.PlayerSeasonAverage: "查詢本季數據時發生錯誤：",
	commands.TeamStandings:       "查詢球隊排名時發生錯誤：",
	commands.TeamMatchup:         "查詢交手紀錄時發生錯誤：",
	commands.TopScorers:          "取得得分榜資料時發生錯誤：",
}

// Respond returns the reply for cmd. It never returns an empty string: provider
// failures and panics inside a builder become an error message for the user.
func (s *Service) Respond(ctx context.Context, cmd commands.Command) (reply string) {
	start := time.Now()
	var failure error

	defer func() {
		if r := recover(); r != nil {
			failure = fmt.Errorf("%v", r)
			reply = failurePrefixes[cmd.Kind] + failure.Error()
		}
		if failure != nil {
			logging.Warn(logging.FromContext(ctx, s.logger), "command failed",
				slog.String(logging.FieldCommand, cmd.Kind.String()), "err", failure)
		}
		s.metrics.RecordCommand(cmd.Kind.String(), time.Since(start), failure != nil)
	}()

	var err error
	switch cmd.Kind {
	case commands.TodayScores:
		reply, err = s.TodayScores(ctx)
	case commands.PlayerLastGame:
		reply, err = s.PlayerLastGame(ctx, cmd.PlayerName)
	case commands.PlayerSeasonAverage:
		reply, err = s.PlayerSeasonAverage(ctx, cmd.PlayerName)
	case commands.TeamStandings:
		reply, err = s.TeamStandings(ctx)
	case commands.TeamMatchup:
		reply, err = s.TeamMatchup(ctx, cmd.Team1, cmd.Team2)
	case commands.TopScorers:
		reply, err = s.TopScorers(ctx)
	default:
		reply = cmd.Hint
		if reply == "" {
			reply = commands.HelpText
		}
	}
	if err != nil {
		failure = err
		reply = failurePrefixes[cmd.Kind] + err.Error()
	}
	return reply
}

func (s *Service) source() (providers.StatsProvider, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	return s.provider, nil
}

func (s *Service) today() time.Time {
	return s.now().In(s.loc)
}

func (s *Service) currentSeason() string {
	if s.season != "" {
		return s.season
	}
	return timeutil.SeasonFor(s.today())
}

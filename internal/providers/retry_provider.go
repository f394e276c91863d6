package providers

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/preston-bernstein/nba-linebot/internal/domain/players"
	"github.com/preston-bernstein/nba-linebot/internal/domain/stats"
	"github.com/preston-bernstein/nba-linebot/internal/logging"
	"github.com/preston-bernstein/nba-linebot/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a StatsProvider with metrics and retry/backoff behavior.
type retryingProvider struct {
	inner        StatsProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc
	rng          *rand.Rand
	sleep        func(ctx context.Context, d time.Duration) error
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
// Every attempt is recorded on the recorder under "<name>.<endpoint>".
func NewRetryingProvider(inner StatsProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) StatsProvider {
	return NewRetryingProviderWithRNG(inner, logger, recorder, name, nil, maxAttempts, backoff)
}

// NewRetryingProviderWithRNG is NewRetryingProvider with an explicit jitter source.
func NewRetryingProviderWithRNG(inner StatsProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, rng *rand.Rand, maxAttempts int, backoff time.Duration) StatsProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if name == "" {
		name = "provider"
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
		rng:   rng,
		sleep: sleepContext,
	}
}

func (r *retryingProvider) FindPlayersByFullName(ctx context.Context, name string) ([]players.Player, error) {
	return withRetry(ctx, r, "commonallplayers", func() ([]players.Player, error) {
		return r.inner.FindPlayersByFullName(ctx, name)
	})
}

func (r *retryingProvider) PlayerGameLog(ctx context.Context, playerID int, season string, seasonType stats.SeasonType) (*stats.Table, error) {
	return withRetry(ctx, r, "playergamelog", func() (*stats.Table, error) {
		return r.inner.PlayerGameLog(ctx, playerID, season, seasonType)
	})
}

func (r *retryingProvider) PlayerCareerStats(ctx context.Context, playerID int) (*stats.Table, error) {
	return withRetry(ctx, r, "playercareerstats", func() (*stats.Table, error) {
		return r.inner.PlayerCareerStats(ctx, playerID)
	})
}

func (r *retryingProvider) LeagueStandings(ctx context.Context, season string) (*stats.Table, error) {
	return withRetry(ctx, r, "leaguestandingsv3", func() (*stats.Table, error) {
		return r.inner.LeagueStandings(ctx, season)
	})
}

func (r *retryingProvider) LeagueGameFinder(ctx context.Context, teamID int, seasonType stats.SeasonType) (*stats.Table, error) {
	return withRetry(ctx, r, "leaguegamefinder", func() (*stats.Table, error) {
		return r.inner.LeagueGameFinder(ctx, teamID, seasonType)
	})
}

func (r *retryingProvider) BoxScoreTeamStats(ctx context.Context, gameID string) (*stats.Table, error) {
	return withRetry(ctx, r, "boxscoretraditionalv2", func() (*stats.Table, error) {
		return r.inner.BoxScoreTeamStats(ctx, gameID)
	})
}

func (r *retryingProvider) LeaguePlayerStats(ctx context.Context, season string, seasonType stats.SeasonType) (*stats.Table, error) {
	return withRetry(ctx, r, "leaguedashplayerstats", func() (*stats.Table, error) {
		return r.inner.LeaguePlayerStats(ctx, season, seasonType)
	})
}

func (r *retryingProvider) Scoreboard(ctx context.Context, date time.Time) (stats.Scoreboard, error) {
	return withRetry(ctx, r, "scoreboardv2", func() (stats.Scoreboard, error) {
		return r.inner.Scoreboard(ctx, date)
	})
}

func withRetry[T any](ctx context.Context, r *retryingProvider, endpoint string, call func() (T, error)) (T, error) {
	var zero T
	if r.inner == nil {
		return zero, ErrProviderUnavailable
	}

	metricName := r.providerName + "." + endpoint
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		result, err := call()
		r.metrics.RecordProviderAttempt(metricName, time.Since(start), err)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(metricName, rlErr.RetryAfter)
		}
		if attempt == r.maxAttempts || !retryable(err) {
			break
		}

		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch retry",
			slog.String(logging.FieldEndpoint, endpoint),
			"attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		if err := r.sleep(ctx, r.computeDelay(err, attempt)); err != nil {
			return zero, err
		}
	}

	if r.maxAttempts > 1 {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed",
			slog.String(logging.FieldEndpoint, endpoint), "attempts", r.maxAttempts, "err", lastErr)
	}
	return zero, lastErr
}

// computeDelay honours Retry-After for rate limits and otherwise applies the
// backoff with jitter in [base/2, base].
func (r *retryingProvider) computeDelay(err error, attempt int) time.Duration {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		return rlErr.RetryAfter
	}
	base := r.backoffFn(attempt)
	if base <= 1 {
		return base
	}
	half := base / 2
	return half + time.Duration(r.rng.Int63n(int64(half)+1))
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrProviderUnavailable) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	return true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

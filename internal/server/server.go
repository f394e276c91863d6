package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-linebot/internal/app/replies"
	"github.com/preston-bernstein/nba-linebot/internal/config"
	httpserver "github.com/preston-bernstein/nba-linebot/internal/http"
	"github.com/preston-bernstein/nba-linebot/internal/http/handlers"
	"github.com/preston-bernstein/nba-linebot/internal/line"
	"github.com/preston-bernstein/nba-linebot/internal/logging"
	"github.com/preston-bernstein/nba-linebot/internal/metrics"
	"github.com/preston-bernstein/nba-linebot/internal/providers"
	"github.com/preston-bernstein/nba-linebot/internal/timeutil"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	bot           *replies.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs the webhook server with the configured provider and LINE client.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	replier, err := line.NewClient(line.Config{
		ChannelAccessToken: cfg.Line.ChannelAccessToken,
		Endpoint:           cfg.Line.APIEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("build line client: %w", err)
	}
	return newServer(cfg, logger, nil, replier, nil), nil
}

// NewBot builds the reply service on the configured provider without any LINE
// or HTTP wiring. The one-shot CLI uses it.
func NewBot(cfg config.Config, logger *slog.Logger) *replies.Service {
	recorder := metrics.NewRecorder()
	provider := newProviderFactory(logger, recorder).build(cfg)
	return buildBot(cfg, provider, logger, recorder)
}

// newServer wires every component. A nil provider is built from cfg; an injected
// one is still wrapped with retries so metrics and logging stay consistent.
func newServer(cfg config.Config, logger *slog.Logger, provider providers.StatsProvider, replier line.Replier, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	bot := buildBot(cfg, provider, logger, recorder)
	httpSrv := buildHTTPServer(cfg, bot, replier, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		bot:           bot,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildBot(cfg config.Config, provider providers.StatsProvider, logger *slog.Logger, recorder *metrics.Recorder) *replies.Service {
	return replies.NewService(provider,
		replies.WithLogger(logger),
		replies.WithRecorder(recorder),
		replies.WithLocation(timeutil.ResolveLocation(cfg.Stats.Timezone)),
		replies.WithSeason(cfg.Stats.Season),
	)
}

func buildHTTPServer(cfg config.Config, bot *replies.Service, replier line.Replier, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(cfg.Line.ChannelSecret, bot, replier, logger, recorder)
	router := httpserver.NewRouter(handler, cfg.WebhookPath, logger, recorder)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info(name+" server starting", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

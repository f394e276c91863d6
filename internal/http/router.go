package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/nba-linebot/internal/http/handlers"
	"github.com/preston-bernstein/nba-linebot/internal/http/middleware"
	"github.com/preston-bernstein/nba-linebot/internal/metrics"
)

const defaultWebhookPath = "/callback"

// NewRouter registers the health probes and the LINE webhook route.
func NewRouter(h *handlers.Handler, webhookPath string, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	if webhookPath == "" {
		webhookPath = defaultWebhookPath
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging(logger, recorder))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Post(webhookPath, h.Callback)
	return r
}

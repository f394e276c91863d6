package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/nba-linebot/internal/commands"
	"github.com/preston-bernstein/nba-linebot/internal/line"
	"github.com/preston-bernstein/nba-linebot/internal/metrics"
)

// Responder turns a parsed command into reply text.
type Responder interface {
	Respond(ctx context.Context, cmd commands.Command) string
}

// Handler wires HTTP routes to the bot.
type Handler struct {
	channelSecret string
	bot           Responder
	replier       line.Replier
	logger        *slog.Logger
	metrics       *metrics.Recorder
}

// NewHandler constructs a Handler. channelSecret verifies webhook signatures.
func NewHandler(channelSecret string, bot Responder, replier line.Replier, logger *slog.Logger, recorder *metrics.Recorder) *Handler {
	return &Handler{
		channelSecret: channelSecret,
		bot:           bot,
		replier:       replier,
		logger:        logger,
		metrics:       recorder,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the bot can answer webhooks.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.bot == nil || h.replier == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/nba-linebot/internal/commands"
	"github.com/preston-bernstein/nba-linebot/internal/line"
	"github.com/preston-bernstein/nba-linebot/internal/logging"
)

// Callback handles a LINE webhook delivery: each text event is parsed,
// answered and replied to in order. Reply failures are logged only, so LINE
// does not redeliver a callback whose replies were partly sent.
func (h *Handler) Callback(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	if h.bot == nil || h.replier == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "not ready", h.logger)
		return
	}

	events, err := line.ParseRequest(h.channelSecret, r)
	if err != nil {
		if errors.Is(err, line.ErrInvalidSignature) {
			logging.Warn(logger, "rejected webhook", "err", err)
			writeError(w, r, nethttp.StatusBadRequest, "invalid signature", h.logger)
			return
		}
		logging.Warn(logger, "malformed webhook", "err", err)
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	logging.Info(logger, "webhook received", slog.Int(logging.FieldEvents, len(events)))

	ctx := r.Context()
	for _, event := range events {
		cmd := commands.Parse(event.Text)
		reply := h.bot.Respond(ctx, cmd)

		err := h.replier.ReplyText(ctx, event.ReplyToken, reply)
		h.metrics.RecordReply(err)
		if err != nil {
			logging.Error(logger, "reply failed", err, slog.String(logging.FieldCommand, cmd.Kind.String()))
			continue
		}
		logging.Info(logger, "replied", slog.String(logging.FieldCommand, cmd.Kind.String()))
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

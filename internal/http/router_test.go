package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/preston-bernstein/nba-linebot/internal/commands"
	"github.com/preston-bernstein/nba-linebot/internal/http/handlers"
	"github.com/preston-bernstein/nba-linebot/internal/metrics"
	"github.com/preston-bernstein/nba-linebot/internal/testutil"
)

type fixedBot struct{}

func (fixedBot) Respond(ctx context.Context, cmd commands.Command) string { return "pong" }

type nopReplier struct{ calls int }

func (r *nopReplier) ReplyText(ctx context.Context, replyToken, text string) error {
	r.calls++
	return nil
}

func newTestRouter(path string) (http.Handler, *nopReplier) {
	replier := &nopReplier{}
	rec := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()
	h := handlers.NewHandler("secret", fixedBot{}, replier, logger, rec)
	return NewRouter(h, path, logger, rec), replier
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router, _ := newTestRouter("")

	for _, path := range []string{"/health", "/ready"} {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
	}
}

func TestRouterServesWebhookOnDefaultPath(t *testing.T) {
	router, replier := newTestRouter("")

	body := testutil.CallbackBody(testutil.LINETextEvent{Text: "今日比賽", ReplyToken: "t1"})
	rr := testutil.ServeRequest(router, testutil.SignedCallbackRequest("/callback", "secret", body))

	testutil.AssertStatus(t, rr, http.StatusOK)
	if replier.calls != 1 {
		t.Fatalf("expected one reply, got %d", replier.calls)
	}
}

func TestRouterServesWebhookOnConfiguredPath(t *testing.T) {
	router, replier := newTestRouter("/hooks/line")

	body := testutil.CallbackBody(testutil.LINETextEvent{Text: "得分榜", ReplyToken: "t1"})
	rr := testutil.ServeRequest(router, testutil.SignedCallbackRequest("/hooks/line", "secret", body))
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.ServeRequest(router, testutil.SignedCallbackRequest("/callback", "secret", body))
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	if replier.calls != 1 {
		t.Fatalf("expected one reply, got %d", replier.calls)
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router, _ := newTestRouter("")

	rr := testutil.Serve(router, http.MethodGet, "/games", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRouterWrongMethodReturns405(t *testing.T) {
	router, replier := newTestRouter("")

	rr := testutil.Serve(router, http.MethodGet, "/callback", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)

	rr = testutil.Serve(router, http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	if replier.calls != 0 {
		t.Fatalf("expected no replies, got %d", replier.calls)
	}
}

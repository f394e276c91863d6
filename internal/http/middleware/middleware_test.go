package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nba-linebot/internal/metrics"
	"github.com/preston-bernstein/nba-linebot/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndRecordsMetrics(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected request id in context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	handler := LoggingMiddleware(logger, rec, next)
	rr := testutil.Serve(handler, http.MethodPost, "/callback", nil)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if rec.ProviderCalls("http") != 0 {
		t.Fatalf("expected provider metrics untouched")
	}
	if !strings.Contains(buf.String(), "request complete") {
		t.Fatalf("expected completion log, got %s", buf.String())
	}
}

func TestLoggingMiddlewareGeneratesRequestIDWhenMissing(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected generated request id")
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, rec, next)
	rr := testutil.Serve(handler, http.MethodGet, "/health?foo=bar", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("X-Request-ID"); got == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
}

func TestLoggingMiddlewareKeepsValidIncomingRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "line-redelivery-1")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	if seen != "line-redelivery-1" || rr.Header().Get("X-Request-ID") != "line-redelivery-1" {
		t.Fatalf("expected incoming id to be kept, got %q", seen)
	}
}

func TestLoggingMiddlewareUsesForwardedFor(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, rec, next)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	rr := testutil.ServeRequest(handler, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(buf.String(), "198.51.100.1") {
		t.Fatalf("expected client ip in log, got %s", buf.String())
	}
}

func TestLoggingMiddlewareDefaultsLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rr := testutil.Serve(LoggingMiddleware(nil, nil, next), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

// Ensure responseWriter defaults status correctly.
func TestResponseWriterDefaultsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}
	if w.status != 0 {
		t.Fatalf("expected zero status before write, got %d", w.status)
	}
	w.WriteHeader(http.StatusAccepted)
	if w.status != http.StatusAccepted {
		t.Fatalf("expected status set to 202, got %d", w.status)
	}
}

func TestRoutePattern(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Post("/callback", func(w http.ResponseWriter, req *http.Request) {
		got = routePattern(req)
	})
	testutil.Serve(r, http.MethodPost, "/callback", nil)
	if got != "/callback" {
		t.Fatalf("expected chi route pattern, got %q", got)
	}

	plain := httptest.NewRequest(http.MethodGet, "/nope", nil)
	if got := routePattern(plain); got != unmatchedRoute {
		t.Fatalf("expected %q without chi context, got %q", unmatchedRoute, got)
	}
}

func TestLoggingAdapterWrapsHandler(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	called := false
	wrapped := Logging(logger, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	testutil.Serve(wrapped, http.MethodGet, "/health", nil)
	if !called {
		t.Fatalf("expected wrapped handler to run")
	}
}

func TestRequestIDHelpers(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}

	ctx = withRequestID(ctx, "abc123")
	if got := RequestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected id from context, got %s", got)
	}
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id for nil context, got %s", got)
	}
}

func BenchmarkLoggingMiddleware(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Microsecond)
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, rec, next)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/callback", nil)
		handler.ServeHTTP(rr, req)
	}
}

package nbastats

import (
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-linebot/internal/timeutil"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveLocation(name string) *time.Location {
	if name == "" {
		name = defaultTimezone
	}
	if loc := timeutil.ResolveLocation(name); loc != nil {
		return loc
	}
	return time.UTC
}

// setBrowserHeaders mimics the nba.com site; the API rejects or stalls bare clients.
func setBrowserHeaders(h http.Header) {
	h.Set("Accept", "application/json, text/plain, */*")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("User-Agent", userAgent)
	h.Set("Referer", referer)
	h.Set("Origin", origin)
	h.Set("x-nba-stats-origin", "stats")
	h.Set("x-nba-stats-token", "true")
}

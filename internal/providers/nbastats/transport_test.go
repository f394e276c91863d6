package nbastats

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", defaultBaseURL},
		{"https://stats.example.com/stats/", "https://stats.example.com/stats"},
		{"https://stats.example.com/stats", "https://stats.example.com/stats"},
	}

	for _, c := range cases {
		if got := normalizeBaseURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestResolveHTTPClientDefaultsTimeout(t *testing.T) {
	client := resolveHTTPClient(nil, 0)
	httpClient, ok := client.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", client)
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected timeout %s, got %s", defaultHTTPTimeout, httpClient.Timeout)
	}
}

func TestResolveHTTPClientHonoursConfiguredTimeout(t *testing.T) {
	client := resolveHTTPClient(nil, 3*time.Second).(*http.Client)
	if client.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", client.Timeout)
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	client := resolveHTTPClient(custom, time.Second)
	if client != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestResolveLocationFallsBackToUTC(t *testing.T) {
	if loc := resolveLocation("Not/AZone"); loc != time.UTC {
		t.Fatalf("expected UTC fallback, got %s", loc)
	}
	if loc := resolveLocation(""); loc.String() != defaultTimezone {
		t.Fatalf("expected default timezone, got %s", loc)
	}
}

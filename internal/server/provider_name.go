package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-linebot/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
// Used as the metrics prefix for every provider call.
func normalizeProviderName(raw string, provider providers.StatsProvider) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}

package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ScoreboardLayout is the MM/DD/YYYY form the stats provider expects for game dates.
const ScoreboardLayout = "01/02/2006"

// gameDateLayouts are the shapes GAME_DATE takes across provider endpoints.
var gameDateLayouts = []string{
	DateLayout,
	"Jan 02, 2006",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseGameDate accepts the GAME_DATE variants returned by the provider
// ("2025-03-08", "MAR 08, 2025", "2025-03-08T00:00:00").
func ParseGameDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if len(v) > 3 && v[3] == ' ' {
		// Month abbreviations arrive upper-cased ("APR 13, 2025").
		v = v[:1] + strings.ToLower(v[1:3]) + v[3:]
	}
	for _, layout := range gameDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("timeutil: unrecognized game date %q", value)
}

// SeasonFor returns the season label ("2025-26") covering t. Seasons roll over in October.
func SeasonFor(t time.Time) string {
	start := t.Year()
	if t.Month() < time.October {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

// ResolveLocation returns the named location, or nil if the name is empty or invalid.
func ResolveLocation(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}

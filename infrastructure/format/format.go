// Package format turns raw YouTube values into display strings.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sosodev/duration"
)

// ShortMaxSeconds is the longest duration still classified as a short.
const ShortMaxSeconds = 60

// maxDuration bounds what ParseDuration accepts; longer values are treated
// as unknown.
const maxDuration = 100 * 365 * 24 * time.Hour

// ParseDuration converts an ISO-8601 duration such as "PT1H2M3S" to whole
// seconds. Empty, malformed, negative or absurdly long input yields 0.
func ParseDuration(iso string) int {
	d, err := duration.Parse(strings.TrimSpace(iso))
	if err != nil {
		return 0
	}
	total := d.ToTimeDuration()
	if total <= 0 || total > maxDuration {
		return 0
	}
	return int(total / time.Second)
}

// FormatSeconds renders seconds as H:MM:SS, or M:SS under an hour.
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatDuration renders an ISO-8601 duration for display.
func FormatDuration(iso string) string {
	return FormatSeconds(ParseDuration(iso))
}

// IsShort reports whether a video of the given length counts as a short.
// Zero-length videos (unknown duration, live streams) never do.
func IsShort(seconds int) bool {
	return seconds > 0 && seconds <= ShortMaxSeconds
}

var countUnits = []struct {
	size   float64
	suffix string
}{
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// FormatCount renders a raw numeric string as 999, 1.5K, 12K, 3.4M ...
// Non-numeric input renders as "0".
func FormatCount(raw string) string {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return "0"
	}
	return FormatUint(n)
}

func FormatUint(n uint64) string {
	v := float64(n)
	for i, u := range countUnits {
		if v < u.size {
			continue
		}
		s := strconv.FormatFloat(v/u.size, 'f', 1, 64)
		// 999950 rounds to "1000.0K"; promote to the next unit
		if s == "1000.0" && i > 0 {
			s = "1.0"
			u = countUnits[i-1]
		}
		return strings.TrimSuffix(s, ".0") + u.suffix
	}
	return strconv.FormatUint(n, 10)
}

// RelativeTime renders an RFC3339 timestamp relative to now ("3 days ago").
// Unparseable input yields "".
func RelativeTime(published string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, published)
	if err != nil {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

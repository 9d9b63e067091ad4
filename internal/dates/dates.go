// Package dates interprets the d/m/yy date strings the feed scrapers emit.
package dates

import (
	"strconv"
	"strings"
	"time"
)

// Two-digit years below this cutoff land in the 2000s, the rest in the
// 1900s. Fixed policy, not configurable.
const centuryCutoff = 50

// Parse converts a d/m/yy string into a midnight-aligned local instant.
// Missing or unparsable input yields the current instant rather than an
// error; callers treat "no date" as "added now".
func Parse(s string) time.Time {
	return ParseAt(s, time.Now())
}

// ParseAt is Parse with an explicit fallback instant.
func ParseAt(s string, now time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return now
	}

	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return now
	}

	day, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return now
	}

	if year < centuryCutoff {
		year += 2000
	} else {
		year += 1900
	}

	// Out-of-range day/month roll over per time.Date; no rejection.
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

package util

import (
	"fmt"
	"time"
)

// HumanDuration renders how long ago a timestamp was, dashboard style:
// "just now", "5 minutes ago", "2 days ago", "3 weeks ago".
func HumanDuration(since time.Duration) string {
	if since < 0 {
		since = 0
	}

	switch {
	case since < time.Minute:
		return "just now"
	case since < time.Hour:
		return plural(int(since.Minutes()), "minute")
	case since < 24*time.Hour:
		return plural(int(since.Hours()), "hour")
	case since < 7*24*time.Hour:
		return plural(int(since.Hours()/24), "day")
	case since < 30*24*time.Hour:
		return plural(int(since.Hours()/(24*7)), "week")
	case since < 365*24*time.Hour:
		return plural(int(since.Hours()/(24*30)), "month")
	default:
		return plural(int(since.Hours()/(24*365)), "year")
	}
}

// HumanTime is HumanDuration relative to now.
func HumanTime(t time.Time) string {
	return HumanDuration(time.Since(t))
}

func plural(n int, unit string) string {
	if n <= 1 {
		n = 1
	}
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Year returns the calendar year of t in its current location.
func Year(t time.Time) int {
	return t.Year()
}

// Clock returns the current time. Handlers take one so tests can pin it.
type Clock func() time.Time

// SystemClock reports wall-clock time in the local zone.
func SystemClock() time.Time {
	return time.Now()
}

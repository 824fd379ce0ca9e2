package utils

import "time"

// isoMillis matches the timestamp shape browsers produce with Date.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z"

// FormatISO8601 renders t in UTC, e.g. 2025-09-24T08:12:00.000Z.
// Returns "" for the zero time to let callers decide how to render.
func FormatISO8601(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(isoMillis)
}

package timeclock

import (
	"strconv"
	"strings"
	"time"
)

// clockLayouts are tried in order; the first match wins. The list mirrors the
// formats the clock export has been observed to emit.
var clockLayouts = []string{
	"January 2 2006 15:04:05",
	"January 2 2006 15:04",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"2006-01-02 15:04:05",
}

// ParseClockTime interprets a human-readable date-time cell. The boolean is
// false when no known layout matches; callers must skip the row rather than
// substitute a default instant.
func ParseClockTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range clockLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// ParseEpochSeconds interprets a cell holding Unix epoch seconds, converted to
// local time.
func ParseEpochSeconds(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, false
	}

	return time.Unix(seconds, 0).In(time.Local), true
}

package timeutil

import "time"

func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DayKey renders the calendar date as a sortable 2006-01-02 string.
func DayKey(value time.Time) string {
	return value.Format("2006-01-02")
}

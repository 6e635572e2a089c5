package timeutil

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, time.January, 21, 10, 55, 0, 0, time.Local)

	if !SameDay(base, time.Date(2026, time.January, 21, 23, 59, 59, 0, time.Local)) {
		t.Fatal("expected same day for two instants on 2026-01-21")
	}
	if SameDay(base, time.Date(2026, time.January, 22, 0, 0, 0, 0, time.Local)) {
		t.Fatal("expected different day for midnight of the next date")
	}
}

func TestStartOfDayKeepsDateAndLocation(t *testing.T) {
	t.Parallel()

	value := time.Date(2026, time.March, 5, 19, 6, 1, 0, time.Local)
	start := StartOfDay(value)

	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Fatalf("expected midnight, got %s", start)
	}
	if !SameDay(start, value) {
		t.Fatalf("start of day changed the date: %s", start)
	}
	if start.Location() != value.Location() {
		t.Fatal("start of day changed the location")
	}
}

func TestDayKey(t *testing.T) {
	t.Parallel()

	value := time.Date(2026, time.January, 2, 8, 0, 0, 0, time.Local)
	if got := DayKey(value); got != "2026-01-02" {
		t.Fatalf("unexpected day key: %s", got)
	}
}

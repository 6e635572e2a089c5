package timeclock

import (
	"errors"
	"testing"
	"time"

	"github.com/stfelty/connect-team-hr-formatter/internal/timeutil"
)

func TestBuildDailyTotalsSumsHoursPerEmployee(t *testing.T) {
	t.Parallel()

	shifts := []Shift{
		testShift(t, "100", "2026-01-21", 4.00),
		testShift(t, "100", "2026-01-21", 3.50),
		testShift(t, "200", "2026-01-21", 8.00),
	}

	reportDate, summaries, err := BuildDailyTotals(shifts, time.Time{}, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := timeutil.DayKey(reportDate); got != "2026-01-21" {
		t.Fatalf("unexpected report date: %s", got)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].EmployeeID != "100" || summaries[0].RegularHours != 7.50 {
		t.Fatalf("unexpected first summary: %+v", summaries[0])
	}
	if summaries[1].EmployeeID != "200" || summaries[1].RegularHours != 8.00 {
		t.Fatalf("unexpected second summary: %+v", summaries[1])
	}
}

func TestBuildDailyTotalsDefaultsToMostRecentDate(t *testing.T) {
	t.Parallel()

	shifts := []Shift{
		testShift(t, "100", "2026-01-20", 8.00),
		testShift(t, "200", "2026-01-21", 6.00),
	}

	reportDate, summaries, err := BuildDailyTotals(shifts, time.Time{}, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := timeutil.DayKey(reportDate); got != "2026-01-21" {
		t.Fatalf("expected most recent date 2026-01-21, got %s", got)
	}
	// The earlier date's shifts are dropped, not merged.
	if len(summaries) != 1 || summaries[0].EmployeeID != "200" {
		t.Fatalf("expected only employee 200 on the report date, got %+v", summaries)
	}
}

func TestBuildDailyTotalsHonorsExplicitDate(t *testing.T) {
	t.Parallel()

	shifts := []Shift{
		testShift(t, "100", "2026-01-20", 8.00),
		testShift(t, "200", "2026-01-21", 6.00),
	}

	explicit := time.Date(2026, time.January, 20, 14, 30, 0, 0, time.Local)
	reportDate, summaries, err := BuildDailyTotals(shifts, explicit, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := timeutil.DayKey(reportDate); got != "2026-01-20" {
		t.Fatalf("expected explicit date 2026-01-20, got %s", got)
	}
	if len(summaries) != 1 || summaries[0].EmployeeID != "100" {
		t.Fatalf("expected only employee 100, got %+v", summaries)
	}
}

func TestBuildDailyTotalsOrdersByEmployeeIDString(t *testing.T) {
	t.Parallel()

	shifts := []Shift{
		testShift(t, "9", "2026-01-21", 1.00),
		testShift(t, "10", "2026-01-21", 2.00),
		testShift(t, "100", "2026-01-21", 3.00),
	}

	_, summaries, err := BuildDailyTotals(shifts, time.Time{}, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"10", "100", "9"}
	for i, summary := range summaries {
		if summary.EmployeeID != want[i] {
			t.Fatalf("unexpected order at %d: want %s, got %s", i, want[i], summary.EmployeeID)
		}
	}
}

func TestBuildDailyTotalsDerivesPaidHours(t *testing.T) {
	t.Parallel()

	shifts := []Shift{
		testShift(t, "100", "2026-01-21", 7.25),
		testShift(t, "200", "2026-01-21", 0.50),
	}

	_, summaries, err := BuildDailyTotals(shifts, time.Time{}, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, summary := range summaries {
		if summary.PaidHours != summary.RegularHours+summary.OT1Hours {
			t.Fatalf("paid hours not derived for %s: %+v", summary.EmployeeID, summary)
		}
		if summary.PayType != "Work" {
			t.Fatalf("unexpected pay type: %s", summary.PayType)
		}
		if summary.LastName != "" || summary.FirstName != "" || summary.UnpaidHours != 0 || summary.OT1Hours != 0 {
			t.Fatalf("unexpected fixed fields: %+v", summary)
		}
	}
}

func TestBuildDailyTotalsIsDeterministic(t *testing.T) {
	t.Parallel()

	shifts := []Shift{
		testShift(t, "300", "2026-01-21", 2.75),
		testShift(t, "100", "2026-01-21", 4.00),
		testShift(t, "100", "2026-01-21", 3.50),
		testShift(t, "200", "2026-01-20", 8.00),
	}

	firstDate, first, err := BuildDailyTotals(shifts, time.Time{}, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	secondDate, second, err := BuildDailyTotals(shifts, time.Time{}, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !firstDate.Equal(secondDate) {
		t.Fatalf("report date diverged: %s vs %s", firstDate, secondDate)
	}
	if len(first) != len(second) {
		t.Fatalf("summary count diverged: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("summary %d diverged: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestBuildDailyTotalsErrors(t *testing.T) {
	t.Parallel()

	if _, _, err := BuildDailyTotals(nil, time.Time{}, discardLogger()); !errors.Is(err, ErrNoValidShifts) {
		t.Fatalf("expected ErrNoValidShifts, got %v", err)
	}

	shifts := []Shift{testShift(t, "100", "2026-01-21", 8.00)}
	missing := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.Local)
	_, _, err := BuildDailyTotals(shifts, missing, discardLogger())
	if !errors.Is(err, ErrNoShiftsForDate) {
		t.Fatalf("expected ErrNoShiftsForDate, got %v", err)
	}
}

func testShift(t *testing.T, employeeID, day string, hours float64) Shift {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		t.Fatalf("parse day %q: %v", day, err)
	}
	return Shift{
		EmployeeID: employeeID,
		Day:        parsed,
		Start:      parsed.Add(8 * time.Hour),
		End:        parsed.Add(8*time.Hour + time.Duration(hours*float64(time.Hour))),
		Hours:      hours,
	}
}

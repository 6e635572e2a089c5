package storage

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stfelty/connect-team-hr-formatter/internal/timeutil"
	"github.com/stfelty/connect-team-hr-formatter/timeclock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testRun() (Run, []timeclock.Shift) {
	day := time.Date(2026, time.January, 21, 0, 0, 0, 0, time.Local)
	run := Run{
		ReportDate:   day,
		StartDate:    "01/21/2026",
		EndDate:      "01/21/2026",
		ArtifactPath: "output/HR_Report_20260121_190601.xlsx",
		RowsRead:     5,
		Accepted:     2,
		Overnight:    1,
		Unparseable:  1,
	}
	shifts := []timeclock.Shift{
		{
			EmployeeID: "100",
			Day:        day,
			Start:      day.Add(10*time.Hour + 55*time.Minute),
			End:        day.Add(19*time.Hour + 6*time.Minute + time.Second),
			Hours:      8.18,
		},
		{
			EmployeeID: "200",
			Day:        day,
			Start:      day.Add(8 * time.Hour),
			End:        day.Add(16 * time.Hour),
			Hours:      8.00,
		},
	}
	return run, shifts
}

func TestSaveRunRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	run, shifts := testRun()

	runID, err := store.SaveRun(run, shifts)
	if err != nil {
		t.Fatalf("save run: %v", err)
	}
	if runID <= 0 {
		t.Fatalf("expected positive run id, got %d", runID)
	}

	loaded, found, err := store.GetRun(runID)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !found {
		t.Fatal("expected run to exist")
	}
	if timeutil.DayKey(loaded.ReportDate) != "2026-01-21" {
		t.Fatalf("unexpected report date: %s", timeutil.DayKey(loaded.ReportDate))
	}
	if loaded.Accepted != 2 || loaded.Overnight != 1 || loaded.Unparseable != 1 || loaded.RowsRead != 5 {
		t.Fatalf("unexpected counters: %+v", loaded)
	}

	stored, err := store.ListShifts(runID)
	if err != nil {
		t.Fatalf("list shifts: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(stored))
	}
	if stored[0].EmployeeID != "100" || stored[0].Hours != 8.18 {
		t.Fatalf("unexpected first shift: %+v", stored[0])
	}
	if !stored[0].Start.Equal(shifts[0].Start) || !stored[0].End.Equal(shifts[0].End) {
		t.Fatalf("shift instants did not survive the round trip: %+v", stored[0])
	}
}

func TestSaveRunPersistsZeroRoundedShift(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	run, _ := testRun()

	// A 10-second punch is accepted by extraction with hours rounded to 0.00;
	// persisting it must not fail the run.
	day := time.Date(2026, time.January, 21, 0, 0, 0, 0, time.Local)
	shifts := []timeclock.Shift{
		{
			EmployeeID: "100",
			Day:        day,
			Start:      day.Add(10 * time.Hour),
			End:        day.Add(10*time.Hour + 10*time.Second),
			Hours:      0,
		},
	}
	run.RowsRead = 1
	run.Accepted = 1
	run.Overnight = 0
	run.Unparseable = 0

	runID, err := store.SaveRun(run, shifts)
	if err != nil {
		t.Fatalf("save run with zero-rounded shift: %v", err)
	}

	stored, err := store.ListShifts(runID)
	if err != nil {
		t.Fatalf("list shifts: %v", err)
	}
	if len(stored) != 1 || stored[0].Hours != 0 {
		t.Fatalf("unexpected stored shifts: %+v", stored)
	}
}

func TestStoredShiftsReaggregateIdentically(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	run, shifts := testRun()

	_, original, err := timeclock.BuildDailyTotals(shifts, run.ReportDate, testLogger())
	if err != nil {
		t.Fatalf("aggregate original shifts: %v", err)
	}

	runID, err := store.SaveRun(run, shifts)
	if err != nil {
		t.Fatalf("save run: %v", err)
	}
	stored, err := store.ListShifts(runID)
	if err != nil {
		t.Fatalf("list shifts: %v", err)
	}

	_, replayed, err := timeclock.BuildDailyTotals(stored, run.ReportDate, testLogger())
	if err != nil {
		t.Fatalf("aggregate stored shifts: %v", err)
	}

	if len(original) != len(replayed) {
		t.Fatalf("summary count diverged: %d vs %d", len(original), len(replayed))
	}
	for i := range original {
		if original[i] != replayed[i] {
			t.Fatalf("summary %d diverged: %+v vs %+v", i, original[i], replayed[i])
		}
	}
}

func TestLatestRun(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	if _, found, err := store.LatestRun(); err != nil || found {
		t.Fatalf("expected no runs yet, found=%t err=%v", found, err)
	}

	run, shifts := testRun()
	first, err := store.SaveRun(run, shifts)
	if err != nil {
		t.Fatalf("save first run: %v", err)
	}
	second, err := store.SaveRun(run, shifts)
	if err != nil {
		t.Fatalf("save second run: %v", err)
	}
	if second <= first {
		t.Fatalf("expected increasing run ids: %d, %d", first, second)
	}

	latest, found, err := store.LatestRun()
	if err != nil {
		t.Fatalf("latest run: %v", err)
	}
	if !found || latest.ID != second {
		t.Fatalf("expected latest run %d, got %+v (found=%t)", second, latest, found)
	}

	runs, err := store.ListRuns()
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != second {
		t.Fatalf("expected newest-first listing, got %+v", runs)
	}
}

func TestGetRunMissing(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	_, found, err := store.GetRun(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected run 42 to be missing")
	}
}

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/stfelty/connect-team-hr-formatter/internal/timeutil"
	"github.com/stfelty/connect-team-hr-formatter/timeclock"
)

// Store keeps a history of report runs so any run can be re-exported later
// from exactly the shifts it accepted.
type Store struct {
	db *sql.DB
}

// Run is the persisted metadata of one pipeline execution.
type Run struct {
	ID           int64
	ReportDate   time.Time
	StartDate    string
	EndDate      string
	ArtifactPath string
	RowsRead     int
	Accepted     int
	Overnight    int
	Unparseable  int
	CreatedAt    string
}

var ErrRunNotFound = errors.New("report run not found")

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	report_date TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	artifact_path TEXT NOT NULL,
	rows_read INTEGER NOT NULL,
	accepted INTEGER NOT NULL,
	overnight_skipped INTEGER NOT NULL,
	unparseable_skipped INTEGER NOT NULL,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS shifts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	employee_id TEXT NOT NULL,
	day TEXT NOT NULL,
	start_datetime TEXT NOT NULL,
	end_datetime TEXT NOT NULL,
	hours REAL NOT NULL CHECK(hours >= 0)
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SaveRun persists one run together with its accepted shifts in a single
// transaction and returns the new run ID.
func (s *Store) SaveRun(run Run, shifts []timeclock.Shift) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	res, err := tx.Exec(`
INSERT INTO runs (report_date, start_date, end_date, artifact_path, rows_read, accepted, overnight_skipped, unparseable_skipped)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		timeutil.DayKey(run.ReportDate),
		run.StartDate,
		run.EndDate,
		run.ArtifactPath,
		run.RowsRead,
		run.Accepted,
		run.Overnight,
		run.Unparseable,
	)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("read inserted run id: %w", err)
	}

	stmt, err := tx.Prepare(`
INSERT INTO shifts (run_id, employee_id, day, start_datetime, end_datetime, hours)
VALUES (?, ?, ?, ?, ?, ?);`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare shift insert: %w", err)
	}
	defer stmt.Close()

	for _, shift := range shifts {
		if _, err := stmt.Exec(
			runID,
			shift.EmployeeID,
			timeutil.DayKey(shift.Day),
			shift.Start.Format(time.RFC3339),
			shift.End.Format(time.RFC3339),
			shift.Hours,
		); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert shift: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit run: %w", err)
	}

	return runID, nil
}

func (s *Store) ListRuns() ([]Run, error) {
	const query = `
SELECT id, report_date, start_date, end_date, artifact_path, rows_read, accepted, overnight_skipped, unparseable_skipped, created_at
FROM runs
ORDER BY id DESC;`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0, 32)
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// GetRun returns one run by ID; the boolean is false when it does not exist.
func (s *Store) GetRun(id int64) (Run, bool, error) {
	if id <= 0 {
		return Run{}, false, fmt.Errorf("run id must be > 0")
	}

	const query = `
SELECT id, report_date, start_date, end_date, artifact_path, rows_read, accepted, overnight_skipped, unparseable_skipped, created_at
FROM runs
WHERE id = ?;`

	run, err := scanRun(s.db.QueryRow(query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, false, nil
		}
		return Run{}, false, err
	}
	return run, true, nil
}

// LatestRun returns the most recently saved run, if any.
func (s *Store) LatestRun() (Run, bool, error) {
	const query = `
SELECT id, report_date, start_date, end_date, artifact_path, rows_read, accepted, overnight_skipped, unparseable_skipped, created_at
FROM runs
ORDER BY id DESC
LIMIT 1;`

	run, err := scanRun(s.db.QueryRow(query).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, false, nil
		}
		return Run{}, false, err
	}
	return run, true, nil
}

// ListShifts returns the accepted shifts of one run in insertion order.
func (s *Store) ListShifts(runID int64) ([]timeclock.Shift, error) {
	const query = `
SELECT employee_id, day, start_datetime, end_datetime, hours
FROM shifts
WHERE run_id = ?
ORDER BY id;`

	rows, err := s.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("query shifts for run %d: %w", runID, err)
	}
	defer rows.Close()

	shifts := make([]timeclock.Shift, 0, 64)
	for rows.Next() {
		var (
			shift    timeclock.Shift
			dayRaw   string
			startRaw string
			endRaw   string
		)
		if err := rows.Scan(&shift.EmployeeID, &dayRaw, &startRaw, &endRaw, &shift.Hours); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}

		if shift.Day, err = time.ParseInLocation("2006-01-02", dayRaw, time.Local); err != nil {
			return nil, fmt.Errorf("parse shift day %q: %w", dayRaw, err)
		}
		if shift.Start, err = time.Parse(time.RFC3339, startRaw); err != nil {
			return nil, fmt.Errorf("parse shift start %q: %w", startRaw, err)
		}
		if shift.End, err = time.Parse(time.RFC3339, endRaw); err != nil {
			return nil, fmt.Errorf("parse shift end %q: %w", endRaw, err)
		}

		shifts = append(shifts, shift)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shifts: %w", err)
	}

	return shifts, nil
}

func scanRun(scan func(dest ...any) error) (Run, error) {
	var (
		run     Run
		dateRaw string
	)
	if err := scan(
		&run.ID,
		&dateRaw,
		&run.StartDate,
		&run.EndDate,
		&run.ArtifactPath,
		&run.RowsRead,
		&run.Accepted,
		&run.Overnight,
		&run.Unparseable,
		&run.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}

	parsed, err := time.ParseInLocation("2006-01-02", dateRaw, time.Local)
	if err != nil {
		return Run{}, fmt.Errorf("parse report date %q: %w", dateRaw, err)
	}
	run.ReportDate = parsed

	return run, nil
}

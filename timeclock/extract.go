package timeclock

import (
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stfelty/connect-team-hr-formatter/internal/timeutil"
)

// Extractor turns raw sheet rows into validated shifts. Log receives the
// per-batch diagnostics; Workers > 1 classifies rows concurrently, which never
// changes the result because outcomes are folded in row order afterwards.
type Extractor struct {
	Log     *slog.Logger
	Workers int
}

// Result carries the accepted shifts plus the full rejection taxonomy. The
// counters are diagnostic only and never alter the accepted set.
type Result struct {
	Accepted    []Shift
	Rejected    []Rejection
	RowsRead    int
	Blank       int
	Unparseable int
	Overnight   int
	NonPositive int
}

type rowOutcome struct {
	shift  *Shift
	reason Reason
}

// Extract classifies every row and returns ErrNoValidShifts when nothing
// survives. Individual row failures never abort the batch; only an unresolvable
// employee identity column does, before any row is touched.
func (e *Extractor) Extract(headers []string, rows [][]string) (*Result, error) {
	cols, err := ResolveColumns(headers)
	if err != nil {
		return nil, err
	}

	outcomes := make([]rowOutcome, len(rows))
	if e.Workers > 1 {
		group := new(errgroup.Group)
		group.SetLimit(e.Workers)
		for i, row := range rows {
			group.Go(func() error {
				outcomes[i] = classifyRow(cols, row)
				return nil
			})
		}
		_ = group.Wait()
	} else {
		for i, row := range rows {
			outcomes[i] = classifyRow(cols, row)
		}
	}

	log := e.logger()
	result := &Result{
		Accepted: make([]Shift, 0, len(rows)),
		RowsRead: len(rows),
	}

	for i, outcome := range outcomes {
		// Sheet row numbers count the header as row 1.
		sheetRow := i + 2

		if outcome.shift != nil {
			result.Accepted = append(result.Accepted, *outcome.shift)
			continue
		}

		result.Rejected = append(result.Rejected, Rejection{Row: sheetRow, Reason: outcome.reason})
		switch outcome.reason {
		case ReasonBlankIdentity:
			result.Blank++
		case ReasonUnparseable:
			result.Unparseable++
			log.Warn("could not parse start/end times, skipping row", slog.Int("row", sheetRow))
		case ReasonOvernight:
			result.Overnight++
			log.Debug("overnight shift, skipping row", slog.Int("row", sheetRow))
		case ReasonNonPositiveDuration:
			result.NonPositive++
			log.Warn("non-positive duration, skipping row", slog.Int("row", sheetRow))
		}
	}

	log.Info("parsed clock events",
		slog.Int("accepted", len(result.Accepted)),
		slog.Int("overnight_skipped", result.Overnight),
		slog.Int("unparseable", result.Unparseable),
		slog.Int("non_positive", result.NonPositive),
	)

	if len(result.Accepted) == 0 {
		return nil, ErrNoValidShifts
	}

	return result, nil
}

func (e *Extractor) logger() *slog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return slog.Default()
}

func classifyRow(cols Columns, row []string) rowOutcome {
	employeeID := cell(row, cols.Employee)
	if employeeID == "" {
		employeeID = cell(row, cols.UserFallback)
	}
	if employeeID == "" {
		return rowOutcome{reason: ReasonBlankIdentity}
	}

	start, ok := resolveInstant(row, cols.Start, cols.StartEpoch)
	if !ok {
		return rowOutcome{reason: ReasonUnparseable}
	}
	end, ok := resolveInstant(row, cols.End, cols.EndEpoch)
	if !ok {
		return rowOutcome{reason: ReasonUnparseable}
	}

	if !timeutil.SameDay(start, end) {
		return rowOutcome{reason: ReasonOvernight}
	}
	if !end.After(start) {
		return rowOutcome{reason: ReasonNonPositiveDuration}
	}

	return rowOutcome{shift: &Shift{
		EmployeeID: employeeID,
		Day:        timeutil.StartOfDay(start),
		Start:      start,
		End:        end,
		Hours:      roundHours(end.Sub(start).Seconds() / 3600),
	}}
}

// resolveInstant prefers the human-readable column and falls back to the epoch
// seconds column when the former is absent or unparseable.
func resolveInstant(row []string, humanCol, epochCol int) (time.Time, bool) {
	if value := cell(row, humanCol); value != "" {
		if parsed, ok := ParseClockTime(value); ok {
			return parsed, true
		}
	}
	return ParseEpochSeconds(cell(row, epochCol))
}

func cell(row []string, index int) string {
	if index == ColumnAbsent || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

package timeclock

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/stfelty/connect-team-hr-formatter/internal/timeutil"
)

// BuildDailyTotals resolves the report date, filters shifts to it, and sums
// hours per employee. When explicitDate is the zero time, the most recent date
// present across the shifts wins; shifts on earlier dates are dropped from the
// report (the chosen date and the full date set are logged so the discard is
// visible). Summaries come back sorted ascending by employee id, so identical
// input always renders identically.
func BuildDailyTotals(shifts []Shift, explicitDate time.Time, log *slog.Logger) (time.Time, []Summary, error) {
	if log == nil {
		log = slog.Default()
	}
	if len(shifts) == 0 {
		return time.Time{}, nil, ErrNoValidShifts
	}

	allDates := distinctDays(shifts)

	reportDate := explicitDate
	if reportDate.IsZero() {
		reportDate = allDates[len(allDates)-1]
	} else {
		reportDate = timeutil.StartOfDay(reportDate)
	}

	log.Info("resolved report date",
		slog.String("report_date", timeutil.DayKey(reportDate)),
		slog.Any("dates_in_data", dayKeys(allDates)),
	)

	totals := make(map[string]float64)
	for _, shift := range shifts {
		if timeutil.SameDay(shift.Day, reportDate) {
			totals[shift.EmployeeID] += shift.Hours
		}
	}

	if len(totals) == 0 {
		return time.Time{}, nil, fmt.Errorf("%w %s", ErrNoShiftsForDate, timeutil.DayKey(reportDate))
	}

	employees := make([]string, 0, len(totals))
	for employeeID := range totals {
		employees = append(employees, employeeID)
	}
	sort.Strings(employees)

	summaries := make([]Summary, 0, len(employees))
	for _, employeeID := range employees {
		regular := roundHours(totals[employeeID])
		summaries = append(summaries, Summary{
			EmployeeID:   employeeID,
			PayType:      "Work",
			RegularHours: regular,
			PaidHours:    regular,
		})
	}

	log.Info("built daily totals",
		slog.Int("employees", len(summaries)),
		slog.String("report_date", timeutil.DayKey(reportDate)),
	)

	return reportDate, summaries, nil
}

func distinctDays(shifts []Shift) []time.Time {
	seen := make(map[string]time.Time, len(shifts))
	for _, shift := range shifts {
		seen[timeutil.DayKey(shift.Day)] = shift.Day
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	days := make([]time.Time, 0, len(keys))
	for _, key := range keys {
		days = append(days, seen[key])
	}
	return days
}

func dayKeys(days []time.Time) []string {
	keys := make([]string, 0, len(days))
	for _, day := range days {
		keys = append(keys, timeutil.DayKey(day))
	}
	return keys
}

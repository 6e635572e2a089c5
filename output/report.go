package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/stfelty/connect-team-hr-formatter/timeclock"
)

// Column order of the hours summary report. The HR import on the other side
// expects exactly these headers in exactly this order.
var reportColumns = []string{
	"Employee Number",
	"Last Name",
	"First Name",
	"PayType Name",
	"Regular Hours",
	"OT1 Hours",
	"Paid Hours",
	"Unpaid Hours",
}

// BuildFilename names the artifact with a second-resolution timestamp so
// repeated runs never overwrite each other.
func BuildFilename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, now.Format("20060102_150405"))
}

// TabLabel converts a MM/DD/YYYY pay-period start date into the MM.DD.YYYY
// label used for the second workbook tab. Unparseable dates keep their text
// with slashes swapped for dots, since Excel forbids slashes in sheet names.
func TabLabel(startDate string) string {
	if parsed, err := time.Parse("01/02/2006", strings.TrimSpace(startDate)); err == nil {
		return parsed.Format("01.02.2006")
	}
	return strings.ReplaceAll(strings.TrimSpace(startDate), "/", ".")
}

func summaryCells(summary timeclock.Summary) []any {
	return []any{
		summary.EmployeeID,
		summary.LastName,
		summary.FirstName,
		summary.PayType,
		summary.RegularHours,
		summary.OT1Hours,
		summary.PaidHours,
		summary.UnpaidHours,
	}
}

// numericColumn reports whether the zero-based report column holds hours.
func numericColumn(index int) bool {
	return index >= 4
}

// WriteSummaries renders the report in the requested format.
func WriteSummaries(path, format string, summaries []timeclock.Summary, startDate, endDate string) error {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "csv":
		return writeSummariesCSV(path, summaries, startDate, endDate)
	case "excel", "xlsx":
		return WriteSummaryWorkbook(path, summaries, startDate, endDate)
	default:
		return fmt.Errorf("unsupported output format for summaries: %s", format)
	}
}

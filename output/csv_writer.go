package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/stfelty/connect-team-hr-formatter/timeclock"
)

// writeSummariesCSV mirrors the workbook layout: date-range row, header row,
// then one row per employee with hours to two decimals.
func writeSummariesCSV(path string, summaries []timeclock.Summary, startDate, endDate string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{startDate, endDate}); err != nil {
		return fmt.Errorf("write csv date range: %w", err)
	}
	if err := writer.Write(reportColumns); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, summary := range summaries {
		row := []string{
			summary.EmployeeID,
			summary.LastName,
			summary.FirstName,
			summary.PayType,
			fmt.Sprintf("%.2f", summary.RegularHours),
			fmt.Sprintf("%.2f", summary.OT1Hours),
			fmt.Sprintf("%.2f", summary.PaidHours),
			fmt.Sprintf("%.2f", summary.UnpaidHours),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}

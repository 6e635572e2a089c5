package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/stfelty/connect-team-hr-formatter/internal/timeutil"
	"github.com/stfelty/connect-team-hr-formatter/timeclock"
)

var shiftColumns = []string{
	"Employee Number",
	"Date",
	"Start",
	"End",
	"Hours",
}

// WriteShifts exports the accepted shifts of a run row by row, one shift per
// line, for auditing which punches made it into a report.
func WriteShifts(path, format string, shifts []timeclock.Shift) error {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "csv":
		return writeShiftsCSV(path, shifts)
	case "excel", "xlsx":
		return writeShiftsWorkbook(path, shifts)
	default:
		return fmt.Errorf("unsupported output format for shifts: %s", format)
	}
}

func shiftCells(shift timeclock.Shift) []string {
	return []string{
		shift.EmployeeID,
		timeutil.DayKey(shift.Day),
		shift.Start.Format(time.RFC3339),
		shift.End.Format(time.RFC3339),
		fmt.Sprintf("%.2f", shift.Hours),
	}
}

func writeShiftsCSV(path string, shifts []timeclock.Shift) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(shiftColumns); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	for _, shift := range shifts {
		if err := writer.Write(shiftCells(shift)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}

func writeShiftsWorkbook(path string, shifts []timeclock.Shift) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for col, header := range shiftColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("cell name for header %d: %w", col+1, err)
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set header %s: %w", cell, err)
		}
	}

	for i, shift := range shifts {
		for col, value := range shiftCells(shift) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("cell name for %d,%d: %w", col+1, i+2, err)
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save shifts workbook %s: %w", path, err)
	}

	return nil
}

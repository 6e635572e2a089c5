package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/stfelty/connect-team-hr-formatter/timeclock"
)

// WriteSummaryWorkbook produces the fixed-layout hours summary workbook:
// row 1 holds the pay-period date range, row 2 the bold column headers, data
// follows with hours formatted to two decimals. The same content is mirrored
// on a second tab named after the start date (MM.DD.YYYY).
func WriteSummaryWorkbook(path string, summaries []timeclock.Summary, startDate, endDate string) error {
	file := excelize.NewFile()
	defer file.Close()

	mainSheet := "Hours Summary Report"
	if err := file.SetSheetName(file.GetSheetName(0), mainSheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}

	styles, err := newSheetStyles(file)
	if err != nil {
		return err
	}

	if err := writeSummarySheet(file, mainSheet, styles, summaries, startDate, endDate); err != nil {
		return err
	}

	dateTab := TabLabel(startDate)
	if _, err := file.NewSheet(dateTab); err != nil {
		return fmt.Errorf("create date tab %q: %w", dateTab, err)
	}
	if err := writeSummarySheet(file, dateTab, styles, summaries, startDate, endDate); err != nil {
		return err
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save summary workbook %s: %w", path, err)
	}

	return nil
}

type sheetStyles struct {
	bold  int
	plain int
	hours int
}

func newSheetStyles(file *excelize.File) (sheetStyles, error) {
	bold, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: "Calibri", Size: 11, Bold: true},
	})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("create bold style: %w", err)
	}

	plain, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: "Calibri", Size: 11},
	})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("create data style: %w", err)
	}

	hoursFormat := "0.00"
	hours, err := file.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Family: "Calibri", Size: 11},
		CustomNumFmt: &hoursFormat,
		Alignment:    &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("create hours style: %w", err)
	}

	return sheetStyles{bold: bold, plain: plain, hours: hours}, nil
}

func writeSummarySheet(file *excelize.File, sheet string, styles sheetStyles, summaries []timeclock.Summary, startDate, endDate string) error {
	setCell := func(col, row int, value any, style int) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return fmt.Errorf("cell name for %d,%d: %w", col, row, err)
		}
		if err := file.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("set cell %s on %s: %w", cell, sheet, err)
		}
		if err := file.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("style cell %s on %s: %w", cell, sheet, err)
		}
		return nil
	}

	if err := setCell(1, 1, startDate, styles.bold); err != nil {
		return err
	}
	if err := setCell(2, 1, endDate, styles.bold); err != nil {
		return err
	}

	for col, header := range reportColumns {
		if err := setCell(col+1, 2, header, styles.bold); err != nil {
			return err
		}
	}

	widths := make([]int, len(reportColumns))
	for i, header := range reportColumns {
		widths[i] = len(header)
	}

	for i, summary := range summaries {
		row := i + 3
		for col, value := range summaryCells(summary) {
			style := styles.plain
			if numericColumn(col) {
				style = styles.hours
			}
			if err := setCell(col+1, row, value, style); err != nil {
				return err
			}
			if width := len(fmt.Sprintf("%v", value)); width > widths[col] {
				widths[col] = width
			}
		}
	}

	for i, width := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name for %d: %w", i+1, err)
		}
		if err := file.SetColWidth(sheet, name, name, float64(width+3)); err != nil {
			return fmt.Errorf("set width of column %s on %s: %w", name, sheet, err)
		}
	}

	return nil
}

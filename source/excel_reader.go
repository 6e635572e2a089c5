package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type ExcelReader struct{}

func (r *ExcelReader) Read(path string) (*Batch, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("excel file has no sheets: %s", path)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in %s", path)
	}

	return &Batch{Headers: rows[0], Rows: rows[1:]}, nil
}

package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

type CSVReader struct{}

func (r *CSVReader) Read(path string) (*Batch, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("no data found in %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	rows := make([][]string, 0, 128)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, row)
	}

	return &Batch{Headers: headers, Rows: rows}, nil
}

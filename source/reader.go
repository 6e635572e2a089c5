package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Batch is one fetched sheet: the header roster plus positionally aligned data
// rows. Rows may be ragged; missing trailing cells read as empty.
type Batch struct {
	Headers []string
	Rows    [][]string
}

type Reader interface {
	Read(path string) (*Batch, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "csv":
		return &CSVReader{}, nil
	case "excel", "xlsx", "xlsm", "xls":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

// InferFormat returns the explicit format when given, otherwise derives it
// from the file extension.
func InferFormat(path, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return format, nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return "csv", nil
	case "xlsx", "xlsm", "xls":
		return "excel", nil
	default:
		return "", fmt.Errorf("unsupported file extension for %s", path)
	}
}

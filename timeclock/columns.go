package timeclock

import "strings"

// ColumnAbsent marks a logical role with no matching header.
const ColumnAbsent = -1

// Columns maps logical field roles to indices in the header roster. Any role
// except employee identity may be absent.
type Columns struct {
	Employee     int
	UserFallback int
	Start        int
	StartEpoch   int
	End          int
	EndEpoch     int
}

// ResolveColumns locates each role's column by case-insensitive synonym match.
// The employee identity role must resolve through at least one of its two
// candidate columns; everything else degrades to ColumnAbsent.
func ResolveColumns(headers []string) (Columns, error) {
	cols := Columns{
		Employee:     findColumn(headers, "id", "employee id", "employee number"),
		UserFallback: findColumn(headers, "user id", "userid"),
		Start:        findColumn(headers, "start"),
		StartEpoch:   findColumn(headers, "start timestamp"),
		End:          findColumn(headers, "end"),
		EndEpoch:     findColumn(headers, "end timestamp"),
	}

	if cols.Employee == ColumnAbsent && cols.UserFallback == ColumnAbsent {
		return Columns{}, &ConfigError{Role: "employee identity", Headers: headers}
	}

	return cols, nil
}

// findColumn returns the index of the first header equal to one of the
// candidates after trim and lowercase. Matching is exact, never substring.
func findColumn(headers []string, candidates ...string) int {
	normalized := make([]string, len(headers))
	for i, header := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(header))
	}

	for _, candidate := range candidates {
		want := strings.ToLower(strings.TrimSpace(candidate))
		for i, header := range normalized {
			if header == want {
				return i
			}
		}
	}

	return ColumnAbsent
}

package timeclock

import (
	"errors"
	"testing"
)

func TestResolveColumns(t *testing.T) {
	t.Parallel()

	headers := []string{"ID", "start", "Start Timestamp", "end", "End Timestamp", "User Id"}
	cols, err := ResolveColumns(headers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cols.Employee != 0 {
		t.Fatalf("expected employee column 0, got %d", cols.Employee)
	}
	if cols.Start != 1 || cols.StartEpoch != 2 {
		t.Fatalf("unexpected start columns: %d, %d", cols.Start, cols.StartEpoch)
	}
	if cols.End != 3 || cols.EndEpoch != 4 {
		t.Fatalf("unexpected end columns: %d, %d", cols.End, cols.EndEpoch)
	}
	if cols.UserFallback != 5 {
		t.Fatalf("expected user fallback column 5, got %d", cols.UserFallback)
	}
}

func TestResolveColumnsIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	cols, err := ResolveColumns([]string{"  EMPLOYEE NUMBER ", "START", "END"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cols.Employee != 0 {
		t.Fatalf("expected employee column 0, got %d", cols.Employee)
	}
	if cols.StartEpoch != ColumnAbsent || cols.EndEpoch != ColumnAbsent {
		t.Fatal("expected absent epoch columns")
	}
}

func TestResolveColumnsNeverMatchesSubstrings(t *testing.T) {
	t.Parallel()

	// "Started At" must not satisfy the "start" role.
	cols, err := ResolveColumns([]string{"ID", "Started At", "End"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cols.Start != ColumnAbsent {
		t.Fatalf("expected absent start column, got %d", cols.Start)
	}
}

func TestResolveColumnsFailsWithoutIdentityColumn(t *testing.T) {
	t.Parallel()

	headers := []string{"start", "end"}
	_, err := ResolveColumns(headers)
	if err == nil {
		t.Fatal("expected configuration error")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T", err)
	}
	if cfgErr.Role != "employee identity" {
		t.Fatalf("unexpected role in error: %s", cfgErr.Role)
	}
	if len(cfgErr.Headers) != 2 {
		t.Fatalf("expected received roster in error, got %v", cfgErr.Headers)
	}
}

func TestResolveColumnsAcceptsFallbackIdentityOnly(t *testing.T) {
	t.Parallel()

	cols, err := ResolveColumns([]string{"start", "end", "User Id"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cols.Employee != ColumnAbsent {
		t.Fatalf("expected absent primary identity column, got %d", cols.Employee)
	}
	if cols.UserFallback != 2 {
		t.Fatalf("expected fallback identity column 2, got %d", cols.UserFallback)
	}
}

package timeclock

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Shift is one employee's validated start-to-end punch interval on a single
// calendar day.
type Shift struct {
	EmployeeID string
	Day        time.Time
	Start      time.Time
	End        time.Time
	Hours      float64
}

// Summary is one row of the hours summary report. PaidHours is always derived
// as RegularHours + OT1Hours.
type Summary struct {
	EmployeeID   string
	LastName     string
	FirstName    string
	PayType      string
	RegularHours float64
	OT1Hours     float64
	PaidHours    float64
	UnpaidHours  float64
}

// Reason classifies why a row was not turned into a Shift.
type Reason string

const (
	ReasonBlankIdentity       Reason = "blank-identity"
	ReasonUnparseable         Reason = "unparseable"
	ReasonOvernight           Reason = "overnight"
	ReasonNonPositiveDuration Reason = "non-positive-duration"
)

// Rejection records one skipped row. Row is the 1-based sheet row number,
// counting the header as row 1.
type Rejection struct {
	Row    int
	Reason Reason
}

var (
	ErrNoValidShifts   = errors.New("no valid shifts found in the data")
	ErrNoShiftsForDate = errors.New("no shifts found for report date")
)

// ConfigError reports a header roster that cannot satisfy a required column
// role. It aborts the batch before any row is processed.
type ConfigError struct {
	Role    string
	Headers []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cannot resolve %s column from sheet headers [%s]", e.Role, strings.Join(e.Headers, ", "))
}

func roundHours(value float64) float64 {
	return math.Round(value*100) / 100
}

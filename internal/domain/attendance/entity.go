package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
)

// Valid reports whether s is part of the wire-visible status vocabulary.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay:
		return true
	}
	return false
}

// Record is one employee's attendance for one calendar date. Status is
// assigned once at check-in and never revised afterward; TotalHours is
// derived once at check-out. Absent and half-day are representable but only
// ever assigned administratively, never by the check-in rule.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     Status
	TotalHours *decimal.Decimal
	CreatedAt  time.Time

	// DTO
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}

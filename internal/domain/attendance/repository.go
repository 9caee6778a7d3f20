package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRepository defines data access methods for attendance records.
// The store owns the one-record-per-(employee, date) uniqueness constraint;
// Create surfaces a violation as ErrAlreadyCheckedIn so concurrent check-ins
// never race in the engine.
type AttendanceRepository interface {
	// Create inserts a new record
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a date,
	// or ErrRecordNotFound
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)

	// SetCheckOut fills check-out time and derived hours in one statement,
	// so a failed check-out mutates neither field
	SetCheckOut(ctx context.Context, id string, checkOut time.Time, totalHours decimal.Decimal) error

	// List retrieves records matching the filter, joined with profile fields
	List(ctx context.Context, filter ListFilter) ([]Record, error)

	// Delete removes a record. Administrative escape hatch; not part of the
	// normal record lifecycle and not routed over HTTP.
	Delete(ctx context.Context, id string) error
}

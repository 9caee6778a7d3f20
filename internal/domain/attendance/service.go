package attendance

import (
	"context"

	"github.com/workpulse/attendance-backend-go/internal/pkg/policy"
)

// AttendanceService defines business logic for attendance operations. Every
// call takes the acting identity explicitly; there is no ambient session.
type AttendanceService interface {
	// CheckIn creates today's record for the actor, deriving status from the
	// check-in instant
	CheckIn(ctx context.Context, actor policy.Actor) (RecordResponse, error)

	// CheckOut closes today's open record and derives total hours
	CheckOut(ctx context.Context, actor policy.Actor) (RecordResponse, error)

	// GetRecord retrieves one employee's record for a date (YYYY-MM-DD)
	GetRecord(ctx context.Context, actor policy.Actor, employeeID string, date string) (RecordResponse, error)

	// GetToday reports the actor's current check-in/check-out standing
	GetToday(ctx context.Context, actor policy.Actor) (TodayResponse, error)

	// ListMyRecords retrieves the actor's own records
	ListMyRecords(ctx context.Context, actor policy.Actor, filter ListFilter) ([]RecordResponse, error)

	// ListRecords retrieves records across employees (manager scope)
	ListRecords(ctx context.Context, actor policy.Actor, filter ListFilter) ([]RecordResponse, error)
}

package report

import (
	"context"

	"github.com/workpulse/attendance-backend-go/internal/pkg/policy"
)

// ReportService defines the interface for report generation
type ReportService interface {
	// GenerateAttendanceReport renders the attendance records in the
	// requested date range as CSV. Manager only.
	GenerateAttendanceReport(ctx context.Context, actor policy.Actor, req AttendanceReportRequest) (AttendanceReport, error)
}

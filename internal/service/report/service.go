package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/report"
	"github.com/workpulse/attendance-backend-go/internal/pkg/policy"
)

// csvHeader is the fixed column order of the attendance report.
var csvHeader = []string{
	"Employee Name",
	"Employee ID",
	"Department",
	"Date",
	"Check In Time",
	"Check Out Time",
	"Total Hours",
	"Status",
}

type ReportServiceImpl struct {
	attendance.AttendanceRepository
}

func NewReportService(attendanceRepository attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepository,
	}
}

// GenerateAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, actor policy.Actor, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	if !policy.Allow(actor, policy.Resource{Kind: policy.ResourceAttendance}, policy.ActionRead) {
		return report.AttendanceReport{}, attendance.ErrForbidden
	}

	records, err := s.AttendanceRepository.List(ctx, attendance.ListFilter{
		StartDate: &req.StartDate,
		EndDate:   &req.EndDate,
	})
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	content, err := WriteCSV(records)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	return report.AttendanceReport{
		Filename: Filename(req.StartDate, req.EndDate),
		Content:  content,
	}, nil
}

// Filename names the report after its date range.
func Filename(startDate, endDate string) string {
	return fmt.Sprintf("attendance_report_%s_to_%s.csv", startDate, endDate)
}

// WriteCSV renders records as a CSV document: a header row plus one row per
// record. The encoder quotes fields as needed, so names and departments
// containing commas survive a round-trip through any standard CSV parser.
func WriteCSV(records []attendance.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range records {
		if err := w.Write(recordRow(rec)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func recordRow(rec attendance.Record) []string {
	name := ""
	if rec.EmployeeName != nil {
		name = *rec.EmployeeName
	}

	employeeID := rec.EmployeeID
	if rec.EmployeeCode != nil {
		employeeID = *rec.EmployeeCode
	}

	department := ""
	if rec.Department != nil {
		department = *rec.Department
	}

	checkIn := ""
	if rec.CheckIn != nil {
		checkIn = rec.CheckIn.Format("15:04:05")
	}

	checkOut := ""
	if rec.CheckOut != nil {
		checkOut = rec.CheckOut.Format("15:04:05")
	}

	totalHours := ""
	if rec.TotalHours != nil {
		hours, _ := rec.TotalHours.Float64()
		totalHours = strconv.FormatFloat(hours, 'f', 2, 64)
	}

	return []string{
		name,
		employeeID,
		department,
		rec.Date.Format("2006-01-02"),
		checkIn,
		checkOut,
		totalHours,
		string(rec.Status),
	}
}

package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/dashboard"
	"github.com/workpulse/attendance-backend-go/internal/domain/profile"
	"github.com/workpulse/attendance-backend-go/internal/pkg/calendar"
	"github.com/workpulse/attendance-backend-go/internal/pkg/policy"
	"github.com/workpulse/attendance-backend-go/internal/service/stats"
)

type DashboardServiceImpl struct {
	attendance.AttendanceRepository
	profile.ProfileRepository
	loc *time.Location
	now func() time.Time
}

func NewDashboardService(attendanceRepository attendance.AttendanceRepository, profileRepository profile.ProfileRepository, loc *time.Location) dashboard.DashboardService {
	return &DashboardServiceImpl{
		AttendanceRepository: attendanceRepository,
		ProfileRepository:    profileRepository,
		loc:                  loc,
		now:                  time.Now,
	}
}

// parseMonth parses YYYY-MM format, defaults to the current month
func (s *DashboardServiceImpl) parseMonth(month string) (int, time.Month) {
	now := s.now().In(s.loc)
	if month == "" {
		return now.Year(), now.Month()
	}

	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return now.Year(), now.Month()
	}
	return parsed.Year(), parsed.Month()
}

// GetManagerDashboard implements dashboard.DashboardService. The three
// repository reads run concurrently; the reducers that fold them are pure, so
// the fan-out order never changes the response.
func (s *DashboardServiceImpl) GetManagerDashboard(ctx context.Context, actor policy.Actor) (*dashboard.ManagerDashboardResponse, error) {
	if !policy.Allow(actor, policy.Resource{Kind: policy.ResourceAttendance}, policy.ActionRead) {
		return nil, attendance.ErrForbidden
	}

	today := calendar.DateOf(s.now().In(s.loc))
	todayStr := calendar.DateString(today)
	weekStartStr := calendar.DateString(today.AddDate(0, 0, -6))

	var (
		todayRecords []attendance.Record
		weekRecords  []attendance.Record
		employees    []profile.Profile
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		todayRecords, err = s.AttendanceRepository.List(gCtx, attendance.ListFilter{Date: &todayStr})
		if err != nil {
			return fmt.Errorf("failed to list today's records: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		weekRecords, err = s.AttendanceRepository.List(gCtx, attendance.ListFilter{StartDate: &weekStartStr, EndDate: &todayStr})
		if err != nil {
			return fmt.Errorf("failed to list weekly records: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		role := profile.RoleEmployee
		var err error
		employees, err = s.ProfileRepository.List(gCtx, &role)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := stats.SummaryCounts(todayRecords)
	presentIDs := stats.PresentIDSet(todayRecords)
	totalEmployees := len(employees)

	resp := &dashboard.ManagerDashboardResponse{
		Date: todayStr,
		Summary: dashboard.TodaySummaryResponse{
			TotalEmployees: totalEmployees,
			Present:        summary.Present,
			Late:           summary.Late,
			Absent:         totalEmployees - len(presentIDs),
			PresentPercent: stats.MonthlyPercentage(summary.Present+summary.Late, totalEmployees),
		},
	}

	for _, point := range stats.WeeklyTrend(weekRecords, totalEmployees, today) {
		resp.WeeklyTrend = append(resp.WeeklyTrend, dashboard.TrendPointItem(point))
	}
	for _, dept := range stats.DepartmentRollup(employees, presentIDs) {
		resp.Departments = append(resp.Departments, dashboard.DepartmentStatItem(dept))
	}
	for _, absentee := range stats.AbsenteeList(employees, presentIDs) {
		resp.Absentees = append(resp.Absentees, dashboard.AbsenteeItem{
			Name:         absentee.FullName,
			EmployeeCode: absentee.EmployeeCode,
			Department:   absentee.Department,
		})
	}

	return resp, nil
}

// GetEmployeeDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context, actor policy.Actor, month string) (*dashboard.EmployeeDashboardResponse, error) {
	year, mon := s.parseMonth(month)
	first, last := calendar.MonthBounds(year, mon)
	firstStr := calendar.DateString(first)
	lastStr := calendar.DateString(last)

	records, err := s.AttendanceRepository.List(ctx, attendance.ListFilter{
		EmployeeID: &actor.ProfileID,
		StartDate:  &firstStr,
		EndDate:    &lastStr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly records: %w", err)
	}

	summary := stats.SummaryCounts(records)
	totalHours, _ := summary.TotalHours.Float64()

	statusByDay := make(map[int]string, len(records))
	for _, rec := range records {
		statusByDay[rec.Date.Day()] = string(rec.Status)
	}

	grid := calendar.MonthGrid(year, mon)
	cells := make([]dashboard.CalendarCell, 0, len(grid))
	for _, day := range grid {
		cell := dashboard.CalendarCell{Day: day}
		if day != nil {
			if status, ok := statusByDay[*day]; ok {
				cell.Status = &status
			}
		}
		cells = append(cells, cell)
	}

	attended := summary.Present + summary.Late + summary.HalfDay

	return &dashboard.EmployeeDashboardResponse{
		Month: first.Format("2006-01"),
		Summary: dashboard.MonthlySummaryResponse{
			Present:           summary.Present,
			Late:              summary.Late,
			Absent:            summary.Absent,
			HalfDay:           summary.HalfDay,
			TotalHours:        totalHours,
			AttendancePercent: stats.MonthlyPercentage(attended, last.Day()),
		},
		Calendar: cells,
	}, nil
}

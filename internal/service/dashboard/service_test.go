package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/profile"
	"github.com/workpulse/attendance-backend-go/internal/pkg/calendar"
	"github.com/workpulse/attendance-backend-go/internal/pkg/policy"
)

type fakeAttendanceRepository struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && calendar.SameDate(rec.Date, date) {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time, totalHours decimal.Decimal) error {
	return nil
}

func (f *fakeAttendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Date != nil && calendar.DateString(rec.Date) != *filter.Date {
			continue
		}
		if filter.StartDate != nil && calendar.DateString(rec.Date) < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && calendar.DateString(rec.Date) > *filter.EndDate {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeAttendanceRepository) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeProfileRepository struct {
	profiles []profile.Profile
}

func (f *fakeProfileRepository) Create(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	f.profiles = append(f.profiles, p)
	return p, nil
}

func (f *fakeProfileRepository) GetByID(ctx context.Context, id string) (profile.Profile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return profile.Profile{}, profile.ErrProfileNotFound
}

func (f *fakeProfileRepository) GetByEmail(ctx context.Context, email string) (profile.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return profile.Profile{}, profile.ErrProfileNotFound
}

func (f *fakeProfileRepository) List(ctx context.Context, role *profile.Role) ([]profile.Profile, error) {
	var out []profile.Profile
	for _, p := range f.profiles {
		if role != nil && p.Role != *role {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfileRepository) Update(ctx context.Context, id string, upd profile.UpdateProfileRequest) error {
	return nil
}

func (f *fakeProfileRepository) CountByRole(ctx context.Context, role profile.Role) (int, error) {
	count := 0
	for _, p := range f.profiles {
		if p.Role == role {
			count++
		}
	}
	return count, nil
}

func strPtr(s string) *string { return &s }

func fixedService(attendanceRepo *fakeAttendanceRepository, profileRepo *fakeProfileRepository, now time.Time) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		AttendanceRepository: attendanceRepo,
		ProfileRepository:    profileRepo,
		loc:                  time.UTC,
		now:                  func() time.Time { return now },
	}
}

var managerActor = policy.Actor{ProfileID: "mgr-1", Role: policy.RoleManager}

func TestGetManagerDashboard(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	attendanceRepo := &fakeAttendanceRepository{records: []attendance.Record{
		{EmployeeID: "e1", Date: today, Status: attendance.StatusPresent},
		{EmployeeID: "e2", Date: today, Status: attendance.StatusLate},
		{EmployeeID: "e1", Date: today.AddDate(0, 0, -1), Status: attendance.StatusPresent},
	}}
	profileRepo := &fakeProfileRepository{profiles: []profile.Profile{
		{ID: "e1", FullName: "Ana", EmployeeCode: "EMP-0001", Role: profile.RoleEmployee, Department: strPtr("Engineering")},
		{ID: "e2", FullName: "Ben", EmployeeCode: "EMP-0002", Role: profile.RoleEmployee, Department: strPtr("Engineering")},
		{ID: "e3", FullName: "Cid", EmployeeCode: "EMP-0003", Role: profile.RoleEmployee},
	}}

	svc := fixedService(attendanceRepo, profileRepo, now)
	resp, err := svc.GetManagerDashboard(context.Background(), managerActor)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15", resp.Date)
	assert.Equal(t, 3, resp.Summary.TotalEmployees)
	assert.Equal(t, 1, resp.Summary.Present)
	assert.Equal(t, 1, resp.Summary.Late)
	assert.Equal(t, 1, resp.Summary.Absent)
	assert.Equal(t, 67, resp.Summary.PresentPercent)

	require.Len(t, resp.WeeklyTrend, 7)
	assert.Equal(t, "2024-03-15", resp.WeeklyTrend[6].Date)
	assert.Equal(t, 2, resp.WeeklyTrend[6].Present)
	assert.Equal(t, 1, resp.WeeklyTrend[6].Absent)

	require.Len(t, resp.Departments, 2)
	assert.Equal(t, "Engineering", resp.Departments[0].Department)
	assert.Equal(t, 2, resp.Departments[0].Present)
	assert.Equal(t, "Unassigned", resp.Departments[1].Department)

	require.Len(t, resp.Absentees, 1)
	assert.Equal(t, "Cid", resp.Absentees[0].Name)
}

func TestGetManagerDashboardRequiresManager(t *testing.T) {
	svc := fixedService(&fakeAttendanceRepository{}, &fakeProfileRepository{}, time.Now())

	_, err := svc.GetManagerDashboard(context.Background(), policy.Actor{ProfileID: "e1", Role: policy.RoleEmployee})
	assert.ErrorIs(t, err, attendance.ErrForbidden)
}

func TestGetEmployeeDashboard(t *testing.T) {
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	hours := decimal.RequireFromString("8.00")

	attendanceRepo := &fakeAttendanceRepository{records: []attendance.Record{
		{EmployeeID: "e1", Date: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent, TotalHours: &hours},
		{EmployeeID: "e1", Date: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), Status: attendance.StatusLate, TotalHours: &hours},
		{EmployeeID: "e2", Date: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent},
		{EmployeeID: "e1", Date: time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent},
	}}

	svc := fixedService(attendanceRepo, &fakeProfileRepository{}, now)
	actor := policy.Actor{ProfileID: "e1", Role: policy.RoleEmployee}

	resp, err := svc.GetEmployeeDashboard(context.Background(), actor, "2024-03")
	require.NoError(t, err)

	assert.Equal(t, "2024-03", resp.Month)
	assert.Equal(t, 1, resp.Summary.Present)
	assert.Equal(t, 1, resp.Summary.Late)
	assert.Equal(t, 16.0, resp.Summary.TotalHours)
	// 2 attended days of 31 in March
	assert.Equal(t, 6, resp.Summary.AttendancePercent)

	// March 2024 opens on a Friday: five leading padding cells
	require.Len(t, resp.Calendar, 36)
	assert.Nil(t, resp.Calendar[0].Day)
	require.NotNil(t, resp.Calendar[5].Day)
	assert.Equal(t, 1, *resp.Calendar[5].Day)

	// day 11 carries its status
	cell := resp.Calendar[5+10]
	require.NotNil(t, cell.Day)
	assert.Equal(t, 11, *cell.Day)
	require.NotNil(t, cell.Status)
	assert.Equal(t, "present", *cell.Status)

	// day 13 has no record and no status
	assert.Nil(t, resp.Calendar[5+12].Status)
}

func TestGetEmployeeDashboardDefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)
	svc := fixedService(&fakeAttendanceRepository{}, &fakeProfileRepository{}, now)

	resp, err := svc.GetEmployeeDashboard(context.Background(), policy.Actor{ProfileID: "e1", Role: policy.RoleEmployee}, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-04", resp.Month)
	assert.Equal(t, 0, resp.Summary.AttendancePercent)
}

package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/pkg/calendar"
	"github.com/workpulse/attendance-backend-go/internal/pkg/policy"
	"github.com/workpulse/attendance-backend-go/internal/pkg/validator"
)

// lateHour is the local hour-of-day from which a check-in counts as late.
// The boundary is inclusive: 09:00:00 exactly is late, 08:59:59 is not.
const lateHour = 9

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	loc *time.Location
	now func() time.Time
}

func NewAttendanceService(repo attendance.AttendanceRepository, loc *time.Location) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		loc:                  loc,
		now:                  time.Now,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	format := t.In(loc).Format("2006-01-02 15:04:05")
	return &format
}

func (a *AttendanceServiceImpl) toResponse(rec attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       calendar.DateString(rec.Date),
		Status:     string(rec.Status),
		CreatedAt:  rec.CreatedAt.In(a.loc).Format("2006-01-02 15:04:05"),
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	resp.CheckInTime = timePtrToString(rec.CheckIn, a.loc)
	resp.CheckOutTime = timePtrToString(rec.CheckOut, a.loc)
	if rec.TotalHours != nil {
		hours, _ := rec.TotalHours.Float64()
		resp.TotalHours = &hours
	}
	return resp
}

// CheckIn implements attendance.AttendanceService. Status is decided here,
// once, from the check-in instant; nothing ever revises it afterward. The
// store's uniqueness constraint arbitrates concurrent check-ins, so there is
// no read-then-insert race.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, actor policy.Actor) (attendance.RecordResponse, error) {
	nowLocal := a.now().In(a.loc)

	status := attendance.StatusPresent
	if nowLocal.Hour() >= lateHour {
		status = attendance.StatusLate
	}

	checkIn := nowLocal
	rec, err := a.AttendanceRepository.Create(ctx, attendance.Record{
		EmployeeID: actor.ProfileID,
		Date:       calendar.DateOf(nowLocal),
		CheckIn:    &checkIn,
		Status:     status,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return a.toResponse(rec), nil
}

// CheckOut implements attendance.AttendanceService. Total hours are derived
// here, once; both check-out fields are written in a single statement so a
// failed check-out leaves the record open.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, actor policy.Actor) (attendance.RecordResponse, error) {
	nowLocal := a.now().In(a.loc)

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, actor.ProfileID, calendar.DateOf(nowLocal))
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrNoOpenCheckIn
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get today's attendance record: %w", err)
	}

	if rec.CheckIn == nil || rec.CheckOut != nil {
		return attendance.RecordResponse{}, attendance.ErrNoOpenCheckIn
	}

	duration := nowLocal.Sub(*rec.CheckIn)
	if duration < 0 {
		return attendance.RecordResponse{}, attendance.ErrInvalidDuration
	}

	totalHours := decimal.NewFromFloat(duration.Hours()).Round(2)

	if err := a.AttendanceRepository.SetCheckOut(ctx, rec.ID, nowLocal, totalHours); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	checkOut := nowLocal
	rec.CheckOut = &checkOut
	rec.TotalHours = &totalHours

	return a.toResponse(rec), nil
}

// GetRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetRecord(ctx context.Context, actor policy.Actor, employeeID string, date string) (attendance.RecordResponse, error) {
	day, valid := validator.IsValidDate(date)
	if !valid {
		return attendance.RecordResponse{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	if !policy.Allow(actor, policy.Resource{Kind: policy.ResourceAttendance, OwnerID: employeeID}, policy.ActionRead) {
		return attendance.RecordResponse{}, attendance.ErrForbidden
	}

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return a.toResponse(rec), nil
}

// GetToday implements attendance.AttendanceService. An absent record is not
// an error: the response simply reports there is nothing to check out from.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, actor policy.Actor) (attendance.TodayResponse, error) {
	nowLocal := a.now().In(a.loc)

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, actor.ProfileID, calendar.DateOf(nowLocal))
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.TodayResponse{}, nil
		}
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance record: %w", err)
	}

	resp := a.toResponse(rec)
	return attendance.TodayResponse{
		HasCheckedIn: rec.CheckIn != nil,
		CanCheckOut:  rec.CheckIn != nil && rec.CheckOut == nil,
		Record:       &resp,
	}, nil
}

// ListMyRecords implements attendance.AttendanceService. The filter is forced
// to the actor's own rows whatever employee_id the caller put in it.
func (a *AttendanceServiceImpl) ListMyRecords(ctx context.Context, actor policy.Actor, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	employeeID := actor.ProfileID
	filter.EmployeeID = &employeeID

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	return a.list(ctx, filter)
}

// ListRecords implements attendance.AttendanceService. Manager scope.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, actor policy.Actor, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	owner := ""
	if filter.EmployeeID != nil {
		owner = *filter.EmployeeID
	}
	if !policy.Allow(actor, policy.Resource{Kind: policy.ResourceAttendance, OwnerID: owner}, policy.ActionRead) {
		return nil, attendance.ErrForbidden
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	return a.list(ctx, filter)
}

func (a *AttendanceServiceImpl) list(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, a.toResponse(rec))
	}
	return responses, nil
}

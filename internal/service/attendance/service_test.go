package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/pkg/calendar"
	"github.com/workpulse/attendance-backend-go/internal/pkg/policy"
)

// fakeAttendanceRepository keeps records in memory and enforces the same
// one-record-per-(employee, date) constraint the real table does.
type fakeAttendanceRepository struct {
	records map[string]attendance.Record
	nextID  int
}

func newFakeRepo() *fakeAttendanceRepository {
	return &fakeAttendanceRepository{records: make(map[string]attendance.Record)}
}

func (f *fakeAttendanceRepository) key(employeeID string, date time.Time) string {
	return employeeID + "|" + calendar.DateString(date)
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	k := f.key(rec.EmployeeID, rec.Date)
	if _, exists := f.records[k]; exists {
		return attendance.Record{}, attendance.ErrAlreadyCheckedIn
	}
	f.nextID++
	rec.ID = fmt.Sprintf("rec-%d", f.nextID)
	rec.CreatedAt = time.Now()
	f.records[k] = rec
	return rec, nil
}

func (f *fakeAttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	rec, exists := f.records[f.key(employeeID, date)]
	if !exists {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time, totalHours decimal.Decimal) error {
	for k, rec := range f.records {
		if rec.ID == id && rec.CheckOut == nil {
			rec.CheckOut = &checkOut
			rec.TotalHours = &totalHours
			f.records[k] = rec
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(rec.Status) != *filter.Status {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeAttendanceRepository) Delete(ctx context.Context, id string) error {
	for k, rec := range f.records {
		if rec.ID == id {
			delete(f.records, k)
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func newTestService(repo attendance.AttendanceRepository, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		loc:                  time.UTC,
		now:                  func() time.Time { return now },
	}
}

var employeeActor = policy.Actor{ProfileID: "emp-1", Role: policy.RoleEmployee}

func TestCheckInBeforeNineIsPresent(t *testing.T) {
	svc := newTestService(newFakeRepo(), time.Date(2024, 3, 11, 8, 59, 59, 0, time.UTC))

	resp, err := svc.CheckIn(context.Background(), employeeActor)

	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.Equal(t, "2024-03-11", resp.Date)
	require.NotNil(t, resp.CheckInTime)
	assert.Nil(t, resp.CheckOutTime)
}

func TestCheckInAtNineIsLate(t *testing.T) {
	svc := newTestService(newFakeRepo(), time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC))

	resp, err := svc.CheckIn(context.Background(), employeeActor)

	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
}

func TestCheckInAfterNineIsLate(t *testing.T) {
	svc := newTestService(newFakeRepo(), time.Date(2024, 3, 11, 14, 22, 0, 0, time.UTC))

	resp, err := svc.CheckIn(context.Background(), employeeActor)

	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
}

func TestCheckInTwiceSameDayFails(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(context.Background(), employeeActor)
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), employeeActor)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.Len(t, repo.records, 1)
}

func TestCheckInNextDayCreatesNewRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(context.Background(), employeeActor)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC) }
	_, err = svc.CheckIn(context.Background(), employeeActor)
	require.NoError(t, err)
	assert.Len(t, repo.records, 2)
}

func TestCheckOutDerivesRoundedHours(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(context.Background(), employeeActor)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, 3, 11, 17, 30, 0, 0, time.UTC) }
	resp, err := svc.CheckOut(context.Background(), employeeActor)

	require.NoError(t, err)
	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, 8.5, *resp.TotalHours)
	require.NotNil(t, resp.CheckOutTime)

	// status was decided at check-in and stays late
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
}

func TestCheckOutRoundsToTwoDecimals(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(context.Background(), employeeActor)
	require.NoError(t, err)

	// 7h40m = 7.666... hours
	svc.now = func() time.Time { return time.Date(2024, 3, 11, 16, 40, 0, 0, time.UTC) }
	resp, err := svc.CheckOut(context.Background(), employeeActor)

	require.NoError(t, err)
	assert.Equal(t, 7.67, *resp.TotalHours)
}

func TestCheckOutWithoutCheckInFails(t *testing.T) {
	svc := newTestService(newFakeRepo(), time.Date(2024, 3, 11, 17, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut(context.Background(), employeeActor)

	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

func TestCheckOutTwiceFails(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(context.Background(), employeeActor)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, 3, 11, 17, 0, 0, 0, time.UTC) }
	_, err = svc.CheckOut(context.Background(), employeeActor)
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), employeeActor)
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

func TestCheckOutRejectsNegativeDuration(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(context.Background(), employeeActor)
	require.NoError(t, err)

	// clock skew: check-out instant before check-in
	svc.now = func() time.Time { return time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC) }
	_, err = svc.CheckOut(context.Background(), employeeActor)

	assert.ErrorIs(t, err, attendance.ErrInvalidDuration)

	// nothing was written
	rec, err := repo.GetByEmployeeAndDate(context.Background(), "emp-1", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, rec.CheckOut)
	assert.Nil(t, rec.TotalHours)
}

func TestCheckOutAfterMidnightFindsNoOpenCheckIn(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Date(2024, 3, 11, 23, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(context.Background(), employeeActor)
	require.NoError(t, err)

	// past midnight the open record belongs to yesterday's date
	svc.now = func() time.Time { return time.Date(2024, 3, 12, 1, 0, 0, 0, time.UTC) }
	_, err = svc.CheckOut(context.Background(), employeeActor)

	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

func TestGetToday(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC))

	today, err := svc.GetToday(context.Background(), employeeActor)
	require.NoError(t, err)
	assert.False(t, today.HasCheckedIn)
	assert.False(t, today.CanCheckOut)
	assert.Nil(t, today.Record)

	_, err = svc.CheckIn(context.Background(), employeeActor)
	require.NoError(t, err)

	today, err = svc.GetToday(context.Background(), employeeActor)
	require.NoError(t, err)
	assert.True(t, today.HasCheckedIn)
	assert.True(t, today.CanCheckOut)
	require.NotNil(t, today.Record)

	svc.now = func() time.Time { return time.Date(2024, 3, 11, 17, 0, 0, 0, time.UTC) }
	_, err = svc.CheckOut(context.Background(), employeeActor)
	require.NoError(t, err)

	today, err = svc.GetToday(context.Background(), employeeActor)
	require.NoError(t, err)
	assert.True(t, today.HasCheckedIn)
	assert.False(t, today.CanCheckOut)
}

func TestGetRecordPolicy(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(context.Background(), employeeActor)
	require.NoError(t, err)

	// self read
	_, err = svc.GetRecord(context.Background(), employeeActor, "emp-1", "2024-03-11")
	assert.NoError(t, err)

	// another employee may not read it
	other := policy.Actor{ProfileID: "emp-2", Role: policy.RoleEmployee}
	_, err = svc.GetRecord(context.Background(), other, "emp-1", "2024-03-11")
	assert.ErrorIs(t, err, attendance.ErrForbidden)

	// a manager may
	manager := policy.Actor{ProfileID: "mgr-1", Role: policy.RoleManager}
	rec, err := svc.GetRecord(context.Background(), manager, "emp-1", "2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, "emp-1", rec.EmployeeID)
}

func TestListMyRecordsForcesOwnScope(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(context.Background(), employeeActor)
	require.NoError(t, err)

	other := policy.Actor{ProfileID: "emp-2", Role: policy.RoleEmployee}
	svc.now = func() time.Time { return time.Date(2024, 3, 11, 8, 30, 0, 0, time.UTC) }
	_, err = svc.CheckIn(context.Background(), other)
	require.NoError(t, err)

	// the filter asks for someone else's rows; the service overrides it
	leaked := "emp-2"
	records, err := svc.ListMyRecords(context.Background(), employeeActor, attendance.ListFilter{EmployeeID: &leaked})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "emp-1", records[0].EmployeeID)
}

func TestListRecordsRequiresManager(t *testing.T) {
	svc := newTestService(newFakeRepo(), time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC))

	_, err := svc.ListRecords(context.Background(), employeeActor, attendance.ListFilter{})
	assert.ErrorIs(t, err, attendance.ErrForbidden)

	manager := policy.Actor{ProfileID: "mgr-1", Role: policy.RoleManager}
	_, err = svc.ListRecords(context.Background(), manager, attendance.ListFilter{})
	assert.NoError(t, err)
}

func TestListFilterValidation(t *testing.T) {
	svc := newTestService(newFakeRepo(), time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC))

	badStatus := "vacationing"
	_, err := svc.ListMyRecords(context.Background(), employeeActor, attendance.ListFilter{Status: &badStatus})
	assert.Error(t, err)
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const uniqueViolationCode = "23505"

// Create implements attendance.AttendanceRepository. The attendance_records
// table carries UNIQUE (employee_id, date); a violation means a concurrent
// check-in already won and is surfaced as ErrAlreadyCheckedIn.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := a.db.Pool

	query := `
		INSERT INTO attendance_records (id, employee_id, date, check_in, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		rec.EmployeeID,
		rec.Date,
		rec.CheckIn,
		rec.Status,
	).Scan(&rec.ID, &rec.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("%w: create attendance record: %v", database.ErrStoreUnavailable, err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	q := a.db.Pool

	query := `
		SELECT id, employee_id, date, check_in, check_out, status, total_hours, created_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.Status, &rec.TotalHours, &rec.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("%w: get attendance record: %v", database.ErrStoreUnavailable, err)
	}

	return rec, nil
}

// SetCheckOut implements attendance.AttendanceRepository. Both fields are
// written in one statement so a failed check-out leaves the record untouched.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time, totalHours decimal.Decimal) error {
	q := a.db.Pool

	query := `
		UPDATE attendance_records
		SET check_out = $2, total_hours = $3
		WHERE id = $1
		  AND check_out IS NULL
	`

	tag, err := q.Exec(ctx, query, id, checkOut, totalHours)
	if err != nil {
		return fmt.Errorf("%w: set check-out: %v", database.ErrStoreUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository. Records come back joined
// with the owning profile so listings can show names without a second query.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	q := a.db.Pool

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status, a.total_hours, a.created_at,
			   p.full_name AS employee_name,
			   p.employee_code,
			   p.department
		FROM attendance_records a
		LEFT JOIN profiles p ON p.id = a.employee_id
	`

	var conditions []string
	var args []interface{}
	argPos := 1

	addCondition := func(clause string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(clause, argPos))
		args = append(args, value)
		argPos++
	}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		addCondition("a.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.Date != nil && *filter.Date != "" {
		addCondition("a.date = $%d", *filter.Date)
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		addCondition("a.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		addCondition("a.date <= $%d", *filter.EndDate)
	}
	if filter.Status != nil && *filter.Status != "" {
		addCondition("a.status = $%d", *filter.Status)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date DESC, a.check_in DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list attendance records: %v", database.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
			&rec.Status, &rec.TotalHours, &rec.CreatedAt,
			&rec.EmployeeName, &rec.EmployeeCode, &rec.Department,
		); err != nil {
			return nil, fmt.Errorf("%w: scan attendance record: %v", database.ErrStoreUnavailable, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate attendance records: %v", database.ErrStoreUnavailable, err)
	}

	return records, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := a.db.Pool

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: delete attendance record: %v", database.ErrStoreUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

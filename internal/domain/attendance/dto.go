package attendance

import (
	"github.com/workpulse/attendance-backend-go/internal/pkg/validator"
)

type RecordResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name,omitempty"`
	Date         string   `json:"date"`
	CheckInTime  *string  `json:"check_in_time,omitempty"`
	CheckOutTime *string  `json:"check_out_time,omitempty"`
	TotalHours   *float64 `json:"total_hours,omitempty"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"created_at"`
}

// TodayResponse tells the caller what it can do right now.
type TodayResponse struct {
	HasCheckedIn bool            `json:"has_checked_in"`
	CanCheckOut  bool            `json:"can_check_out"`
	Record       *RecordResponse `json:"record,omitempty"`
}

// ListFilter restricts a record listing. Dates are YYYY-MM-DD.
type ListFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !Status(*f.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, half-day",
		})
	}

	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.StartDate != nil && f.EndDate != nil && *f.StartDate != "" && *f.EndDate != "" {
		start, okStart := validator.IsValidDate(*f.StartDate)
		end, okEnd := validator.IsValidDate(*f.EndDate)
		if okStart && okEnd && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

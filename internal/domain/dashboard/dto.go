package dashboard

// ========== MANAGER DASHBOARD ==========

// ManagerDashboardResponse is the combined response for the manager dashboard
type ManagerDashboardResponse struct {
	Date        string               `json:"date"` // Format: "YYYY-MM-DD"
	Summary     TodaySummaryResponse `json:"summary"`
	WeeklyTrend []TrendPointItem     `json:"weekly_trend"`
	Departments []DepartmentStatItem `json:"departments"`
	Absentees   []AbsenteeItem       `json:"absentees"`
}

// TodaySummaryResponse is today's headcount breakdown for the stat cards
type TodaySummaryResponse struct {
	TotalEmployees int `json:"total_employees"`
	Present        int `json:"present"`
	Late           int `json:"late"`
	Absent         int `json:"absent"`
	PresentPercent int `json:"present_percent"`
}

// TrendPointItem is one day of the seven-day trend chart
type TrendPointItem struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

// DepartmentStatItem is one department's presence for the rollup table
type DepartmentStatItem struct {
	Department string `json:"department"`
	Present    int    `json:"present"`
	Total      int    `json:"total"`
}

// AbsenteeItem is one employee with no record today
type AbsenteeItem struct {
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department"`
}

// ========== EMPLOYEE DASHBOARD ==========

// EmployeeDashboardResponse is the per-employee monthly view
type EmployeeDashboardResponse struct {
	Month    string                 `json:"month"` // Format: "YYYY-MM"
	Summary  MonthlySummaryResponse `json:"summary"`
	Calendar []CalendarCell         `json:"calendar"`
}

// MonthlySummaryResponse is the employee's own monthly breakdown
type MonthlySummaryResponse struct {
	Present           int     `json:"present"`
	Late              int     `json:"late"`
	Absent            int     `json:"absent"`
	HalfDay           int     `json:"half_day"`
	TotalHours        float64 `json:"total_hours"`
	AttendancePercent int     `json:"attendance_percent"`
}

// CalendarCell is one slot of the month grid. Day is nil for the padding
// cells before day 1; Status is nil for days without a record.
type CalendarCell struct {
	Day    *int    `json:"day"`
	Status *string `json:"status,omitempty"`
}

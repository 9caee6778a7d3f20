// Package stats holds the pure reducers that fold attendance records and
// profiles into dashboard and report figures. Nothing here touches the store:
// every function is a deterministic, order-independent fold over the record
// set it is handed, which the caller is responsible for scoping to the actor.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/profile"
	"github.com/workpulse/attendance-backend-go/internal/pkg/calendar"
)

// UnassignedDepartment is the rollup bucket for employees without a department.
const UnassignedDepartment = "Unassigned"

// Summary is the per-status breakdown of a record set.
type Summary struct {
	Present    int             `json:"present"`
	Absent     int             `json:"absent"`
	Late       int             `json:"late"`
	HalfDay    int             `json:"half_day"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

// SummaryCounts counts records per status and sums their hours. Records
// without hours (still checked in, or marked administratively) contribute 0.
func SummaryCounts(records []attendance.Record) Summary {
	s := Summary{TotalHours: decimal.Zero}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			s.Present++
		case attendance.StatusAbsent:
			s.Absent++
		case attendance.StatusLate:
			s.Late++
		case attendance.StatusHalfDay:
			s.HalfDay++
		}
		if rec.TotalHours != nil {
			s.TotalHours = s.TotalHours.Add(*rec.TotalHours)
		}
	}
	return s
}

// TrendPoint is one day of the weekly trend.
type TrendPoint struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

// WeeklyTrend buckets records into the seven calendar days ending at endDate,
// oldest first. Present counts records whose status is present or late.
// Absent is the headcount complement: employees with no record that day are
// treated as absent, whatever their stored statuses elsewhere say.
func WeeklyTrend(records []attendance.Record, totalEmployeeCount int, endDate time.Time) []TrendPoint {
	days := calendar.WeekEnding(endDate)

	points := make([]TrendPoint, len(days))
	for i, day := range days {
		points[i] = TrendPoint{Date: calendar.DateString(day)}
	}

	for _, rec := range records {
		for i, day := range days {
			if !calendar.SameDate(rec.Date, day) {
				continue
			}
			if rec.Status == attendance.StatusPresent || rec.Status == attendance.StatusLate {
				points[i].Present++
			}
			points[i].Absent-- // recorded for the day, so not absent
			break
		}
	}

	for i := range points {
		points[i].Absent += totalEmployeeCount
		if points[i].Absent < 0 {
			points[i].Absent = 0
		}
	}

	return points
}

// DepartmentStat is one department's presence rollup.
type DepartmentStat struct {
	Department string `json:"department"`
	Present    int    `json:"present"`
	Total      int    `json:"total"`
}

// DepartmentRollup groups employees (role employee only) by department and
// counts how many of each are in the present set. Missing departments fall
// into the Unassigned bucket; output is sorted by department name so equal
// inputs always render identically.
func DepartmentRollup(profiles []profile.Profile, presentIDs map[string]struct{}) []DepartmentStat {
	buckets := make(map[string]*DepartmentStat)
	for _, p := range profiles {
		if p.IsManager() {
			continue
		}
		dept := UnassignedDepartment
		if p.Department != nil && *p.Department != "" {
			dept = *p.Department
		}
		stat, ok := buckets[dept]
		if !ok {
			stat = &DepartmentStat{Department: dept}
			buckets[dept] = stat
		}
		stat.Total++
		if _, present := presentIDs[p.ID]; present {
			stat.Present++
		}
	}

	stats := make([]DepartmentStat, 0, len(buckets))
	for _, stat := range buckets {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Department < stats[j].Department
	})
	return stats
}

// Absentee is an employee inferred absent: no attendance record for the day,
// as opposed to one explicitly marked absent.
type Absentee struct {
	FullName     string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department"`
}

// AbsenteeList projects the employees (role employee only) whose IDs are not
// in the present set, sorted by name.
func AbsenteeList(profiles []profile.Profile, presentIDs map[string]struct{}) []Absentee {
	absentees := make([]Absentee, 0)
	for _, p := range profiles {
		if p.IsManager() {
			continue
		}
		if _, present := presentIDs[p.ID]; present {
			continue
		}
		dept := UnassignedDepartment
		if p.Department != nil && *p.Department != "" {
			dept = *p.Department
		}
		absentees = append(absentees, Absentee{
			FullName:     p.FullName,
			EmployeeCode: p.EmployeeCode,
			Department:   dept,
		})
	}
	sort.Slice(absentees, func(i, j int) bool {
		return absentees[i].FullName < absentees[j].FullName
	})
	return absentees
}

// MonthlyPercentage returns round(100 * part / whole), guarding the zero
// denominator. Every percentage the API shows goes through this.
func MonthlyPercentage(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

// PresentIDSet extracts the employee IDs having any record in the set,
// for feeding DepartmentRollup and AbsenteeList.
func PresentIDSet(records []attendance.Record) map[string]struct{} {
	ids := make(map[string]struct{}, len(records))
	for _, rec := range records {
		ids[rec.EmployeeID] = struct{}{}
	}
	return ids
}

package calendar

import "time"

// DateFormat is the wire format for calendar dates throughout the API.
const DateFormat = "2006-01-02"

// DateOf truncates an instant to its calendar date in the instant's location.
func DateOf(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
}

// DateString formats an instant as its calendar date string.
func DateString(ref time.Time) string {
	return ref.Format(DateFormat)
}

// SameDate reports whether two instants fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MonthBounds returns the first and last calendar dates of a month.
func MonthBounds(year int, month time.Month) (first, last time.Time) {
	first = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// WeekEnding returns the seven calendar dates ending at end (inclusive),
// oldest first.
func WeekEnding(end time.Time) []time.Time {
	end = DateOf(end)
	days := make([]time.Time, 7)
	for i := 0; i < 7; i++ {
		days[i] = end.AddDate(0, 0, i-6)
	}
	return days
}

// MonthGrid returns the day-of-month values for a month as a flat grid for
// calendar rendering. Weeks start on Sunday; cells before day 1 are nil so
// the first day lands in its weekday column.
func MonthGrid(year int, month time.Month) []*int {
	first, last := MonthBounds(year, month)

	grid := make([]*int, 0, 42)
	for i := 0; i < int(first.Weekday()); i++ {
		grid = append(grid, nil)
	}
	for d := 1; d <= last.Day(); d++ {
		day := d
		grid = append(grid, &day)
	}
	return grid
}

package calendar

import "time"

// GridSize is the number of cells of a month view: six weeks of seven days. Every month fits in
// six weeks so all months render with the same height.
const GridSize = 42

// Grid is a month view laid out Sunday first. Cells before the first and after the last day of
// the month are nil.
type Grid [GridSize]*time.Time

// MonthGrid lays out month of year in loc. The first day of the month is placed in the column of
// its weekday, Sunday being column 0.
func MonthGrid(year int, month time.Month, loc *time.Location) Grid {
	var grid Grid

	offset := int(FirstDayOfMonth(year, month, loc).Weekday())
	for day := 1; day <= DaysInMonth(year, month); day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc)
		grid[offset+day-1] = &date
	}

	return grid
}

// Weeks returns the grid as six rows of seven days.
func (g Grid) Weeks() [6][7]*time.Time {
	var weeks [6][7]*time.Time
	for i, cell := range g {
		weeks[i/7][i%7] = cell
	}
	return weeks
}

// Days returns the non-nil cells in order.
func (g Grid) Days() []time.Time {
	days := make([]time.Time, 0, 31)
	for _, cell := range g {
		if cell != nil {
			days = append(days, *cell)
		}
	}
	return days
}

// MonthDates returns every day of month in order.
func MonthDates(year int, month time.Month, loc *time.Location) []time.Time {
	n := DaysInMonth(year, month)
	dates := make([]time.Time, n)
	for i := range n {
		dates[i] = time.Date(year, month, i+1, 0, 0, 0, 0, loc)
	}
	return dates
}

// WeekDates returns the seven days of the week t falls in, starting on Sunday. The time of day of
// t is kept.
func WeekDates(t time.Time) [7]time.Time {
	var week [7]time.Time
	sunday := SubtractDays(t, int(t.Weekday()))
	for i := range week {
		week[i] = AddDays(sunday, i)
	}
	return week
}

// DateRange returns every calendar day from start to end inclusive, each at midnight in start's
// location. The result is empty if end falls on a day before start.
func DateRange(start, end time.Time) []time.Time {
	loc := start.Location()
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.In(loc).Date()

	// count days on UTC dates, local midnights are not always 24 hours apart
	n := int(time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC).Sub(time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)).Hours() / 24)
	if n < 0 {
		return nil
	}

	dates := make([]time.Time, n+1)
	for i := range dates {
		dates[i] = time.Date(y1, m1, d1+i, 0, 0, 0, 0, loc)
	}
	return dates
}

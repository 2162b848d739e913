// Package calendar implements the date arithmetic behind the month, week and day views. All
// functions are pure and work on the wall clock of the location carried by their arguments.
package calendar

import "time"

// DaysInMonth returns the number of days in month of year. Day 0 of the following month
// normalizes to the last day of month which handles leap years.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstDayOfMonth returns midnight of the first day of month in loc.
func FirstDayOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, loc)
}

// LastDayOfMonth returns midnight of the last day of month in loc.
func LastDayOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
}

// StartOfDay returns midnight of the day t falls on in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether a and b fall on the same calendar day. b is compared on a's wall
// clock so instants from different locations can be matched against a local day.
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsToday reports whether t falls on the same calendar day as now.
func IsToday(t, now time.Time) bool {
	return IsSameDay(now, t)
}

// AddDays returns t moved n calendar days forward keeping the time of day. Month and year
// boundaries roll over.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// SubtractDays returns t moved n calendar days back keeping the time of day.
func SubtractDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, -n)
}

package utils

import (
	"time"

	"github.com/ikedoebber/organizer-api/internal/constants"
)

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the first and last day of the month as
// "YYYY-MM-DD" strings.
func MonthBounds(year, month int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.Month(month), DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

// MonthCalendar builds the month's week grid: each week is a slice of
// seven day-of-month numbers starting on Monday, with 0 filling the
// slots that belong to the neighboring months.
func MonthCalendar(year, month int) [][]int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Monday-indexed weekday of the 1st (Monday = 0).
	lead := (int(first.Weekday()) + 6) % 7
	days := DaysInMonth(year, month)

	var weeks [][]int
	week := make([]int, 7)
	slot := lead
	for day := 1; day <= days; day++ {
		week[slot] = day
		slot++
		if slot == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			slot = 0
		}
	}
	if slot > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// MonthNavigation returns the previous and next month/year pairs,
// wrapping December and January across year boundaries.
func MonthNavigation(year, month int) (prevYear, prevMonth, nextYear, nextMonth int) {
	prevYear, prevMonth = year, month-1
	if month == 1 {
		prevYear, prevMonth = year-1, 12
	}
	nextYear, nextMonth = year, month+1
	if month == 12 {
		nextYear, nextMonth = year+1, 1
	}
	return prevYear, prevMonth, nextYear, nextMonth
}

// ClampCalendarInput validates the requested year and month, falling
// back to the current month or year on out-of-range values. The
// handler passes ok=false when a parameter was non-numeric, which also
// falls back.
func ClampCalendarInput(year, month int, ok bool, now time.Time) (int, int) {
	if !ok {
		return now.Year(), int(now.Month())
	}
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year < constants.CalendarMinYear || year > constants.CalendarMaxYear {
		year = now.Year()
	}
	return year, month
}

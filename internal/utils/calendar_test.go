package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthCalendarLeapFebruary(t *testing.T) {
	weeks := MonthCalendar(2024, 2)

	// Feb 1st 2024 is a Thursday; Monday-first grid.
	assert.Len(t, weeks, 5)
	assert.Equal(t, []int{0, 0, 0, 1, 2, 3, 4}, weeks[0])
	assert.Equal(t, []int{26, 27, 28, 29, 0, 0, 0}, weeks[4])
}

func TestMonthCalendarCoversEveryDay(t *testing.T) {
	weeks := MonthCalendar(2025, 9)

	seen := make(map[int]bool)
	for _, week := range weeks {
		assert.Len(t, week, 7)
		for _, day := range week {
			if day != 0 {
				assert.False(t, seen[day])
				seen[day] = true
			}
		}
	}
	assert.Len(t, seen, DaysInMonth(2025, 9))
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2024, 2)
	assert.Equal(t, "2024-02-01", first)
	assert.Equal(t, "2024-02-29", last)

	first, last = MonthBounds(2023, 2)
	assert.Equal(t, "2023-02-01", first)
	assert.Equal(t, "2023-02-28", last)
}

func TestMonthNavigationWrapsYears(t *testing.T) {
	prevYear, prevMonth, nextYear, nextMonth := MonthNavigation(2024, 1)
	assert.Equal(t, 2023, prevYear)
	assert.Equal(t, 12, prevMonth)
	assert.Equal(t, 2024, nextYear)
	assert.Equal(t, 2, nextMonth)

	prevYear, prevMonth, nextYear, nextMonth = MonthNavigation(2024, 12)
	assert.Equal(t, 2024, prevYear)
	assert.Equal(t, 11, prevMonth)
	assert.Equal(t, 2025, nextYear)
	assert.Equal(t, 1, nextMonth)
}

func TestClampCalendarInput(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	year, month := ClampCalendarInput(2024, 2, true, now)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 2, month)

	// Out-of-range month falls back to the current month only.
	year, month = ClampCalendarInput(2024, 13, true, now)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 6, month)

	year, month = ClampCalendarInput(2024, 0, true, now)
	assert.Equal(t, 6, month)

	// Out-of-range year falls back to the current year only.
	year, month = ClampCalendarInput(1899, 3, true, now)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 3, month)

	year, month = ClampCalendarInput(2101, 3, true, now)
	assert.Equal(t, 2024, year)

	// Non-numeric input (ok=false) falls back entirely.
	year, month = ClampCalendarInput(0, 0, false, now)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 6, month)
}

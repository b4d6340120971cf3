package tui

import (
	"time"

	"daybook/internal/domain"
)

// monthWeeks lays out a month as Sunday-first weeks. Cells before the first
// or after the last day of the month are zero Dates.
func monthWeeks(year int, month time.Month) [][7]domain.Date {
	first := domain.NewDate(year, month, 1)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	var weeks [][7]domain.Date
	var week [7]domain.Date

	col := int(first.Weekday())
	for day := 1; day <= daysInMonth; day++ {
		week[col] = domain.NewDate(year, month, day)
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]domain.Date{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}

	return weeks
}

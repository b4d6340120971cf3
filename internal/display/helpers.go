package display

import (
	"strconv"

	"daybook/internal/domain"
)

func Checkbox(done bool) string {
	if done {
		return "☑"
	}
	return "☐"
}

// CountBadge renders a date's task count for the calendar cell; zero renders
// as nothing at all.
func CountBadge(count int) string {
	if count <= 0 {
		return ""
	}
	return strconv.Itoa(count)
}

// FormatDateLong renders a date for headers, e.g. "Tue, 10 Mar 2026".
func FormatDateLong(d domain.Date) string {
	if d.IsZero() {
		return "no date selected"
	}
	return d.Time().Format("Mon, 02 Jan 2006")
}

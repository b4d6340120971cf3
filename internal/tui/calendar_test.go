package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybook/internal/domain"
)

func TestMonthWeeks(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantWeeks int
		firstCol  int // column of day 1 (0 = Sunday)
		lastDay   int
	}{
		{
			name:      "february 2026 starts on sunday",
			year:  2026,
			month: time.February,
			wantWeeks: 4,
			firstCol:  0,
			lastDay:   28,
		},
		{
			name:      "march 2024 starts on friday",
			year:      2024,
			month:     time.March,
			wantWeeks: 6,
			firstCol:  5,
			lastDay:   31,
		},
		{
			name:      "february 2024 leap year",
			year:      2024,
			month:     time.February,
			wantWeeks: 5,
			firstCol:  4,
			lastDay:   29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weeks := monthWeeks(tt.year, tt.month)
			require.Len(t, weeks, tt.wantWeeks)

			// cells before day 1 are zero
			for col := 0; col < tt.firstCol; col++ {
				assert.True(t, weeks[0][col].IsZero())
			}
			assert.Equal(t, domain.NewDate(tt.year, tt.month, 1), weeks[0][tt.firstCol])

			// the last day of the month is the last non-zero cell
			var last domain.Date
			for _, week := range weeks {
				for _, day := range week {
					if !day.IsZero() {
						last = day
					}
				}
			}
			assert.Equal(t, domain.NewDate(tt.year, tt.month, tt.lastDay), last)
		})
	}
}

func TestMonthWeeksCoversEveryDay(t *testing.T) {
	weeks := monthWeeks(2024, time.March)

	seen := make(map[int]bool)
	for _, week := range weeks {
		for _, day := range week {
			if !day.IsZero() {
				assert.False(t, seen[day.Day()], "day %d appears twice", day.Day())
				seen[day.Day()] = true
			}
		}
	}
	assert.Len(t, seen, 31)
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	t.Run("valid clock string", func(t *testing.T) {
		clock, err := ParseClock("09:30")
		assert.NoError(t, err)
		assert.Equal(t, 9, clock.Hour())
		assert.Equal(t, 30, clock.Minute())
	})

	t.Run("rejects non-clock input", func(t *testing.T) {
		_, err := ParseClock("9am")
		assert.Error(t, err)

		_, err = ParseClock("25:00")
		assert.Error(t, err)
	})
}

func TestCombineDateAndClock(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	date := time.Date(2026, time.March, 9, 17, 45, 12, 999, jakarta)
	clock, err := ParseClock("09:15")
	assert.NoError(t, err)

	combined := CombineDateAndClock(date, clock)

	assert.Equal(t, 2026, combined.Year())
	assert.Equal(t, time.March, combined.Month())
	assert.Equal(t, 9, combined.Day())
	assert.Equal(t, 9, combined.Hour())
	assert.Equal(t, 15, combined.Minute())
	assert.Equal(t, 0, combined.Second())
	assert.Equal(t, jakarta, combined.Location())
}

func TestWeekdayName(t *testing.T) {
	// 2026-03-09 is a Monday.
	monday := time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "monday", WeekdayName(monday))
	assert.Equal(t, "sunday", WeekdayName(monday.AddDate(0, 0, -1)))
}

func TestDayBounds(t *testing.T) {
	moment := time.Date(2026, time.March, 9, 17, 45, 12, 0, time.UTC)

	start, end := DayBounds(moment)

	assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestGenerateMeetingID(t *testing.T) {
	first := GenerateMeetingID("booking-1")
	second := GenerateMeetingID("booking-1")
	other := GenerateMeetingID("booking-2")

	assert.Equal(t, first, second, "same booking must map to the same room")
	assert.NotEqual(t, first, other)
	assert.Regexp(t, `^sb-[0-9a-f]{12}$`, first)
}

package utils

import (
	"strings"
	"time"
)

// ParseClock parses a "15:04" clock string.
func ParseClock(value string) (time.Time, error) {
	return time.Parse("15:04", value)
}

// CombineDateAndClock anchors a "15:04" clock string on the calendar date of
// the given day, in that day's location.
func CombineDateAndClock(date time.Time, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		date.Location(),
	)
}

// WeekdayName returns the lowercase weekday name used as the availability
// map key ("monday".."sunday").
func WeekdayName(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// DayBounds returns the [start, end) boundaries of the calendar day the
// given time falls on.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

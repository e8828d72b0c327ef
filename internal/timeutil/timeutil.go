// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"time"
)

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// HoursMinsSecs splits a duration into whole hours, minutes, and
// seconds for countdown-style display.
func HoursMinsSecs(d time.Duration) (hrs, mins, secs int) {
	total := int(d.Seconds())

	hrs = total / 3600
	mins = (total % 3600) / 60
	secs = total % 60

	return
}

// FormatClock renders a duration as HH:MM:SS.
func FormatClock(d time.Duration) string {
	h, m, s := HoursMinsSecs(d)

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// KeyLayout is a fixed-width RFC 3339 layout. RFC3339Nano trims
// trailing fractional-second zeros, which breaks lexicographic ordering
// when one encoded timestamp is a prefix of another; this layout always
// emits all nine digits.
const KeyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ToKey converts a time value to a database key for Bolt. Keys sort
// chronologically.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(KeyLayout))
}

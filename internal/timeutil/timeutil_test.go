package timeutil

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{59 * time.Second, "00:00:59"},
		{90 * time.Minute, "01:30:00"},
		{16*time.Hour + 4*time.Minute + 5*time.Second, "16:04:05"},
		{48 * time.Hour, "48:00:00"},
	}

	for _, tc := range cases {
		if got := FormatClock(tc.in); got != tc.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRoundToStartAndEnd(t *testing.T) {
	in := time.Date(2024, time.March, 4, 13, 45, 12, 999, time.UTC)

	start := RoundToStart(in)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("Expected the start of the day, but got: %v", start)
	}

	end := RoundToEnd(in)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("Expected the end of the day, but got: %v", end)
	}

	if start.Day() != in.Day() || end.Day() != in.Day() {
		t.Error("Expected rounding to stay within the same day")
	}
}

func TestToKeyOrdersChronologically(t *testing.T) {
	base := time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		earlier time.Time
		later   time.Time
	}{
		{
			name:    "whole seconds",
			earlier: base.Add(time.Second),
			later:   base.Add(2 * time.Second),
		},
		{
			// a trimmed encoding of .5 would sort after .52
			name:    "fraction is a prefix of the later fraction",
			earlier: base.Add(500 * time.Millisecond),
			later:   base.Add(520 * time.Millisecond),
		},
		{
			name:    "zero fraction against a nanosecond",
			earlier: base,
			later:   base.Add(time.Nanosecond),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			earlier := ToKey(tc.earlier)
			later := ToKey(tc.later)

			if string(earlier) >= string(later) {
				t.Errorf("Expected %q to sort before %q", earlier, later)
			}
		})
	}
}

package fasting

import (
	"testing"
	"time"
)

var t0 = time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC)

// startedRecord returns an active record started at t0 with the given
// planned duration.
func startedRecord(t *testing.T, d time.Duration) *Record {
	t.Helper()

	r := New("user-1", ProtocolCustom, d, t0)

	r, err := Start(r, t0)
	if err != nil {
		t.Fatalf("Unexpected error starting record: %v", err)
	}

	return r
}

func TestProgressFraction(t *testing.T) {
	cases := []struct {
		name     string
		record   func(t *testing.T) *Record
		now      time.Time
		expected float64
	}{
		{
			name: "not started reports zero",
			record: func(t *testing.T) *Record {
				t.Helper()
				return New("user-1", Protocol168, 0, t0)
			},
			now:      t0.Add(4 * time.Hour),
			expected: 0,
		},
		{
			name: "halfway through a 16 hour fast",
			record: func(t *testing.T) *Record {
				t.Helper()
				return startedRecord(t, 16*time.Hour)
			},
			now:      t0.Add(8 * time.Hour),
			expected: 0.5,
		},
		{
			name: "clamped at one past the planned end",
			record: func(t *testing.T) *Record {
				t.Helper()
				return startedRecord(t, 16*time.Hour)
			},
			now:      t0.Add(20 * time.Hour),
			expected: 1,
		},
		{
			name: "clock rolled back before the start",
			record: func(t *testing.T) *Record {
				t.Helper()
				return startedRecord(t, 16*time.Hour)
			},
			now:      t0.Add(-2 * time.Hour),
			expected: 0,
		},
		{
			name: "a paused hour does not count",
			record: func(t *testing.T) *Record {
				t.Helper()

				r := startedRecord(t, 10*time.Hour)

				r, err := Pause(r, t0.Add(2*time.Hour))
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}

				r, err = Resume(r, t0.Add(3*time.Hour))
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}

				return r
			},
			now:      t0.Add(5 * time.Hour),
			expected: 0.4,
		},
		{
			name: "an in-progress pause counts up to now",
			record: func(t *testing.T) *Record {
				t.Helper()

				r := startedRecord(t, 10*time.Hour)

				r, err := Pause(r, t0.Add(2*time.Hour))
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}

				return r
			},
			now:      t0.Add(6 * time.Hour),
			expected: 0.2,
		},
		{
			name: "zero planned duration short-circuits to one",
			record: func(t *testing.T) *Record {
				t.Helper()

				r := New("user-1", ProtocolCustom, 0, t0)
				r.State = StateActive
				r.ActualStartTime = t0

				return r
			},
			now:      t0.Add(time.Minute),
			expected: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProgressFraction(tc.record(t), tc.now)

			if got != tc.expected {
				t.Errorf(
					"Expected progress fraction to be: %v, but got: %v",
					tc.expected,
					got,
				)
			}
		})
	}
}

func TestProgressMonotonicity(t *testing.T) {
	r := startedRecord(t, 16*time.Hour)

	prev := float64(0)

	for i := 0; i <= 20; i++ {
		now := t0.Add(time.Duration(i) * time.Hour)

		got := ProgressFraction(r, now)
		if got < prev {
			t.Fatalf(
				"Progress decreased from %v to %v at hour %d",
				prev,
				got,
				i,
			)
		}

		prev = got
	}
}

func TestConservation(t *testing.T) {
	r := startedRecord(t, 10*time.Hour)

	r, err := Pause(r, t0.Add(time.Hour))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	r, err = Resume(r, t0.Add(90*time.Minute))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 0; i <= 15; i++ {
		now := t0.Add(time.Duration(i) * time.Hour)

		elapsed := ElapsedTime(r, now)
		if elapsed > r.PlannedDuration {
			elapsed = r.PlannedDuration
		}

		if RemainingTime(r, now)+elapsed != r.PlannedDuration {
			t.Errorf(
				"Remaining and elapsed do not sum to the planned duration at hour %d",
				i,
			)
		}
	}
}

func TestPauseNeutrality(t *testing.T) {
	// Pausing for an hour must delay reaching any given fraction by
	// exactly an hour compared to the unpaused run.
	plain := startedRecord(t, 10*time.Hour)

	paused := startedRecord(t, 10*time.Hour)

	paused, err := Pause(paused, t0.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	paused, err = Resume(paused, t0.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 3; i <= 11; i++ {
		now := t0.Add(time.Duration(i) * time.Hour)

		withPause := ProgressFraction(paused, now)
		without := ProgressFraction(plain, now.Add(-time.Hour))

		if withPause != without {
			t.Errorf(
				"Expected paused progress at hour %d to match unpaused progress an hour earlier: %v != %v",
				i,
				withPause,
				without,
			)
		}
	}
}

func TestElapsedTimeStableAfterEnd(t *testing.T) {
	r := startedRecord(t, 16*time.Hour)

	r, err := End(r, EndUserBreak, t0.Add(6*time.Hour))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Reopening the app days later must not advance the elapsed time.
	later := t0.Add(72 * time.Hour)

	if got := ElapsedTime(r, later); got != 6*time.Hour {
		t.Errorf(
			"Expected elapsed time to remain 6h after the fast ended, but got: %v",
			got,
		)
	}
}

func TestRemainingTime(t *testing.T) {
	notStarted := New("user-1", Protocol168, 0, t0)

	if got := RemainingTime(notStarted, t0.Add(time.Hour)); got != 16*time.Hour {
		t.Errorf(
			"Expected full planned duration before start, but got: %v",
			got,
		)
	}

	r := startedRecord(t, 16*time.Hour)

	if got := RemainingTime(r, t0.Add(20*time.Hour)); got != 0 {
		t.Errorf("Expected remaining time to floor at zero, but got: %v", got)
	}
}

package fasting

import (
	"errors"
	"testing"
	"time"
)

// terminalRecord builds a terminal history entry with the given outcome
// and fasted duration.
func terminalRecord(reason EndReason, d time.Duration) *Record {
	state := StateBroken
	if reason == EndCompleted {
		state = StateCompleted
	}

	return &Record{
		UserID:         "user-1",
		State:          state,
		EndReason:      reason,
		ActualDuration: d,
	}
}

func TestAggregateStreaks(t *testing.T) {
	cases := []struct {
		name            string
		history         []*Record
		expectedCurrent int
		expectedLongest int
		expectedBest    bool
	}{
		{
			name:            "empty history",
			history:         nil,
			expectedCurrent: 0,
			expectedLongest: 0,
			expectedBest:    false,
		},
		{
			name: "broken fast interrupts the run",
			history: []*Record{
				terminalRecord(EndCompleted, 16*time.Hour),
				terminalRecord(EndCompleted, 16*time.Hour),
				terminalRecord(EndUserBreak, 4*time.Hour),
				terminalRecord(EndCompleted, 16*time.Hour),
			},
			expectedCurrent: 1,
			expectedLongest: 2,
			expectedBest:    false,
		},
		{
			name: "unbroken history counts in full",
			history: []*Record{
				terminalRecord(EndCompleted, 16*time.Hour),
				terminalRecord(EndCompleted, 18*time.Hour),
				terminalRecord(EndCompleted, 20*time.Hour),
			},
			expectedCurrent: 3,
			expectedLongest: 3,
			expectedBest:    true,
		},
		{
			name: "newest broken fast resets the current streak",
			history: []*Record{
				terminalRecord(EndCompleted, 16*time.Hour),
				terminalRecord(EndCompleted, 16*time.Hour),
				terminalRecord(EndEmergencyBreak, 2*time.Hour),
			},
			expectedCurrent: 0,
			expectedLongest: 2,
			expectedBest:    false,
		},
		{
			name: "a long broken fast is not a personal best",
			history: []*Record{
				terminalRecord(EndCompleted, 16*time.Hour),
				terminalRecord(EndUserBreak, 40*time.Hour),
			},
			expectedCurrent: 0,
			expectedLongest: 1,
			expectedBest:    false,
		},
		{
			name: "matching a previous duration is not a best",
			history: []*Record{
				terminalRecord(EndCompleted, 16*time.Hour),
				terminalRecord(EndCompleted, 16*time.Hour),
			},
			expectedCurrent: 2,
			expectedLongest: 2,
			expectedBest:    false,
		},
		{
			name: "recorded longest streak is never shrunk",
			history: []*Record{
				func() *Record {
					r := terminalRecord(EndUserBreak, 2*time.Hour)
					r.LongestStreak = 7
					return r
				}(),
				terminalRecord(EndCompleted, 16*time.Hour),
			},
			expectedCurrent: 1,
			expectedLongest: 7,
			expectedBest:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := AggregateStreaks(tc.history)

			if res.Current != tc.expectedCurrent {
				t.Errorf(
					"Expected current streak to be: %d, but got: %d",
					tc.expectedCurrent,
					res.Current,
				)
			}

			if res.Longest != tc.expectedLongest {
				t.Errorf(
					"Expected longest streak to be: %d, but got: %d",
					tc.expectedLongest,
					res.Longest,
				)
			}

			if res.PersonalBest != tc.expectedBest {
				t.Errorf(
					"Expected personal best to be: %t, but got: %t",
					tc.expectedBest,
					res.PersonalBest,
				)
			}
		})
	}
}

type historyStub struct {
	records []*Record
	err     error
}

func (h *historyStub) TerminalRecords(_ string) ([]*Record, error) {
	return h.records, h.err
}

func TestFinalize(t *testing.T) {
	h := &historyStub{
		records: []*Record{
			terminalRecord(EndCompleted, 10*time.Hour),
			terminalRecord(EndCompleted, 12*time.Hour),
		},
	}

	r := startedRecord(t, 16*time.Hour)

	done, err := Finalize(r, EndCompleted, t0.Add(16*time.Hour), h)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if done.CurrentStreak != 3 {
		t.Errorf("Expected current streak of 3, but got: %d", done.CurrentStreak)
	}

	if done.LongestStreak != 3 {
		t.Errorf("Expected longest streak of 3, but got: %d", done.LongestStreak)
	}

	if !done.IsPersonalBest {
		t.Error("Expected a 16h fast to beat the prior 12h best")
	}
}

func TestFinalizeRejectsTerminalRecords(t *testing.T) {
	r := terminalRecord(EndCompleted, 16*time.Hour)

	_, err := Finalize(r, EndUserBreak, t0, &historyStub{})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition, but got: %v", err)
	}
}

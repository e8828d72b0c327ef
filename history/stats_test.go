package history

import (
	"testing"
	"time"

	"github.com/ayoisaiah/fast/fasting"
)

var testStart = time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC)

func record(t *testing.T, day int, reason fasting.EndReason, d time.Duration, tags ...string) *fasting.Record {
	t.Helper()

	start := testStart.AddDate(0, 0, day)

	r := fasting.New("user-1", fasting.ProtocolCustom, d, start)
	r.Tags = tags

	r, err := fasting.Start(r, start)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	r, err = fasting.End(r, reason, start.Add(d))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	return r
}

func TestCompute(t *testing.T) {
	records := []*fasting.Record{
		record(t, 0, fasting.EndCompleted, 16*time.Hour, "week1"),
		record(t, 1, fasting.EndCompleted, 18*time.Hour, "week1"),
		record(t, 2, fasting.EndUserBreak, 4*time.Hour),
		record(t, 3, fasting.EndCompleted, 16*time.Hour, "week2"),
	}

	now := testStart.AddDate(0, 0, 4)

	s := Compute(records, now)

	if s.TotalFasts != 4 {
		t.Errorf("Expected 4 total fasts, but got: %d", s.TotalFasts)
	}

	if s.Completed != 3 || s.Broken != 1 {
		t.Errorf(
			"Expected 3 completed and 1 broken, but got: %d/%d",
			s.Completed,
			s.Broken,
		)
	}

	if s.CompletionRate != 75 {
		t.Errorf("Expected a 75%% completion rate, but got: %v", s.CompletionRate)
	}

	if s.CurrentStreak != 1 {
		t.Errorf("Expected a current streak of 1, but got: %d", s.CurrentStreak)
	}

	if s.LongestStreak != 2 {
		t.Errorf("Expected a longest streak of 2, but got: %d", s.LongestStreak)
	}

	if s.LongestFast != 18*time.Hour {
		t.Errorf("Expected the longest fast to be 18h, but got: %v", s.LongestFast)
	}

	expectedTotal := (16 + 18 + 4 + 16) * time.Hour
	if s.TotalFastedTime != expectedTotal {
		t.Errorf(
			"Expected total fasted time of %v, but got: %v",
			expectedTotal,
			s.TotalFastedTime,
		)
	}

	expectedTags := []string{"week1", "week2"}
	if len(s.Tags) != len(expectedTags) {
		t.Fatalf("Expected %d tags, but got: %d", len(expectedTags), len(s.Tags))
	}

	for i, tag := range expectedTags {
		if s.Tags[i] != tag {
			t.Errorf("Expected tag %q at position %d, but got: %q", tag, i, s.Tags[i])
		}
	}
}

func TestComputeEmptyHistory(t *testing.T) {
	s := Compute(nil, testStart)

	if s.TotalFasts != 0 || s.CompletionRate != 0 {
		t.Errorf("Expected an empty summary, but got: %+v", s)
	}
}

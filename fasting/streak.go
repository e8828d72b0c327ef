package fasting

import "time"

// StreakResult is the outcome of aggregating a user's terminal history.
type StreakResult struct {
	Current      int
	Longest      int
	PersonalBest bool
}

// AggregateStreaks computes streak outcomes for the newest record in
// history. The history holds a user's terminal records ordered oldest
// first, with the just-finalized record last. Only records ended with
// the completed reason qualify; the current streak is the run of
// qualifying records counted backward from the end, stopping at the
// first record that does not qualify.
//
// The longest streak never decreases: it is the maximal qualifying run
// anywhere in the history, floored by any longest-streak value already
// recorded (so archiving old records cannot shrink it).
func AggregateStreaks(history []*Record) StreakResult {
	var result StreakResult

	for i := len(history) - 1; i >= 0; i-- {
		if history[i].EndReason != EndCompleted {
			break
		}

		result.Current++
	}

	var run int

	for _, r := range history {
		if r.EndReason != EndCompleted {
			run = 0
			continue
		}

		run++

		if run > result.Longest {
			result.Longest = run
		}
	}

	for _, r := range history {
		if r.LongestStreak > result.Longest {
			result.Longest = r.LongestStreak
		}
	}

	if len(history) > 0 {
		result.PersonalBest = isPersonalBest(history)
	}

	return result
}

// isPersonalBest reports whether the newest record's fasted duration
// exceeds that of every prior completed record. A broken fast is never
// a personal best.
func isPersonalBest(history []*Record) bool {
	newest := history[len(history)-1]

	if newest.EndReason != EndCompleted {
		return false
	}

	for _, r := range history[:len(history)-1] {
		if r.EndReason == EndCompleted && r.ActualDuration >= newest.ActualDuration {
			return false
		}
	}

	return true
}

// AttachStreaks writes the aggregation onto a copy of r. This is the
// single permitted write to a terminal record, performed once when the
// session is finalized.
func AttachStreaks(r *Record, res StreakResult) *Record {
	next := r.clone()
	next.CurrentStreak = res.Current
	next.LongestStreak = res.Longest
	next.IsPersonalBest = res.PersonalBest

	return next
}

// History provides read access to a user's terminal records, ordered
// oldest first.
type History interface {
	TerminalRecords(userID string) ([]*Record, error)
}

// Finalize ends r with the given reason, aggregates the user's streaks
// with the new outcome included, and returns the finished record with
// its streak fields attached. The caller is responsible for persisting
// the result.
func Finalize(r *Record, reason EndReason, now time.Time, h History) (*Record, error) {
	next, err := End(r, reason, now)
	if err != nil {
		return nil, err
	}

	history, err := h.TerminalRecords(next.UserID)
	if err != nil {
		return nil, err
	}

	history = append(history, next)

	return AttachStreaks(next, AggregateStreaks(history)), nil
}

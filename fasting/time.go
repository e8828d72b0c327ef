package fasting

import "time"

// The time accountant: pure reads over a record and an explicit
// reference instant. Safe to call concurrently and as often as desired,
// e.g. from a render loop.

// PausedDurationAsOf returns the cumulative paused time for r as of
// now, including the open interval of an in-progress pause. Negative
// intervals (a clock rolled back between pause and resume) contribute
// nothing.
func PausedDurationAsOf(r *Record, now time.Time) time.Duration {
	var total time.Duration

	for i, pausedAt := range r.PauseTimes {
		end := now

		if i < len(r.ResumeTimes) {
			end = r.ResumeTimes[i]
		}

		if d := end.Sub(pausedAt); d > 0 {
			total += d
		}
	}

	return total
}

// closedPausedDuration sums only the completed pause intervals. It is
// the value recorded on the record at every resume.
func closedPausedDuration(r *Record) time.Duration {
	var total time.Duration

	for i := range r.ResumeTimes {
		if d := r.ResumeTimes[i].Sub(r.PauseTimes[i]); d > 0 {
			total += d
		}
	}

	return total
}

// adjustedElapsed is the fasting time accrued as of now: wall time
// since the actual start minus cumulative paused time, floored at zero
// so a device clock rolled back past the start never yields negative
// progress. For a terminal record the actual end time bounds the
// result, keeping it stable no matter how much later it is read.
func adjustedElapsed(r *Record, now time.Time) time.Duration {
	if !r.Started() {
		return 0
	}

	if !r.ActualEndTime.IsZero() && r.ActualEndTime.Before(now) {
		now = r.ActualEndTime
	}

	elapsed := now.Sub(r.ActualStartTime) - PausedDurationAsOf(r, now)
	if elapsed < 0 {
		return 0
	}

	return elapsed
}

// ProgressFraction returns how far along the fast is as of now, in
// [0.0, 1.0]. A session that has not begun reports 0 and a completed
// one reports 1; a non-positive planned duration short-circuits to 1
// rather than dividing by zero.
func ProgressFraction(r *Record, now time.Time) float64 {
	switch {
	case r.State == StateNotStarted:
		return 0
	case r.State == StateCompleted:
		return 1
	case r.PlannedDuration <= 0:
		return 1
	}

	elapsed := adjustedElapsed(r, now)
	if elapsed > r.PlannedDuration {
		elapsed = r.PlannedDuration
	}

	return float64(elapsed) / float64(r.PlannedDuration)
}

// RemainingTime returns the fasting time left as of now, floored at
// zero. A session that has not begun reports its full planned duration.
func RemainingTime(r *Record, now time.Time) time.Duration {
	switch r.State {
	case StateNotStarted:
		return r.PlannedDuration
	case StateCompleted:
		return 0
	}

	remaining := r.PlannedDuration - adjustedElapsed(r, now)
	if remaining < 0 {
		return 0
	}

	return remaining
}

// ElapsedTime returns the adjusted fasting time for r as of the given
// instant. Terminal records are bounded by their actual end time, so
// the value does not keep advancing after the fast has ended.
func ElapsedTime(r *Record, asOf time.Time) time.Duration {
	return adjustedElapsed(r, asOf)
}

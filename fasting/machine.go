package fasting

import "time"

// The state machine: notStarted → active ⇄ paused → completed/broken.
// Each command validates against the current record, then returns a new
// record with the transition applied. Commands perform no I/O;
// persistence and notification are the caller's concern, applied after
// a successful transition.

// Start begins the fast. It is legal only from the notStarted state and
// rejects a non-positive planned duration before touching the record.
// The actual start time is written here, exactly once.
func Start(r *Record, now time.Time) (*Record, error) {
	if r.State.Terminal() {
		return nil, ErrRecordTerminal
	}

	if r.State != StateNotStarted {
		return nil, ErrInvalidTransition
	}

	if r.PlannedDuration <= 0 {
		return nil, ErrInvalidDuration
	}

	next := r.clone()
	next.State = StateActive
	next.ActualStartTime = now
	next.PlannedEndTime = now.Add(next.PlannedDuration)

	return next, nil
}

// Pause suspends an active fast. Pausing an already paused session is
// rejected; each call is validated independently, with no debouncing.
func Pause(r *Record, now time.Time) (*Record, error) {
	if r.State.Terminal() {
		return nil, ErrRecordTerminal
	}

	if r.State != StateActive {
		return nil, ErrInvalidTransition
	}

	next := r.clone()
	next.State = StatePaused
	next.PauseTimes = append(next.PauseTimes, now)

	return next, nil
}

// Resume closes the open pause interval and reactivates the fast. The
// total paused duration is recomputed from the ledger, never adjusted
// incrementally.
func Resume(r *Record, now time.Time) (*Record, error) {
	if r.State.Terminal() {
		return nil, ErrRecordTerminal
	}

	if r.State != StatePaused {
		return nil, ErrInvalidTransition
	}

	next := r.clone()
	next.State = StateActive
	next.ResumeTimes = append(next.ResumeTimes, now)
	next.TotalPausedDuration = closedPausedDuration(next)

	return next, nil
}

// End finalizes the fast with the given reason. It is legal from the
// active and paused states; an open pause interval is closed as of now
// before the outcome fields are computed. A completed reason yields the
// completed state, any other reason yields broken. The engine never
// ends a session on its own when progress reaches 100%; the caller
// decides when to issue this command.
func End(r *Record, reason EndReason, now time.Time) (*Record, error) {
	if r.State.Terminal() {
		return nil, ErrRecordTerminal
	}

	if r.State != StateActive && r.State != StatePaused {
		return nil, ErrInvalidTransition
	}

	next := r.clone()

	if next.State == StatePaused {
		next.ResumeTimes = append(next.ResumeTimes, now)
		next.TotalPausedDuration = closedPausedDuration(next)
	}

	next.ActualEndTime = now
	next.ActualDuration = ElapsedTime(next, now)
	next.CompletionPercentage = ProgressFraction(next, now) * 100
	next.EndReason = reason

	if reason == EndCompleted {
		next.State = StateCompleted
	} else {
		next.State = StateBroken
	}

	return next, nil
}

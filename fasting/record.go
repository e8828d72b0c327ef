// Package fasting implements the fasting session engine: the session
// record, the state machine that drives it, time accounting, and streak
// aggregation. The engine is pure: every function takes the reference
// time as an explicit argument and commands return new records instead
// of mutating their input.
package fasting

import (
	"slices"
	"time"

	"github.com/ayoisaiah/fast/internal/timeutil"
)

// State is the lifecycle state of a fasting record.
type State string

const (
	StateNotStarted State = "notStarted"
	StateActive     State = "active"
	StatePaused     State = "paused"
	StateCompleted  State = "completed"
	StateBroken     State = "broken"
)

// Terminal reports whether no further transitions are permitted from s.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateBroken
}

// EndReason records why a session reached a terminal state.
type EndReason string

const (
	EndCompleted      EndReason = "completed"
	EndUserBreak      EndReason = "userBreak"
	EndEmergencyBreak EndReason = "emergencyBreak"
	EndAppError       EndReason = "appError"
)

// ContentView records a piece of motivational content shown while a
// session was in progress.
type ContentView struct {
	ShownAt time.Time `json:"shown_at"`
	Kind    string    `json:"kind"`
	Text    string    `json:"text"`
}

// Engagement holds informational counters for a session. They are never
// consulted when validating a transition.
type Engagement struct {
	AppOpens     int           `json:"app_opens"`
	ContentViews int           `json:"content_views"`
	ContentShown []ContentView `json:"content_shown,omitempty"`
}

// Record captures one fasting attempt and its full history. The four
// state machine commands are the only way a record moves through its
// lifecycle; each one returns a fresh copy and leaves the previous
// value untouched, so concurrent readers never observe a half-applied
// transition.
type Record struct {
	ID       string   `json:"id"`
	UserID   string   `json:"user_id"`
	Protocol Protocol `json:"protocol"`
	State    State    `json:"state"`
	Tags     []string `json:"tags,omitempty"`

	PlannedStartTime time.Time     `json:"planned_start_time"`
	ActualStartTime  time.Time     `json:"actual_start_time"`
	PlannedEndTime   time.Time     `json:"planned_end_time"`
	ActualEndTime    time.Time     `json:"actual_end_time"`
	PlannedDuration  time.Duration `json:"planned_duration"`
	ActualDuration   time.Duration `json:"actual_duration"`

	// PauseTimes and ResumeTimes interleave strictly: pause, resume,
	// pause, resume. While the session is paused, PauseTimes is one
	// entry longer than ResumeTimes.
	PauseTimes          []time.Time   `json:"pause_times"`
	ResumeTimes         []time.Time   `json:"resume_times"`
	TotalPausedDuration time.Duration `json:"total_paused_duration"`

	EndReason            EndReason `json:"end_reason,omitempty"`
	CompletionPercentage float64   `json:"completion_percentage"`

	CurrentStreak  int  `json:"current_streak"`
	LongestStreak  int  `json:"longest_streak"`
	IsPersonalBest bool `json:"is_personal_best"`

	PersonalGoal string     `json:"personal_goal,omitempty"`
	Engagement   Engagement `json:"engagement"`

	// Version is bumped by the store on every committed write and
	// compared on the next one so that two near-simultaneous commands
	// cannot both succeed.
	Version int64 `json:"version"`
}

// New returns a fresh record in the notStarted state for the given
// protocol. A zero duration selects the protocol's standard planned
// duration; a custom protocol requires an explicit one.
func New(userID string, p Protocol, duration time.Duration, plannedStart time.Time) *Record {
	if duration == 0 {
		duration = p.Duration()
	}

	return &Record{
		ID:               plannedStart.Format(timeutil.KeyLayout),
		UserID:           userID,
		Protocol:         p,
		State:            StateNotStarted,
		PlannedStartTime: plannedStart,
		PlannedDuration:  duration,
	}
}

// Started reports whether the session has begun. Exactly one of the
// notStarted state or a non-zero actual start time holds this fact.
func (r *Record) Started() bool {
	return !r.ActualStartTime.IsZero()
}

// clone returns a copy of r with its slice fields detached from the
// original's backing arrays.
func (r *Record) clone() *Record {
	next := *r

	next.Tags = slices.Clone(r.Tags)
	next.PauseTimes = slices.Clone(r.PauseTimes)
	next.ResumeTimes = slices.Clone(r.ResumeTimes)
	next.Engagement.ContentShown = slices.Clone(r.Engagement.ContentShown)

	return &next
}

// WithAppOpen returns a copy of r with the app-open counter bumped.
func (r *Record) WithAppOpen() *Record {
	next := r.clone()
	next.Engagement.AppOpens++

	return next
}

// WithContentView returns a copy of r recording a motivational content
// impression.
func (r *Record) WithContentView(v ContentView) *Record {
	next := r.clone()
	next.Engagement.ContentViews++
	next.Engagement.ContentShown = append(next.Engagement.ContentShown, v)

	return next
}

// Package tracker operates the live fasting tracker and reports the
// status of a fast in progress
package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/fast/config"
	"github.com/ayoisaiah/fast/fasting"
	"github.com/ayoisaiah/fast/notify"
	"github.com/ayoisaiah/fast/store"
)

const (
	padding  = 2
	maxWidth = 80
)

type keymap struct {
	togglePause key.Binding
	end         key.Binding
	brk         key.Binding
	quit        key.Binding
}

var defaultKeymap = keymap{
	togglePause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause/resume"),
	),
	end: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "end (goal reached)"),
	),
	brk: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "break fast early"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "detach"),
	),
}

// tickMsg drives the once-per-second re-render. Progress is a pure read
// against the wall clock, so ticks carry the instant they fired at.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Tracker renders a fast in progress and applies session commands in
// response to key presses.
type Tracker struct {
	db       store.DB
	Opts     *config.TrackerConfig
	notifier *notify.Notifier
	record   *fasting.Record
	progress progress.Model
	help     help.Model
	form     *huh.Form

	protocol string
	goal     string

	err              error
	halfwayNotified  bool
	completeNotified bool
	done             bool
}

// New creates a tracker for the given record. A nil record prompts for
// a protocol before starting a new fast.
func New(
	db store.DB,
	cfg *config.TrackerConfig,
	record *fasting.Record,
) *Tracker {
	t := &Tracker{
		db:       db,
		Opts:     cfg,
		record:   record,
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		notifier: notify.New(cfg.Notify, cfg.SessionCmd, "fast"),
	}

	if record == nil {
		if cfg.ProtocolSet {
			t.protocol = string(cfg.DefaultProtocol)
			t.goal = cfg.PersonalGoal
		} else {
			// preselect the configured default
			t.protocol = string(cfg.DefaultProtocol)
			t.form = protocolForm(&t.protocol, &t.goal)
		}
	} else {
		// reattaching counts as an app open
		t.record = record.WithAppOpen()
		t.halfwayNotified = progressAsOfNow(t.record) >= 0.5
		t.completeNotified = progressAsOfNow(t.record) >= 1
	}

	return t
}

// protocolForm builds the protocol picker shown when a fast is started
// without an explicit protocol.
func protocolForm(protocol, goal *string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(fasting.Protocols))

	for _, p := range fasting.Protocols {
		d := p.Duration()
		if d == 0 {
			// a custom window needs an explicit --duration
			continue
		}

		label := fmt.Sprintf("%s (%s)", p, d)

		opts = append(opts, huh.NewOption(label, string(p)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which fasting protocol?").
				Options(opts...).
				Value(protocol),
			huh.NewInput().
				Title("Personal goal (optional)").
				Value(goal),
		),
	)
}

func progressAsOfNow(r *fasting.Record) float64 {
	return fasting.ProgressFraction(r, time.Now())
}

// Err reports the error the tracker trapped while running, if any. A
// failed start command quits the program with nothing rendered, so the
// caller must consult this after the run loop returns.
func (t *Tracker) Err() error {
	return t.err
}

// Init implements tea.Model.
func (t *Tracker) Init() tea.Cmd {
	if t.form != nil {
		return t.form.Init()
	}

	if t.record == nil {
		if err := t.startFast(time.Now()); err != nil {
			t.err = err
			return tea.Quit
		}
	}

	return tick()
}

// startFast creates and starts a record from the picked protocol, then
// commits it.
func (t *Tracker) startFast(now time.Time) error {
	protocol := fasting.Protocol(t.protocol)

	duration := t.Opts.CustomDuration
	if duration == 0 {
		duration = protocol.Duration()
	}

	rec := fasting.New(t.Opts.UserName, protocol, duration, now)
	rec.Tags = t.Opts.Tags
	rec.PersonalGoal = t.goal

	if rec.PersonalGoal == "" {
		rec.PersonalGoal = t.Opts.PersonalGoal
	}

	started, err := fasting.Start(rec, now)
	if err != nil {
		return err
	}

	saved, err := t.db.SaveRecord(started)
	if err != nil {
		return err
	}

	t.record = saved

	return t.writeStatusFile()
}

// apply runs a transition and commits the result, adopting the stored
// copy as the current snapshot. A version conflict means another
// process raced us; the caller surfaces the error and the next tick
// carries on from the stored state.
func (t *Tracker) apply(
	transition func(*fasting.Record, time.Time) (*fasting.Record, error),
) error {
	next, err := transition(t.record, time.Now())
	if err != nil {
		return err
	}

	saved, err := t.db.SaveRecord(next)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			if current, rerr := t.db.OpenRecord(t.record.UserID); rerr == nil {
				t.record = current
			}
		}

		return err
	}

	t.record = saved

	return t.writeStatusFile()
}

// finish finalizes the fast, writes the streak outcome, and fires the
// terminal side effects.
func (t *Tracker) finish(reason fasting.EndReason) error {
	now := time.Now()

	next, err := fasting.Finalize(t.record, reason, now, t.db)
	if err != nil {
		return err
	}

	saved, err := t.db.SaveRecord(next)
	if err != nil {
		return err
	}

	t.record = saved
	t.done = true

	_ = os.Remove(t.Opts.PathToStatus)

	t.notifier.Milestone(saved, notify.MilestoneEnded)

	if err := t.notifier.RunSessionCmd(); err != nil {
		pterm.Error.Printfln("session command failed: %v", err)
	}

	return nil
}

// writeStatusFile persists the current record snapshot for the status
// command to read while this process holds the database lock.
func (t *Tracker) writeStatusFile() error {
	b, err := json.Marshal(t.record)
	if err != nil {
		return err
	}

	return os.WriteFile(t.Opts.PathToStatus, b, 0o600)
}

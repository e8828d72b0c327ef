package tracker

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/fast/fasting"
	"github.com/ayoisaiah/fast/notify"
)

// handleTick refreshes the status file and fires milestone
// notifications as the fast crosses them.
func (t *Tracker) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if t.record == nil || t.record.State.Terminal() {
		return t, nil
	}

	_ = t.writeStatusFile()

	frac := fasting.ProgressFraction(t.record, now)

	if !t.halfwayNotified && frac >= 0.5 {
		t.halfwayNotified = true

		if t.Opts.NotifyHalfway {
			go t.notifier.Milestone(t.record, notify.MilestoneHalfway)
		}
	}

	if !t.completeNotified && frac >= 1 {
		t.completeNotified = true

		go t.notifier.Milestone(t.record, notify.MilestoneComplete)
	}

	return t, tick()
}

func (t *Tracker) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if t.done {
		return t, tea.Quit
	}

	switch {
	case key.Matches(msg, defaultKeymap.togglePause):
		if t.record.State == fasting.StatePaused {
			t.err = t.apply(fasting.Resume)
		} else {
			t.err = t.apply(fasting.Pause)
		}

	case key.Matches(msg, defaultKeymap.end):
		t.err = t.finish(fasting.EndCompleted)
		return t, tick()

	case key.Matches(msg, defaultKeymap.brk):
		t.err = t.finish(fasting.EndUserBreak)
		return t, tick()

	case key.Matches(msg, defaultKeymap.quit):
		// the fast keeps running; only the tracker detaches
		_ = t.writeStatusFile()
		return t, tea.Quit
	}

	return t, nil
}

// Update implements tea.Model.
func (t *Tracker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.form != nil {
		form, cmd := t.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			t.form = f
		}

		if t.form.State == huh.StateCompleted {
			t.form = nil

			if err := t.startFast(time.Now()); err != nil {
				t.err = err
				return t, tea.Quit
			}

			return t, tick()
		}

		return t, cmd
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(time.Time(msg))

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}

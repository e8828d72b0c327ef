package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/dustin/go-humanize"

	"github.com/ayoisaiah/fast/fasting"
	"github.com/ayoisaiah/fast/internal/timeutil"
)

func (t *Tracker) timeFormat() string {
	if t.Opts.TwentyFourHourClock {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

// summaryView reports the outcome of a finished fast.
func (t *Tracker) summaryView() string {
	var s strings.Builder

	r := t.record

	title := "Fast broken early"
	msg := fmt.Sprintf(
		"You fasted for %s (%.0f%% of your goal).",
		humanize.RelTime(time.Time{}, time.Time{}.Add(r.ActualDuration), "", ""),
		r.CompletionPercentage,
	)

	if r.EndReason == fasting.EndCompleted {
		title = "Fast complete"
		msg = fmt.Sprintf(
			"You fasted for %s and reached your goal.",
			humanize.RelTime(time.Time{}, time.Time{}.Add(r.ActualDuration), "", ""),
		)
	}

	s.WriteString(t.Opts.Style.Main.SetString(title).String())
	s.WriteString("\n\n" + t.Opts.Style.Secondary.SetString(msg).String())

	streak := fmt.Sprintf(
		"Current streak: %d (longest: %d)",
		r.CurrentStreak,
		r.LongestStreak,
	)

	if r.IsPersonalBest {
		streak += ". A new personal best!"
	}

	s.WriteString("\n" + t.Opts.Style.Hint.SetString(streak).String())
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.quit,
	}))

	return s.String()
}

// trackerView renders the live countdown for a fast in progress.
func (t *Tracker) trackerView(now time.Time) string {
	var s strings.Builder

	r := t.record

	s.WriteString(
		t.Opts.Style.Main.SetString("[" + string(r.Protocol) + "]").String(),
	)
	s.WriteString(" ")

	if r.State == fasting.StatePaused {
		s.WriteString(t.Opts.Style.Secondary.SetString("[Paused]").String())
	} else {
		end := r.ActualStartTime.
			Add(r.PlannedDuration).
			Add(fasting.PausedDurationAsOf(r, now))
		s.WriteString(
			strings.TrimSpace(
				t.Opts.Style.Hint.SetString(
					"until " + end.Format(t.timeFormat()),
				).String(),
			),
		)
	}

	remaining := fasting.RemainingTime(r, now)

	s.WriteString("\n\n")
	s.WriteString(
		t.Opts.Style.Main.SetString(timeutil.FormatClock(remaining)).String(),
	)
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(fasting.ProgressFraction(r, now)))

	if r.PersonalGoal != "" {
		s.WriteString(
			"\n\n" + t.Opts.Style.Hint.SetString(
				"Goal: "+r.PersonalGoal,
			).String(),
		)
	}

	if t.err != nil {
		s.WriteString(
			"\n\n" + t.Opts.Style.Secondary.SetString(
				"error: "+t.err.Error(),
			).String(),
		)
	}

	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePause,
		defaultKeymap.end,
		defaultKeymap.brk,
		defaultKeymap.quit,
	}))

	return s.String()
}

// View implements tea.Model.
func (t *Tracker) View() string {
	if t.form != nil {
		return t.form.View()
	}

	if t.record == nil {
		return ""
	}

	if t.done {
		return t.Opts.Style.Base.Render(t.summaryView())
	}

	return t.Opts.Style.Base.Render(t.trackerView(time.Now()))
}

// Package notify dispatches user-facing reminders at fasting
// milestones. It is a one-way sink: delivery failures are logged and
// never affect session state.
package notify

import (
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/fast/fasting"
)

// Milestone identifies a point in a fast worth telling the user about.
type Milestone string

const (
	MilestoneHalfway  Milestone = "halfway"
	MilestoneComplete Milestone = "complete"
	MilestoneEnded    Milestone = "ended"
)

// Notifier sends desktop notifications and runs the configured session
// command when a fast reaches a terminal state.
type Notifier struct {
	Enabled    bool
	SessionCmd string
	configDir  string
}

// New returns a notifier. configDir is the application's directory name
// under the xdg data dirs, used to locate the notification icon.
func New(enabled bool, sessionCmd, configDir string) *Notifier {
	return &Notifier{
		Enabled:    enabled,
		SessionCmd: sessionCmd,
		configDir:  configDir,
	}
}

// Milestone sends a desktop notification for the given milestone.
func (n *Notifier) Milestone(r *fasting.Record, m Milestone) {
	if !n.Enabled {
		return
	}

	var title, msg string

	switch m {
	case MilestoneHalfway:
		title = "Halfway there"
		msg = fmt.Sprintf(
			"You're halfway through your %s fast. Keep going!",
			r.Protocol,
		)
	case MilestoneComplete:
		title = "Fast complete"
		msg = fmt.Sprintf(
			"Your %s fast has reached its goal. End it whenever you're ready to eat.",
			r.Protocol,
		)
	case MilestoneEnded:
		if r.EndReason == fasting.EndCompleted {
			title = "Well done"
			msg = fmt.Sprintf(
				"You fasted for %s and completed your goal.",
				r.ActualDuration.Round(time.Minute),
			)
		} else {
			title = "Fast ended"
			msg = fmt.Sprintf(
				"You fasted for %s. Every hour counts. See you next time.",
				r.ActualDuration.Round(time.Minute),
			)
		}
	}

	// pathToIcon will be an empty string if the file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join(n.configDir, "static", "icon.png"),
	)

	err := beeep.Notify(title, msg, pathToIcon)
	if err != nil {
		slog.Error(
			"unable to display notification",
			slog.String("milestone", string(m)),
			slog.Any("error", err),
		)
	}
}

// RunSessionCmd executes the configured command after a terminal
// transition.
func (n *Notifier) RunSessionCmd() error {
	if n.SessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(n.SessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

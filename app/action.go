package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fast/config"
	"github.com/ayoisaiah/fast/fasting"
	"github.com/ayoisaiah/fast/history"
	"github.com/ayoisaiah/fast/internal/ui"
	"github.com/ayoisaiah/fast/notify"
	"github.com/ayoisaiah/fast/store"
	"github.com/ayoisaiah/fast/tracker"
)

const (
	envNoColor     = "NO_COLOR"
	envFastNoColor = "FAST_NO_COLOR"
)

var errNoOpenFast = errors.New(
	"no fast is in progress: start one with 'fast'",
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// recordsHelper retrieves the records matching the reporting filters.
func recordsHelper(
	ctx *cli.Context,
) ([]*fasting.Record, store.DB, error) {
	cfg := config.Tracker(ctx)
	filters := config.Filter(ctx)

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return nil, nil, err
	}

	records, err := db.GetRecords(
		cfg.UserName,
		filters.StartTime,
		filters.EndTime,
		filters.Tags,
	)
	if err != nil {
		return nil, nil, err
	}

	return records, db, nil
}

// applyCommand runs a headless transition against the fast in progress
// and commits the result. A version conflict means another process (a
// live tracker, or a concurrent invocation) got there first; the
// command is retried once against the fresh snapshot.
func applyCommand(
	ctx *cli.Context,
	transition func(*fasting.Record, time.Time) (*fasting.Record, error),
) (*fasting.Record, error) {
	cfg := config.Tracker(ctx)

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return nil, err
	}

	defer db.Close()

	for attempt := 0; ; attempt++ {
		rec, err := db.OpenRecord(cfg.UserName)
		if err != nil {
			if errors.Is(err, store.ErrNoOpenRecord) {
				return nil, errNoOpenFast
			}

			return nil, err
		}

		next, err := transition(rec, time.Now())
		if err != nil {
			return nil, err
		}

		saved, err := db.SaveRecord(next)
		if err != nil {
			if errors.Is(err, store.ErrVersionConflict) && attempt == 0 {
				continue
			}

			return nil, err
		}

		return saved, nil
	}
}

// defaultAction starts a new fast, or reattaches the tracker when one
// is already in progress.
func defaultAction(ctx *cli.Context) error {
	cfg := config.Tracker(ctx)

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	rec, err := db.OpenRecord(cfg.UserName)
	if err != nil && !errors.Is(err, store.ErrNoOpenRecord) {
		return err
	}

	if rec != nil {
		pterm.Info.Println(
			"A fast is already in progress, reattaching the tracker",
		)
	}

	ui.DarkTheme = cfg.DarkTheme

	t := tracker.New(db, cfg, rec)

	p := tea.NewProgram(t)

	m, err := p.Run()
	if err != nil {
		return err
	}

	if final, ok := m.(*tracker.Tracker); ok {
		return final.Err()
	}

	return nil
}

// resumeAction reattaches the live tracker to the fast in progress.
func resumeAction(ctx *cli.Context) error {
	cfg := config.Tracker(ctx)

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	rec, err := db.OpenRecord(cfg.UserName)
	if err != nil {
		if errors.Is(err, store.ErrNoOpenRecord) {
			return errNoOpenFast
		}

		return err
	}

	ui.DarkTheme = cfg.DarkTheme

	t := tracker.New(db, cfg, rec)

	p := tea.NewProgram(t)

	m, err := p.Run()
	if err != nil {
		return err
	}

	if final, ok := m.(*tracker.Tracker); ok {
		return final.Err()
	}

	return nil
}

// pauseAction pauses the fast in progress without attaching the
// tracker.
func pauseAction(ctx *cli.Context) error {
	rec, err := applyCommand(ctx, fasting.Pause)
	if err != nil {
		return err
	}

	pterm.Info.Printfln(
		"Your %s fast is paused. Run 'fast continue' to pick it back up",
		rec.Protocol,
	)

	return nil
}

// continueAction resumes a paused fast without attaching the tracker.
func continueAction(ctx *cli.Context) error {
	rec, err := applyCommand(ctx, fasting.Resume)
	if err != nil {
		return err
	}

	pterm.Info.Printfln(
		"Your %s fast is back on. %s to go",
		rec.Protocol,
		fasting.RemainingTime(rec, time.Now()).Round(time.Minute),
	)

	return nil
}

// endAction ends the fast in progress, finalizing its streak outcome.
func endAction(ctx *cli.Context) error {
	cfg := config.Tracker(ctx)

	reason := fasting.EndCompleted

	switch {
	case ctx.Bool("emergency"):
		reason = fasting.EndEmergencyBreak
	case ctx.Bool("break"):
		reason = fasting.EndUserBreak
	}

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	defer db.Close()

	rec, err := db.OpenRecord(cfg.UserName)
	if err != nil {
		if errors.Is(err, store.ErrNoOpenRecord) {
			return errNoOpenFast
		}

		return err
	}

	next, err := fasting.Finalize(rec, reason, time.Now(), db)
	if err != nil {
		return err
	}

	saved, err := db.SaveRecord(next)
	if err != nil {
		return err
	}

	_ = os.Remove(cfg.PathToStatus)

	n := notify.New(cfg.Notify, cfg.SessionCmd, "fast")
	n.Milestone(saved, notify.MilestoneEnded)

	if err := n.RunSessionCmd(); err != nil {
		pterm.Error.Printfln("session command failed: %v", err)
	}

	if saved.EndReason == fasting.EndCompleted {
		pterm.Success.Printfln(
			"Fast complete! You fasted for %s. Current streak: %d",
			saved.ActualDuration.Round(time.Minute),
			saved.CurrentStreak,
		)
	} else {
		pterm.Info.Printfln(
			"Fast ended at %.0f%% of your goal after %s",
			saved.CompletionPercentage,
			saved.ActualDuration.Round(time.Minute),
		)
	}

	return nil
}

// statusAction prints the status of the fast in progress.
func statusAction(ctx *cli.Context) error {
	return tracker.ReportStatus(config.Tracker(ctx))
}

// historyAction prints a table of all the fasts started within a time
// period.
func historyAction(ctx *cli.Context) error {
	records, db, err := recordsHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if ctx.Bool("json") {
		b, err := json.Marshal(records)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	return history.List(records, time.Now())
}

// statsAction computes aggregate statistics for the specified time
// period.
func statsAction(ctx *cli.Context) error {
	records, db, err := recordsHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	s := history.Compute(records, time.Now())

	if ctx.Bool("json") {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	s.Print()

	return nil
}

// deleteAction deletes one or more fasting records.
func deleteAction(ctx *cli.Context) error {
	records, db, err := recordsHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	return delRecords(db, records)
}

// debugAction dumps the resolved configuration and the open record for
// bug reports.
func debugAction(ctx *cli.Context) error {
	cfg := config.Tracker(ctx)

	fmt.Println(spew.Sdump(cfg))

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	defer db.Close()

	rec, err := db.OpenRecord(cfg.UserName)
	if err != nil {
		if errors.Is(err, store.ErrNoOpenRecord) {
			pterm.Info.Println("No fast is in progress")
			return nil
		}

		return err
	}

	fmt.Println(spew.Sdump(rec))

	return nil
}

// editConfigAction opens the config file in the user's default text
// editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg := config.Tracker(ctx)

	cmd := exec.Command(editor, cfg.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if FAST_NO_COLOR is set
	if _, exists := os.LookupEnv(envFastNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	initLogger(config.Tracker(ctx).PathToLog)

	slog.Info("starting fast", slog.String("version", config.Version))

	return nil
}

package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fast/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the fast app instance.
func Get() *cli.App {
	fastApp := &cli.App{
		Name: "fast",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Fast is a command-line intermittent fasting tracker. It times your
		fasting windows, keeps a complete history of every fast, and tracks
		your streaks along the way.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "resume",
				Usage:  "Reattach the live tracker to the fast in progress",
				Action: resumeAction,
				Flags:  []cli.Flag{noColorFlag},
			},
			{
				Name:   "pause",
				Usage:  "Pause the fast in progress without attaching the tracker",
				Action: pauseAction,
			},
			{
				Name:   "continue",
				Usage:  "Continue a paused fast without attaching the tracker",
				Action: continueAction,
			},
			{
				Name:  "end",
				Usage: "End the fast in progress. Use --break to end it before the goal is reached",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "break",
						Aliases: []string{"b"},
						Usage:   "Record the fast as broken instead of completed",
					},
					&cli.BoolFlag{
						Name:  "emergency",
						Usage: "Record the fast as broken for medical or safety reasons",
					},
				},
				Action: endAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the fast in progress",
				Action: statusAction,
			},
			{
				Name:  "history",
				Usage: "Print a table of fasts within a time period. Defaults to a period of 7 days",
				Flags: []cli.Flag{
					startFlag,
					endFlag,
					periodFlag,
					addTagFlag,
					jsonFlag,
					noColorFlag,
				},
				Action: historyAction,
			},
			{
				Name:  "stats",
				Usage: "Track your progress with aggregate statistics. Defaults to a reporting period of 7 days",
				Flags: []cli.Flag{
					startFlag,
					endFlag,
					periodFlag,
					addTagFlag,
					jsonFlag,
					noColorFlag,
				},
				Action: statsAction,
			},
			{
				Name:  "delete",
				Usage: "Delete the fasts within a time period",
				Flags: []cli.Flag{
					startFlag,
					endFlag,
					periodFlag,
					addTagFlag,
					noColorFlag,
				},
				Action: deleteAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "debug",
				Usage:  "Print the resolved configuration and the fast in progress",
				Hidden: true,
				Action: debugAction,
			},
		},
		Flags: []cli.Flag{
			protocolFlag,
			durationFlag,
			goalFlag,
			addTagFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return fastApp
}

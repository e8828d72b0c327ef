package app

import "github.com/urfave/cli/v2"

var (
	protocolFlag = &cli.StringFlag{
		Name:    "protocol",
		Aliases: []string{"p"},
		Usage:   "Fasting protocol to follow: 16:8, 18:6, 20:4, omad, alternate-day, 24h, 36h, 48h, or custom",
	}

	durationFlag = &cli.DurationFlag{
		Name:    "duration",
		Aliases: []string{"D"},
		Usage:   "Override the protocol's fasting window (e.g. '14h', '16h30m')",
	}

	goalFlag = &cli.StringFlag{
		Name:    "goal",
		Aliases: []string{"g"},
		Usage:   "Attach a personal goal to the fast (e.g. 'no snacking this week')",
	}

	addTagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Add comma-delimited tags to a fast",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Set a start date or time for the reporting period (e.g. '2 weeks ago')",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "Set an end date or time for the reporting period. Defaults to the current time",
	}

	periodFlag = &cli.StringFlag{
		Name:  "period",
		Usage: "Limit reporting to a predefined time period: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print output in JSON format",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notifications sent at fasting milestones",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after a fast ends",
	}
)

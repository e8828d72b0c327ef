// Package history lists and summarises past fasting records
package history

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/fast/fasting"
	"github.com/ayoisaiah/fast/internal/ui"
)

const noRecordsMsg = "No fasts found for the specified time range"

// statusText renders a record's lifecycle state with the appropriate
// colour.
func statusText(r *fasting.Record) string {
	switch r.State {
	case fasting.StateCompleted:
		return ui.Green("completed")
	case fasting.StateBroken:
		return ui.Red(string(r.EndReason))
	case fasting.StatePaused:
		return ui.Yellow("paused")
	case fasting.StateActive:
		return ui.Blue("active")
	default:
		return string(r.State)
	}
}

// printRecordsTable prints a fasting record table to the command-line.
func printRecordsTable(w io.Writer, records []*fasting.Record, now time.Time) {
	tableBody := make([][]string, len(records))

	for i := range records {
		r := records[i]

		endDate := r.ActualEndTime.Format("Jan 02, 2006 03:04 PM")
		if r.ActualEndTime.IsZero() {
			endDate = ""
		}

		fasted := humanize.RelTime(
			time.Time{},
			time.Time{}.Add(fasting.ElapsedTime(r, now)),
			"",
			"",
		)

		progress := r.CompletionPercentage
		if !r.State.Terminal() {
			progress = fasting.ProgressFraction(r, now) * 100
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			string(r.Protocol),
			r.ActualStartTime.Format("Jan 02, 2006 03:04 PM"),
			endDate,
			strings.TrimSpace(fasted),
			fmt.Sprintf("%.0f%%", progress),
			strings.Join(r.Tags, " · "),
			statusText(r),
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "PROTOCOL", "STARTED", "ENDED", "FASTED", "PROGRESS", "TAGS", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// List prints out a table of all the fasts that were started within the
// specified time range.
func List(records []*fasting.Record, now time.Time) error {
	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return nil
	}

	printRecordsTable(os.Stdout, records, now)

	return nil
}

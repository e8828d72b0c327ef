package history

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/fast/fasting"
	"github.com/ayoisaiah/fast/internal/ui"
)

// Summary aggregates a set of fasting records for reporting.
type Summary struct {
	TotalFasts      int           `json:"total_fasts"`
	Completed       int           `json:"completed"`
	Broken          int           `json:"broken"`
	InProgress      int           `json:"in_progress"`
	CompletionRate  float64       `json:"completion_rate"`
	TotalFastedTime time.Duration `json:"total_fasted_time"`
	LongestFast     time.Duration `json:"longest_fast"`
	CurrentStreak   int           `json:"current_streak"`
	LongestStreak   int           `json:"longest_streak"`
	Tags            []string      `json:"tags"`
}

// Compute builds a summary of the given records as of now. Streak
// figures come from the aggregator over the terminal subset so the
// report matches what is denormalized onto the records themselves.
func Compute(records []*fasting.Record, now time.Time) *Summary {
	s := &Summary{}

	tagSet := make(map[string]struct{})

	var terminal []*fasting.Record

	for _, r := range records {
		s.TotalFasts++

		switch r.State {
		case fasting.StateCompleted:
			s.Completed++
		case fasting.StateBroken:
			s.Broken++
		default:
			s.InProgress++
		}

		if r.State.Terminal() {
			terminal = append(terminal, r)
		}

		elapsed := fasting.ElapsedTime(r, now)

		s.TotalFastedTime += elapsed

		if elapsed > s.LongestFast {
			s.LongestFast = elapsed
		}

		for _, t := range r.Tags {
			tagSet[t] = struct{}{}
		}
	}

	if s.Completed+s.Broken > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Completed+s.Broken) * 100
	}

	res := fasting.AggregateStreaks(terminal)
	s.CurrentStreak = res.Current
	s.LongestStreak = res.Longest

	for t := range tagSet {
		s.Tags = append(s.Tags, t)
	}

	sort.Sort(natural.StringSlice(s.Tags))

	return s
}

// ToJSON returns the summary in JSON format.
func (s *Summary) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// fmtDuration renders a duration in friendly units for the report.
func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "—"
	}

	return strings.TrimSpace(
		humanize.RelTime(time.Time{}, time.Time{}.Add(d), "", ""),
	)
}

// Print writes the summary report to standard output.
func (s *Summary) Print() {
	if s.TotalFasts == 0 {
		pterm.Info.Println(noRecordsMsg)
		return
	}

	data := [][]string{
		{"TOTAL", "COMPLETED", "BROKEN", "RATE", "FASTED", "LONGEST FAST", "STREAK", "BEST STREAK"},
		{
			fmt.Sprintf("%d", s.TotalFasts),
			ui.Green(fmt.Sprintf("%d", s.Completed)),
			ui.Red(fmt.Sprintf("%d", s.Broken)),
			fmt.Sprintf("%.0f%%", s.CompletionRate),
			fmtDuration(s.TotalFastedTime),
			fmtDuration(s.LongestFast),
			fmt.Sprintf("%d", s.CurrentStreak),
			ui.Highlight(fmt.Sprintf("%d", s.LongestStreak)),
		},
	}

	ui.PrintTable(data, os.Stdout)

	if len(s.Tags) > 0 {
		pterm.Printfln("Tags: %s", strings.Join(s.Tags, " · "))
	}
}

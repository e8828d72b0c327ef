package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/fast/config"
	"github.com/ayoisaiah/fast/fasting"
	"github.com/ayoisaiah/fast/internal/timeutil"
	"github.com/ayoisaiah/fast/store"
)

// openRecordSnapshot retrieves the record for the fast in progress. The
// database is authoritative, but while a live tracker holds the lock
// the status file it maintains is read instead.
func openRecordSnapshot(cfg *config.TrackerConfig) (*fasting.Record, error) {
	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		b, rerr := os.ReadFile(cfg.PathToStatus)
		if rerr != nil {
			return nil, err
		}

		var r fasting.Record

		if jerr := json.Unmarshal(b, &r); jerr != nil {
			return nil, jerr
		}

		return &r, nil
	}

	defer db.Close()

	return db.OpenRecord(cfg.UserName)
}

// ReportStatus prints a one-shot summary of the fast in progress.
func ReportStatus(cfg *config.TrackerConfig) error {
	r, err := openRecordSnapshot(cfg)
	if err != nil {
		if errors.Is(err, store.ErrNoOpenRecord) {
			pterm.Info.Println("No fast is in progress")
			return nil
		}

		return err
	}

	now := time.Now()

	state := "active"
	if r.State == fasting.StatePaused {
		state = "paused"
	}

	fmt.Printf(
		"%s fast (%s): %.0f%% complete, %s remaining (%s elapsed)\n",
		r.Protocol,
		state,
		fasting.ProgressFraction(r, now)*100,
		timeutil.FormatClock(fasting.RemainingTime(r, now)),
		humanize.RelTime(
			time.Time{},
			time.Time{}.Add(fasting.ElapsedTime(r, now)),
			"",
			"",
		),
	)

	return nil
}

package app

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/fast/fasting"
	"github.com/ayoisaiah/fast/history"
	"github.com/ayoisaiah/fast/store"
)

// delRecords deletes all the specified fasting records. It requests
// confirmation before proceeding with the operation.
func delRecords(
	db store.DB,
	records []*fasting.Record,
) error {
	if len(records) == 0 {
		return nil
	}

	if err := history.List(records, time.Now()); err != nil {
		return err
	}

	warning := pterm.Warning.Sprint(
		"The above fasts will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(os.Stdout, warning)

	reader := bufio.NewReader(os.Stdin)

	_, _ = reader.ReadString('\n')

	return db.DeleteRecords(records)
}

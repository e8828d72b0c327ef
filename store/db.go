package store

import (
	"time"

	"github.com/ayoisaiah/fast/fasting"
)

// DB is the database storage interface.
type DB interface {
	// SaveRecord persists a fasting record after a compare-and-swap on
	// its version, and returns the committed copy with the version
	// bumped. The record is created if it doesn't exist already.
	SaveRecord(r *fasting.Record) (*fasting.Record, error)
	// GetRecord returns the stored record with the given id.
	GetRecord(userID, id string) (*fasting.Record, error)
	// OpenRecord returns the user's most recent non-terminal record
	// (if any).
	OpenRecord(userID string) (*fasting.Record, error)
	// GetRecords returns saved records according to the time and tag
	// constraints
	GetRecords(
		userID string,
		startTime, endTime time.Time,
		tags []string,
	) ([]*fasting.Record, error)
	// TerminalRecords returns all terminal records for the user,
	// ordered oldest first
	TerminalRecords(userID string) ([]*fasting.Record, error)
	// DeleteRecords deletes one or more saved records
	DeleteRecords(records []*fasting.Record) error
	// Watch re-emits every record committed for the user. The returned
	// cancel func releases the subscription.
	Watch(userID string) (<-chan *fasting.Record, func())
	// Close ends the database connection
	Close() error
}

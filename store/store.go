// Package store connects to the data store and manages fasting records
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/fast/fasting"
	"github.com/ayoisaiah/fast/internal/timeutil"
)

const recordsBucket = "records"

// watchBuffer bounds a subscriber channel. A slow subscriber misses
// intermediate updates rather than blocking the writer.
const watchBuffer = 8

var (
	errFastRunning = errors.New(
		"is fast already running? Only one instance can be active at a time",
	)

	// ErrNoOpenRecord is returned when a command expects a fast in
	// progress and none exists.
	ErrNoOpenRecord = errors.New(
		"no fast in progress: please start a new one",
	)

	// ErrVersionConflict is returned when a record was modified by
	// another writer between read and save. The caller should re-read
	// and retry the command.
	ErrVersionConflict = errors.New(
		"the record was changed by another writer: reload and retry",
	)
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB

	mu   sync.Mutex
	subs map[string][]chan *fasting.Record
}

// recordKey builds the bucket key for a record: the user id and the
// record id joined so that a cursor prefix scan walks one user's
// records in start-time order.
func recordKey(r *fasting.Record) []byte {
	return []byte(r.UserID + "/" + r.ID)
}

func userPrefix(userID string) []byte {
	return []byte(userID + "/")
}

// SaveRecord persists a record, enforcing a compare-and-swap on the
// record's version so that two near-simultaneous commands cannot both
// commit. The returned copy carries the incremented version; callers
// must adopt it as their latest snapshot.
func (c *Client) SaveRecord(r *fasting.Record) (*fasting.Record, error) {
	next := *r
	next.Version = r.Version + 1

	value, err := json.Marshal(&next)
	if err != nil {
		return nil, err
	}

	key := recordKey(r)

	err = c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(recordsBucket))

		existing := b.Get(key)
		if existing != nil {
			var stored fasting.Record

			uerr := json.Unmarshal(existing, &stored)
			if uerr != nil {
				return uerr
			}

			if stored.Version != r.Version {
				return fmt.Errorf(
					"%w: stored version %d, read version %d",
					ErrVersionConflict,
					stored.Version,
					r.Version,
				)
			}
		}

		return b.Put(key, value)
	})
	if err != nil {
		return nil, err
	}

	c.publish(&next)

	return &next, nil
}

// GetRecord returns the stored record with the given id.
func (c *Client) GetRecord(userID, id string) (*fasting.Record, error) {
	var rec *fasting.Record

	err := c.View(func(tx *bolt.Tx) error {
		key := []byte(userID + "/" + id)

		value := tx.Bucket([]byte(recordsBucket)).Get(key)
		if len(value) == 0 {
			return ErrNoOpenRecord
		}

		rec = &fasting.Record{}

		return json.Unmarshal(value, rec)
	})

	return rec, err
}

// OpenRecord returns the user's most recent non-terminal record. Fasts
// are serial per user, so at most one open record exists at a time.
func (c *Client) OpenRecord(userID string) (*fasting.Record, error) {
	var rec *fasting.Record

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(recordsBucket)).Cursor()
		prefix := userPrefix(userID)

		for k, v := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cur.Next() {
			var r fasting.Record

			err := json.Unmarshal(v, &r)
			if err != nil {
				return err
			}

			if !r.State.Terminal() {
				rec = &r
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if rec == nil {
		return nil, ErrNoOpenRecord
	}

	return rec, nil
}

// GetRecords returns the user's records whose planned start falls
// within the specified time bounds, optionally filtered by tag.
func (c *Client) GetRecords(
	userID string,
	startTime, endTime time.Time,
	tags []string,
) ([]*fasting.Record, error) {
	var records []*fasting.Record

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(recordsBucket)).Cursor()

		prefix := userPrefix(userID)
		min := append(userPrefix(userID), timeutil.ToKey(startTime)...)
		max := append(userPrefix(userID), timeutil.ToKey(endTime)...)

		for k, v := cur.Seek(min); k != nil && bytes.HasPrefix(k, prefix) &&
			bytes.Compare(k, max) <= 0; k, v = cur.Next() {
			var r fasting.Record

			err := json.Unmarshal(v, &r)
			if err != nil {
				return err
			}

			if len(tags) != 0 && !matchesTags(&r, tags) {
				continue
			}

			records = append(records, &r)
		}

		return nil
	})

	return records, err
}

func matchesTags(r *fasting.Record, tags []string) bool {
	for _, t := range r.Tags {
		for _, want := range tags {
			if t == want {
				return true
			}
		}
	}

	return false
}

// TerminalRecords returns the user's completed and broken records
// ordered oldest first. This is the streak aggregator's input.
func (c *Client) TerminalRecords(userID string) ([]*fasting.Record, error) {
	var records []*fasting.Record

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(recordsBucket)).Cursor()
		prefix := userPrefix(userID)

		for k, v := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cur.Next() {
			var r fasting.Record

			err := json.Unmarshal(v, &r)
			if err != nil {
				return err
			}

			if r.State.Terminal() {
				records = append(records, &r)
			}
		}

		return nil
	})

	return records, err
}

// DeleteRecords deletes one or more saved records.
func (c *Client) DeleteRecords(records []*fasting.Record) error {
	return c.Update(func(tx *bolt.Tx) error {
		for i := range records {
			err := tx.Bucket([]byte(recordsBucket)).Delete(recordKey(records[i]))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Watch returns a channel that re-emits every record committed for the
// user, and a cancel func that releases the subscription.
func (c *Client) Watch(userID string) (<-chan *fasting.Record, func()) {
	ch := make(chan *fasting.Record, watchBuffer)

	c.mu.Lock()
	if c.subs == nil {
		c.subs = make(map[string][]chan *fasting.Record)
	}

	c.subs[userID] = append(c.subs[userID], ch)
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		channels := c.subs[userID]
		for i, sub := range channels {
			if sub == ch {
				c.subs[userID] = append(channels[:i], channels[i+1:]...)
				close(ch)

				break
			}
		}
	}

	return ch, cancel
}

// publish fans a committed record out to the user's subscribers. A full
// subscriber channel is skipped, never blocked on.
func (c *Client) publish(r *fasting.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ch := range c.subs[r.UserID] {
		select {
		case ch <- r:
		default:
			slog.Warn(
				"dropping record update for slow watcher",
				slog.String("user_id", r.UserID),
				slog.String("record_id", r.ID),
			)
		}
	}
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// another process holding the file lock surfaces as a timeout
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errFastRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the records bucket if it does not exist already, and
	// bring any legacy keys up to the current scheme
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(recordsBucket))
		if err != nil {
			return err
		}

		return migrateRecords(tx)
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		DB: db,
	}, nil
}

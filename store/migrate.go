package store

import (
	"bytes"
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/fast/fasting"
)

// migrateRecords rewrites records stored under the v0.0.x key scheme
// (the bare start timestamp) to the current one (user id and start
// timestamp joined by a slash). Records missing a user id are assigned
// to the default local user.
func migrateRecords(tx *bolt.Tx) error {
	bucket := tx.Bucket([]byte(recordsBucket))

	cur := bucket.Cursor()

	for k, v := cur.First(); k != nil; k, v = cur.Next() {
		if bytes.ContainsRune(k, '/') {
			continue
		}

		var r fasting.Record

		err := json.Unmarshal(v, &r)
		if err != nil {
			return err
		}

		if r.UserID == "" {
			r.UserID = "local"
		}

		if r.ID == "" {
			r.ID = string(k)
		}

		b, err := json.Marshal(&r)
		if err != nil {
			return err
		}

		err = bucket.Put(recordKey(&r), b)
		if err != nil {
			return err
		}

		err = cur.Delete()
		if err != nil {
			return err
		}
	}

	return nil
}

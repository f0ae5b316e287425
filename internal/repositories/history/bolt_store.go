/*
Package history persists executed command lines in a bolt database: one
bucket, sequence-numbered keys, the raw line as the value. Sequence
numbers start at 1 and are never reused, so they stay stable identifiers
for recall.
*/
package history

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/AntonioJCosta/replsh/internal/core/domain/history"
	"github.com/AntonioJCosta/replsh/internal/core/ports"
)

const bucketEntries = "entries"

// BoltStore implements the HistoryStore port on a bolt database.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens the database at path, creating it when missing. The
// open waits up to a second for a lock held by another shell instance.
func NewBoltStore(path string) (ports.HistoryStore, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening history database '%s': %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketEntries))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history database '%s': %w", path, err)
	}
	return &BoltStore{db: db}, nil
}

// DefaultPath returns the history database location under the user's
// configuration directory, creating the directory when needed.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating the user config directory: %w", err)
	}
	dir := filepath.Join(configDir, "replsh")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating '%s': %w", dir, err)
	}
	return filepath.Join(dir, "history.db"), nil
}

// Add appends text as the newest entry and returns its sequence number.
func (s *BoltStore) Add(text string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketEntries))
		next, err := b.NextSequence()
		if err != nil {
			return err
		}
		seq = next
		return b.Put(marshalSeq(seq), []byte(text))
	})
	if err != nil {
		return 0, fmt.Errorf("recording history entry: %w", err)
	}
	return int(seq), nil
}

// NextSeq returns the sequence number the next Add will use.
func (s *BoltStore) NextSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		seq = tx.Bucket([]byte(bucketEntries)).Sequence() + 1
		return nil
	})
	return int(seq), err
}

// Entries returns entries with from <= seq < upto, oldest first. A
// negative upto means "through the end".
func (s *BoltStore) Entries(from, upto int) ([]history.Entry, error) {
	if from < 0 {
		from = 0
	}
	var entries []history.Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketEntries)).Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil; k, v = c.Next() {
			seq := unmarshalSeq(k)
			if upto >= 0 && seq >= uint64(upto) {
				break
			}
			entries = append(entries, history.Entry{Seq: int(seq), Text: string(v)})
		}
		return nil
	})
	return entries, err
}

// Prev finds the newest entry before upto (exclusive) whose text begins
// with prefix.
func (s *BoltStore) Prev(upto int, prefix string) (history.Entry, error) {
	if upto < 0 {
		upto = 0
	}
	var entry history.Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketEntries)).Cursor()
		p := []byte(prefix)

		var v []byte
		k, _ := c.Seek(marshalSeq(uint64(upto)))
		if k == nil { // upto is past the last entry
			k, v = c.Last()
			if k == nil {
				return history.ErrNoEntry
			}
		} else {
			k, v = c.Prev()
		}

		for ; k != nil; k, v = c.Prev() {
			if bytes.HasPrefix(v, p) {
				entry = history.Entry{Seq: int(unmarshalSeq(k)), Text: string(v)}
				return nil
			}
		}
		return history.ErrNoEntry
	})
	return entry, err
}

// Close releases the database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

// Package boltoffset persists dispatcher.OffsetStore state in a bbolt
// database, so a restarted polling process resumes from the last
// acknowledged getUpdates offset instead of from zero (SPEC_FULL.md §4.6
// addition). Grounded in the teacher's
// internal/infra/telegram/peersmgr/manager.go, which opens a bbolt.DB at a
// configured path and keys small persistent values inside a single bucket.
package boltoffset

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"go.etcd.io/bbolt"
)

const (
	bucketName                = "offsets"
	dbOpenTimeout             = time.Second
	dbFileMode    os.FileMode = 0o600
)

var bucketBytes = []byte(bucketName)

// Store is a bbolt-backed dispatcher.OffsetStore: one bucket, keyed by the
// bot's numeric id, holding an 8-byte big-endian offset.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if absent) the bbolt database at path and ensures
// the offsets bucket exists.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, dbFileMode, &bbolt.Options{Timeout: dbOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("boltoffset: open %s: %w", path, err)
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketBytes)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("boltoffset: create bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error { return s.db.Close() }

// LoadOffset returns the last saved offset for botID, or 0 if none was
// ever saved.
func (s *Store) LoadOffset(botID int64) (int64, error) {
	var offset int64
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBytes)
		value := bucket.Get(key(botID))
		if len(value) == 8 {
			offset = int64(binary.BigEndian.Uint64(value))
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("boltoffset: load offset for bot %d: %w", botID, err)
	}
	return offset, nil
}

// SaveOffset durably records offset as the next getUpdates request's
// offset for botID.
func (s *Store) SaveOffset(botID int64, offset int64) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBytes)
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(offset))
		return bucket.Put(key(botID), buf)
	})
	if err != nil {
		return fmt.Errorf("boltoffset: save offset for bot %d: %w", botID, err)
	}
	return nil
}

func key(botID int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(botID))
	return buf
}

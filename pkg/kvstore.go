// Package pkg holds the external collaborators of the service: the LLM
// gateway client and a BoltDB-backed key-value store.
//
// BoltDB keeps all data in a single file, so shared caches survive restarts
// without an extra database process.
package pkg

import (
	"errors"
	"time"

	bolt "github.com/boltdb/bolt"
)

// ErrKeyNotFound is returned when a requested key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is a namespaced get/set store on a single BoltDB file. Each
// namespace maps to a bucket.
type KVStore struct {
	db *bolt.DB
}

// NewKVStore opens (or creates) the database file at the given path.
func NewKVStore(path string) (*KVStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	return &KVStore{db: db}, nil
}

// Close releases the database file lock.
func (s *KVStore) Close() error {
	return s.db.Close()
}

// Get retrieves the value stored under (namespace, key).
// Returns ErrKeyNotFound when either does not exist.
func (s *KVStore) Get(namespace, key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(namespace))
		if b == nil {
			return ErrKeyNotFound
		}
		v := b.Get([]byte(key))
		if v == nil {
			return ErrKeyNotFound
		}
		value = make([]byte, len(v))
		copy(value, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores the value under (namespace, key), creating the namespace on
// first use.
func (s *KVStore) Set(namespace, key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(namespace))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
}

// Delete removes a key. Deleting a missing key is a no-op.
func (s *KVStore) Delete(namespace, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(namespace))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

package store

import (
	"bytes"
	"errors"
	"time"

	"go.etcd.io/bbolt"
)

const boltBucketRecords = "records" // key: logical record key -> JSON

var errNilDB = errors.New("bolt database is closed")

// Bolt is the default KV engine, an embedded BoltDB file.
type Bolt struct {
	storage *bbolt.DB
}

// NewBolt creates or opens a Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	instance, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketRecords))
		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

func (b *Bolt) Close() error {
	if b.storage == nil {
		return nil
	}

	return b.storage.Close()
}

func (b *Bolt) Ping() error {
	if b.storage == nil {
		return errNilDB
	}

	return b.storage.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *Bolt) Get(key string) ([]byte, error) {
	var out []byte

	err := b.storage.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketRecords)).Get([]byte(key))
		if v != nil {
			// bbolt values are only valid for the life of the transaction
			out = bytes.Clone(v)
		}

		return nil
	})

	return out, err
}

func (b *Bolt) Put(key string, value []byte) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketRecords)).Put([]byte(key), value)
	})
}

func (b *Bolt) Delete(key string) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketRecords)).Delete([]byte(key))
	})
}

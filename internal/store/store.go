package store

import (
	"fmt"
	"path/filepath"

	"github.com/inovacc/macromind/internal/store/sqlite"
)

// KV is the key-value contract every storage engine implements.
type KV interface {
	Ping() error
	// Get returns nil, nil when key is absent.
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Driver selects a storage engine.
type Driver string

const (
	DriverBolt   Driver = "bolt"
	DriverSQLite Driver = "sqlite"
)

// Open opens the engine selected by driver inside dir.
func Open(driver Driver, dir string) (KV, error) {
	var (
		kv  KV
		err error
	)

	switch driver {
	case DriverBolt, "":
		kv, err = NewBolt(filepath.Join(dir, "macromind.bolt"))
	case DriverSQLite:
		kv, err = sqlite.New(filepath.Join(dir, "macromind.db"))
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", driver, err)
	}

	if err := kv.Ping(); err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("pinging %s store: %w", driver, err)
	}

	return kv, nil
}

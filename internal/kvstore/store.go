package kvstore

import (
	"context"
	"errors"
	"fmt"

	"photopro/internal/config"
)

// ErrAbsent is returned by Get when no value exists under the key. Corrupt
// stored JSON is reported the same way (with a logged warning) since it is
// indistinguishable from a missing value.
var ErrAbsent = errors.New("kvstore: key absent")

// StorageError wraps a failed read or write against the backing medium.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("kvstore: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store is a named-JSON-blob persistence adapter. Last write wins; no
// version check, no merge, no conflict signal.
type Store interface {
	Put(ctx context.Context, key string, value any) error
	Get(ctx context.Context, key string, out any) error
	Delete(ctx context.Context, key string) error
}

// Open selects the backend configured by STORAGE_BACKEND.
func Open() (Store, error) {
	switch config.AppConfig.StorageBackend {
	case "file":
		return NewFileStore(config.AppConfig.DataDir)
	case "redis":
		return NewRedisStore(config.AppConfig.RedisAddress)
	case "postgres":
		return NewPostgresStore()
	default:
		return nil, fmt.Errorf("kvstore: unknown backend %q", config.AppConfig.StorageBackend)
	}
}

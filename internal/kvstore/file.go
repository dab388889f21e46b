package kvstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

// FileStore keeps one <key>.json file per key under a data directory. A
// single flock'd lock file guards read-modify-write cycles against another
// process pointed at the same directory.
type FileStore struct {
	dir  string
	lock *flock.Flock
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &StorageError{Op: "open", Key: dir, Err: err}
	}
	return &FileStore{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, ".lock")),
	}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &StorageError{Op: "put", Key: key, Err: err}
	}

	if err := s.lock.Lock(); err != nil {
		return &StorageError{Op: "put", Key: key, Err: err}
	}
	defer s.lock.Unlock()

	// Write to a temp file first so a failed write never clobbers the
	// previous value.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &StorageError{Op: "put", Key: key, Err: err}
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return &StorageError{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, key string, out any) error {
	if err := s.lock.RLock(); err != nil {
		return &StorageError{Op: "get", Key: key, Err: err}
	}
	defer s.lock.Unlock()

	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return ErrAbsent
	}
	if err != nil {
		return &StorageError{Op: "get", Key: key, Err: err}
	}

	if err := json.Unmarshal(data, out); err != nil {
		zap.S().Warnw("stored value is not valid JSON, treating as absent", "key", key, "error", err)
		return ErrAbsent
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := s.lock.Lock(); err != nil {
		return &StorageError{Op: "delete", Key: key, Err: err}
	}
	defer s.lock.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return &StorageError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

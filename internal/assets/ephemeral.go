package assets

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

type ephemeralBlob struct {
	name        string
	contentType string
	data        []byte
	uploadedAt  time.Time
}

// EphemeralStore is the zero-configuration fallback. Blobs live in process
// memory under opaque handles and never touch the network; they are gone
// after a restart.
type EphemeralStore struct {
	mu    sync.RWMutex
	blobs map[string]ephemeralBlob
}

func NewEphemeralStore() *EphemeralStore {
	return &EphemeralStore{
		blobs: make(map[string]ephemeralBlob),
	}
}

func (s *EphemeralStore) Upload(ctx context.Context, name string, content io.Reader, contentType string) (AssetRef, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return AssetRef{}, err
	}

	handle := uuid.NewString()

	s.mu.Lock()
	s.blobs[handle] = ephemeralBlob{
		name:        name,
		contentType: contentType,
		data:        data,
		uploadedAt:  time.Now().UTC(),
	}
	s.mu.Unlock()

	return ephemeralRef(handle), nil
}

// Delete releases an ephemeral blob. Durable refs have no local copy and
// nothing reachable remotely from this store, so they are a no-op.
func (s *EphemeralStore) Delete(ctx context.Context, ref AssetRef) error {
	if ref.Kind != RefEphemeral {
		return nil
	}

	s.mu.Lock()
	delete(s.blobs, ref.Handle())
	s.mu.Unlock()
	return nil
}

func (s *EphemeralStore) List(ctx context.Context) ([]BlobDescriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	descriptors := make([]BlobDescriptor, 0, len(s.blobs))
	for handle, blob := range s.blobs {
		descriptors = append(descriptors, BlobDescriptor{
			URL:        ephemeralScheme + handle,
			Pathname:   blob.name,
			Size:       int64(len(blob.data)),
			UploadedAt: blob.uploadedAt,
		})
	}
	return descriptors, nil
}

// Open returns the stored blob for serving back to the UI.
func (s *EphemeralStore) Open(handle string) (data []byte, contentType string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[handle]
	if !ok {
		return nil, "", false
	}
	return blob.data, blob.contentType, true
}

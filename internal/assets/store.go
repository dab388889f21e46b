package assets

import (
	"context"
	"io"
	"time"

	"photopro/internal/config"

	"go.uber.org/zap"
)

// BlobDescriptor describes one object held by the remote store.
type BlobDescriptor struct {
	URL        string    `json:"url"`
	Pathname   string    `json:"pathname"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Store is the asset storage strategy. Exactly one implementation is picked
// at startup: the remote blob store when a read-write token is configured,
// the ephemeral in-memory fallback otherwise.
type Store interface {
	Upload(ctx context.Context, name string, content io.Reader, contentType string) (AssetRef, error)
	Delete(ctx context.Context, ref AssetRef) error
	List(ctx context.Context) ([]BlobDescriptor, error)
}

// New resolves the storage strategy from configuration.
func New() Store {
	if config.AppConfig.BlobToken == "" {
		zap.S().Warn("BLOB_READ_WRITE_TOKEN is not set. Using fallback local storage.")
		return NewEphemeralStore()
	}
	return NewRemoteStore(config.AppConfig.BlobStoreURL, config.AppConfig.BlobToken)
}

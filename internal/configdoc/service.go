package configdoc

import (
	"context"
	defError "errors"
	"io"

	"photopro/internal/assets"
	"photopro/internal/errors"
	"photopro/internal/items"
	"photopro/internal/kvstore"
	"photopro/internal/worker"

	"go.uber.org/zap"
)

type Service interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc Document) (*Document, error)
	Reset(ctx context.Context) (*Document, error)
	SetAvatar(ctx context.Context, filename string, content io.Reader, contentType string) (*Document, error)
	AddGroupShot(ctx context.Context, description string) (*Document, error)
	RemoveGroupShot(ctx context.Context, id int) (*Document, error)
	Packages() []PackageDetails
}

type DefaultService struct {
	store  kvstore.Store
	assets assets.Store
	pool   *worker.WorkerPool
}

func NewService(store kvstore.Store, assetStore assets.Store, pool *worker.WorkerPool) Service {
	return &DefaultService{
		store:  store,
		assets: assetStore,
		pool:   pool,
	}
}

// Load returns the persisted document, materializing and persisting the
// built-in defaults on first call. Idempotent afterwards.
func (s *DefaultService) Load(ctx context.Context) (*Document, error) {
	var doc Document
	err := s.store.Get(ctx, StorageKey, &doc)
	if defError.Is(err, kvstore.ErrAbsent) {
		doc = Defaults()
		if err := s.store.Put(ctx, StorageKey, doc); err != nil {
			return nil, errors.StorageFailure(err)
		}
		return &doc, nil
	}
	if err != nil {
		return nil, errors.StorageFailure(err)
	}
	return &doc, nil
}

func (s *DefaultService) Save(ctx context.Context, doc Document) (*Document, error) {
	if doc.WeddingDetails.Package != "" && !doc.WeddingDetails.Package.Valid() {
		return nil, errors.BadRequest("Unknown photo package", nil)
	}

	// Group shot ids come from the server, never the client. Keep whatever
	// ids the stored document already assigned.
	current, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	doc.GroupShots = current.GroupShots
	doc.ClientInfo.AvatarURL = current.ClientInfo.AvatarURL

	if err := s.store.Put(ctx, StorageKey, doc); err != nil {
		return nil, errors.StorageFailure(err)
	}
	return &doc, nil
}

// Reset discards the persisted document and restores defaults.
func (s *DefaultService) Reset(ctx context.Context) (*Document, error) {
	current, err := s.Load(ctx)
	if err == nil {
		s.scheduleDelete(assets.ParseRef(current.ClientInfo.AvatarURL))
	}

	if err := s.store.Delete(ctx, StorageKey); err != nil {
		return nil, errors.StorageFailure(err)
	}

	doc := Defaults()
	return &doc, nil
}

// SetAvatar uploads a new client avatar, swaps the reference into the
// document and schedules deletion of the replaced one. An upload failure
// aborts with the document untouched.
func (s *DefaultService) SetAvatar(ctx context.Context, filename string, content io.Reader, contentType string) (*Document, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	newRef, err := s.assets.Upload(ctx, filename, content, contentType)
	if err != nil {
		return nil, errors.UploadFailure(err)
	}

	oldRef := assets.ParseRef(doc.ClientInfo.AvatarURL)
	doc.ClientInfo.AvatarURL = newRef.String()

	if err := s.store.Put(ctx, StorageKey, doc); err != nil {
		return nil, errors.StorageFailure(err)
	}

	if oldRef.URL != newRef.URL {
		s.scheduleDelete(oldRef)
	}
	return doc, nil
}

func (s *DefaultService) AddGroupShot(ctx context.Context, description string) (*Document, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	doc.GroupShots = append(doc.GroupShots, GroupShot{
		ID:          items.NextID(doc.GroupShots),
		Description: description,
	})

	if err := s.store.Put(ctx, StorageKey, doc); err != nil {
		return nil, errors.StorageFailure(err)
	}
	return doc, nil
}

func (s *DefaultService) RemoveGroupShot(ctx context.Context, id int) (*Document, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	doc.GroupShots = items.Remove(doc.GroupShots, id)

	if err := s.store.Put(ctx, StorageKey, doc); err != nil {
		return nil, errors.StorageFailure(err)
	}
	return doc, nil
}

func (s *DefaultService) Packages() []PackageDetails {
	return Packages()
}

// scheduleDelete hands an asset off to the worker pool for best-effort
// removal. Orphaned remote assets are an accepted failure mode, never a
// reason to fail the mutation that replaced them.
func (s *DefaultService) scheduleDelete(ref assets.AssetRef) {
	if ref.IsZero() {
		return
	}
	s.pool.Submit(func(ctx context.Context) error {
		if err := s.assets.Delete(ctx, ref); err != nil {
			zap.S().Warnw("asset cleanup failed", "ref", ref.String(), "error", err)
		}
		return nil
	})
}

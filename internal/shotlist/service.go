package shotlist

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
	List(ctx context.Context) ([]Item, error)
	Add(ctx context.Context, item Item) (*Item, error)
	Update(ctx context.Context, id int, item Item) (*Item, error)
	ToggleCompleted(ctx context.Context, id int) (*Item, error)
	Remove(ctx context.Context, id int) error
	Reset(ctx context.Context) ([]Item, error)
	SetImage(ctx context.Context, id int, filename string, content io.Reader, contentType string) (*Item, error)
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

// List returns the persisted shot list, materializing the defaults on first
// call. Idempotent afterwards.
func (s *DefaultService) List(ctx context.Context) ([]Item, error) {
	var list []Item
	err := s.store.Get(ctx, StorageKey, &list)
	if defError.Is(err, kvstore.ErrAbsent) {
		list = Defaults()
		if err := s.store.Put(ctx, StorageKey, list); err != nil {
			return nil, errors.StorageFailure(err)
		}
		return list, nil
	}
	if err != nil {
		return nil, errors.StorageFailure(err)
	}
	return list, nil
}

// Add appends a new shot with the next id. New shots always start
// uncompleted.
func (s *DefaultService) Add(ctx context.Context, item Item) (*Item, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	item.ID = items.NextID(list)
	item.Completed = false
	list = append(list, item)

	if err := s.store.Put(ctx, StorageKey, list); err != nil {
		return nil, errors.StorageFailure(err)
	}
	return &item, nil
}

// Update replaces the editable fields of a shot. When the update swaps the
// image reference, the replaced durable asset is scheduled for deletion.
func (s *DefaultService) Update(ctx context.Context, id int, item Item) (*Item, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	existing, ok := items.Find(list, id)
	if !ok {
		return nil, errors.NotFound("Shot not found", nil)
	}

	item.ID = existing.ID
	item.Completed = existing.Completed

	if existing.ImagePath != item.ImagePath {
		s.scheduleDelete(assets.ParseRef(existing.ImagePath))
	}

	for i := range list {
		if list[i].ID == id {
			list[i] = item
		}
	}

	if err := s.store.Put(ctx, StorageKey, list); err != nil {
		return nil, errors.StorageFailure(err)
	}
	return &item, nil
}

func (s *DefaultService) ToggleCompleted(ctx context.Context, id int) (*Item, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var updated *Item
	for i := range list {
		if list[i].ID == id {
			list[i].Completed = !list[i].Completed
			updated = &list[i]
		}
	}
	if updated == nil {
		return nil, errors.NotFound("Shot not found", nil)
	}

	if err := s.store.Put(ctx, StorageKey, list); err != nil {
		return nil, errors.StorageFailure(err)
	}
	return updated, nil
}

// Remove deletes a shot and schedules removal of its image asset. Removing
// an id that is no longer present leaves the collection unchanged.
func (s *DefaultService) Remove(ctx context.Context, id int) error {
	list, err := s.List(ctx)
	if err != nil {
		return err
	}

	existing, ok := items.Find(list, id)
	if !ok {
		return nil
	}
	s.scheduleDelete(assets.ParseRef(existing.ImagePath))

	list = items.Remove(list, id)
	if err := s.store.Put(ctx, StorageKey, list); err != nil {
		return errors.StorageFailure(err)
	}
	return nil
}

// Reset discards the persisted list and restores the defaults, scheduling
// cleanup of every image asset the old list carried.
func (s *DefaultService) Reset(ctx context.Context) ([]Item, error) {
	list, err := s.List(ctx)
	if err == nil {
		for _, item := range list {
			s.scheduleDelete(assets.ParseRef(item.ImagePath))
		}
	}

	if err := s.store.Delete(ctx, StorageKey); err != nil {
		return nil, errors.StorageFailure(err)
	}
	return Defaults(), nil
}

// SetImage uploads a new image for a shot and swaps the reference in,
// scheduling deletion of the replaced asset. An upload failure aborts with
// the list untouched.
func (s *DefaultService) SetImage(ctx context.Context, id int, filename string, content io.Reader, contentType string) (*Item, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	existing, ok := items.Find(list, id)
	if !ok {
		return nil, errors.NotFound("Shot not found", nil)
	}

	newRef, err := s.assets.Upload(ctx, filename, content, contentType)
	if err != nil {
		return nil, errors.UploadFailure(err)
	}

	oldRef := assets.ParseRef(existing.ImagePath)

	var updated *Item
	for i := range list {
		if list[i].ID == id {
			list[i].ImagePath = newRef.String()
			updated = &list[i]
		}
	}

	if err := s.store.Put(ctx, StorageKey, list); err != nil {
		return nil, errors.StorageFailure(err)
	}

	if oldRef.URL != newRef.URL {
		s.scheduleDelete(oldRef)
	}
	return updated, nil
}

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

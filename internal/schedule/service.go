package schedule

import (
	"context"
	defError "errors"

	"photopro/internal/errors"
	"photopro/internal/items"
	"photopro/internal/kvstore"
)

type Service interface {
	List(ctx context.Context) ([]Item, error)
	Add(ctx context.Context, item Item) (*Item, error)
	Update(ctx context.Context, id int, item Item) (*Item, error)
	ToggleCompleted(ctx context.Context, id int) (*Item, error)
	Remove(ctx context.Context, id int) error
	Reset(ctx context.Context) ([]Item, error)
	SaveDraft(ctx context.Context, id int, item Item) error
	LoadDraft(ctx context.Context, id int) (*Item, error)
	DiscardDraft(ctx context.Context, id int) error
}

type DefaultService struct {
	store kvstore.Store
}

func NewService(store kvstore.Store) Service {
	return &DefaultService{store: store}
}

// List returns the persisted schedule, materializing the defaults on first
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

func (s *DefaultService) Update(ctx context.Context, id int, item Item) (*Item, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	existing, ok := items.Find(list, id)
	if !ok {
		return nil, errors.NotFound("Schedule item not found", nil)
	}

	item.ID = existing.ID
	item.Completed = existing.Completed

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
		return nil, errors.NotFound("Schedule item not found", nil)
	}

	if err := s.store.Put(ctx, StorageKey, list); err != nil {
		return nil, errors.StorageFailure(err)
	}
	return updated, nil
}

// Remove deletes a schedule item. Removing an id that is no longer present
// leaves the collection unchanged.
func (s *DefaultService) Remove(ctx context.Context, id int) error {
	list, err := s.List(ctx)
	if err != nil {
		return err
	}

	if _, ok := items.Find(list, id); !ok {
		return nil
	}

	list = items.Remove(list, id)
	if err := s.store.Put(ctx, StorageKey, list); err != nil {
		return errors.StorageFailure(err)
	}

	// A stale edit draft has no item to attach to anymore.
	return s.DiscardDraft(ctx, id)
}

// Reset discards the persisted schedule and restores the defaults.
func (s *DefaultService) Reset(ctx context.Context) ([]Item, error) {
	if err := s.store.Delete(ctx, StorageKey); err != nil {
		return nil, errors.StorageFailure(err)
	}
	return Defaults(), nil
}

// SaveDraft stashes in-progress edits of one item under its transient
// per-item key so a reopened dialog can restore them.
func (s *DefaultService) SaveDraft(ctx context.Context, id int, item Item) error {
	item.ID = id
	if err := s.store.Put(ctx, DraftKey(id), item); err != nil {
		return errors.StorageFailure(err)
	}
	return nil
}

func (s *DefaultService) LoadDraft(ctx context.Context, id int) (*Item, error) {
	var item Item
	err := s.store.Get(ctx, DraftKey(id), &item)
	if defError.Is(err, kvstore.ErrAbsent) {
		return nil, errors.NotFound("No draft for this item", nil)
	}
	if err != nil {
		return nil, errors.StorageFailure(err)
	}
	return &item, nil
}

func (s *DefaultService) DiscardDraft(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, DraftKey(id)); err != nil {
		return errors.StorageFailure(err)
	}
	return nil
}

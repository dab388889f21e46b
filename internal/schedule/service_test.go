package schedule

import (
	"context"
	"testing"

	"photopro/internal/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, kvstore.Store) {
	t.Helper()
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewService(store), store
}

func TestList_MaterializesDefaultsOnce(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first, err := service.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// A persisted time must come back exactly as stored, in canonical 24-hour
// form, whatever a consumer later renders it as.
func TestTimeRoundTripsExactly(t *testing.T) {
	service, store, ctx := setupEmpty(t)

	added, err := service.Add(ctx, Item{Time: "14:30", Title: "Ceremony", Type: TypeCeremony})
	require.NoError(t, err)
	assert.Equal(t, "14:30", added.Time)

	// Reload through a fresh service over the same backing store
	reloaded, err := NewService(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "14:30", reloaded[0].Time)
}

func setupEmpty(t *testing.T) (Service, kvstore.Store, context.Context) {
	t.Helper()
	service, store := newTestService(t)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, StorageKey, []Item{}))
	return service, store, ctx
}

func TestAdd_IDAssignment(t *testing.T) {
	service, _, ctx := setupEmpty(t)

	first, err := service.Add(ctx, Item{Time: "10:00", Title: "Prep", Type: TypePrep})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := service.Add(ctx, Item{Time: "14:00", Title: "Ceremony", Type: TypeCeremony})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	require.NoError(t, service.Remove(ctx, 1))

	third, err := service.Add(ctx, Item{Time: "17:00", Title: "Reception", Type: TypeReception})
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID)
}

func TestRemove_AbsentIDIsNoOp(t *testing.T) {
	service, _, ctx := setupEmpty(t)

	_, err := service.Add(ctx, Item{Time: "10:00", Title: "Prep", Type: TypePrep})
	require.NoError(t, err)

	before, err := service.List(ctx)
	require.NoError(t, err)

	require.NoError(t, service.Remove(ctx, 42))
	after, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdate_PreservesIDAndCompleted(t *testing.T) {
	service, _, ctx := setupEmpty(t)

	added, err := service.Add(ctx, Item{Time: "10:00", Title: "Prep", Type: TypePrep})
	require.NoError(t, err)
	_, err = service.ToggleCompleted(ctx, added.ID)
	require.NoError(t, err)

	updated, err := service.Update(ctx, added.ID, Item{ID: 99, Time: "10:30", Title: "Prep moved", Type: TypePrep, Completed: false})
	require.NoError(t, err)
	assert.Equal(t, added.ID, updated.ID)
	assert.True(t, updated.Completed)
	assert.Equal(t, "10:30", updated.Time)
}

func TestDraftLifecycle(t *testing.T) {
	service, _, ctx := setupEmpty(t)

	added, err := service.Add(ctx, Item{Time: "10:00", Title: "Prep", Type: TypePrep})
	require.NoError(t, err)

	draft := Item{Time: "11:15", Title: "Prep (unsaved)", Type: TypePrep}
	require.NoError(t, service.SaveDraft(ctx, added.ID, draft))

	loaded, err := service.LoadDraft(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Prep (unsaved)", loaded.Title)
	assert.Equal(t, added.ID, loaded.ID)

	require.NoError(t, service.DiscardDraft(ctx, added.ID))
	_, err = service.LoadDraft(ctx, added.ID)
	assert.Error(t, err)
}

// Deleting an item also throws away any stale draft stashed for it.
func TestRemove_DiscardsDraft(t *testing.T) {
	service, _, ctx := setupEmpty(t)

	added, err := service.Add(ctx, Item{Time: "10:00", Title: "Prep", Type: TypePrep})
	require.NoError(t, err)
	require.NoError(t, service.SaveDraft(ctx, added.ID, Item{Title: "edit in progress"}))

	require.NoError(t, service.Remove(ctx, added.ID))
	_, err = service.LoadDraft(ctx, added.ID)
	assert.Error(t, err)
}

func TestReset_RestoresDefaults(t *testing.T) {
	service, _, ctx := setupEmpty(t)

	list, err := service.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), list)

	// The next load re-materializes the defaults
	loaded, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), loaded)
}

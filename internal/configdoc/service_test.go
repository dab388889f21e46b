package configdoc

import (
	"context"
	"strings"
	"testing"

	"photopro/internal/assets"
	"photopro/internal/kvstore"
	"photopro/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, *assets.EphemeralStore, *worker.WorkerPool) {
	t.Helper()
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	assetStore := assets.NewEphemeralStore()
	pool := worker.NewWorkerPool(1)
	return NewService(store, assetStore, pool), assetStore, pool
}

func TestLoad_MaterializesDefaultsIdempotently(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := service.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *first)

	second, err := service.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSave_RejectsUnknownPackage(t *testing.T) {
	service, _, _ := newTestService(t)

	doc := Defaults()
	doc.WeddingDetails.Package = "Platinum Package - $9999"

	_, err := service.Save(context.Background(), doc)
	assert.Error(t, err)
}

func TestSave_PersistsEdits(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	doc := Defaults()
	doc.ClientInfo.Name = "Emma & Liam"
	doc.WeddingDetails.Package = PackagePro

	saved, err := service.Save(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, "Emma & Liam", saved.ClientInfo.Name)

	loaded, err := service.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

// Group shot ids and the avatar reference are server-owned; a document save
// cannot overwrite them.
func TestSave_KeepsServerOwnedFields(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.SetAvatar(ctx, "avatar.png", strings.NewReader("png"), "image/png")
	require.NoError(t, err)

	doc := Defaults()
	doc.ClientInfo.AvatarURL = "https://evil.example.com/spoof.png"
	doc.GroupShots = []GroupShot{{ID: 999, Description: "spoofed"}}

	saved, err := service.Save(ctx, doc)
	require.NoError(t, err)
	assert.NotEqual(t, "https://evil.example.com/spoof.png", saved.ClientInfo.AvatarURL)
	assert.Equal(t, Defaults().GroupShots, saved.GroupShots)
}

func TestAddGroupShot_IDAssignment(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	// Defaults carry ids 1..3
	doc, err := service.AddGroupShot(ctx, "Grandparents with the couple")
	require.NoError(t, err)
	require.Len(t, doc.GroupShots, 4)
	assert.Equal(t, 4, doc.GroupShots[3].ID)

	doc, err = service.RemoveGroupShot(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, doc.GroupShots, 3)

	// Ids come from max+1 over what remains, so removing the top entry
	// frees its id for the next add
	doc, err = service.AddGroupShot(ctx, "College friends")
	require.NoError(t, err)
	assert.Equal(t, 4, doc.GroupShots[3].ID)
}

func TestRemoveGroupShot_AbsentIDIsNoOp(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	before, err := service.Load(ctx)
	require.NoError(t, err)

	after, err := service.RemoveGroupShot(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, before.GroupShots, after.GroupShots)
}

func TestSetAvatar_ReplacesAndCleansUpOldAsset(t *testing.T) {
	service, assetStore, pool := newTestService(t)
	ctx := context.Background()

	doc, err := service.SetAvatar(ctx, "one.png", strings.NewReader("1"), "image/png")
	require.NoError(t, err)
	oldRef := assets.ParseRef(doc.ClientInfo.AvatarURL)
	require.Equal(t, assets.RefEphemeral, oldRef.Kind)

	doc, err = service.SetAvatar(ctx, "two.png", strings.NewReader("2"), "image/png")
	require.NoError(t, err)
	newRef := assets.ParseRef(doc.ClientInfo.AvatarURL)
	assert.NotEqual(t, oldRef.URL, newRef.URL)

	pool.Shutdown()
	_, _, ok := assetStore.Open(oldRef.Handle())
	assert.False(t, ok)
	_, _, ok = assetStore.Open(newRef.Handle())
	assert.True(t, ok)
}

func TestReset_RestoresDefaults(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	edited := Defaults()
	edited.ClientInfo.Name = "Changed"
	_, err := service.Save(ctx, edited)
	require.NoError(t, err)

	doc, err := service.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *doc)

	loaded, err := service.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *loaded)
}

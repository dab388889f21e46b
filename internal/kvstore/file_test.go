package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStore_PutGetRoundTrip(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	value := map[string]any{
		"name":   "Sarah & James",
		"count":  float64(3),
		"nested": map[string]any{"time": "14:30"},
		"list":   []any{"a", "b"},
	}
	require.NoError(t, store.Put(ctx, "photoProConfig", value))

	var got map[string]any
	require.NoError(t, store.Get(ctx, "photoProConfig", &got))
	assert.Equal(t, value, got)
}

func TestFileStore_GetAbsentKey(t *testing.T) {
	store := newFileStore(t)

	var out map[string]any
	err := store.Get(context.Background(), "missing", &out)
	assert.ErrorIs(t, err, ErrAbsent)
}

func TestFileStore_PutOverwritesLastWriteWins(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "key", "first"))
	require.NoError(t, store.Put(ctx, "key", "second"))

	var got string
	require.NoError(t, store.Get(ctx, "key", &got))
	assert.Equal(t, "second", got)
}

// Corrupt stored JSON is indistinguishable from a missing value and is
// reported as absent.
func TestFileStore_CorruptValueTreatedAsAbsent(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))

	var out map[string]any
	err = store.Get(context.Background(), "broken", &out)
	assert.ErrorIs(t, err, ErrAbsent)
}

func TestFileStore_DeleteThenGetReportsAbsent(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "key", 42))
	require.NoError(t, store.Delete(ctx, "key"))

	var out int
	assert.ErrorIs(t, store.Get(ctx, "key", &out), ErrAbsent)

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "key"))
}

func TestFileStore_DistinctKeysAreIndependent(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "schedule", []string{"a"}))
	require.NoError(t, store.Put(ctx, "schedule-item-3", []string{"b"}))
	require.NoError(t, store.Delete(ctx, "schedule-item-3"))

	var got []string
	require.NoError(t, store.Get(ctx, "schedule", &got))
	assert.Equal(t, []string{"a"}, got)
}

package assets

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteStore_UploadUsesTimestampedName(t *testing.T) {
	var gotPath, gotAuth, gotAccess string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAccess = r.Header.Get("X-Access")
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com" + r.URL.Path})
	}))
	defer server.Close()

	store := NewRemoteStore(server.URL, "secret-token")
	store.now = func() time.Time { return time.UnixMilli(1712345678901) }

	ref, err := store.Upload(context.Background(), "first-look.jpg", strings.NewReader("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "/first-look-1712345678901.jpg", gotPath)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "public", gotAccess)
	assert.Equal(t, []byte("jpeg-bytes"), gotBody)

	assert.Equal(t, RefDurable, ref.Kind)
	assert.Equal(t, "https://cdn.example.com/first-look-1712345678901.jpg", ref.URL)
}

func TestRemoteStore_UniqueNameWithoutExtension(t *testing.T) {
	store := NewRemoteStore("https://blob.example.com", "token")
	store.now = func() time.Time { return time.UnixMilli(42) }

	assert.Equal(t, "avatar-42", store.uniqueName("avatar"))
	assert.Equal(t, "first-look-42.jpg", store.uniqueName("first-look.jpg"))
}

func TestRemoteStore_UploadErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer server.Close()

	store := NewRemoteStore(server.URL, "token")
	_, err := store.Upload(context.Background(), "a.png", strings.NewReader("x"), "image/png")
	assert.ErrorContains(t, err, "status=403")
}

func TestRemoteStore_DeleteDurable(t *testing.T) {
	var gotPath string
	var gotPayload deleteRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := NewRemoteStore(server.URL, "token")
	err := store.Delete(context.Background(), ParseRef("https://cdn.example.com/a.png"))
	require.NoError(t, err)

	assert.Equal(t, "/delete", gotPath)
	assert.Equal(t, []string{"https://cdn.example.com/a.png"}, gotPayload.URLs)
}

// Ephemeral refs were never uploaded; deleting one must not issue a request.
func TestRemoteStore_DeleteEphemeralRefSkipsNetwork(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	store := NewRemoteStore(server.URL, "token")
	err := store.Delete(context.Background(), ParseRef("local://abc"))
	require.NoError(t, err)
	assert.Equal(t, int32(0), requests.Load())
}

func TestRemoteStore_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"blobs": []map[string]any{
				{"url": "https://cdn.example.com/a.png", "pathname": "a.png", "size": 10},
			},
		})
	}))
	defer server.Close()

	store := NewRemoteStore(server.URL, "token")
	blobs, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, blobs, 1)
	assert.Equal(t, "a.png", blobs[0].Pathname)
}

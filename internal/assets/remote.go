package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RemoteStore uploads assets to a Vercel-Blob-compatible object store over
// its REST API. Stored objects are publicly readable.
type RemoteStore struct {
	baseURL    string
	token      string
	httpClient *http.Client
	now        func() time.Time
}

func NewRemoteStore(baseURL, token string) *RemoteStore {
	return &RemoteStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}
}

// uniqueName derives a collision-resistant object name from the suggested
// one: base name plus upload timestamp. Two same-named uploads within the
// same millisecond are the sole accepted collision risk.
func (s *RemoteStore) uniqueName(name string) string {
	millis := s.now().UnixMilli()
	if dot := strings.LastIndex(name, "."); dot > 0 {
		return fmt.Sprintf("%s-%d%s", name[:dot], millis, name[dot:])
	}
	return fmt.Sprintf("%s-%d", name, millis)
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (s *RemoteStore) Upload(ctx context.Context, name string, content io.Reader, contentType string) (AssetRef, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return AssetRef{}, err
	}

	target := fmt.Sprintf("%s/%s", s.baseURL, url.PathEscape(s.uniqueName(name)))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(data))
	if err != nil {
		return AssetRef{}, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("X-Content-Type", contentType)
	req.Header.Set("X-Access", "public")
	req.Header.Set("X-Add-Random-Suffix", "0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return AssetRef{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return AssetRef{}, fmt.Errorf(
			"blob store upload error: status=%d body=%s",
			resp.StatusCode,
			string(b),
		)
	}

	var payload uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return AssetRef{}, err
	}

	return AssetRef{Kind: RefDurable, URL: payload.URL}, nil
}

type deleteRequest struct {
	URLs []string `json:"urls"`
}

// Delete removes a durable object from the remote store. Ephemeral refs have
// nothing stored remotely and are a no-op.
func (s *RemoteStore) Delete(ctx context.Context, ref AssetRef) error {
	if ref.Kind != RefDurable {
		return nil
	}

	body, err := json.Marshal(deleteRequest{URLs: []string{ref.URL}})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/delete",
		bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf(
			"blob store delete error: status=%d body=%s",
			resp.StatusCode,
			string(b),
		)
	}

	return nil
}

type listResponse struct {
	Blobs []BlobDescriptor `json:"blobs"`
}

func (s *RemoteStore) List(ctx context.Context) ([]BlobDescriptor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf(
			"blob store list error: status=%d body=%s",
			resp.StatusCode,
			string(b),
		)
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return payload.Blobs, nil
}

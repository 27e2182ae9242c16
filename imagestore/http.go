package imagestore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPStore fetches images over HTTP(S). References are absolute URLs, the
// form the platform uses for externally hosted uploads.
type HTTPStore struct {
	client  *http.Client
	maxSize int64
}

// HTTPStoreOptions configures an HTTPStore.
type HTTPStoreOptions struct {
	// HTTPClient overrides the default client (30s timeout).
	HTTPClient *http.Client
	// MaxSize caps the response body in bytes. Default: 16 MiB.
	MaxSize int64
}

// NewHTTPStore creates an HTTPStore.
func NewHTTPStore(optFns ...func(*HTTPStoreOptions)) *HTTPStore {
	opts := HTTPStoreOptions{
		MaxSize: 16 << 20,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	return &HTTPStore{
		client:  client,
		maxSize: opts.MaxSize,
	}
}

// Fetch implements Store.
func (s *HTTPStore) Fetch(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", ref, resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, s.maxSize))
}

package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPEmbedder calls an OpenAI-compatible /embeddings endpoint.
//
// It implements Embedder for remote inference services; wrap it with
// LimitEmbedder and CacheEmbedder as needed.
type HTTPEmbedder struct {
	apiKey   string
	endpoint string
	model    string
	client   *http.Client
}

// HTTPEmbedderOptions configures an HTTPEmbedder.
type HTTPEmbedderOptions struct {
	// Endpoint is the API base URL. Default: https://api.openai.com/v1
	Endpoint string
	// Model is the embedding model name. Default: text-embedding-3-small
	Model string
	// HTTPClient overrides the default client (30s timeout).
	HTTPClient *http.Client
}

// NewHTTPEmbedder creates an embedder against an OpenAI-compatible API.
func NewHTTPEmbedder(apiKey string, optFns ...func(*HTTPEmbedderOptions)) *HTTPEmbedder {
	opts := HTTPEmbedderOptions{
		Endpoint: "https://api.openai.com/v1",
		Model:    "text-embedding-3-small",
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

	return &HTTPEmbedder{
		apiKey:   apiKey,
		endpoint: opts.Endpoint,
		model:    opts.Model,
		client:   client,
	}
}

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Embed implements Embedder.
func (e *HTTPEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(embeddingRequest{
		Model: e.model,
		Input: text,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed embeddingResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("embedding API error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding API status %d", resp.StatusCode)
	}
	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("embedding API returned no data")
	}

	return parsed.Data[0].Embedding, nil
}

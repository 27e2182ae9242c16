package semantic

import (
	"context"
)

// Embedder produces a fixed-length embedding vector for a piece of text.
//
// Implementations may call a local model or a remote inference service. They
// must return vectors of consistent length across calls; a length change is
// treated as a defect by the scorer. Any error is treated as "no signal" and
// the affected sub-score contributes 0.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// FeatureExtractor produces a fixed-length feature vector for an image
// reference (URL, object key or path).
//
// The contract mirrors Embedder: consistent vector length, errors degrade to
// a 0 contribution.
type FeatureExtractor interface {
	Extract(ctx context.Context, imageRef string) ([]float32, error)
}

// EmbedderFunc adapts a function to the Embedder interface.
type EmbedderFunc func(ctx context.Context, text string) ([]float32, error)

// Embed implements Embedder.
func (f EmbedderFunc) Embed(ctx context.Context, text string) ([]float32, error) {
	return f(ctx, text)
}

// FeatureExtractorFunc adapts a function to the FeatureExtractor interface.
type FeatureExtractorFunc func(ctx context.Context, imageRef string) ([]float32, error)

// Extract implements FeatureExtractor.
func (f FeatureExtractorFunc) Extract(ctx context.Context, imageRef string) ([]float32, error) {
	return f(ctx, imageRef)
}

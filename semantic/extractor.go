package semantic

import (
	"context"

	"github.com/hupe1980/matchgo/imagestore"
)

// ImageModel computes a feature vector from raw image bytes.
type ImageModel interface {
	Features(ctx context.Context, image []byte) ([]float32, error)
}

// ImageModelFunc adapts a function to the ImageModel interface.
type ImageModelFunc func(ctx context.Context, image []byte) ([]float32, error)

// Features implements ImageModel.
func (f ImageModelFunc) Features(ctx context.Context, image []byte) ([]float32, error) {
	return f(ctx, image)
}

// StoreExtractor implements FeatureExtractor by resolving image references
// through an imagestore.Store and running the bytes through an ImageModel.
//
// Item records carry object keys or URLs rather than pixels; the store
// bridges the gap to wherever the platform keeps uploads (MinIO, S3, local
// disk).
type StoreExtractor struct {
	store imagestore.Store
	model ImageModel
}

// NewStoreExtractor creates a StoreExtractor.
func NewStoreExtractor(store imagestore.Store, model ImageModel) *StoreExtractor {
	return &StoreExtractor{
		store: store,
		model: model,
	}
}

// Extract implements FeatureExtractor.
func (e *StoreExtractor) Extract(ctx context.Context, imageRef string) ([]float32, error) {
	image, err := e.store.Fetch(ctx, imageRef)
	if err != nil {
		return nil, err
	}
	return e.model.Features(ctx, image)
}

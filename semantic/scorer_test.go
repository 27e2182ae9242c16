package semantic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/matchgo/distance"
	"github.com/hupe1980/matchgo/item"
)

func date(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func pair() (item.Item, item.Item) {
	lost := item.Item{
		ID:          "l-1",
		Kind:        item.KindLost,
		Title:       "Black Wallet",
		Description: "leather wallet with student id",
		Category:    item.CategoryAccessories,
		Location:    "Student Center",
		Date:        date("2023-04-10"),
	}
	found := item.Item{
		ID:          "f-1",
		Kind:        item.KindFound,
		Title:       "Wallet",
		Description: "found a black leather wallet",
		Category:    item.CategoryAccessories,
		Location:    "Student Center",
		Date:        date("2023-04-10"),
	}
	return lost, found
}

func constEmbedder(vec []float32) Embedder {
	return EmbedderFunc(func(ctx context.Context, text string) ([]float32, error) {
		return vec, nil
	})
}

func constExtractor(vec []float32) FeatureExtractor {
	return FeatureExtractorFunc(func(ctx context.Context, ref string) ([]float32, error) {
		return vec, nil
	})
}

func TestScorer_NoCapabilities(t *testing.T) {
	s := NewScorer(nil, nil)
	lost, found := pair()

	b, err := s.Breakdown(context.Background(), lost, found)
	require.NoError(t, err)

	assert.Equal(t, 15.0, b.Category)
	assert.Equal(t, 15.0, b.Location)
	assert.Equal(t, 15.0, b.Date)
	assert.Equal(t, 0.0, b.Text)
	assert.Equal(t, 0.0, b.Image)
	assert.False(t, b.TextScored)
	assert.False(t, b.ImageScored)
	assert.Equal(t, 45.0, b.Total())
}

func TestScorer_TextSimilarity(t *testing.T) {
	s := NewScorer(constEmbedder([]float32{1, 0, 0}), nil)
	lost, found := pair()

	b, err := s.Breakdown(context.Background(), lost, found)
	require.NoError(t, err)

	assert.Equal(t, 30.0, b.Text, "identical embeddings: round(1.0 * 30)")
	assert.True(t, b.TextScored)
	assert.Equal(t, 75.0, b.Total())
}

func TestScorer_ImageSimilarity(t *testing.T) {
	s := NewScorer(nil, constExtractor([]float32{0, 1}))

	lost, found := pair()
	lost.Image = "uploads/lost.jpg"
	found.Image = "uploads/found.jpg"

	b, err := s.Breakdown(context.Background(), lost, found)
	require.NoError(t, err)

	assert.Equal(t, 25.0, b.Image, "identical features: round(1.0 * 25)")
	assert.True(t, b.ImageScored)
}

func TestScorer_ImageRequiresBothRefs(t *testing.T) {
	var calls int
	extractor := FeatureExtractorFunc(func(ctx context.Context, ref string) ([]float32, error) {
		calls++
		return []float32{1}, nil
	})

	s := NewScorer(nil, extractor)

	lost, found := pair()
	lost.Image = "uploads/lost.jpg"
	// found has no image.

	b, err := s.Breakdown(context.Background(), lost, found)
	require.NoError(t, err)

	assert.Equal(t, 0.0, b.Image)
	assert.False(t, b.ImageScored)
	assert.Zero(t, calls, "extractor must not run with a missing ref")
}

func TestScorer_FailSoft(t *testing.T) {
	embedder := EmbedderFunc(func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("inference backend down")
	})
	extractor := FeatureExtractorFunc(func(ctx context.Context, ref string) ([]float32, error) {
		return nil, errors.New("image fetch failed")
	})

	s := NewScorer(embedder, extractor)

	lost, found := pair()
	lost.Image = "a.jpg"
	found.Image = "b.jpg"

	b, err := s.Breakdown(context.Background(), lost, found)
	require.NoError(t, err, "capability failures degrade, they do not abort")

	assert.Equal(t, 45.0, b.Total())
	assert.False(t, b.TextScored)
	assert.False(t, b.ImageScored)
}

func TestScorer_EmptyEmbeddingFailsSoft(t *testing.T) {
	s := NewScorer(constEmbedder(nil), nil)
	lost, found := pair()

	b, err := s.Breakdown(context.Background(), lost, found)
	require.NoError(t, err)
	assert.False(t, b.TextScored)
}

func TestScorer_DimensionMismatchIsHard(t *testing.T) {
	var calls int
	embedder := EmbedderFunc(func(ctx context.Context, text string) ([]float32, error) {
		calls++
		if calls == 1 {
			return []float32{1, 2, 3}, nil
		}
		return []float32{1, 2}, nil
	})

	s := NewScorer(embedder, nil)
	lost, found := pair()

	_, err := s.Breakdown(context.Background(), lost, found)
	require.Error(t, err)

	var dm *distance.ErrDimensionMismatch
	assert.True(t, errors.As(err, &dm))
}

func TestScorer_NegativeSimilarityClamps(t *testing.T) {
	var calls int
	embedder := EmbedderFunc(func(ctx context.Context, text string) ([]float32, error) {
		calls++
		if calls == 1 {
			return []float32{1, 0}, nil
		}
		return []float32{-1, 0}, nil
	})

	s := NewScorer(embedder, nil)
	lost, found := pair()

	b, err := s.Breakdown(context.Background(), lost, found)
	require.NoError(t, err)

	assert.Equal(t, 0.0, b.Text)
	assert.True(t, b.TextScored)
	assert.GreaterOrEqual(t, b.Total(), 0.0)
}

func TestScorer_Cancellation(t *testing.T) {
	embedder := EmbedderFunc(func(ctx context.Context, text string) ([]float32, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	s := NewScorer(embedder, nil)
	lost, found := pair()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Breakdown(ctx, lost, found)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScorer_ScoreRange(t *testing.T) {
	s := NewScorer(constEmbedder([]float32{1}), constExtractor([]float32{1}))

	lost, found := pair()
	lost.Image = "a.jpg"
	found.Image = "b.jpg"

	score, err := s.Score(context.Background(), lost, found)
	require.NoError(t, err)

	assert.Equal(t, 100.0, score, "45 field points + 30 text + 25 image")
}

package semantic

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/hupe1980/matchgo/distance"
	"github.com/hupe1980/matchgo/item"
)

// Weights holds the point values awarded per factor.
type Weights struct {
	// Category is awarded on exact category equality.
	Category float64
	// Location is awarded on exact location equality.
	Location float64

	// Date proximity buckets, first-match-wins on the absolute day
	// difference.
	SameDay        float64 // < 1 day
	WithinThreeDay float64 // < 3 days
	WithinWeek     float64 // < 7 days
	WithinTwoWeeks float64 // < 14 days

	// TextScale scales the text cosine similarity: round(sim * TextScale).
	TextScale float64
	// ImageScale scales the image cosine similarity: round(sim * ImageScale).
	ImageScale float64
}

// DefaultWeights are the production point values for semantic mode. The
// field comparisons carry less weight than in lexical mode because the
// embedding similarities dominate. Maximum attainable score: 100.
var DefaultWeights = Weights{
	Category:       15,
	Location:       15,
	SameDay:        15,
	WithinThreeDay: 12,
	WithinWeek:     8,
	WithinTwoWeeks: 4,
	TextScale:      30,
	ImageScale:     25,
}

// Breakdown is the per-factor decomposition of a semantic score.
//
// TextScored and ImageScored report whether the corresponding similarity was
// actually computed; a false flag means the 0 contribution is "no signal"
// (capability unavailable or failed), not "maximally dissimilar".
type Breakdown struct {
	Category float64
	Location float64
	Date     float64
	Text     float64
	Image    float64

	TextScored  bool
	ImageScored bool
}

// Total returns the summed score.
func (b Breakdown) Total() float64 {
	return b.Category + b.Location + b.Date + b.Text + b.Image
}

// Options configures a Scorer.
type Options struct {
	// Weights are the point values per factor.
	Weights Weights

	// Logger receives debug events for fail-soft capability errors.
	// If nil, events are discarded.
	Logger *slog.Logger
}

// Scorer computes match scores from embedding similarity combined with field
// comparisons.
//
// Both capabilities are optional: a nil Embedder or FeatureExtractor means
// the corresponding sub-score contributes 0 (the models were never loaded).
// Capability call failures take the same fail-soft path. The single hard
// error is a vector length mismatch between the two sides, which indicates a
// defective capability; it surfaces as *distance.ErrDimensionMismatch.
//
// The Scorer holds no per-call state and is safe for concurrent use.
type Scorer struct {
	embedder  Embedder
	extractor FeatureExtractor
	weights   Weights
	logger    *slog.Logger
}

// NewScorer creates a Scorer with the given capabilities. Either capability
// may be nil.
func NewScorer(embedder Embedder, extractor FeatureExtractor, optFns ...func(*Options)) *Scorer {
	opts := Options{
		Weights: DefaultWeights,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Scorer{
		embedder:  embedder,
		extractor: extractor,
		weights:   opts.Weights,
		logger:    logger,
	}
}

// Score computes the match score between a lost and a found record.
func (s *Scorer) Score(ctx context.Context, lost, found item.Item) (float64, error) {
	b, err := s.Breakdown(ctx, lost, found)
	if err != nil {
		return 0, err
	}
	return b.Total(), nil
}

// Breakdown computes the match score with its per-factor decomposition.
func (s *Scorer) Breakdown(ctx context.Context, lost, found item.Item) (Breakdown, error) {
	var b Breakdown

	if lost.Category == found.Category {
		b.Category = s.weights.Category
	}

	if lost.Location == found.Location {
		b.Location = s.weights.Location
	}

	b.Date = s.dateProximity(lost, found)

	text, scored, err := s.textSimilarity(ctx, lost, found)
	if err != nil {
		return Breakdown{}, err
	}
	b.Text, b.TextScored = text, scored

	img, scored, err := s.imageSimilarity(ctx, lost, found)
	if err != nil {
		return Breakdown{}, err
	}
	b.Image, b.ImageScored = img, scored

	return b, nil
}

func (s *Scorer) dateProximity(lost, found item.Item) float64 {
	days, ok := item.DaysApart(lost.Date, found.Date)
	if !ok {
		return 0
	}

	switch {
	case days < 1:
		return s.weights.SameDay
	case days < 3:
		return s.weights.WithinThreeDay
	case days < 7:
		return s.weights.WithinWeek
	case days < 14:
		return s.weights.WithinTwoWeeks
	default:
		return 0
	}
}

func (s *Scorer) textSimilarity(ctx context.Context, lost, found item.Item) (pts float64, scored bool, err error) {
	if s.embedder == nil {
		return 0, false, nil
	}

	lostVec, ok, err := s.embed(ctx, lost.Text())
	if err != nil || !ok {
		return 0, false, err
	}
	foundVec, ok, err := s.embed(ctx, found.Text())
	if err != nil || !ok {
		return 0, false, err
	}

	sim, err := distance.Cosine(lostVec, foundVec)
	if err != nil {
		// Same capability produced differently sized vectors: a defect,
		// not a scoring condition.
		return 0, false, err
	}

	return scale(sim, s.weights.TextScale), true, nil
}

func (s *Scorer) imageSimilarity(ctx context.Context, lost, found item.Item) (pts float64, scored bool, err error) {
	if s.extractor == nil || lost.Image == "" || found.Image == "" {
		return 0, false, nil
	}

	lostVec, ok, err := s.extract(ctx, lost.Image)
	if err != nil || !ok {
		return 0, false, err
	}
	foundVec, ok, err := s.extract(ctx, found.Image)
	if err != nil || !ok {
		return 0, false, err
	}

	sim, err := distance.Cosine(lostVec, foundVec)
	if err != nil {
		return 0, false, err
	}

	return scale(sim, s.weights.ImageScale), true, nil
}

// embed calls the embedding capability with fail-soft error handling:
// a failed or empty embedding reports ok=false, while a cancelled context
// aborts the computation.
func (s *Scorer) embed(ctx context.Context, text string) (vec []float32, ok bool, err error) {
	vec, embedErr := s.embedder.Embed(ctx, text)
	if embedErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(embedErr, ctxErr) {
			return nil, false, embedErr
		}
		s.logger.DebugContext(ctx, "text embedding unavailable", "error", embedErr)
		return nil, false, nil
	}
	if len(vec) == 0 {
		return nil, false, nil
	}
	return vec, true, nil
}

func (s *Scorer) extract(ctx context.Context, ref string) (vec []float32, ok bool, err error) {
	vec, extractErr := s.extractor.Extract(ctx, ref)
	if extractErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(extractErr, ctxErr) {
			return nil, false, extractErr
		}
		s.logger.DebugContext(ctx, "image features unavailable", "ref", ref, "error", extractErr)
		return nil, false, nil
	}
	if len(vec) == 0 {
		return nil, false, nil
	}
	return vec, true, nil
}

// scale converts a cosine similarity in [-1, 1] to points in [0, max].
// Negative similarities clamp to 0 so that the overall score stays within
// its documented range.
func scale(sim, max float64) float64 {
	pts := math.Round(sim * max)
	if pts < 0 {
		return 0
	}
	return pts
}

package matchgo

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/matchgo/item"
	"github.com/hupe1980/matchgo/lexical"
	"github.com/hupe1980/matchgo/semantic"
)

// DefaultMinScore is the score below which candidates are dropped from
// ranking results unless configured otherwise.
const DefaultMinScore = 30

// Mode selects the scoring strategy for a ranking call. It is an explicit
// per-call parameter, so concurrent callers with different preferences never
// interfere.
type Mode int

const (
	// ModeLexical scores with deterministic field comparisons and token
	// overlap. Fully synchronous, no model involved.
	ModeLexical Mode = iota
	// ModeSemantic scores with embedding similarity via the injected
	// capabilities, falling back to 0 for unavailable sub-scores.
	ModeSemantic
)

// String returns a string representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeLexical:
		return "lexical"
	case ModeSemantic:
		return "semantic"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Match is a scored candidate produced by a ranking call.
type Match struct {
	Item       item.Item
	Score      float64
	Confidence Confidence
}

// Matcher ranks candidate items against a subject item.
//
// A Matcher is constructed once with its capabilities and configuration and
// is safe for concurrent use; all per-call state is call-scoped.
type Matcher struct {
	lexical            *lexical.Scorer
	semantic           *semantic.Scorer
	lexicalThresholds  Thresholds
	semanticThresholds Thresholds
	minScore           float64
	maxConcurrency     int
	logger             *Logger
	metrics            MetricsCollector
}

// New creates a Matcher.
//
// Without WithEmbedder/WithFeatureExtractor, semantic mode still works but
// its similarity sub-scores contribute 0.
func New(optFns ...Option) *Matcher {
	o := applyOptions(optFns)

	maxConcurrency := o.maxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = runtime.GOMAXPROCS(0)
	}

	return &Matcher{
		lexical: lexical.NewScorer(o.lexicalWeights),
		semantic: semantic.NewScorer(o.embedder, o.extractor, func(so *semantic.Options) {
			if o.semanticWeights != nil {
				o.semanticWeights(&so.Weights)
			}
			so.Logger = o.logger.Logger
		}),
		lexicalThresholds:  o.lexicalThresholds,
		semanticThresholds: o.semanticThresholds,
		minScore:           o.minScore,
		maxConcurrency:     maxConcurrency,
		logger:             o.logger,
		metrics:            o.metrics,
	}
}

// Rank scores every opposite-kind candidate against subject, drops results
// below the minimum score and returns the rest sorted by descending score.
//
// Same-kind and unknown-kind candidates are excluded unconditionally. The
// sort is stable: candidates with equal scores keep their relative order
// from the input slice. Neither subject nor candidates are mutated, and no
// truncation is applied; use Top for a bounded view.
//
// In semantic mode candidates are scored concurrently under the matcher's
// concurrency bound, and all scores are joined before sorting. Cancelling
// ctx aborts the call.
func (m *Matcher) Rank(ctx context.Context, mode Mode, subject item.Item, candidates []item.Item, optFns ...RankOption) ([]Match, error) {
	start := time.Now()

	ro := rankOptions{minScore: m.minScore}
	for _, fn := range optFns {
		if fn != nil {
			fn(&ro)
		}
	}

	if subject.Kind != item.KindLost && subject.Kind != item.KindFound {
		m.metrics.RecordRank(mode, 0, 0, time.Since(start), ErrUnknownKind)
		m.logger.LogRank(ctx, mode, subject.ID, 0, 0, ErrUnknownKind)
		return nil, ErrUnknownKind
	}

	opposite := subject.Kind.Opposite()
	pool := make([]item.Item, 0, len(candidates))
	for _, c := range candidates {
		if c.Kind == opposite {
			pool = append(pool, c)
		}
	}

	var (
		matches []Match
		err     error
	)
	switch mode {
	case ModeSemantic:
		matches, err = m.scoreSemantic(ctx, subject, pool)
	default:
		matches = m.scoreLexical(subject, pool)
	}
	if err != nil {
		m.metrics.RecordRank(mode, len(pool), 0, time.Since(start), err)
		m.logger.LogRank(ctx, mode, subject.ID, len(pool), 0, err)
		return nil, err
	}

	filtered := matches[:0]
	for _, match := range matches {
		if match.Score >= ro.minScore {
			filtered = append(filtered, match)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	m.metrics.RecordRank(mode, len(pool), len(filtered), time.Since(start), nil)
	m.logger.LogRank(ctx, mode, subject.ID, len(pool), len(filtered), nil)

	return filtered, nil
}

// Top returns at most n leading matches. It is a view over matches, not a
// ranker behavior; Rank itself never truncates.
func Top(matches []Match, n int) []Match {
	if n < 0 {
		n = 0
	}
	if n > len(matches) {
		n = len(matches)
	}
	return matches[:n]
}

func (m *Matcher) scoreLexical(subject item.Item, pool []item.Item) []Match {
	matches := make([]Match, 0, len(pool))
	for _, candidate := range pool {
		lost, found := orient(subject, candidate)
		score := m.lexical.Score(lost, found)
		matches = append(matches, Match{
			Item:       candidate,
			Score:      score,
			Confidence: m.lexicalThresholds.Classify(score),
		})
	}
	return matches
}

func (m *Matcher) scoreSemantic(ctx context.Context, subject item.Item, pool []item.Item) ([]Match, error) {
	matches := make([]Match, len(pool))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.maxConcurrency)

	for i, candidate := range pool {
		g.Go(func() error {
			lost, found := orient(subject, candidate)
			score, err := m.semantic.Score(gctx, lost, found)
			if err != nil {
				return err
			}
			matches[i] = Match{
				Item:       candidate,
				Score:      score,
				Confidence: m.semanticThresholds.Classify(score),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return matches, nil
}

// orient puts the pair into lost-then-found argument order.
func orient(subject, candidate item.Item) (lost, found item.Item) {
	if subject.Kind == item.KindLost {
		return subject, candidate
	}
	return candidate, subject
}

package matchgo

import (
	"log/slog"

	"github.com/hupe1980/matchgo/lexical"
	"github.com/hupe1980/matchgo/semantic"
)

type options struct {
	lexicalWeights     func(*lexical.Weights)
	semanticWeights    func(*semantic.Weights)
	embedder           semantic.Embedder
	extractor          semantic.FeatureExtractor
	lexicalThresholds  Thresholds
	semanticThresholds Thresholds
	minScore           float64
	maxConcurrency     int
	logger             *Logger
	metrics            MetricsCollector
}

// Option configures Matcher construction.
type Option func(*options)

// WithEmbedder sets the text-embedding capability used in semantic mode.
// Without it, the text similarity sub-score contributes 0.
func WithEmbedder(e semantic.Embedder) Option {
	return func(o *options) {
		o.embedder = e
	}
}

// WithFeatureExtractor sets the image-feature capability used in semantic
// mode. Without it, the image similarity sub-score contributes 0.
func WithFeatureExtractor(e semantic.FeatureExtractor) Option {
	return func(o *options) {
		o.extractor = e
	}
}

// WithLexicalWeights adjusts the lexical point values from their defaults.
func WithLexicalWeights(fn func(*lexical.Weights)) Option {
	return func(o *options) {
		o.lexicalWeights = fn
	}
}

// WithSemanticWeights adjusts the semantic point values from their defaults.
func WithSemanticWeights(fn func(*semantic.Weights)) Option {
	return func(o *options) {
		o.semanticWeights = fn
	}
}

// WithLexicalThresholds overrides the lexical confidence thresholds
// (default: high >= 65, medium >= 40).
func WithLexicalThresholds(t Thresholds) Option {
	return func(o *options) {
		o.lexicalThresholds = t
	}
}

// WithSemanticThresholds overrides the semantic confidence thresholds
// (default: high >= 75, medium >= 50).
func WithSemanticThresholds(t Thresholds) Option {
	return func(o *options) {
		o.semanticThresholds = t
	}
}

// WithDefaultMinScore sets the minimum score below which matches are dropped,
// unless overridden per call (default: 30).
func WithDefaultMinScore(minScore float64) Option {
	return func(o *options) {
		o.minScore = minScore
	}
}

// WithMaxConcurrency bounds the number of candidates scored concurrently in
// semantic mode (default: GOMAXPROCS). Lexical scoring is synchronous.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		o.maxConcurrency = n
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		lexicalThresholds:  DefaultLexicalThresholds,
		semanticThresholds: DefaultSemanticThresholds,
		minScore:           DefaultMinScore,
		logger:             NoopLogger(),
		metrics:            NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

type rankOptions struct {
	minScore float64
}

// RankOption overrides per-call ranking behavior.
type RankOption func(*rankOptions)

// WithMinScore overrides the matcher's minimum score for a single call.
func WithMinScore(minScore float64) RankOption {
	return func(o *rankOptions) {
		o.minScore = minScore
	}
}

package semantic

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Limits bounds calls into an inference capability.
type Limits struct {
	// MaxConcurrent is the maximum number of in-flight calls.
	// If 0, defaults to 1.
	MaxConcurrent int64

	// CallsPerSec is the maximum sustained call rate.
	// If 0, unlimited.
	CallsPerSec float64

	// Burst is the rate limiter burst size. If 0, defaults to
	// max(1, CallsPerSec).
	Burst int

	// Timeout is applied per call. If 0, no timeout is added.
	Timeout time.Duration
}

// gate enforces Limits around a capability call.
type gate struct {
	sem     *semaphore.Weighted
	limiter *rate.Limiter
	timeout time.Duration
}

func newGate(cfg Limits) *gate {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}

	g := &gate{
		sem:     semaphore.NewWeighted(cfg.MaxConcurrent),
		timeout: cfg.Timeout,
	}

	if cfg.CallsPerSec > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = int(cfg.CallsPerSec)
			if burst < 1 {
				burst = 1
			}
		}
		g.limiter = rate.NewLimiter(rate.Limit(cfg.CallsPerSec), burst)
	}

	return g
}

func (g *gate) do(ctx context.Context, call func(ctx context.Context) ([]float32, error)) ([]float32, error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer g.sem.Release(1)

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	return call(ctx)
}

// LimitedEmbedder wraps an Embedder with concurrency, rate and timeout
// bounds. A slow or overloaded inference backend then fails a single
// sub-score instead of stalling a whole ranking batch.
type LimitedEmbedder struct {
	inner Embedder
	gate  *gate
}

// LimitEmbedder bounds calls to e according to cfg.
func LimitEmbedder(e Embedder, cfg Limits) *LimitedEmbedder {
	return &LimitedEmbedder{
		inner: e,
		gate:  newGate(cfg),
	}
}

// Embed implements Embedder.
func (l *LimitedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return l.gate.do(ctx, func(ctx context.Context) ([]float32, error) {
		return l.inner.Embed(ctx, text)
	})
}

// LimitedExtractor wraps a FeatureExtractor with concurrency, rate and
// timeout bounds.
type LimitedExtractor struct {
	inner FeatureExtractor
	gate  *gate
}

// LimitExtractor bounds calls to e according to cfg.
func LimitExtractor(e FeatureExtractor, cfg Limits) *LimitedExtractor {
	return &LimitedExtractor{
		inner: e,
		gate:  newGate(cfg),
	}
}

// Extract implements FeatureExtractor.
func (l *LimitedExtractor) Extract(ctx context.Context, imageRef string) ([]float32, error) {
	return l.gate.do(ctx, func(ctx context.Context) ([]float32, error) {
		return l.inner.Extract(ctx, imageRef)
	})
}

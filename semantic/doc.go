// Package semantic implements embedding-based match scoring.
//
// The Scorer combines field comparisons (category, location, date proximity)
// with cosine similarity over injected model capabilities:
//
//   - Embedder: text -> embedding vector (title + description)
//   - FeatureExtractor: image reference -> feature vector
//
// # Fail-soft
//
// Capabilities are optional and failures degrade: a nil capability, a failed
// inference call or a missing image contributes 0 to the affected sub-score
// while the rest of the score still computes. The one hard error is a vector
// length mismatch between the two sides of a comparison
// (*distance.ErrDimensionMismatch), which indicates a defective capability.
//
// # Capability wrappers
//
// Production capabilities are composed from the provided wrappers:
//
//	e := semantic.NewHTTPEmbedder(apiKey)
//	e = semantic.LimitEmbedder(e, semantic.Limits{MaxConcurrent: 4, Timeout: 10 * time.Second})
//	e = semantic.CacheEmbedder(e, semantic.NewLRUCache(64<<20))
//
// LimitEmbedder/LimitExtractor bound concurrency, rate and per-call latency
// at the inference boundary; CacheEmbedder collapses repeat embeddings of
// the same text (memory LRU or zstd-compressed DiskCache).
package semantic

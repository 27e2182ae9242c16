// Package matchgo implements the item-matching engine for a campus
// lost-and-found platform: given a lost report and a pool of found reports
// (or vice versa), it scores each candidate, buckets the score into a
// confidence level and returns a ranked list of potential matches.
//
// The engine is a library. It borrows already-validated item records from
// the surrounding CRUD layer, performs no I/O of its own on the lexical path
// and leaves persistence, notification and presentation to the caller.
//
// # Scoring Modes
//
//   - ModeLexical: deterministic field comparisons and token overlap
//     (package lexical); synchronous and model-free.
//   - ModeSemantic: embedding cosine similarity over text and images via
//     injected capabilities (package semantic); sub-scores fail soft to 0
//     when a capability is unavailable.
//
// # Usage
//
//	matcher := matchgo.New(
//	    matchgo.WithEmbedder(embedder),
//	    matchgo.WithFeatureExtractor(extractor),
//	)
//
//	matches, err := matcher.Rank(ctx, matchgo.ModeSemantic, lostItem, candidates)
//
// Results are sorted by descending score; ties keep the candidate input
// order. Candidates of the same kind as the subject are never returned.
package matchgo

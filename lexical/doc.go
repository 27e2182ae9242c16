// Package lexical implements the deterministic match scorer.
//
// Scoring is additive over independent factors, each capped individually:
// category equality, location equality, date proximity buckets, title
// containment and description token overlap. No learned model is involved
// and no I/O is performed; the scorer is pure and concurrency-safe.
//
//	scorer := lexical.NewScorer()
//	score := scorer.Score(lost, found)
//
// Point values live in Weights and default to the platform's production
// values (maximum score 100).
package lexical

package matchgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordRank is called after each ranking operation.
	// candidates is the number of opposite-kind candidates scored, results
	// the number of matches returned, duration the total time taken and
	// err is nil if successful.
	RecordRank(mode Mode, candidates, results int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRank(Mode, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RankCount        atomic.Int64
	RankErrors       atomic.Int64
	RankTotalNanos   atomic.Int64
	CandidatesScored atomic.Int64
	MatchesReturned  atomic.Int64
}

// RecordRank implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRank(mode Mode, candidates, results int, duration time.Duration, err error) {
	b.RankCount.Add(1)
	b.RankTotalNanos.Add(duration.Nanoseconds())
	b.CandidatesScored.Add(int64(candidates))
	b.MatchesReturned.Add(int64(results))
	if err != nil {
		b.RankErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		RankCount:        b.RankCount.Load(),
		RankErrors:       b.RankErrors.Load(),
		CandidatesScored: b.CandidatesScored.Load(),
		MatchesReturned:  b.MatchesReturned.Load(),
	}
	if stats.RankCount > 0 {
		stats.RankAvgNanos = b.RankTotalNanos.Load() / stats.RankCount
	}
	return stats
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RankCount        int64
	RankErrors       int64
	RankAvgNanos     int64
	CandidatesScored int64
	MatchesReturned  int64
}

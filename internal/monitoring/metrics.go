package monitoring

import (
	"sync/atomic"
	"time"
)

// Metrics holds application counters exposed on the health endpoint.
type Metrics struct {
	RequestCount   int64
	ErrorCount     int64
	CacheHits      int64
	CacheMisses    int64
	GitHubAPICalls int64
	ScansCompleted int64
	StartTime      time.Time
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// IncrementRequest increments the request count
func (m *Metrics) IncrementRequest() {
	atomic.AddInt64(&m.RequestCount, 1)
}

// IncrementError increments the error count
func (m *Metrics) IncrementError() {
	atomic.AddInt64(&m.ErrorCount, 1)
}

// IncrementCacheHit increments the cache hit count
func (m *Metrics) IncrementCacheHit() {
	atomic.AddInt64(&m.CacheHits, 1)
}

// IncrementCacheMiss increments the cache miss count
func (m *Metrics) IncrementCacheMiss() {
	atomic.AddInt64(&m.CacheMisses, 1)
}

// IncrementGitHubCalls increments the GitHub API call count
func (m *Metrics) IncrementGitHubCalls() {
	atomic.AddInt64(&m.GitHubAPICalls, 1)
}

// IncrementScans increments the completed scan count
func (m *Metrics) IncrementScans() {
	atomic.AddInt64(&m.ScansCompleted, 1)
}

// GetStats returns a snapshot of the counters.
func (m *Metrics) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"request_count":    atomic.LoadInt64(&m.RequestCount),
		"error_count":      atomic.LoadInt64(&m.ErrorCount),
		"cache_hits":       atomic.LoadInt64(&m.CacheHits),
		"cache_misses":     atomic.LoadInt64(&m.CacheMisses),
		"github_api_calls": atomic.LoadInt64(&m.GitHubAPICalls),
		"scans_completed":  atomic.LoadInt64(&m.ScansCompleted),
		"uptime_seconds":   int64(time.Since(m.StartTime).Seconds()),
	}
}

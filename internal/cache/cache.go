package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/gitgauge/gitgauge/internal/analysis"
)

// ReportCache holds recently produced reports per handle so repeated scans
// of the same profile within the TTL skip the GitHub round trips.
type ReportCache struct {
	lru *expirable.LRU[string, analysis.Report]
}

// NewReportCache creates a report cache bounded by size with the given TTL.
func NewReportCache(size int, ttl time.Duration) *ReportCache {
	return &ReportCache{
		lru: expirable.NewLRU[string, analysis.Report](size, nil, ttl),
	}
}

// Get returns the cached report for a handle, if present and fresh.
func (c *ReportCache) Get(handle string) (analysis.Report, bool) {
	return c.lru.Get(normalizeHandle(handle))
}

// Set stores a report for a handle.
func (c *ReportCache) Set(handle string, report analysis.Report) {
	c.lru.Add(normalizeHandle(handle), report)
}

// Len returns the number of cached reports.
func (c *ReportCache) Len() int {
	return c.lru.Len()
}

func normalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimSpace(handle))
}

// ScanCounter supplies the per-handle scan sequence number passed into the
// engine. Counts live for the process lifetime only; the engine itself
// never owns this state.
type ScanCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewScanCounter creates an empty counter.
func NewScanCounter() *ScanCounter {
	return &ScanCounter{counts: make(map[string]int64)}
}

// Next increments and returns the scan count for a handle.
func (s *ScanCounter) Next(handle string) int64 {
	key := normalizeHandle(handle)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	return s.counts[key]
}

// Count returns the current scan count for a handle without incrementing.
func (s *ScanCounter) Count(handle string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[normalizeHandle(handle)]
}

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitgauge/gitgauge/internal/analysis"
)

func TestReportCacheRoundTrip(t *testing.T) {
	c := NewReportCache(8, time.Minute)

	_, ok := c.Get("octocat")
	assert.False(t, ok)

	report := analysis.Report{Handle: "octocat", Profile: analysis.ProfileScore{Overall: 72.5}}
	c.Set("octocat", report)

	got, ok := c.Get("octocat")
	require.True(t, ok)
	assert.Equal(t, 72.5, got.Profile.Overall)
	assert.Equal(t, 1, c.Len())
}

func TestReportCacheNormalizesHandle(t *testing.T) {
	c := NewReportCache(8, time.Minute)
	c.Set("  OctoCat ", analysis.Report{Handle: "octocat"})

	_, ok := c.Get("octocat")
	assert.True(t, ok)
	_, ok = c.Get("OCTOCAT")
	assert.True(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestReportCacheExpiry(t *testing.T) {
	c := NewReportCache(8, 20*time.Millisecond)
	c.Set("octocat", analysis.Report{Handle: "octocat"})

	time.Sleep(50 * time.Millisecond)
	_, ok := c.Get("octocat")
	assert.False(t, ok, "entries past the TTL must not be served")
}

func TestReportCacheEviction(t *testing.T) {
	c := NewReportCache(2, time.Minute)
	c.Set("a", analysis.Report{Handle: "a"})
	c.Set("b", analysis.Report{Handle: "b"})
	c.Set("c", analysis.Report{Handle: "c"})

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry is evicted at capacity")
}

func TestScanCounter(t *testing.T) {
	s := NewScanCounter()

	assert.Equal(t, int64(0), s.Count("octocat"))
	assert.Equal(t, int64(1), s.Next("octocat"))
	assert.Equal(t, int64(2), s.Next("octocat"))
	assert.Equal(t, int64(2), s.Count("octocat"))

	// handles are independent, lookup is case-insensitive
	assert.Equal(t, int64(1), s.Next("other"))
	assert.Equal(t, int64(3), s.Next("OCTOCAT"))
}

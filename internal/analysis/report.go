package analysis

import (
	"strings"
	"sync"
	"time"

	apperrors "github.com/gitgauge/gitgauge/internal/errors"
	"github.com/gitgauge/gitgauge/internal/types"
)

// Engine runs the full scoring pipeline: normalize, score repositories,
// aggregate, render chart, assemble report. It holds only configuration, so
// one Engine is safe for concurrent use across independent requests.
type Engine struct {
	cfg Config
	now func() time.Time
}

// NewEngine creates an engine with the given tunables.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg, now: time.Now}
}

// Analyze produces a Report for the bundle. The only failure mode is a
// caller-side precondition violation (missing handle); past that check every
// missing or malformed field degrades to a default signal plus a warning and
// a report is always produced.
func (e *Engine) Analyze(bundle types.ProfileBundle, scanCount int64) (Report, error) {
	if strings.TrimSpace(bundle.Handle) == "" {
		return Report{}, apperrors.NewValidationError("profile handle is required")
	}

	b := NormalizeBundle(bundle)
	now := e.now()
	scores := e.scoreRepos(b.Repos, now)
	profile := AggregateProfile(b, scores, now, e.cfg)
	chart := RenderChart(profile.Languages, e.cfg)

	return AssembleReport(b.Handle, profile, scores, chart, scanCount), nil
}

// scoreRepos fans per-repository scoring out across goroutines; each score
// depends only on its own snapshot, so the work is embarrassingly parallel
// with a join before aggregation. Output order matches input order.
func (e *Engine) scoreRepos(repos []types.RepositorySnapshot, now time.Time) []RepositoryScore {
	scores := make([]RepositoryScore, len(repos))
	var wg sync.WaitGroup
	for i, repo := range repos {
		wg.Add(1)
		go func(i int, repo types.RepositorySnapshot) {
			defer wg.Done()
			scores[i] = ScoreRepository(repo, now, e.cfg)
		}(i, repo)
	}
	wg.Wait()
	return scores
}

// AssembleReport packages the aggregate score, per-repo scores, chart and
// caller-supplied scan count. Pure composition so presentation changes never
// touch scoring.
func AssembleReport(handle string, profile ProfileScore, repos []RepositoryScore, chart string, scanCount int64) Report {
	return Report{
		Handle:    handle,
		Profile:   profile,
		Repos:     repos,
		Chart:     chart,
		ScanCount: scanCount,
	}
}

package analysis

import (
	"fmt"
	"time"

	"github.com/gitgauge/gitgauge/internal/types"
)

// credibilityMix blends repository-level credibility with the profile-level
// account-age, follower-ratio and completeness signals. Shares sum to 1.
var credibilityMix = struct {
	repos         float64
	accountAge    float64
	followerRatio float64
	completeness  float64
}{0.55, 0.20, 0.15, 0.10}

// contentMix blends repository README quality with profile-wide language
// diversity. Shares sum to 1.
var contentMix = struct {
	repos     float64
	diversity float64
}{0.85, 0.15}

// AggregateProfile combines the ordered repository scores with profile-level
// signals into category sub-scores and an overall score. The input ordering
// is significant: repositories are expected most recently pushed first, and
// earlier entries carry more weight, capped at MaxRepoInfluence.
func AggregateProfile(bundle types.ProfileBundle, scores []RepositoryScore, now time.Time, cfg Config) ProfileScore {
	weights := listWeights(len(scores), cfg)
	wr := cfg.RepoWeights

	var activity, content, credRepos float64
	for i, rs := range scores {
		c := contributionMap(rs)
		activity += weights[i] * 100 * safeShare(c[SignalCommitRecency]+c[SignalActivity], wr.CommitRecency+wr.Activity)
		content += weights[i] * 100 * safeShare(c[SignalReadmeDepth], wr.ReadmeDepth)
		credRepos += weights[i] * 100 * safeShare(c[SignalPopularity]+c[SignalKeywordFlag], wr.Popularity+wr.KeywordFlag)
	}

	age := AccountAge(bundle, now)
	ratio := FollowerRatio(bundle)
	completeness := ProfileCompleteness(bundle)
	languages := LanguageDistribution(bundle.Repos)
	diversity := LanguageDiversity(languages)

	credibility := credibilityMix.repos*credRepos + 100*(credibilityMix.accountAge*age.Value+
		credibilityMix.followerRatio*ratio.Value+
		credibilityMix.completeness*completeness.Value)
	content = contentMix.repos*content + 100*contentMix.diversity*diversity.Value

	cw := cfg.CategoryWeights
	overall := cw.Activity*activity + cw.Credibility*credibility + cw.ContentQuality*content
	if overall < cfg.MinProfileScore {
		overall = cfg.MinProfileScore
	}

	return ProfileScore{
		Overall: round2(clip(overall, 0, 100)),
		Categories: []CategoryScore{
			{Name: CategoryActivity, Score: round2(clip(activity, 0, 100))},
			{Name: CategoryCredibility, Score: round2(clip(credibility, 0, 100))},
			{Name: CategoryContentQuality, Score: round2(clip(content, 0, 100))},
		},
		Warnings:        profileWarnings(bundle, scores, now, cfg),
		Languages:       languages,
		ReposConsidered: len(scores),
	}
}

// listWeights returns normalized per-repository weights decaying with list
// position, capped so no single repository exceeds MaxRepoInfluence.
func listWeights(n int, cfg Config) []float64 {
	if n == 0 {
		return nil
	}

	ws := make([]float64, n)
	total := 0.0
	for i := range ws {
		ws[i] = decayWeight(float64(i), cfg.RepoListTau)
		total += ws[i]
	}
	for i := range ws {
		ws[i] /= total
	}

	return capShares(ws, cfg.MaxRepoInfluence)
}

// capShares clamps shares above cap and redistributes the excess over the
// uncapped remainder, keeping the total at 1. A cap below 1/n is infeasible
// and leaves the shares untouched.
func capShares(ws []float64, limit float64) []float64 {
	n := len(ws)
	if n == 0 || limit <= 0 || limit*float64(n) < 1 {
		return ws
	}

	capped := make([]bool, n)
	for iter := 0; iter < n; iter++ {
		over := false
		for i, w := range ws {
			if !capped[i] && w > limit+1e-12 {
				ws[i] = limit
				capped[i] = true
				over = true
			}
		}
		if !over {
			break
		}

		fixed, free := 0.0, 0.0
		for i, w := range ws {
			if capped[i] {
				fixed += w
			} else {
				free += w
			}
		}
		if free <= 0 {
			break
		}
		scale := (1 - fixed) / free
		for i := range ws {
			if !capped[i] {
				ws[i] *= scale
			}
		}
	}
	return ws
}

func contributionMap(rs RepositoryScore) map[string]float64 {
	m := make(map[string]float64, len(rs.Breakdown))
	for _, c := range rs.Breakdown {
		m[c.Signal] = c.Points
	}
	return m
}

func safeShare(points, weight float64) float64 {
	if weight <= 0 {
		return 0
	}
	return points / weight
}

// LanguageDistribution sums per-repository byte counts into normalized
// shares. Empty when no repository carries language data.
func LanguageDistribution(repos []types.RepositorySnapshot) map[string]float64 {
	byteTotals := make(map[string]int64)
	var total int64
	for _, repo := range repos {
		for lang, bytes := range repo.Languages {
			if bytes <= 0 {
				continue
			}
			byteTotals[lang] += bytes
			total += bytes
		}
	}

	dist := make(map[string]float64, len(byteTotals))
	if total == 0 {
		return dist
	}
	for lang, bytes := range byteTotals {
		dist[lang] = float64(bytes) / float64(total)
	}
	return dist
}

func profileWarnings(bundle types.ProfileBundle, scores []RepositoryScore, now time.Time, cfg Config) []string {
	var warnings []string
	for _, rs := range scores {
		warnings = append(warnings, rs.Warnings...)
	}

	if len(scores) < cfg.MinRepos {
		warnings = append(warnings, fmt.Sprintf("insufficient data: %d public repositories", len(scores)))
	}

	if !bundle.CreatedAt.IsZero() {
		ageDays := now.Sub(bundle.CreatedAt).Hours() / 24
		if ageDays < cfg.MinAccountAgeDays {
			warnings = append(warnings, fmt.Sprintf("account younger than %.0f days", cfg.MinAccountAgeDays))
		}
	}

	penalty := 0.0
	for _, rs := range scores {
		c := contributionMap(rs)
		penalty += cfg.RepoWeights.KeywordFlag - c[SignalKeywordFlag]
	}
	if penalty > cfg.KeywordPenaltyCeiling {
		warnings = append(warnings, fmt.Sprintf("AI/crypto keyword penalty %.0f exceeds ceiling %.0f", penalty, cfg.KeywordPenaltyCeiling))
	}

	return warnings
}

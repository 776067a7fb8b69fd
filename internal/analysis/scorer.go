package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/gitgauge/gitgauge/internal/types"
)

// ScoreRepository runs every repository-level extractor and combines the
// signals through the weight table. The breakdown contributions always sum
// to the final score; when the low-signal floor lifts the score, the lift is
// carried by an explicit baseline contribution.
func ScoreRepository(repo types.RepositorySnapshot, now time.Time, cfg Config) RepositoryScore {
	signals := []Signal{
		ReadmeDepth(repo, cfg),
		CommitRecency(repo, now, cfg),
		Activity(repo, now, cfg),
		Popularity(repo, cfg),
		KeywordFlag(repo),
	}
	weights := map[string]float64{
		SignalReadmeDepth:   cfg.RepoWeights.ReadmeDepth,
		SignalCommitRecency: cfg.RepoWeights.CommitRecency,
		SignalActivity:      cfg.RepoWeights.Activity,
		SignalPopularity:    cfg.RepoWeights.Popularity,
		SignalKeywordFlag:   cfg.RepoWeights.KeywordFlag,
	}

	breakdown := make([]Contribution, 0, len(signals)+1)
	total := 0.0
	for _, sig := range signals {
		points := weights[sig.Name] * clip(sig.Value, 0, 1)
		breakdown = append(breakdown, Contribution{Signal: sig.Name, Points: points})
		total += points
	}

	warnings := repoWarnings(repo, signals)

	if lowSignal(repo) && total < cfg.MinRepoScore {
		breakdown = append(breakdown, Contribution{Signal: SignalBaseline, Points: cfg.MinRepoScore - total})
		total = cfg.MinRepoScore
	}

	return RepositoryScore{
		Name:      repo.Name,
		Score:     round2(total),
		Breakdown: breakdown,
		Warnings:  warnings,
	}
}

// lowSignal reports whether the snapshot carries too little data to be
// scored fairly, e.g. a pure configuration repo with no README and no
// detected languages.
func lowSignal(repo types.RepositorySnapshot) bool {
	return len(repo.Languages) == 0 && len(repo.Readme) == 0
}

func repoWarnings(repo types.RepositorySnapshot, signals []Signal) []string {
	var warnings []string

	if lowSignal(repo) {
		warnings = append(warnings, fmt.Sprintf("repo %q: low signal, scored at minimum floor", repo.Name))
	} else {
		for _, sig := range signals {
			if sig.Name == SignalReadmeDepth && sig.Value < 0.2 {
				warnings = append(warnings, fmt.Sprintf("repo %q: shallow or missing README", repo.Name))
			}
		}
	}

	ai, crypto := keywordMatches(repo)
	if len(ai) > 0 {
		warnings = append(warnings, fmt.Sprintf("repo %q: possible AI reference (%s)", repo.Name, strings.Join(ai, ", ")))
	}
	if len(crypto) > 0 {
		warnings = append(warnings, fmt.Sprintf("repo %q: possible crypto reference (%s)", repo.Name, strings.Join(crypto, ", ")))
	}

	return warnings
}

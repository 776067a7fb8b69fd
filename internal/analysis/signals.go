package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/gitgauge/gitgauge/internal/types"
)

// Extractors never fail: missing or malformed input yields a zero-valued
// Signal with a note explaining the default.

// ReadmeDepth scores README length and structural richness. Length credit
// saturates at ReadmeSaturationLen so padding earns nothing extra.
func ReadmeDepth(repo types.RepositorySnapshot, cfg Config) Signal {
	text := repo.Readme
	if strings.TrimSpace(text) == "" {
		return Signal{Name: SignalReadmeDepth, Value: 0, Note: "no README"}
	}

	lengthScore := saturate(float64(len(text)), float64(cfg.ReadmeSaturationLen))

	structure := 0.0
	if hasMarkdownHeading(text) {
		structure += 1.0 / 3
	}
	if strings.Contains(text, "```") {
		structure += 1.0 / 3
	}
	if strings.Contains(text, "](") {
		structure += 1.0 / 3
	}

	return Signal{Name: SignalReadmeDepth, Value: 0.6*lengthScore + 0.4*structure}
}

func hasMarkdownHeading(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			return true
		}
	}
	return false
}

// CommitRecency decays exponentially with days since the last commit and
// drops to zero once the repository is past the staleness threshold.
func CommitRecency(repo types.RepositorySnapshot, now time.Time, cfg Config) Signal {
	if repo.LastCommitAt.IsZero() {
		return Signal{Name: SignalCommitRecency, Value: 0, Note: "no commit activity"}
	}

	days := now.Sub(repo.LastCommitAt).Hours() / 24
	if days < 0 {
		days = 0
	}
	if days >= cfg.StalenessDays {
		return Signal{Name: SignalCommitRecency, Value: 0, Note: fmt.Sprintf("dormant: last commit %.0f days ago", days)}
	}

	return Signal{Name: SignalCommitRecency, Value: decayWeight(days, cfg.RecencyTauDays)}
}

// Activity relates open issue/PR count to repository age, rewarding
// sustained engagement over one-time bursts. Saturates at ActivityPerYear
// open items per year of age.
func Activity(repo types.RepositorySnapshot, now time.Time, cfg Config) Signal {
	if repo.OpenIssues <= 0 {
		return Signal{Name: SignalActivity, Value: 0, Note: "no open issues or pull requests"}
	}

	if repo.CreatedAt.IsZero() {
		return Signal{
			Name:  SignalActivity,
			Value: saturate(float64(repo.OpenIssues), cfg.ActivityPerYear),
			Note:  "repository age unknown",
		}
	}

	ageDays := now.Sub(repo.CreatedAt).Hours() / 24
	if ageDays < 30 {
		ageDays = 30 // very young repos are measured against a 30-day floor
	}
	expected := cfg.ActivityPerYear * ageDays / 365

	return Signal{Name: SignalActivity, Value: saturate(float64(repo.OpenIssues), expected)}
}

// Popularity scales stars and forks sub-linearly so a single highly-starred
// repository cannot dominate many modestly-starred ones.
func Popularity(repo types.RepositorySnapshot, cfg Config) Signal {
	raw := float64(repo.Stars) + 2*float64(repo.Forks)
	if raw <= 0 {
		return Signal{Name: SignalPopularity, Value: 0, Note: "no stars or forks"}
	}
	return Signal{Name: SignalPopularity, Value: logScale(raw, cfg.PopularityScale)}
}

// KeywordFlag is an inverse boolean signal: 1 when no AI/crypto keywords
// are present, 0 when any match. The weighted loss is capped by the keyword
// weight, so a match is suspicion, not disqualification.
func KeywordFlag(repo types.RepositorySnapshot) Signal {
	ai, crypto := keywordMatches(repo)
	if len(ai) == 0 && len(crypto) == 0 {
		return Signal{Name: SignalKeywordFlag, Value: 1}
	}

	matched := append(append([]string{}, ai...), crypto...)
	return Signal{
		Name:  SignalKeywordFlag,
		Value: 0,
		Note:  "matched: " + strings.Join(matched, ", "),
	}
}

// keywordMatches scans language names, manifest text, repository name and
// description against the keyword tables.
func keywordMatches(repo types.RepositorySnapshot) (ai, crypto []string) {
	var sb strings.Builder
	sb.WriteString(repo.Name)
	sb.WriteString("\n")
	sb.WriteString(repo.Description)
	sb.WriteString("\n")
	sb.WriteString(repo.Manifest)
	langs := make([]string, 0, len(repo.Languages))
	for lang := range repo.Languages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		sb.WriteString("\n")
		sb.WriteString(lang)
	}
	haystack := strings.ToLower(sb.String())

	for _, kw := range aiKeywords {
		if strings.Contains(haystack, kw) {
			ai = append(ai, kw)
		}
	}
	for _, kw := range cryptoKeywords {
		if strings.Contains(haystack, kw) {
			crypto = append(crypto, kw)
		}
	}
	return ai, crypto
}

// LanguageDiversity scores the breadth of language usage as normalized
// Shannon entropy over the distribution: 0 for a single language, 1 when
// usage is spread evenly.
func LanguageDiversity(dist map[string]float64) Signal {
	if len(dist) == 0 {
		return Signal{Name: "language_diversity", Value: 0, Note: "no language data"}
	}
	if len(dist) == 1 {
		return Signal{Name: "language_diversity", Value: 0, Note: "single language"}
	}

	entropy := 0.0
	for _, share := range dist {
		if share <= 0 {
			continue
		}
		entropy -= share * math.Log(share)
	}
	return Signal{Name: "language_diversity", Value: clip(entropy/math.Log(float64(len(dist))), 0, 1)}
}

// AccountAge scores account age linearly, saturating at one year.
func AccountAge(bundle types.ProfileBundle, now time.Time) Signal {
	if bundle.CreatedAt.IsZero() {
		return Signal{Name: "account_age", Value: 0, Note: "account creation date unknown"}
	}
	days := now.Sub(bundle.CreatedAt).Hours() / 24
	if days < 0 {
		days = 0
	}
	return Signal{Name: "account_age", Value: saturate(days, 365)}
}

// FollowerRatio scores the follower/following balance on a log scale.
func FollowerRatio(bundle types.ProfileBundle) Signal {
	if bundle.Followers <= 0 {
		return Signal{Name: "follower_ratio", Value: 0, Note: "no followers"}
	}
	ratio := float64(bundle.Followers) / float64(bundle.Following+1)
	return Signal{Name: "follower_ratio", Value: logScale(ratio, 10)}
}

// ProfileCompleteness credits a filled-in bio and blog/website link.
func ProfileCompleteness(bundle types.ProfileBundle) Signal {
	v := 0.0
	if strings.TrimSpace(bundle.Bio) != "" {
		v += 0.5
	}
	if strings.TrimSpace(bundle.Blog) != "" {
		v += 0.5
	}
	if v == 0 {
		return Signal{Name: "profile_completeness", Value: 0, Note: "no bio or blog"}
	}
	return Signal{Name: "profile_completeness", Value: v}
}

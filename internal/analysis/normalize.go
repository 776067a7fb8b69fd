package analysis

import (
	"strings"

	"github.com/gitgauge/gitgauge/internal/types"
)

// NormalizeBundle returns a cleaned copy of the bundle: trimmed text fields,
// non-positive counters clamped to zero, language entries without bytes
// dropped. Repository order is preserved and the input is never mutated.
func NormalizeBundle(bundle types.ProfileBundle) types.ProfileBundle {
	out := bundle
	out.Handle = strings.TrimSpace(bundle.Handle)
	out.Followers = clampCount(bundle.Followers)
	out.Following = clampCount(bundle.Following)
	out.PublicRepos = clampCount(bundle.PublicRepos)

	out.Repos = make([]types.RepositorySnapshot, len(bundle.Repos))
	for i, repo := range bundle.Repos {
		out.Repos[i] = normalizeRepo(repo)
	}
	return out
}

func normalizeRepo(repo types.RepositorySnapshot) types.RepositorySnapshot {
	out := repo
	out.Name = strings.TrimSpace(repo.Name)
	out.PrimaryLanguage = strings.TrimSpace(repo.PrimaryLanguage)
	out.Stars = clampCount(repo.Stars)
	out.Forks = clampCount(repo.Forks)
	out.OpenIssues = clampCount(repo.OpenIssues)

	if len(repo.Languages) > 0 {
		langs := make(map[string]int64, len(repo.Languages))
		for lang, bytes := range repo.Languages {
			name := strings.TrimSpace(lang)
			if name == "" || bytes <= 0 {
				continue
			}
			langs[name] += bytes
		}
		out.Languages = langs
	}
	return out
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

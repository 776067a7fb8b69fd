package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitgauge/gitgauge/internal/types"
)

func testBundle(repos ...types.RepositorySnapshot) types.ProfileBundle {
	return types.ProfileBundle{
		Handle:      "octocat",
		CreatedAt:   daysAgo(900),
		Followers:   40,
		Following:   10,
		PublicRepos: len(repos),
		Bio:         "writes code",
		Blog:        "https://example.com",
		Repos:       repos,
	}
}

func scoreAll(repos []types.RepositorySnapshot, cfg Config) []RepositoryScore {
	scores := make([]RepositoryScore, len(repos))
	for i, repo := range repos {
		scores[i] = ScoreRepository(repo, testNow, cfg)
	}
	return scores
}

func TestAggregateProfileRanges(t *testing.T) {
	cfg := DefaultConfig()
	bundle := testBundle(
		types.RepositorySnapshot{Name: "a", Readme: richReadme(2000), Stars: 150, LastCommitAt: daysAgo(2), CreatedAt: daysAgo(400), OpenIssues: 5, Languages: map[string]int64{"Go": 800, "Shell": 200}},
		types.RepositorySnapshot{Name: "b", Readme: "# b", LastCommitAt: daysAgo(200), CreatedAt: daysAgo(600), Languages: map[string]int64{"Python": 500}},
	)

	profile := AggregateProfile(bundle, scoreAll(bundle.Repos, cfg), testNow, cfg)

	assert.GreaterOrEqual(t, profile.Overall, 0.0)
	assert.LessOrEqual(t, profile.Overall, 100.0)
	require.Len(t, profile.Categories, 3)
	for _, cat := range profile.Categories {
		assert.GreaterOrEqual(t, cat.Score, 0.0, cat.Name)
		assert.LessOrEqual(t, cat.Score, 100.0, cat.Name)
	}
	assert.Equal(t, 2, profile.ReposConsidered)
}

func TestAggregateProfileEmptyFloor(t *testing.T) {
	cfg := DefaultConfig()
	bundle := types.ProfileBundle{Handle: "ghost"}

	profile := AggregateProfile(bundle, nil, testNow, cfg)

	assert.Equal(t, cfg.MinProfileScore, profile.Overall)
	assert.Contains(t, profile.Warnings, "insufficient data: 0 public repositories")
	assert.Empty(t, profile.Languages)
}

func TestAggregateProfilePopularityMonotonic(t *testing.T) {
	cfg := DefaultConfig()

	base := types.RepositorySnapshot{Name: "a", Readme: richReadme(1000), LastCommitAt: daysAgo(5), CreatedAt: daysAgo(400), Languages: map[string]int64{"Go": 1}}
	richer := base
	richer.Stars = 400

	lo := AggregateProfile(testBundle(base), scoreAll([]types.RepositorySnapshot{base}, cfg), testNow, cfg)
	hi := AggregateProfile(testBundle(richer), scoreAll([]types.RepositorySnapshot{richer}, cfg), testNow, cfg)

	assert.GreaterOrEqual(t, hi.Overall, lo.Overall, "more stars must never lower the overall score")
}

func TestAggregateProfileRecencyMonotonic(t *testing.T) {
	cfg := DefaultConfig()

	fresh := types.RepositorySnapshot{Name: "a", Readme: richReadme(1000), LastCommitAt: daysAgo(2), CreatedAt: daysAgo(400), Languages: map[string]int64{"Go": 1}}
	stale := fresh
	stale.LastCommitAt = daysAgo(300)

	hi := AggregateProfile(testBundle(fresh), scoreAll([]types.RepositorySnapshot{fresh}, cfg), testNow, cfg)
	lo := AggregateProfile(testBundle(stale), scoreAll([]types.RepositorySnapshot{stale}, cfg), testNow, cfg)

	assert.GreaterOrEqual(t, hi.Overall, lo.Overall, "a fresher last commit must never lower the overall score")
}

func TestAggregateProfileYoungAccountWarning(t *testing.T) {
	cfg := DefaultConfig()
	bundle := testBundle(types.RepositorySnapshot{Name: "a", Readme: richReadme(500), LastCommitAt: daysAgo(1), Languages: map[string]int64{"Go": 1}})
	bundle.CreatedAt = daysAgo(10)

	profile := AggregateProfile(bundle, scoreAll(bundle.Repos, cfg), testNow, cfg)
	assert.Contains(t, profile.Warnings, "account younger than 90 days")
}

func TestListWeights(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, listWeights(0, cfg))
	})

	t.Run("sums to one and decays", func(t *testing.T) {
		ws := listWeights(8, cfg)
		sum := 0.0
		for i, w := range ws {
			sum += w
			if i > 0 {
				assert.LessOrEqual(t, w, ws[i-1], "weights must decay with list position")
			}
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("cap honored when feasible", func(t *testing.T) {
		ws := listWeights(10, cfg)
		for i, w := range ws {
			assert.LessOrEqual(t, w, cfg.MaxRepoInfluence+1e-9, "weight %d exceeds cap", i)
		}
	})

	t.Run("single repo keeps full weight", func(t *testing.T) {
		// cap below 1/n is infeasible, shares stay untouched
		ws := listWeights(1, cfg)
		assert.InDelta(t, 1.0, ws[0], 1e-9)
	})
}

func TestCapShares(t *testing.T) {
	ws := capShares([]float64{0.7, 0.2, 0.1}, 0.4)
	sum := 0.0
	for _, w := range ws {
		sum += w
		assert.LessOrEqual(t, w, 0.4+1e-9)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestLanguageDistribution(t *testing.T) {
	repos := []types.RepositorySnapshot{
		{Languages: map[string]int64{"Go": 600, "Shell": 100}},
		{Languages: map[string]int64{"Go": 200, "Python": 100}},
		{},
	}

	dist := LanguageDistribution(repos)
	require.Len(t, dist, 3)
	assert.InDelta(t, 0.8, dist["Go"], 1e-9)
	assert.InDelta(t, 0.1, dist["Shell"], 1e-9)
	assert.InDelta(t, 0.1, dist["Python"], 1e-9)

	sum := 0.0
	for _, share := range dist {
		sum += share
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestLanguageDistributionEmpty(t *testing.T) {
	assert.Empty(t, LanguageDistribution(nil))
	assert.Empty(t, LanguageDistribution([]types.RepositorySnapshot{{Name: "bare"}}))
}

func TestCredibilityMixSumsToOne(t *testing.T) {
	sum := credibilityMix.repos + credibilityMix.accountAge + credibilityMix.followerRatio + credibilityMix.completeness
	assert.True(t, math.Abs(sum-1.0) < 1e-9)
}

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitgauge/gitgauge/internal/types"
)

func TestNormalizeBundle(t *testing.T) {
	in := types.ProfileBundle{
		Handle:    "  octocat  ",
		Followers: -3,
		Following: 7,
		Repos: []types.RepositorySnapshot{
			{
				Name:  " spaced ",
				Stars: -1,
				Languages: map[string]int64{
					"Go":  100,
					"":    50,
					"C":   0,
					" C ": 25,
				},
			},
		},
	}

	out := NormalizeBundle(in)

	assert.Equal(t, "octocat", out.Handle)
	assert.Zero(t, out.Followers)
	assert.Equal(t, 7, out.Following)

	require.Len(t, out.Repos, 1)
	repo := out.Repos[0]
	assert.Equal(t, "spaced", repo.Name)
	assert.Zero(t, repo.Stars)
	assert.Equal(t, map[string]int64{"Go": 100, "C": 25}, repo.Languages)

	// input untouched
	assert.Equal(t, "  octocat  ", in.Handle)
	assert.Equal(t, " spaced ", in.Repos[0].Name)
	assert.Len(t, in.Repos[0].Languages, 4)
}

func TestNormalizeBundlePreservesOrder(t *testing.T) {
	in := types.ProfileBundle{
		Handle: "o",
		Repos: []types.RepositorySnapshot{
			{Name: "first"}, {Name: "second"}, {Name: "third"},
		},
	}

	out := NormalizeBundle(in)
	require.Len(t, out.Repos, 3)
	assert.Equal(t, "first", out.Repos[0].Name)
	assert.Equal(t, "second", out.Repos[1].Name)
	assert.Equal(t, "third", out.Repos[2].Name)
}

package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/gitgauge/gitgauge/internal/errors"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare username", "octocat", "octocat", false},
		{"with at prefix", "@octocat", "octocat", false},
		{"surrounding whitespace", "  octocat  ", "octocat", false},
		{"profile url", "https://github.com/octocat", "octocat", false},
		{"profile url trailing slash", "https://github.com/octocat/", "octocat", false},
		{"hyphenated", "repo-owner-1", "repo-owner-1", false},
		{"repo url is not a profile", "https://github.com/octocat/hello-world", "", true},
		{"spaces inside", "octo cat", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInput(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newTestAdapter(baseURL string) *GitHubAdapter {
	g := NewGitHubAdapter("test-token")
	g.SetBaseURL(baseURL)
	return g
}

func TestFetchProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{
			"login": "octocat",
			"created_at": "2020-01-15T00:00:00Z",
			"followers": 40,
			"following": 10,
			"public_repos": 2,
			"bio": "writes code",
			"blog": "https://example.com"
		}`))
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pushed", r.URL.Query().Get("sort"))
		w.Write([]byte(`[
			{
				"name": "api-server",
				"description": "an HTTP API",
				"language": "Go",
				"stargazers_count": 150,
				"forks_count": 12,
				"open_issues_count": 4,
				"created_at": "2021-06-01T00:00:00Z",
				"pushed_at": "2026-02-27T00:00:00Z"
			},
			{
				"name": "dotfiles",
				"created_at": "2020-02-01T00:00:00Z",
				"pushed_at": "2024-01-01T00:00:00Z"
			}
		]`))
	})
	mux.HandleFunc("/repos/octocat/api-server/languages", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Go": 9000, "Makefile": 1000}`))
	})
	mux.HandleFunc("/repos/octocat/api-server/readme", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/vnd.github.v3.raw", r.Header.Get("Accept"))
		w.Write([]byte("# api-server\n\nA server."))
	})
	mux.HandleFunc("/repos/octocat/api-server/contents/requirements.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("requests==2.0\n"))
	})
	// everything else (remaining manifests, dotfiles details) is missing
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := newTestAdapter(srv.URL)
	bundle, err := g.FetchProfile(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, "octocat", bundle.Handle)
	assert.Equal(t, 40, bundle.Followers)
	assert.Equal(t, "writes code", bundle.Bio)
	require.Len(t, bundle.Repos, 2)

	api := bundle.Repos[0]
	assert.Equal(t, "api-server", api.Name)
	assert.Equal(t, "Go", api.PrimaryLanguage)
	assert.Equal(t, 150, api.Stars)
	assert.Equal(t, map[string]int64{"Go": 9000, "Makefile": 1000}, api.Languages)
	assert.Contains(t, api.Readme, "# api-server")
	assert.Contains(t, api.Manifest, "requests==2.0")
	assert.False(t, api.LastCommitAt.IsZero())

	dotfiles := bundle.Repos[1]
	assert.Equal(t, "dotfiles", dotfiles.Name)
	assert.Empty(t, dotfiles.Readme)
	assert.Empty(t, dotfiles.Languages)
}

func TestFetchProfileUserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := newTestAdapter(srv.URL)
	_, err := g.FetchProfile(context.Background(), "nobody")
	require.Error(t, err)

	appErr := apperrors.ToAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestMissingDetailsKeepBreakerClosed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"login": "octocat"}`))
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name": "bare"}]`))
	})
	// languages, readme and every manifest 404
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := newTestAdapter(srv.URL)
	bundle, err := g.FetchProfile(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, bundle.Repos, 1)

	assert.Equal(t, "closed", g.BreakerState(), "missing resources are not upstream failures")
}

func TestFetchProfileServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := newTestAdapter(srv.URL)
	_, err := g.FetchProfile(context.Background(), "octocat")
	require.Error(t, err)

	appErr := apperrors.ToAppError(err)
	assert.Equal(t, apperrors.CategoryExternalAPI, appErr.Category)
}

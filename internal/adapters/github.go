package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/gitgauge/gitgauge/internal/errors"
	"github.com/gitgauge/gitgauge/internal/resilience"
	"github.com/gitgauge/gitgauge/internal/types"
)

const defaultBaseURL = "https://api.github.com"

// maxDetailRepos bounds the number of repositories for which README,
// language and manifest contents are fetched. The remaining repositories
// still contribute their list-level metrics.
const maxDetailRepos = 5

// manifestFiles are the dependency manifests scanned for keyword signals.
var manifestFiles = []string{
	"requirements.txt", "package.json", "Cargo.toml", "go.mod", "Pipfile", "environment.yml",
}

var profileURLPattern = regexp.MustCompile(`github\.com/([A-Za-z0-9-]+)/?$`)
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// ParseInput extracts a username from a bare handle or a profile URL.
func ParseInput(input string) (string, error) {
	input = strings.TrimSpace(input)
	if m := profileURLPattern.FindStringSubmatch(input); m != nil {
		return m[1], nil
	}
	input = strings.TrimPrefix(input, "@")
	if !usernamePattern.MatchString(input) {
		return "", apperrors.NewValidationError("not a GitHub username or profile link", input)
	}
	return input, nil
}

// ghUser mirrors the fields of the GitHub users endpoint we consume.
type ghUser struct {
	Login       string    `json:"login"`
	CreatedAt   time.Time `json:"created_at"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	Bio         string    `json:"bio"`
	Blog        string    `json:"blog"`
}

// ghRepo mirrors the fields of the GitHub repos endpoint we consume.
type ghRepo struct {
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Description     string    `json:"description"`
	Language        string    `json:"language"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	CreatedAt       time.Time `json:"created_at"`
	PushedAt        time.Time `json:"pushed_at"`
}

// GitHubAdapter resolves a username into a ProfileBundle. It is deliberately
// thin: one page of repositories sorted by push date, detail fetches for the
// first few. Transient failures are absorbed by the circuit breaker and the
// caller's retry wrapper.
type GitHubAdapter struct {
	token   string
	baseURL string
	client  *http.Client
	breaker *resilience.CircuitBreaker
}

// NewGitHubAdapter creates a new GitHub adapter.
func NewGitHubAdapter(token string) *GitHubAdapter {
	return &GitHubAdapter{
		token:   token,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		breaker: resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			FailureThreshold: 5,
			RecoveryTimeout:  30 * time.Second,
			SuccessThreshold: 3,
		}),
	}
}

// SetBaseURL overrides the API endpoint, for proxies and tests.
func (g *GitHubAdapter) SetBaseURL(url string) {
	g.baseURL = url
}

// FetchProfile fetches user metadata and repository snapshots for a handle.
func (g *GitHubAdapter) FetchProfile(ctx context.Context, username string) (types.ProfileBundle, error) {
	var user ghUser
	if err := g.getJSON(ctx, fmt.Sprintf("%s/users/%s", g.baseURL, username), &user); err != nil {
		return types.ProfileBundle{}, err
	}

	var repos []ghRepo
	if err := g.getJSON(ctx, fmt.Sprintf("%s/users/%s/repos?sort=pushed&per_page=100", g.baseURL, username), &repos); err != nil {
		return types.ProfileBundle{}, err
	}

	bundle := types.ProfileBundle{
		Handle:      user.Login,
		CreatedAt:   user.CreatedAt,
		Followers:   user.Followers,
		Following:   user.Following,
		PublicRepos: user.PublicRepos,
		Bio:         user.Bio,
		Blog:        user.Blog,
		Repos:       make([]types.RepositorySnapshot, 0, len(repos)),
	}

	for i, repo := range repos {
		snap := types.RepositorySnapshot{
			Name:            repo.Name,
			Description:     repo.Description,
			PrimaryLanguage: repo.Language,
			Stars:           repo.StargazersCount,
			Forks:           repo.ForksCount,
			OpenIssues:      repo.OpenIssuesCount,
			CreatedAt:       repo.CreatedAt,
			// pushed_at approximates the last commit without an extra
			// commits request per repository
			LastCommitAt: repo.PushedAt,
		}

		if i < maxDetailRepos {
			g.fillDetails(ctx, username, repo.Name, &snap)
		}
		bundle.Repos = append(bundle.Repos, snap)
	}

	return bundle, nil
}

// fillDetails fetches languages, README and manifests. Failures here leave
// the corresponding field empty; the engine degrades those to default
// signals rather than failing the analysis.
func (g *GitHubAdapter) fillDetails(ctx context.Context, owner, repo string, snap *types.RepositorySnapshot) {
	var langs map[string]int64
	if err := g.getJSON(ctx, fmt.Sprintf("%s/repos/%s/%s/languages", g.baseURL, owner, repo), &langs); err == nil {
		snap.Languages = langs
	}

	if readme, err := g.getRaw(ctx, fmt.Sprintf("%s/repos/%s/%s/readme", g.baseURL, owner, repo)); err == nil {
		snap.Readme = readme
	}

	var manifest strings.Builder
	for _, file := range manifestFiles {
		content, err := g.getRaw(ctx, fmt.Sprintf("%s/repos/%s/%s/contents/%s", g.baseURL, owner, repo, file))
		if err != nil {
			continue
		}
		manifest.WriteString(content)
		manifest.WriteString("\n")
	}
	snap.Manifest = manifest.String()
}

func (g *GitHubAdapter) getJSON(ctx context.Context, url string, out interface{}) error {
	body, err := g.get(ctx, url, "application/vnd.github.v3+json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.NewExternalAPIError("GitHub", fmt.Errorf("decode %s: %w", url, err))
	}
	return nil
}

func (g *GitHubAdapter) getRaw(ctx context.Context, url string) (string, error) {
	body, err := g.get(ctx, url, "application/vnd.github.v3.raw")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (g *GitHubAdapter) get(ctx context.Context, url, accept string) ([]byte, error) {
	var body []byte
	notFound := false
	err := g.breaker.Call(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return apperrors.NewInternalError("build GitHub request", err)
		}
		req.Header.Set("Accept", accept)
		req.Header.Set("User-Agent", "gitgauge/1.0")
		if g.token != "" {
			req.Header.Set("Authorization", "Bearer "+g.token)
		}

		resp, err := g.client.Do(req)
		if err != nil {
			return apperrors.NewNetworkError("GitHub request failed", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			// not a service failure, keep the breaker closed
			notFound = true
			return nil
		case resp.StatusCode != http.StatusOK:
			payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return apperrors.NewExternalAPIError("GitHub",
				fmt.Errorf("status %d for %s: %s", resp.StatusCode, url, string(payload)))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return apperrors.NewNetworkError("read GitHub response", err)
		}
		return nil
	})
	if err == nil && notFound {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("GitHub resource not found: %s", url))
	}
	return body, err
}

// BreakerState exposes the circuit breaker state for health reporting.
func (g *GitHubAdapter) BreakerState() string {
	return g.breaker.State().String()
}
